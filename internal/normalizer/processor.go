// Package normalizer turns decoded word records into output entries.
package normalizer

import (
	"wordcrush/internal/models"
)

// Stats counts records at each stage of a Process call.
type Stats struct {
	Input   int
	Valid   int
	Emitted int
}

// Processor chains validation and transformation.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process validates records and transforms the survivors, preserving order.
func (p *Processor) Process(records []models.RawRecord) ([]models.Entry, Stats) {
	// 1. Drop empty words and words with forbidden punctuation
	valid := p.validator.Filter(records)

	// 2. Keep two-syllable words, capitalized
	entries := p.transformer.Transform(valid)

	return entries, Stats{
		Input:   len(records),
		Valid:   len(valid),
		Emitted: len(entries),
	}
}
