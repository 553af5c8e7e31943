package normalizer

import (
	"errors"
	"fmt"

	"wordcrush/internal/models"
	"wordcrush/pkg/utils"
)

// SyllableCount is the number of parts a word must have to be emitted.
const SyllableCount = 2

// ErrSyllableCount is returned when a word does not split into SyllableCount parts.
var ErrSyllableCount = errors.New("unexpected syllable count")

// Transformer shapes validated records into output entries.
type Transformer struct {
	strings *utils.StringHelper
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		strings: utils.NewStringHelper(),
	}
}

// TransformOne converts a single record into an entry.
func (t *Transformer) TransformOne(record models.RawRecord) (models.Entry, error) {
	parts := t.strings.Syllables(record.Text())
	if len(parts) != SyllableCount {
		return models.Entry{}, fmt.Errorf("%w: got %d, want %d", ErrSyllableCount, len(parts), SyllableCount)
	}

	return models.NewEntry(t.strings.CapitalizeParts(parts)), nil
}

// Transform converts every two-syllable record, skipping the rest.
func (t *Transformer) Transform(records []models.RawRecord) []models.Entry {
	entries := make([]models.Entry, 0, len(records))

	for _, record := range records {
		entry, err := t.TransformOne(record)
		if err != nil {
			continue
		}

		entries = append(entries, entry)
	}

	return entries
}
