package normalizer

import (
	"errors"

	"wordcrush/internal/models"
	"wordcrush/pkg/utils"
)

// Validation errors.
var (
	ErrEmptyText     = errors.New("text is empty or missing")
	ErrForbiddenChar = errors.New("text contains forbidden character")
)

// Validator rejects records that cannot become words.
type Validator struct {
	strings *utils.StringHelper
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{
		strings: utils.NewStringHelper(),
	}
}

// Validate checks a single record.
func (v *Validator) Validate(record models.RawRecord) error {
	text := record.Text()
	if text == "" {
		return ErrEmptyText
	}

	if v.strings.HasForbiddenChar(text) {
		return ErrForbiddenChar
	}

	return nil
}

// Filter returns the records that pass Validate, in input order.
func (v *Validator) Filter(records []models.RawRecord) []models.RawRecord {
	valid := make([]models.RawRecord, 0, len(records))

	for _, record := range records {
		if v.Validate(record) == nil {
			valid = append(valid, record)
		}
	}

	return valid
}
