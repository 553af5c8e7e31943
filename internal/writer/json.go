// Package writer serializes the output document.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"wordcrush/internal/models"
)

// Indent is the per-level indentation of the output file.
const Indent = "    "

// Marshal encodes doc as indented JSON. Non-ASCII and HTML-significant
// characters are written literally.
func Marshal(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile wraps entries into a document and writes it to path,
// replacing any existing file.
func WriteFile(path string, entries []models.Entry) error {
	data, err := Marshal(models.NewDocument(entries))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
