// Package models defines the records that flow through the syllable filter.
package models

// PickedDefault is the value every emitted entry starts with.
// Downstream tools flip it once a word has been used.
const PickedDefault = "false"

// RawRecord is one decoded input line. Keys other than "text" are tolerated
// and dropped before output.
type RawRecord map[string]any

// Text returns the "text" field, or "" when it is missing or not a string.
func (r RawRecord) Text() string {
	s, _ := r["text"].(string)
	return s
}

// Entry is a normalized word as written to the output document.
type Entry struct {
	Text   string `json:"text"`
	Picked string `json:"picked"`
}

// NewEntry returns an entry for text with the default picked flag.
func NewEntry(text string) Entry {
	return Entry{Text: text, Picked: PickedDefault}
}

// Document is the top-level output container.
type Document struct {
	DirectoryVNData []Entry `json:"directoryVNData"`
}

// NewDocument wraps entries, always producing a non-nil list so an empty
// result serializes as [] rather than null.
func NewDocument(entries []Entry) *Document {
	if entries == nil {
		entries = []Entry{}
	}

	return &Document{DirectoryVNData: entries}
}
