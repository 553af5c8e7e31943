// Package utils provides common word utility functions.
package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ForbiddenChars lists the punctuation that disqualifies a word.
const ForbiddenChars = `-,_*/\`

// StringHelper provides string utility functions.
// It holds case mappers and is not safe for concurrent use.
type StringHelper struct {
	title cases.Caser
	lower cases.Caser
}

// NewStringHelper creates a new string helper.
// Case mapping uses the undetermined language, so no locale rules apply.
func NewStringHelper() *StringHelper {
	return &StringHelper{
		title: cases.Title(language.Und),
		lower: cases.Lower(language.Und),
	}
}

// TrimWhitespace removes leading and trailing whitespace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return strings.TrimSpace(str)
}

// TruncateString truncates string to max runes.
func (s *StringHelper) TruncateString(str string, maxLength int) string {
	if utf8.RuneCountInString(str) <= maxLength {
		return str
	}

	return string([]rune(str)[:maxLength]) + "..."
}

// HasForbiddenChar reports whether str contains any of ForbiddenChars.
func (s *StringHelper) HasForbiddenChar(str string) bool {
	return strings.ContainsAny(str, ForbiddenChars)
}

// Syllables splits a word into its whitespace-separated parts.
func (s *StringHelper) Syllables(str string) []string {
	return strings.Fields(str)
}

// Capitalize title-cases the first rune and lower-cases the rest,
// so "VAN" becomes "Van" and "ǆa" becomes "ǅa".
func (s *StringHelper) Capitalize(str string) string {
	if str == "" {
		return str
	}

	_, size := utf8.DecodeRuneInString(str)

	return s.title.String(str[:size]) + s.lower.String(str[size:])
}

// CapitalizeParts capitalizes each part and joins them with single spaces.
func (s *StringHelper) CapitalizeParts(parts []string) string {
	capitalized := make([]string, len(parts))
	for i, p := range parts {
		capitalized[i] = s.Capitalize(p)
	}

	return strings.Join(capitalized, " ")
}
