// Package loader reads line-delimited JSON word lists.
package loader

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"wordcrush/internal/logger"
	"wordcrush/internal/models"
	"wordcrush/pkg/utils"
)

// ErrSourceNotFound is returned when the input file does not exist.
// It aborts the run.
var ErrSourceNotFound = errors.New("source file not found")

// ErrNotObject is wrapped by LineError when a line holds valid JSON that is not an object.
var ErrNotObject = errors.New("line is not a JSON object")

// LineError describes one input line that could not be decoded.
// It is recoverable: the line is skipped and loading continues.
type LineError struct {
	Err     error
	Content string
	Line    int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result holds the decoded records in input order and the lines that were skipped.
type Result struct {
	Records []models.RawRecord
	Skipped []*LineError
}

// Loader decodes word list files.
type Loader struct {
	log     *logger.Logger
	strings *utils.StringHelper
}

// NewLoader creates a new loader instance.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{
		log:     log.With("component", "loader"),
		strings: utils.NewStringHelper(),
	}
}

// LoadFile opens path and decodes it with Load.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}

		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	res, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	l.log.Debug("source loaded", "path", path, "records", len(res.Records), "skipped", len(res.Skipped))

	return res, nil
}

// Load decodes one JSON object per line. Undecodable lines, blank ones
// included, are collected in Result.Skipped.
func (l *Loader) Load(r io.Reader) (*Result, error) {
	res := &Result{}
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}

		// Nothing left after a final newline.
		if readErr != nil && raw == "" {
			return res, nil
		}

		line := l.strings.TrimWhitespace(raw)

		record, err := decodeLine(line)
		if err != nil {
			l.log.Debug("skipping line", "line", lineNo, "content", l.strings.TruncateString(line, 80), "error", err)
			res.Skipped = append(res.Skipped, &LineError{Line: lineNo, Content: raw, Err: err})
		} else {
			res.Records = append(res.Records, record)
		}

		if readErr != nil {
			return res, nil
		}
	}
}

func decodeLine(line string) (models.RawRecord, error) {
	var v any
	if err := json.Unmarshal([]byte(line), &v); err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return models.RawRecord(obj), nil
}
