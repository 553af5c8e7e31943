package formatter

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"wordcrush/internal/models"
)

func TestFormatPreview(t *testing.T) {
	entries := []models.Entry{
		models.NewEntry("Nguyen Van"),
		models.NewEntry("Lê Đức"),
	}

	got := FormatPreview(entries, 0)
	want := strings.Join([]string{
		"| #   | Text       | Picked |",
		"| --- | ---------- | ------ |",
		"| 1   | Nguyen Van | false  |",
		"| 2   | Lê Đức     | false  |",
	}, "\n")

	if got != want {
		t.Errorf("FormatPreview mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatPreview_AlignsByDisplayWidth(t *testing.T) {
	entries := []models.Entry{
		models.NewEntry("Nguyễn Văn"),
		models.NewEntry("Ab Cd"),
	}

	lines := strings.Split(FormatPreview(entries, 0), "\n")

	width := runewidth.StringWidth(lines[0])
	for _, line := range lines[1:] {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("Line %q has width %d, want %d", line, w, width)
		}
	}
}

func TestFormatPreview_Limit(t *testing.T) {
	entries := []models.Entry{
		models.NewEntry("A B"),
		models.NewEntry("C D"),
		models.NewEntry("E F"),
	}

	lines := strings.Split(FormatPreview(entries, 2), "\n")

	if len(lines) != 5 {
		t.Fatalf("Expected header, separator, 2 rows and a footer, got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	if lines[4] != "... and 1 more" {
		t.Errorf("Footer = %q, want '... and 1 more'", lines[4])
	}
}

func TestFormatPreview_Empty(t *testing.T) {
	lines := strings.Split(FormatPreview(nil, 10), "\n")

	if len(lines) != 2 {
		t.Errorf("Expected header and separator only, got %d lines", len(lines))
	}
}

func TestFormatPreview_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("a", MaxCellWidth+10) + " B"
	out := FormatPreview([]models.Entry{models.NewEntry(long)}, 0)

	if strings.Contains(out, long) {
		t.Error("Expected long text to be truncated")
	}

	if !strings.Contains(out, "...") {
		t.Error("Expected truncation marker")
	}
}
