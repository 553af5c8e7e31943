package models

import (
	"encoding/json"
	"testing"
)

func TestRawRecord_Text(t *testing.T) {
	tests := []struct {
		name   string
		record RawRecord
		want   string
	}{
		{name: "String text", record: RawRecord{"text": "nguyen van"}, want: "nguyen van"},
		{name: "Missing text", record: RawRecord{"id": 1.0}, want: ""},
		{name: "Number text", record: RawRecord{"text": 42.0}, want: ""},
		{name: "Null text", record: RawRecord{"text": nil}, want: ""},
		{name: "Nil record", record: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("Nguyen Van")
	if e.Text != "Nguyen Van" {
		t.Errorf("Text = %q, want Nguyen Van", e.Text)
	}

	if e.Picked != "false" {
		t.Errorf("Picked = %q, want false", e.Picked)
	}
}

func TestNewDocument_EmptyIsArray(t *testing.T) {
	data, err := json.Marshal(NewDocument(nil))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if string(data) != `{"directoryVNData":[]}` {
		t.Errorf("Marshal = %s, want empty array", data)
	}
}
