// ABOUTME: Tests for the duration codec.
// ABOUTME: Covers accepted shapes, rejections, and format/parse round trips.
package duration

import (
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"5", 300, true},
		{"5:30", 330, true},
		{" 0:07 ", 7, true},
		{"12:5", 725, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"5:65", 0, false},
		{"5:60", 0, false},
		{"5:123", 0, false},
		{"-5", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
		{":30", 0, false},
		{"153722867280912931", 0, false},
		{"153722867280912931:00", 0, false},
		{"99999999999999999999", 0, false},
		{strconv.Itoa(maxMinutes), maxMinutes * 60, true},
		{strconv.Itoa(maxMinutes) + ":59", maxMinutes*60 + 59, true},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormat(t *testing.T) {
	secs := func(v int) *int { return &v }
	tests := []struct {
		in   *int
		want string
	}{
		{nil, ""},
		{secs(-1), ""},
		{secs(0), "0:00"},
		{secs(7), "0:07"},
		{secs(330), "5:30"},
		{secs(3600), "60:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for s := 0; s <= 10000; s++ {
		got, ok := Parse(FormatSeconds(s))
		if !ok || got != s {
			t.Fatalf("Parse(FormatSeconds(%d)) = (%d, %v)", s, got, ok)
		}
	}
}

func TestParsePtr(t *testing.T) {
	if ParsePtr("") != nil {
		t.Error("expected nil for empty input")
	}
	if p := ParsePtr("1:01"); p == nil || *p != 61 {
		t.Errorf("ParsePtr(1:01) = %v, want 61", p)
	}
}
