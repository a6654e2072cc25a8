package model

import "testing"

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"#ffaa00", "#FFAA00"},
		{"#FFAA00", "#FFAA00"},
		{"ffaa00", "#FFAA00"},
		{"  #ffaa00  ", "#FFAA00"},
		{"#fa0", "#FFAA00"},
		{"fa0", "#FFAA00"},
	}
	for _, tt := range tests {
		got, err := NormalizeHex(tt.input)
		if err != nil {
			t.Errorf("NormalizeHex(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeHexInvalid(t *testing.T) {
	invalid := []string{"", "#", "#GGGGGG", "#FFAA0", "#FFAA000", "not a color", "#FFAA00FF"}
	for _, input := range invalid {
		if _, err := NormalizeHex(input); err == nil {
			t.Errorf("NormalizeHex(%q) should have failed", input)
		}
	}
}

func TestRenumber(t *testing.T) {
	colors := []ColorRecord{
		{ID: "a", ColorNumber: 3},
		{ID: "b", ColorNumber: 7},
		{ID: "c"},
	}
	Renumber(colors)
	for i, c := range colors {
		if c.ColorNumber != i+1 {
			t.Errorf("colors[%d].ColorNumber = %d, want %d", i, c.ColorNumber, i+1)
		}
	}
}

func TestContainsColorCaseInsensitive(t *testing.T) {
	colors := []ColorRecord{{ID: "a", Color: "#FFAA00"}}

	if !ContainsColor(colors, "#ffaa00") {
		t.Error("ContainsColor should match case-insensitively")
	}
	if !ContainsColor(colors, "#FFAA00") {
		t.Error("ContainsColor should match exact value")
	}
	if ContainsColor(colors, "#FFAA01") {
		t.Error("ContainsColor should not match a different value")
	}
}

func TestFindColorByID(t *testing.T) {
	colors := []ColorRecord{
		{ID: "a", Color: "#111111"},
		{ID: "b", Color: "#222222"},
	}

	if c := FindColorByID(colors, "b"); c == nil || c.Color != "#222222" {
		t.Errorf("FindColorByID(b) = %v, want #222222", c)
	}
	if c := FindColorByID(colors, "missing"); c != nil {
		t.Errorf("FindColorByID(missing) = %v, want nil", c)
	}
}
