package model

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxCustomColors is the hard cap on the custom color collection.
const MaxCustomColors = 20

// ColorRecord is a single custom highlight color.
//
// ColorNumber is the dense 1-based rank of the record within the collection;
// the store re-derives it after every deletion so numbers are always exactly
// 1..N. Color is the canonical uppercase hex value, unique case-insensitively
// within the collection.
type ColorRecord struct {
	ID          string `json:"id" toml:"id"`
	ColorNumber int    `json:"colorNumber" toml:"color_number"`
	Color       string `json:"color" toml:"color"`
	NameKey     string `json:"nameKey" toml:"name_key"`
}

var hexPattern = regexp.MustCompile(`^#(?:[0-9A-F]{3}|[0-9A-F]{6})$`)

// NormalizeHex canonicalizes a hex color value: uppercases it, ensures a
// leading '#', and expands shorthand #RGB to #RRGGBB. All writes go through
// this single point so stored values never differ only by case.
func NormalizeHex(value string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v != "" && !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if !hexPattern.MatchString(v) {
		return "", fmt.Errorf("invalid hex color: %q", value)
	}
	if len(v) == 4 {
		v = fmt.Sprintf("#%c%c%c%c%c%c", v[1], v[1], v[2], v[2], v[3], v[3])
	}
	return v, nil
}

// Renumber reassigns ColorNumber 1..N by position. Called after deletions
// and when loading records persisted without numbers.
func Renumber(colors []ColorRecord) {
	for i := range colors {
		colors[i].ColorNumber = i + 1
	}
}

// FindColorByID returns the record with the given id, or nil.
func FindColorByID(colors []ColorRecord, id string) *ColorRecord {
	for i := range colors {
		if colors[i].ID == id {
			return &colors[i]
		}
	}
	return nil
}

// ContainsColor reports whether the collection already holds the given hex
// value, compared case-insensitively.
func ContainsColor(colors []ColorRecord, hex string) bool {
	for i := range colors {
		if strings.EqualFold(colors[i].Color, hex) {
			return true
		}
	}
	return false
}
