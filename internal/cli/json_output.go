package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/hilite/internal/model"
)

// ColorsOutput wraps the color collection for JSON output.
type ColorsOutput struct {
	Colors []model.ColorRecord `json:"colors"`
}

// NewColorsOutput creates a ColorsOutput.
// Always returns an empty array (not null) when there are no colors.
func NewColorsOutput(colors []model.ColorRecord) ColorsOutput {
	if colors == nil {
		colors = []model.ColorRecord{}
	}
	return ColorsOutput{Colors: colors}
}

// ColorOutput wraps a single added color plus the resulting collection.
type ColorOutput struct {
	Color  model.ColorRecord   `json:"color"`
	Colors []model.ColorRecord `json:"colors"`
}

// PagesOutput wraps the highlighted page list for JSON output.
type PagesOutput struct {
	Pages []model.PageInfo `json:"pages"`
}

// NewPagesOutput creates a PagesOutput.
// Always returns an empty array (not null) when there are no pages.
func NewPagesOutput(pages []model.PageInfo) PagesOutput {
	if pages == nil {
		pages = []model.PageInfo{}
	}
	return PagesOutput{Pages: pages}
}

// HighlightsOutput wraps one page's highlight groups for JSON output.
type HighlightsOutput struct {
	URL        string                 `json:"url"`
	Highlights []model.HighlightGroup `json:"highlights"`
}

// NewHighlightsOutput creates a HighlightsOutput.
func NewHighlightsOutput(url string, groups []model.HighlightGroup) HighlightsOutput {
	if groups == nil {
		groups = []model.HighlightGroup{}
	}
	return HighlightsOutput{URL: url, Highlights: groups}
}

// MenuOutput wraps the projected menu entries for JSON output.
type MenuOutput struct {
	Entries []model.MenuEntry `json:"entries"`
}

// NewMenuOutput creates a MenuOutput.
func NewMenuOutput(entries []model.MenuEntry) MenuOutput {
	if entries == nil {
		entries = []model.MenuEntry{}
	}
	return MenuOutput{Entries: entries}
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
