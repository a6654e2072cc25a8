package model

// HighlightText is one highlighted text run within a group. The anchors are
// produced by the in-page renderer; the core persists them untouched.
type HighlightText struct {
	Text   string `json:"text"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// HighlightGroup is a set of text runs highlighted in one color on one page.
type HighlightGroup struct {
	GroupID string          `json:"groupId"`
	Color   string          `json:"color"`
	Texts   []HighlightText `json:"texts"`
}

// PageMeta is the sidecar metadata stored next to a page's highlight data.
// It is created and deleted together with the page data.
type PageMeta struct {
	Title       string `json:"title"`
	LastUpdated string `json:"lastUpdated"` // ISO-8601
}

// PageInfo describes one stored page for listings.
type PageInfo struct {
	URL        string   `json:"url"`
	Meta       PageMeta `json:"meta"`
	GroupCount int      `json:"groupCount"`
}
