package model

// DefaultColor describes one entry of the seed palette.
type DefaultColor struct {
	Color   string
	NameKey string
}

// DefaultPalette is the palette seeded into an empty colors file on first
// run. The order matters: these occupy positions 1-5, which the legacy
// shortcut commands address.
var DefaultPalette = []DefaultColor{
	{Color: "#FFFF00", NameKey: "colorYellow"},
	{Color: "#00FFFF", NameKey: "colorCyan"},
	{Color: "#00FF00", NameKey: "colorLime"},
	{Color: "#FF00FF", NameKey: "colorPink"},
	{Color: "#FFA500", NameKey: "colorOrange"},
}
