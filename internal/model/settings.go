package model

// Settings is the user's hilite configuration.
// Stored at <data dir>/settings.toml.
// Schema changes require a version bump, see internal/version/version.go.
type Settings struct {
	HiliteSchema string `toml:"hilite_schema"`
	Port         int    `toml:"port,omitempty"`
	Locale       string `toml:"locale,omitempty"`
}

// DefaultPort is used when settings carry no port.
const DefaultPort = 3100

// EffectivePort returns the configured port, falling back to the default.
func (s *Settings) EffectivePort() int {
	if s.Port > 0 {
		return s.Port
	}
	return DefaultPort
}
