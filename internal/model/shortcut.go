package model

// ShortcutSnapshot maps a command name to its bound key string. Unbound
// commands are absent from the map. Snapshots are compared on tab focus to
// detect rebinding, since the platform has no native change event for it.
type ShortcutSnapshot map[string]string

// Equal reports whether two snapshots bind the same commands to the same
// keys, including presence of the bindings themselves.
func (s ShortcutSnapshot) Equal(other ShortcutSnapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for cmd, key := range s {
		if otherKey, ok := other[cmd]; !ok || otherKey != key {
			return false
		}
	}
	return true
}

// Clone returns a copy of the snapshot.
func (s ShortcutSnapshot) Clone() ShortcutSnapshot {
	out := make(ShortcutSnapshot, len(s))
	for cmd, key := range s {
		out[cmd] = key
	}
	return out
}
