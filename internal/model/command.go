package model

import "fmt"

// LegacyCommands are the five fixed shortcut command names kept for backward
// compatibility. They address collection positions 0-4 by index.
var LegacyCommands = []string{
	"highlight-yellow",
	"highlight-cyan",
	"highlight-lime",
	"highlight-pink",
	"highlight-orange",
}

// NumCustomSlots is the number of numbered custom-slot commands. They address
// collection positions 5-9.
const NumCustomSlots = 5

// CustomSlotCommand returns the command name for custom slot n (1-based).
func CustomSlotCommand(n int) string {
	return fmt.Sprintf("custom-color-%d", n)
}

// HighlightCommands returns all shortcut command names in position order:
// the five legacy names followed by the five custom slots.
func HighlightCommands() []string {
	cmds := make([]string, 0, len(LegacyCommands)+NumCustomSlots)
	cmds = append(cmds, LegacyCommands...)
	for i := 1; i <= NumCustomSlots; i++ {
		cmds = append(cmds, CustomSlotCommand(i))
	}
	return cmds
}

// CommandPosition maps a shortcut command name to its 0-based collection
// position. Returns false for names that are not highlight commands.
func CommandPosition(name string) (int, bool) {
	for i, cmd := range LegacyCommands {
		if cmd == name {
			return i, true
		}
	}
	for i := 1; i <= NumCustomSlots; i++ {
		if CustomSlotCommand(i) == name {
			return len(LegacyCommands) + i - 1, true
		}
	}
	return 0, false
}
