package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

// Kind is a short prefix identifying what an ID belongs to.
type Kind string

const (
	Color Kind = "c"
	Group Kind = "g"
)

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)

	generator = fid.MustNewGenerator(config)
}

// Generate returns a new unique ID for the given kind. IDs are time-sortable,
// so a record's ID doubles as its creation-time marker.
func Generate(kind Kind) string {
	return string(kind) + "_" + generator.MustGenerate()
}
