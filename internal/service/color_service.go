package service

import (
	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/id"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/store"

	"sync"
)

// NameKeyCustom is the display-name key assigned to user-added colors.
const NameKeyCustom = "customColor"

// ColorsSubscriber receives the full collection after every committed
// mutation. Subscribers isolate their own failures; a subscriber can never
// fail the mutation it observes.
type ColorsSubscriber interface {
	ColorsChanged(colors []model.ColorRecord)
}

// ColorService owns the canonical color collection. It is the single writer:
// every mutation runs its whole read-modify-persist sequence under one mutex,
// since two interleaved sequences against the stored collection would lose an
// update. Reads are served from an in-memory mirror that is resynchronized
// after every write and never blocks on the mutation path.
type ColorService struct {
	store store.ColorStore

	writeMu sync.Mutex // Serializes mutations end to end

	mirrorMu sync.RWMutex
	mirror   []model.ColorRecord

	subMu       sync.RWMutex
	subscribers []ColorsSubscriber
}

// NewColorService creates a new color service. Call Load before serving reads.
func NewColorService(store store.ColorStore) *ColorService {
	return &ColorService{store: store}
}

// Subscribe registers a post-commit subscriber.
func (s *ColorService) Subscribe(sub ColorsSubscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Load reads the persisted collection (repairing missing numbers, see the
// store) and replaces the mirror.
func (s *ColorService) Load() ([]model.ColorRecord, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	colors, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	s.setMirror(colors)
	return s.Colors(), nil
}

// Reload re-reads storage and notifies subscribers. Used when another
// process signals customColorsUpdated or the colors file changed externally.
func (s *ColorService) Reload() ([]model.ColorRecord, error) {
	colors, err := s.Load()
	if err != nil {
		return nil, err
	}
	s.notify(colors)
	return colors, nil
}

// SeedDefaults populates the default palette when no colors file exists yet.
// A present-but-empty file is respected and left empty.
func (s *ColorService) SeedDefaults() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.store.Exists() {
		return nil
	}

	colors := make([]model.ColorRecord, 0, len(model.DefaultPalette))
	for i, dc := range model.DefaultPalette {
		colors = append(colors, model.ColorRecord{
			ID:          id.Generate(id.Color),
			ColorNumber: i + 1,
			Color:       dc.Color,
			NameKey:     dc.NameKey,
		})
	}

	if err := s.store.Save(colors); err != nil {
		return err
	}
	s.setMirror(colors)
	return nil
}

// Add appends a new color. The value is canonicalized to uppercase hex at
// this single entry point, so duplicate checks hold no matter which surface
// the add came from. Fails with CapacityExceeded at the collection cap and
// with DuplicateColor on a case-insensitive value collision; on failure the
// collection is left untouched.
func (s *ColorService) Add(value string) (*model.ColorRecord, []model.ColorRecord, error) {
	hex, err := model.NormalizeHex(value)
	if err != nil {
		return nil, nil, hilerr.InvalidField("color", err.Error())
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	colors := s.mirrorCopy()
	if len(colors) >= model.MaxCustomColors {
		return nil, nil, hilerr.CapacityExceeded(model.MaxCustomColors)
	}
	if model.ContainsColor(colors, hex) {
		return nil, nil, hilerr.DuplicateColor(hex)
	}

	record := model.ColorRecord{
		ID:          id.Generate(id.Color),
		ColorNumber: len(colors) + 1,
		Color:       hex,
		NameKey:     NameKeyCustom,
	}
	colors = append(colors, record)

	if err := s.store.Save(colors); err != nil {
		return nil, nil, err
	}
	s.setMirror(colors)

	updated := s.Colors()
	s.notify(updated)
	return &record, updated, nil
}

// Delete removes the color with the given id and renumbers the survivors
// 1..N by their resulting order.
func (s *ColorService) Delete(colorID string) ([]model.ColorRecord, error) {
	if colorID == "" {
		return nil, hilerr.MissingID("colorId")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	colors := s.mirrorCopy()
	idx := -1
	for i := range colors {
		if colors[i].ID == colorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, hilerr.ColorNotFound(colorID)
	}

	colors = append(colors[:idx], colors[idx+1:]...)
	model.Renumber(colors)

	if err := s.store.Save(colors); err != nil {
		return nil, err
	}
	s.setMirror(colors)

	updated := s.Colors()
	s.notify(updated)
	return updated, nil
}

// Clear empties the collection. Returns false without touching storage when
// there is nothing to clear.
func (s *ColorService) Clear() (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if len(s.mirrorCopy()) == 0 {
		return false, nil
	}

	empty := []model.ColorRecord{}
	if err := s.store.Save(empty); err != nil {
		return false, err
	}
	s.setMirror(empty)

	s.notify(s.Colors())
	return true, nil
}

// Colors returns a copy of the current mirror.
func (s *ColorService) Colors() []model.ColorRecord {
	s.mirrorMu.RLock()
	defer s.mirrorMu.RUnlock()

	out := make([]model.ColorRecord, len(s.mirror))
	copy(out, s.mirror)
	return out
}

// ColorByID looks up a color in the mirror. Returns nil if absent.
func (s *ColorService) ColorByID(colorID string) *model.ColorRecord {
	s.mirrorMu.RLock()
	defer s.mirrorMu.RUnlock()

	if c := model.FindColorByID(s.mirror, colorID); c != nil {
		record := *c
		return &record
	}
	return nil
}

// ColorAt returns the color at a 0-based position in the mirror, or false
// when the collection has fewer entries.
func (s *ColorService) ColorAt(pos int) (*model.ColorRecord, bool) {
	s.mirrorMu.RLock()
	defer s.mirrorMu.RUnlock()

	if pos < 0 || pos >= len(s.mirror) {
		return nil, false
	}
	record := s.mirror[pos]
	return &record, true
}

func (s *ColorService) setMirror(colors []model.ColorRecord) {
	s.mirrorMu.Lock()
	s.mirror = colors
	s.mirrorMu.Unlock()
}

func (s *ColorService) mirrorCopy() []model.ColorRecord {
	return s.Colors()
}

// notify runs post-commit subscribers. Fire-and-forget relative to the
// mutation's response: outcomes are not collected.
func (s *ColorService) notify(colors []model.ColorRecord) {
	s.subMu.RLock()
	subs := make([]ColorsSubscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.ColorsChanged(colors)
	}
}
