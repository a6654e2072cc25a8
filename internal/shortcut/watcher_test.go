package shortcut

import (
	"errors"
	"testing"

	"github.com/amterp/hilite/internal/model"
)

// fakeShortcutStore serves a settable snapshot.
type fakeShortcutStore struct {
	bindings model.ShortcutSnapshot
	err      error
}

func (s *fakeShortcutStore) Load() (model.ShortcutSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bindings.Clone(), nil
}

func (s *fakeShortcutStore) Save(snapshot model.ShortcutSnapshot) error {
	s.bindings = snapshot.Clone()
	return nil
}

func TestWatcherPrimeIsNotDrift(t *testing.T) {
	store := &fakeShortcutStore{bindings: model.ShortcutSnapshot{"highlight-yellow": "Ctrl+1"}}

	fired := 0
	w := NewWatcher(store, func(model.ShortcutSnapshot) { fired++ })

	if err := w.Prime(); err != nil {
		t.Fatalf("Prime failed: %v", err)
	}
	if fired != 0 {
		t.Errorf("Prime must not fire onDrift, fired %d times", fired)
	}
	if w.Snapshot()["highlight-yellow"] != "Ctrl+1" {
		t.Errorf("Snapshot = %v", w.Snapshot())
	}
}

func TestWatcherReconcileNoChange(t *testing.T) {
	store := &fakeShortcutStore{bindings: model.ShortcutSnapshot{"highlight-yellow": "Ctrl+1"}}

	fired := 0
	w := NewWatcher(store, func(model.ShortcutSnapshot) { fired++ })
	if err := w.Prime(); err != nil {
		t.Fatal(err)
	}

	drifted, err := w.Reconcile()
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if drifted || fired != 0 {
		t.Errorf("No change should not drift (drifted=%v, fired=%d)", drifted, fired)
	}
}

func TestWatcherDetectsDrift(t *testing.T) {
	store := &fakeShortcutStore{bindings: model.ShortcutSnapshot{"highlight-yellow": "Ctrl+1"}}

	var received model.ShortcutSnapshot
	fired := 0
	w := NewWatcher(store, func(s model.ShortcutSnapshot) {
		fired++
		received = s
	})
	if err := w.Prime(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		bindings model.ShortcutSnapshot
	}{
		{"changed value", model.ShortcutSnapshot{"highlight-yellow": "Ctrl+9"}},
		{"binding appeared", model.ShortcutSnapshot{"highlight-yellow": "Ctrl+9", "custom-color-1": "Ctrl+6"}},
		{"binding disappeared", model.ShortcutSnapshot{"custom-color-1": "Ctrl+6"}},
	}
	for i, tc := range cases {
		store.bindings = tc.bindings

		drifted, err := w.Reconcile()
		if err != nil {
			t.Fatalf("%s: Reconcile failed: %v", tc.name, err)
		}
		if !drifted {
			t.Errorf("%s: expected drift", tc.name)
		}
		if fired != i+1 {
			t.Errorf("%s: onDrift fired %d times, want %d", tc.name, fired, i+1)
		}
		if !received.Equal(tc.bindings) {
			t.Errorf("%s: onDrift received %v, want %v", tc.name, received, tc.bindings)
		}

		// The snapshot was replaced; a second reconcile is quiet
		drifted, err = w.Reconcile()
		if err != nil {
			t.Fatal(err)
		}
		if drifted {
			t.Errorf("%s: repeat reconcile should not drift", tc.name)
		}
	}
}

func TestWatcherIgnoresUnrelatedBindings(t *testing.T) {
	store := &fakeShortcutStore{bindings: model.ShortcutSnapshot{"highlight-yellow": "Ctrl+1"}}

	fired := 0
	w := NewWatcher(store, func(model.ShortcutSnapshot) { fired++ })
	if err := w.Prime(); err != nil {
		t.Fatal(err)
	}

	// Unrelated command and an empty-valued binding never count as drift
	store.bindings = model.ShortcutSnapshot{
		"highlight-yellow": "Ctrl+1",
		"open-options":     "Ctrl+O",
		"highlight-cyan":   "",
	}

	drifted, err := w.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if drifted || fired != 0 {
		t.Errorf("Unrelated bindings caused drift (drifted=%v, fired=%d)", drifted, fired)
	}
}

func TestWatcherReconcileError(t *testing.T) {
	store := &fakeShortcutStore{bindings: model.ShortcutSnapshot{"highlight-yellow": "Ctrl+1"}}

	w := NewWatcher(store, nil)
	if err := w.Prime(); err != nil {
		t.Fatal(err)
	}

	store.err = errors.New("read failed")
	if _, err := w.Reconcile(); err == nil {
		t.Error("Reconcile should surface store errors")
	}

	// Snapshot must be untouched after a failed fetch
	store.err = nil
	drifted, err := w.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if drifted {
		t.Error("Failed reconcile must not replace the snapshot")
	}
}
