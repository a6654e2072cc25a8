package api

import (
	"path/filepath"
	"testing"
)

func TestClassifyDataChange(t *testing.T) {
	tests := []struct {
		name string
		path string
		want DataChangeKind
	}{
		{"colors file", "/data/hilite/colors.toml", DataChangeColors},
		{"shortcuts file", "/data/hilite/shortcuts.toml", DataChangeShortcuts},
		{"settings file", "/data/hilite/settings.toml", DataChangeUnknown},
		{"menu projection", "/data/hilite/menu.json", DataChangeUnknown},
		{"random file", "/data/hilite/notes.txt", DataChangeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyDataChange(tt.path)
			if got != tt.want {
				t.Errorf("classifyDataChange(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyDataChangeCrossPlatform(t *testing.T) {
	path := filepath.Join("data", "hilite", "colors.toml")
	if got := classifyDataChange(path); got != DataChangeColors {
		t.Errorf("classifyDataChange(%q) = %q, want %q", path, got, DataChangeColors)
	}
}

type mockDataSubscriber struct {
	kinds []DataChangeKind
}

func (m *mockDataSubscriber) OnDataChange(kind DataChangeKind) {
	m.kinds = append(m.kinds, kind)
}

func TestDataWatcherSubscribe(t *testing.T) {
	dw := &DataWatcher{}

	sub1 := &mockDataSubscriber{}
	sub2 := &mockDataSubscriber{}

	dw.Subscribe(sub1)
	dw.Subscribe(sub2)

	if len(dw.subscribers) != 2 {
		t.Errorf("Expected 2 subscribers, got %d", len(dw.subscribers))
	}
}

func TestDataWatcherStoppedPreventsRestart(t *testing.T) {
	dw := &DataWatcher{stopped: true}

	if err := dw.Start(); err == nil {
		t.Error("Expected error when starting stopped watcher")
	}
}

func TestDataWatcherEmitAfterStopDropped(t *testing.T) {
	sub := &mockDataSubscriber{}
	dw := &DataWatcher{stopped: true}
	dw.Subscribe(sub)

	dw.emitChange("/data/hilite/colors.toml")

	if len(sub.kinds) != 0 {
		t.Errorf("Emit after stop should be dropped, got %v", sub.kinds)
	}
}
