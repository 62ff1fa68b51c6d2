package chartspec

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSpec(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return p
}

func TestLoadChoroplethSpec(t *testing.T) {
	base := t.TempDir()
	specDir := filepath.Join(base, "specs")
	if err := os.MkdirAll(specDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := writeSpec(t, specDir, "map.json", `{
		"title": "UV",
		"kind": "choropleth",
		"width": 500, "height": 400,
		"data": {"path": "data/uv.csv"},
		"encoding": {"key": {"field": "state_code"}, "color": {"field": "annual_mean_uvi"}},
		"selection": {"signal": "stateSel", "field": "properties.state_code", "toggle": true}
	}`)
	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Kind != KindChoropleth || s.Title != "UV" {
		t.Fatalf("unexpected spec: %+v", s)
	}
	if got, want := s.DataPath(), filepath.Join(base, "data", "uv.csv"); got != want {
		t.Fatalf("DataPath = %q, want %q", got, want)
	}
	if s.SignalName() != "stateSel" {
		t.Fatalf("SignalName = %q", s.SignalName())
	}
	if got := s.SelectionKey(); got != `properties\.state_code` {
		t.Fatalf("SelectionKey = %q, want escaped path", got)
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	p := writeSpec(t, dir, "bad.json", `{"kind": "sankey", "data": {"path": "x.csv"}}`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestLoadDefaultsAndNoSelection(t *testing.T) {
	dir := t.TempDir()
	p := writeSpec(t, dir, "line.json", `{"kind": "line", "data": {"path": "clim.csv"}}`)
	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Width != 800 || s.Height != 320 {
		t.Fatalf("expected default size, got %dx%d", s.Width, s.Height)
	}
	if s.SignalName() != "" || s.SelectionKey() != "" {
		t.Fatalf("expected empty selection accessors")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
