// Package chartspec loads the declarative chart-specification documents the
// viewer embeds. The documents are authored alongside the datasets; this layer
// treats them as configuration and does not validate encodings beyond shape.
package chartspec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Chart kinds understood by the chartview renderers.
const (
	KindChoropleth = "choropleth"
	KindLine       = "line"
	KindScatter    = "scatter"
)

// Field names one column of the backing dataset.
type Field struct {
	Field string `json:"field"`
	Title string `json:"title,omitempty"`
}

// Scale carries the color-scale hints for choropleth specs.
type Scale struct {
	Scheme    string  `json:"scheme,omitempty"`
	DomainMin float64 `json:"domainMin,omitempty"`
	DomainMax float64 `json:"domainMax,omitempty"`
}

// Selection declares the named signal a chart exposes for its selection,
// and the datum property the selection captures.
type Selection struct {
	Signal string `json:"signal"`
	Field  string `json:"field"`
	Toggle bool   `json:"toggle,omitempty"`
}

// Spec is one chart-specification document.
type Spec struct {
	Title     string           `json:"title"`
	Kind      string           `json:"kind"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Data      Data             `json:"data"`
	Encoding  map[string]Field `json:"encoding"`
	Scale     *Scale           `json:"scale,omitempty"`
	Selection *Selection       `json:"selection,omitempty"`

	// root that relative data paths resolve against: the parent of the
	// directory the spec was loaded from.
	dir string
}

// Data references the backing dataset by path, relative to the directory
// containing the spec file's directory (specs/ and data/ are siblings in the
// repo layout, so a spec under specs/ reaches its dataset as "data/x.csv").
type Data struct {
	Path string `json:"path"`
}

// Load reads and decodes a spec document.
func Load(path string) (*Spec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart spec: %w", err)
	}
	var s Spec
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse chart spec %s: %w", path, err)
	}
	switch s.Kind {
	case KindChoropleth, KindLine, KindScatter:
	default:
		return nil, fmt.Errorf("chart spec %s: unknown kind %q", path, s.Kind)
	}
	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 320
	}
	s.dir = filepath.Dir(filepath.Dir(path))
	return &s, nil
}

// DataPath resolves the dataset location against the spec's base directory.
func (s *Spec) DataPath() string {
	if s.Data.Path == "" || filepath.IsAbs(s.Data.Path) {
		return s.Data.Path
	}
	return filepath.Join(s.dir, filepath.FromSlash(s.Data.Path))
}

// SignalName returns the declared selection signal, or "" when the spec
// exposes none.
func (s *Spec) SignalName() string {
	if s.Selection == nil {
		return ""
	}
	return s.Selection.Signal
}

// SelectionKey returns the escaped datum-property path used as the key in
// selection signal payloads. Dots inside the property path are meaningful to
// the signal-path syntax, so they are escaped in payload keys.
func (s *Spec) SelectionKey() string {
	if s.Selection == nil {
		return ""
	}
	return strings.ReplaceAll(s.Selection.Field, ".", `\.`)
}
