// Package chartview embeds declarative chart specifications into Fyne
// containers and exposes a small signal surface per rendered chart: listeners
// observe interactive selections, and signals can be written back to drive
// highlighting. Chart internals stay behind the View interface so callers
// never depend on the concrete renderers.
package chartview

import (
	"fmt"
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/matthewchungkaishing/FIT3179/src/chartspec"
)

// SignalListener observes changes to a named signal. Listeners run
// synchronously on the event goroutine that changed the signal.
type SignalListener func(name string, value any)

// View is the handle to one embedded chart.
type View interface {
	// AddSignalListener registers fn for interactive changes to the named
	// signal. Programmatic Signal writes do not re-enter listeners.
	AddSignalListener(name string, fn SignalListener)
	// Signal sets a named signal value. Chainable; takes effect on Run.
	Signal(name string, value any) View
	// Run forces a render pass reflecting the current signal values.
	Run()
}

// EmbedOptions mirror the rendering options the page layer fixes for every
// chart: no chart-menu affordances and vector-style output.
type EmbedOptions struct {
	Actions  bool
	Renderer string // "svg" or "canvas"; rendering here is raster either way
}

// EmbedResult is returned once a chart is mounted.
type EmbedResult struct {
	View View
}

type chartView struct {
	spec *chartspec.Spec
	data *dataset

	img     *canvas.Image
	content fyne.CanvasObject

	signalName   string // "" when the spec declares no selection
	selectionKey string
	signals      map[string]any
	listeners    map[string][]SignalListener
}

// Embed loads the spec at specPath, renders the chart, and mounts it into
// parent. The returned view is live: signals set on it followed by Run()
// re-render in place.
func Embed(parent *fyne.Container, specPath string, opts EmbedOptions) (*EmbedResult, error) {
	switch opts.Renderer {
	case "", "svg", "canvas":
	default:
		return nil, fmt.Errorf("embed %s: unknown renderer %q", specPath, opts.Renderer)
	}
	spec, err := chartspec.Load(specPath)
	if err != nil {
		return nil, err
	}
	data, err := loadDataset(spec.DataPath())
	if err != nil {
		return nil, fmt.Errorf("embed %s: %w", specPath, err)
	}
	v := &chartView{
		spec:         spec,
		data:         data,
		signalName:   spec.SignalName(),
		selectionKey: spec.SelectionKey(),
		signals:      map[string]any{},
		listeners:    map[string][]SignalListener{},
	}
	if v.signalName != "" && spec.Kind == chartspec.KindChoropleth {
		// maps start with an empty selection
		v.signals[v.signalName] = Selection(v.selectionKey)
	}
	v.img = canvas.NewImageFromImage(v.render())
	v.img.FillMode = canvas.ImageFillContain
	v.img.SetMinSize(fyne.NewSize(float32(spec.Width), float32(spec.Height)))
	if spec.Kind == chartspec.KindChoropleth {
		v.content = newRegionOverlayStack(v)
	} else {
		v.content = v.img
	}
	if parent != nil {
		parent.Add(v.content)
		parent.Refresh()
	}
	return &EmbedResult{View: v}, nil
}

// CanvasObject exposes the mounted object, mainly for tests and for callers
// embedding without a parent container.
func (v *chartView) CanvasObject() fyne.CanvasObject { return v.content }

func (v *chartView) AddSignalListener(name string, fn SignalListener) {
	if fn == nil {
		return
	}
	v.listeners[name] = append(v.listeners[name], fn)
}

func (v *chartView) Signal(name string, value any) View {
	v.signals[name] = value
	return v
}

func (v *chartView) Run() {
	v.img.Image = v.render()
	v.img.Refresh()
	if v.content != nil && v.content != v.img {
		v.content.Refresh()
	}
}

// renderSize picks the raster size for the next render pass: the spec size
// until Fyne has laid the image out larger, then the laid-out size, so the
// raster stays crisp as the window grows.
func (v *chartView) renderSize() (int, int) {
	w, h := v.spec.Width, v.spec.Height
	if v.img != nil {
		if sz := v.img.Size(); int(sz.Width) > w && int(sz.Height) > h {
			w, h = int(sz.Width), int(sz.Height)
		}
	}
	return w, h
}

func (v *chartView) render() image.Image {
	switch v.spec.Kind {
	case chartspec.KindChoropleth:
		return v.renderChoropleth()
	case chartspec.KindLine:
		return v.renderLineChart()
	case chartspec.KindScatter:
		return v.renderScatterChart()
	}
	return blank(v.spec.Width, v.spec.Height)
}

// handleTap is the interactive path: the overlay resolved a tap to a region
// code ("" when the tap missed every tile). Tapping the already-selected
// region toggles it off.
func (v *chartView) handleTap(code string) {
	if v.signalName == "" {
		return
	}
	current := SelectedRegions(v.selectionKey, v.signals[v.signalName])
	var next map[string]any
	if code == "" || (len(current) > 0 && current[0] == code && v.spec.Selection.Toggle) {
		next = Selection(v.selectionKey)
	} else {
		next = Selection(v.selectionKey, code)
	}
	v.signals[v.signalName] = next
	v.Run()
	for _, fn := range v.listeners[v.signalName] {
		fn(v.signalName, next)
	}
}
