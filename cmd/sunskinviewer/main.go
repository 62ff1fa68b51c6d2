package main

import (
	"flag"
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/matthewchungkaishing/FIT3179/src/chartview"
	"github.com/matthewchungkaishing/FIT3179/src/regiondata"
)

// Context tags for the state card: which metric domain the panel shows.
const (
	contextUV       = "uv"
	contextMelanoma = "melanoma"
)

// Signal contract with the chart specifications under specs/.
const (
	uvMapSignal    = "stateSel"
	melMapSignal   = "melanomaSel"
	scatterSignal  = "selectedState"
	regionCodePath = `properties\.state_code`
)

const defaultRegion = "NSW"

type viewerState struct {
	app     fyne.App
	window  fyne.Window
	specDir string

	// shared selection state, mutated only by the map listeners
	selectedRegion string // "" when nothing is selected
	activeContext  string

	card *stateCard

	uvMapView   chartview.View
	linesView   chartview.View
	melMapView  chartview.View
	scatterView chartview.View
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var specDir string
	flag.StringVar(&specDir, "specs", "specs", "Path to the chart specification directory")
	flag.Parse()

	a := app.NewWithID("com.sunskin.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Sun & Skin: UV + Melanoma")
	w.Resize(fyne.NewSize(1220, 860))

	state := &viewerState{
		app:            a,
		window:         w,
		specDir:        specDir,
		selectedRegion: defaultRegion,
		activeContext:  contextUV,
	}
	loadPrefs(state)

	state.card = newStateCard()
	state.card.Render(state.selectedRegion, state.activeContext)

	uvBox := container.NewVBox()
	linesBox := container.NewVBox()
	melBox := container.NewVBox()
	scatterBox := container.NewVBox()

	chartsColumn := container.NewVBox(
		container.NewHBox(uvBox, melBox),
		widget.NewSeparator(),
		linesBox,
		widget.NewSeparator(),
		scatterBox,
	)
	chartsScroll := container.NewVScroll(chartsColumn)
	chartsScroll.SetMinSize(fyne.NewSize(940, 720))

	w.SetContent(container.NewBorder(nil, nil, state.card.box, nil, chartsScroll))

	bootstrapCharts(state, uvBox, linesBox, melBox, scatterBox)

	// Redraw charts on window resize so they scale with width
	done := make(chan struct{})
	w.SetOnClosed(func() {
		savePrefs(state)
		close(done)
	})
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { runMountedViews(state) })
					}
				}
			}
		}()
	}
	w.ShowAndRun()
}

// runMountedViews re-renders every mounted chart at its current laid-out size.
func runMountedViews(s *viewerState) {
	for _, v := range []chartview.View{s.uvMapView, s.linesView, s.melMapView, s.scatterView} {
		if v != nil {
			v.Run()
		}
	}
}

// bootstrapCharts embeds the four chart specifications in order (UV map,
// seasonality lines, melanoma map, scatter) and wires the map listeners once
// their views exist. A failed embed is logged and skipped; the rest of the
// dashboard keeps working with whatever mounted.
func bootstrapCharts(s *viewerState, uvBox, linesBox, melBox, scatterBox *fyne.Container) {
	opts := chartview.EmbedOptions{Actions: false, Renderer: "svg"}

	if res, err := chartview.Embed(uvBox, filepath.Join(s.specDir, "uv_map.json"), opts); err != nil {
		fmt.Printf("[viewer] embed uv map failed: %v\n", err)
	} else {
		s.uvMapView = res.View
		s.uvMapView.AddSignalListener(uvMapSignal, s.mapSelectionListener(contextUV))
	}

	if res, err := chartview.Embed(linesBox, filepath.Join(s.specDir, "uv_seasonality.json"), opts); err != nil {
		fmt.Printf("[viewer] embed seasonality failed: %v\n", err)
	} else {
		s.linesView = res.View
	}

	if res, err := chartview.Embed(melBox, filepath.Join(s.specDir, "melanoma_map.json"), opts); err != nil {
		fmt.Printf("[viewer] embed melanoma map failed: %v\n", err)
	} else {
		s.melMapView = res.View
		s.melMapView.AddSignalListener(melMapSignal, s.mapSelectionListener(contextMelanoma))
	}

	if res, err := chartview.Embed(scatterBox, filepath.Join(s.specDir, "uv_melanoma_scatter.json"), opts); err != nil {
		fmt.Printf("[viewer] embed scatter failed: %v\n", err)
	} else {
		s.scatterView = res.View
		// reflect any pre-existing selection instead of starting blank
		pushScatterSelection(s)
	}
}

// mapSelectionListener returns the signal listener for one map. The two
// listeners share the same state and downstream propagation and differ only
// in the context tag they stamp.
func (s *viewerState) mapSelectionListener(context string) chartview.SignalListener {
	return func(name string, value any) {
		codes := chartview.SelectedRegions(regionCodePath, value)
		if len(codes) > 0 {
			s.selectedRegion = codes[0]
		} else {
			s.selectedRegion = ""
		}
		s.activeContext = context
		s.card.Render(s.selectedRegion, s.activeContext)
		pushScatterSelection(s)
		savePrefs(s)
	}
}

// pushScatterSelection mirrors the shared selection into the scatter chart's
// signal, when the scatter view is mounted.
func pushScatterSelection(s *viewerState) {
	if s.scatterView == nil {
		return
	}
	if s.selectedRegion != "" {
		s.scatterView.Signal(scatterSignal, s.selectedRegion).Run()
	} else {
		s.scatterView.Signal(scatterSignal, nil).Run()
	}
}

func savePrefs(s *viewerState) {
	if s == nil || s.app == nil {
		return
	}
	p := s.app.Preferences()
	p.SetString("selectedRegion", s.selectedRegion)
	p.SetString("activeContext", s.activeContext)
}

func loadPrefs(s *viewerState) {
	if s == nil || s.app == nil {
		return
	}
	p := s.app.Preferences()
	if v := p.StringWithFallback("activeContext", s.activeContext); v == contextUV || v == contextMelanoma {
		s.activeContext = v
	}
	code := p.StringWithFallback("selectedRegion", s.selectedRegion)
	if code == "" {
		s.selectedRegion = ""
		return
	}
	if _, ok := regiondata.UVByCode[code]; ok {
		s.selectedRegion = code
	}
}
