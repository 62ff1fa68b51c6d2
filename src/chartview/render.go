package chartview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    5,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 250, G: 250, B: 250, A: 255}), image.Point{}, draw.Src)
	return img
}

// renderToImage rasterizes a go-chart chart, falling back to a blank canvas
// on render errors so the UI still visibly updates.
func renderToImage(ch chart.Chart, w, h int) image.Image {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[chartview] chart render error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[chartview] chart decode error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	return img
}

func monthTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 12)
	for m := 1; m <= 12; m++ {
		ticks = append(ticks, chart.Tick{Value: float64(m), Label: time.Month(m).String()[:3]})
	}
	return ticks
}

// renderLineChart draws one series per detail-field value (capital city),
// x = month number, y = the encoded measure.
func (v *chartView) renderLineChart() image.Image {
	xField := v.spec.Encoding["x"].Field
	yField := v.spec.Encoding["y"].Field
	detailField := v.spec.Encoding["detail"].Field
	w, h := v.renderSize()

	type point struct{ x, y float64 }
	grouped := map[string][]point{}
	for i := 0; i < v.data.len(); i++ {
		x, okX := v.data.float(i, xField)
		y, okY := v.data.float(i, yField)
		if !okX || !okY {
			continue
		}
		key := v.data.str(i, detailField)
		grouped[key] = append(grouped[key], point{x, y})
	}
	if len(grouped) == 0 {
		return blank(w, h)
	}
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	series := make([]chart.Series, 0, len(names))
	for i, name := range names {
		pts := grouped[name]
		sort.Slice(pts, func(a, b int) bool { return pts[a].x < pts[b].x })
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, p := range pts {
			xs[j] = p.x
			ys[j] = p.y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(chart.GetDefaultColor(i)),
		})
	}

	ch := chart.Chart{
		Title:      v.spec.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: v.spec.Encoding["x"].Title, Ticks: monthTicks()},
		YAxis:      chart.YAxis{Name: v.spec.Encoding["y"].Title},
		Series:     series,
		Width:      w,
		Height:     h,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return renderToImage(ch, w, h)
}

// selectedScatterCode reads the scatter's selection signal. The signal holds
// the bare region code (or nil when cleared).
func (v *chartView) selectedScatterCode() string {
	if v.signalName == "" {
		return ""
	}
	if s, ok := v.signals[v.signalName].(string); ok {
		return s
	}
	return ""
}

// renderScatterChart draws one point per region and, when the selection
// signal carries a code, emphasizes and labels that region's point.
func (v *chartView) renderScatterChart() image.Image {
	xField := v.spec.Encoding["x"].Field
	yField := v.spec.Encoding["y"].Field
	keyField := v.spec.Encoding["key"].Field
	w, h := v.renderSize()

	xs := make([]float64, 0, v.data.len())
	ys := make([]float64, 0, v.data.len())
	selected := v.selectedScatterCode()
	var selX, selY float64
	haveSel := false
	for i := 0; i < v.data.len(); i++ {
		x, okX := v.data.float(i, xField)
		y, okY := v.data.float(i, yField)
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
		if selected != "" && v.data.str(i, keyField) == selected {
			selX, selY = x, y
			haveSel = true
		}
	}
	if len(xs) == 0 {
		return blank(w, h)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "States",
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.ColorBlue),
		},
	}
	if haveSel {
		st := pointStyle(chart.ColorRed)
		st.DotWidth = 9
		series = append(series,
			chart.ContinuousSeries{
				Name:    selected,
				XValues: []float64{selX},
				YValues: []float64{selY},
				Style:   st,
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{XValue: selX, YValue: selY, Label: selected}},
				Style:       chart.Style{StrokeColor: chart.ColorRed, FontColor: drawing.ColorBlack},
			},
		)
	}

	ch := chart.Chart{
		Title:      v.spec.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: v.spec.Encoding["x"].Title},
		YAxis:      chart.YAxis{Name: v.spec.Encoding["y"].Title},
		Series:     series,
		Width:      w,
		Height:     h,
	}
	return renderToImage(ch, w, h)
}
