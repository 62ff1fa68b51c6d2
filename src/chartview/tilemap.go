package chartview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// The choropleths draw a tile cartogram: one square per state/territory,
// arranged on a coarse grid that keeps neighbours roughly where the real map
// has them. Hit testing reuses the same grid.
type tileCell struct {
	code     string
	col, row int
}

var tileLayout = []tileCell{
	{"NT", 1, 0},
	{"QLD", 2, 0},
	{"WA", 0, 1},
	{"SA", 1, 1},
	{"NSW", 2, 1},
	{"ACT", 3, 1},
	{"VIC", 2, 2},
	{"TAS", 2, 3},
}

const (
	tileGridCols = 4
	tileGridRows = 4
	tileTitlePad = 26
	tileGap      = 6
)

// tileGeometry computes the square size and origin for the grid inside a
// canvas of the given dimensions, leaving room for the title strip.
func tileGeometry(w, h int) (size, originX, originY int) {
	availW := w - tileGap*(tileGridCols+1)
	availH := h - tileTitlePad - tileGap*(tileGridRows+1)
	size = availW / tileGridCols
	if s := availH / tileGridRows; s < size {
		size = s
	}
	if size < 8 {
		size = 8
	}
	gridW := size*tileGridCols + tileGap*(tileGridCols-1)
	gridH := size*tileGridRows + tileGap*(tileGridRows-1)
	originX = (w - gridW) / 2
	originY = tileTitlePad + (h-tileTitlePad-gridH)/2
	return size, originX, originY
}

func tileRect(cell tileCell, size, originX, originY int) image.Rectangle {
	x := originX + cell.col*(size+tileGap)
	y := originY + cell.row*(size+tileGap)
	return image.Rect(x, y, x+size, y+size)
}

// regionAt maps an image-space point to the state code of the tile under it,
// or "" when the point misses every tile.
func regionAt(x, y, w, h int) string {
	size, ox, oy := tileGeometry(w, h)
	pt := image.Pt(x, y)
	for _, cell := range tileLayout {
		if pt.In(tileRect(cell, size, ox, oy)) {
			return cell.code
		}
	}
	return ""
}

// Sequential color schemes for the choropleth fills.
var colorSchemes = map[string][2]color.RGBA{
	"oranges": {{R: 255, G: 245, B: 235, A: 255}, {R: 166, G: 54, B: 3, A: 255}},
	"reds":    {{R: 255, G: 245, B: 240, A: 255}, {R: 103, G: 0, B: 13, A: 255}},
}

func schemeColors(name string) (color.RGBA, color.RGBA) {
	if pair, ok := colorSchemes[name]; ok {
		return pair[0], pair[1]
	}
	pair := colorSchemes["oranges"]
	return pair[0], pair[1]
}

func lerpColor(lo, hi color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{R: lerp(lo.R, hi.R), G: lerp(lo.G, hi.G), B: lerp(lo.B, hi.B), A: 255}
}

// luminance decides whether tile text should be light or dark.
func luminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func drawString(dst *image.RGBA, x, y int, text string, col color.Color) {
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}

func stringWidth(text string) int {
	dr := &font.Drawer{Face: basicfont.Face7x13}
	return dr.MeasureString(text).Ceil()
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color, width int) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

// renderChoropleth draws the tile map for the view's dataset. The selected
// region, when present, gets an emphasized outline.
func (v *chartView) renderChoropleth() image.Image {
	w, h := v.renderSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 250, G: 250, B: 250, A: 255}), image.Point{}, draw.Src)
	drawString(img, 10, 17, v.spec.Title, color.RGBA{R: 20, G: 20, B: 20, A: 255})

	colorField := v.spec.Encoding["color"].Field
	keyField := v.spec.Encoding["key"].Field
	lo, hi := schemeColors("")
	domainMin, domainMax := 0.0, 1.0
	if v.spec.Scale != nil {
		lo, hi = schemeColors(v.spec.Scale.Scheme)
		domainMin, domainMax = v.spec.Scale.DomainMin, v.spec.Scale.DomainMax
	}
	if domainMax <= domainMin {
		if mn, mx, ok := v.data.floatRange(colorField); ok && mx > mn {
			domainMin, domainMax = mn, mx
		} else {
			domainMin, domainMax = 0, 1
		}
	}

	// index dataset rows by region code
	values := map[string]float64{}
	for i := 0; i < v.data.len(); i++ {
		code := v.data.str(i, keyField)
		if code == "" {
			continue
		}
		if val, ok := v.data.float(i, colorField); ok {
			values[code] = val
		}
	}

	selected := ""
	if codes := SelectedRegions(v.selectionKey, v.signals[v.signalName]); len(codes) > 0 {
		selected = codes[0]
	}

	size, ox, oy := tileGeometry(w, h)
	for _, cell := range tileLayout {
		r := tileRect(cell, size, ox, oy)
		val, have := values[cell.code]
		fill := color.RGBA{R: 225, G: 225, B: 225, A: 255} // no data
		if have {
			t := (val - domainMin) / (domainMax - domainMin)
			fill = lerpColor(lo, hi, t)
		}
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
		border := color.RGBA{R: 120, G: 120, B: 120, A: 255}
		strokeRect(img, r, border, 1)
		if cell.code == selected {
			strokeRect(img, r, color.RGBA{R: 20, G: 20, B: 20, A: 255}, 3)
		}
		textCol := color.RGBA{R: 25, G: 25, B: 25, A: 255}
		if luminance(fill) < 140 {
			textCol = color.RGBA{R: 245, G: 245, B: 245, A: 255}
		}
		cx := r.Min.X + (size-stringWidth(cell.code))/2
		drawString(img, cx, r.Min.Y+size/2-2, cell.code, textCol)
		if have {
			label := fmt.Sprintf("%.1f", val)
			lx := r.Min.X + (size-stringWidth(label))/2
			drawString(img, lx, r.Min.Y+size/2+13, label, textCol)
		}
	}
	return img
}
