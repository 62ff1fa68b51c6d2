package chartview

import (
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// regionOverlay sits on top of a choropleth image and translates taps into
// region selections. The image uses ImageFillContain, so widget coordinates
// must be mapped back through the contain rect before hit testing.
type regionOverlay struct {
	widget.BaseWidget
	view *chartView
}

func newRegionOverlayStack(v *chartView) fyne.CanvasObject {
	o := &regionOverlay{view: v}
	o.ExtendBaseWidget(o)
	return container.NewStack(v.img, o)
}

func (o *regionOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background keeps the full area tappable
	bg := canvas.NewRectangle(color.RGBA{})
	return widget.NewSimpleRenderer(bg)
}

func (o *regionOverlay) Tapped(ev *fyne.PointEvent) {
	if o.view == nil || o.view.img == nil || o.view.img.Image == nil {
		return
	}
	b := o.view.img.Image.Bounds()
	imgW, imgH := float32(b.Dx()), float32(b.Dy())
	sz := o.Size()
	drawX, drawY, _, _, scale := containRect(imgW, imgH, sz.Width, sz.Height)
	if scale <= 0 {
		return
	}
	ix := int((ev.Position.X - drawX) / scale)
	iy := int((ev.Position.Y - drawY) / scale)
	code := ""
	if ix >= 0 && iy >= 0 && ix < b.Dx() && iy < b.Dy() {
		code = regionAt(ix, iy, b.Dx(), b.Dy())
	}
	o.view.handleTap(code)
}

// containRect computes where an imgW x imgH image is drawn inside a
// viewW x viewH box under contain scaling, plus the applied scale factor.
func containRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}
