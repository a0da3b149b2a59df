package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// tapArea is a transparent tappable surface. Stacked over a field's label it
// lets a click anywhere on the row focus the entry.
type tapArea struct {
	widget.BaseWidget
	onTap func()
}

func newTapArea(onTap func()) *tapArea {
	area := &tapArea{onTap: onTap}
	area.ExtendBaseWidget(area)
	return area
}

func (a *tapArea) Tapped(_ *fyne.PointEvent) {
	if a.onTap != nil {
		a.onTap()
	}
}

func (a *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return &tapAreaRenderer{rect: canvas.NewRectangle(color.Transparent)}
}

func stackWithTap(object fyne.CanvasObject, tap *tapArea) fyne.CanvasObject {
	return container.NewStack(object, tap)
}

type tapAreaRenderer struct {
	rect *canvas.Rectangle
}

func (r *tapAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *tapAreaRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *tapAreaRenderer) Refresh() {
	canvas.Refresh(r.rect)
}

func (r *tapAreaRenderer) Destroy() {}

func (r *tapAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}
