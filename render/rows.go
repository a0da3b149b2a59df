package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// RowsCanvas shows a column of field rows, typically a filtered subset of all
// fields a form owns.
type RowsCanvas struct {
	Container *fyne.Container
}

// NewRowsCanvas initializes an empty rows container.
func NewRowsCanvas() *RowsCanvas {
	return &RowsCanvas{Container: container.NewVBox()}
}

// Render replaces the visible rows.
func (rc *RowsCanvas) Render(fields []*Field) {
	rc.Container.Objects = nil
	for _, field := range fields {
		rc.Container.Add(field.Container)
	}
	rc.Container.Refresh()
}
