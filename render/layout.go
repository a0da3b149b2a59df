package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// defaultLabelWidth is the fixed width given to a field row's label column.
const defaultLabelWidth float32 = 120

// RowLayout places a fixed-width label on the left and gives the remaining
// width to the entry. It is designed specifically for two objects.
type RowLayout struct {
	labelWidth float32
}

// NewRowLayout creates a RowLayout with the given label column width.
func NewRowLayout(labelWidth float32) *RowLayout {
	return &RowLayout{labelWidth: labelWidth}
}

// Layout positions the label and entry within the row.
func (l *RowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	label, entry := objects[0], objects[1]

	label.Resize(fyne.NewSize(l.labelWidth, size.Height))
	label.Move(fyne.NewPos(0, 0))

	entry.Resize(fyne.NewSize(size.Width-l.labelWidth, size.Height))
	entry.Move(fyne.NewPos(l.labelWidth, 0))
}

// MinSize reserves the label column plus the entry's own minimum.
func (l *RowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minHeight float32
	var entryWidth float32
	for i, o := range objects {
		min := o.MinSize()
		if min.Height > minHeight {
			minHeight = min.Height
		}
		if i == 1 {
			entryWidth = min.Width
		}
	}
	return fyne.NewSize(l.labelWidth+entryWidth, minHeight)
}

// NewFieldRow lays a label and an entry out as one field row.
func NewFieldRow(label, entry fyne.CanvasObject) *fyne.Container {
	return container.New(NewRowLayout(defaultLabelWidth), label, entry)
}
