package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Label is the field's leading content: either plain text or an explicit
// canvas object. The variant is resolved at construction, not at render time.
type Label struct {
	text   string
	object fyne.CanvasObject
}

// LabelText builds a label from plain text.
func LabelText(text string) Label {
	return Label{text: text}
}

// LabelObject builds a label from an explicit canvas object the caller owns.
func LabelObject(object fyne.CanvasObject) Label {
	return Label{object: object}
}

func (l Label) canvasObject() fyne.CanvasObject {
	if l.object != nil {
		return l.object
	}
	label := widget.NewLabel(l.text)
	label.Truncation = fyne.TextTruncateEllipsis
	return label
}
