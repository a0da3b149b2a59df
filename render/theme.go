package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FieldTheme tightens input styling for forms built out of field rows.
type FieldTheme struct {
	fyne.Theme
}

func (t FieldTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.Theme.Size(name)
	}
}

func (t FieldTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x3d, G: 0x9f, B: 0xff, A: 0xff}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
		}
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case theme.ColorNamePlaceHolder:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		}
		return color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
	default:
		return t.Theme.Color(name, variant)
	}
}
