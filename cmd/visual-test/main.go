package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/hamidzr/editfield"
	"github.com/hamidzr/editfield/render"
)

// Manual check for focus-driven commit behavior. Tab between the two fields,
// edit, blur, and watch the commit log on stdout. Escape should discard the
// draft on the first field and pass through on the second.
func main() {
	fmt.Println("Visual test: commit-on-blur fields")
	fmt.Println("  - Tab or click to move focus; blurring an edited field commits it")
	fmt.Println("  - Escape discards the draft in 'first' (discard enabled)")
	fmt.Println("  - Escape passes through in 'second' (discard disabled)")
	fmt.Println("")

	a := app.New()
	a.Settings().SetTheme(render.FieldTheme{Theme: theme.DefaultTheme()})
	w := a.NewWindow("editfield visual test")

	group := editfield.NewFocusGroup[string]()

	first := render.NewTextField("first", "alpha", func(v string) {
		fmt.Printf("commit first: %q\n", v)
	}).BindFocus(group.Bind("first"))

	second := render.NewTextField("second", "beta", func(v string) {
		fmt.Printf("commit second: %q\n", v)
	}).DiscardOnCancel(false).BindFocus(group.Bind("second"))

	w.SetContent(container.NewVBox(first.Container, second.Container))
	w.Resize(fyne.NewSize(480, 160))
	w.Show()

	group.Focus("first")
	a.Run()
}
