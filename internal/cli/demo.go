package cli

import (
	"context"
	"runtime"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/frostbyte73/core"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"github.com/hamidzr/editfield"
	"github.com/hamidzr/editfield/constant"
	"github.com/hamidzr/editfield/internal/config"
	"github.com/hamidzr/editfield/model"
	"github.com/hamidzr/editfield/pkg/util"
	"github.com/hamidzr/editfield/render"
	"github.com/hamidzr/editfield/store"
)

// fieldRow pairs a field's descriptor with its widgets.
type fieldRow struct {
	spec  model.FieldSpec
	field *render.Field
}

// Demo is the GUI demo application.
type Demo struct {
	cfg    *config.Config
	app    fyne.App
	window fyne.Window

	group  *editfield.FocusGroup[string]
	rows   []*fieldRow
	canvas *render.RowsCanvas
	filter *render.FieldEntry
	status *widget.Label

	store  store.Store
	values store.Values
	done   core.Fuse
}

// defaultSpecs are the rows shown when no values were persisted yet.
func defaultSpecs() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: "name", Label: "Name", Value: "Ada Lovelace"},
		{Key: "email", Label: "Email", Value: "ada@example.com"},
		{Key: "company", Label: "Company", Value: "Analytical Engines"},
		{Key: "role", Label: "Role", Value: "Principal Engineer"},
		{Key: "notes", Label: "Notes", Value: ""},
	}
}

func newDemo(cfg *config.Config) (*Demo, error) {
	d := &Demo{
		cfg:   cfg,
		group: editfield.NewFocusGroup[string](),
		done:  core.NewFuse(),
	}

	if cfg.Persist {
		scope := []string{constant.ProjectName}
		if cfg.ProfileID != "" {
			scope = append(scope, cfg.ProfileID)
		}
		fileStore, err := store.NewFileStore[store.Values, store.Prefs](scope, "yaml")
		if err != nil {
			return nil, err
		}
		d.store = fileStore
		values, err := fileStore.LoadValues()
		if err != nil {
			logrus.Warn("ignoring unreadable persisted values: ", err)
		} else {
			d.values = values
		}
	}

	d.app = app.New()
	d.app.Settings().SetTheme(render.FieldTheme{Theme: theme.DefaultTheme()})
	d.window = d.app.NewWindow(cfg.Title)

	for _, spec := range defaultSpecs() {
		spec := spec
		if persisted, ok := d.values.Get(spec.Key); ok {
			spec.Value = persisted
		}
		row := &fieldRow{spec: spec}
		row.field = render.NewField(render.LabelText(spec.DisplayLabel()), spec.Value, func(v string) {
			d.handleCommit(row, v)
		}).
			DiscardOnCancel(cfg.DiscardOnCancel).
			ClearFocusKeyOnDiscard(cfg.ClearFocusOnDiscard).
			LabelWidth(cfg.LabelWidth).
			BindFocus(d.group.Bind(spec.Key))
		d.rows = append(d.rows, row)
	}

	d.canvas = render.NewRowsCanvas()
	d.filter = render.NewFieldEntry()
	d.filter.SetPlaceHolder("filter fields")
	d.filter.OnChanged = d.refreshRows
	d.status = widget.NewLabel("")
	d.refreshRows("")

	content := container.NewBorder(d.filter, d.status, nil, nil, d.canvas.Container)
	d.window.SetContent(content)
	size := fyne.NewSize(cfg.MinWidth, cfg.MinHeight)
	if d.store != nil {
		if prefs, err := d.store.LoadPrefs(); err == nil {
			if prefs.WindowWidth > size.Width {
				size.Width = prefs.WindowWidth
			}
			if prefs.WindowHeight > size.Height {
				size.Height = prefs.WindowHeight
			}
		}
	}
	d.window.Resize(size)
	d.window.SetOnClosed(d.shutdown)

	return d, nil
}

// refreshRows narrows the visible rows to those whose label matches query.
func (d *Demo) refreshRows(query string) {
	labels := make([]string, len(d.rows))
	for i, row := range d.rows {
		labels[i] = row.spec.DisplayLabel()
	}
	visible := make([]*render.Field, 0, len(d.rows))
	for _, i := range matchLabels(query, labels) {
		visible = append(visible, d.rows[i].field)
	}
	d.canvas.Render(visible)
}

// matchLabels returns the indexes of labels matching query, best score first.
// An empty query keeps every label in its original order.
func matchLabels(query string, labels []string) []int {
	indexes := make([]int, 0, len(labels))
	if query == "" {
		for i := range labels {
			indexes = append(indexes, i)
		}
		return indexes
	}
	matches := fuzzy.Find(query, labels)
	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	for _, match := range matches {
		indexes = append(indexes, match.Index)
	}
	return indexes
}

func (d *Demo) handleCommit(row *fieldRow, value string) {
	logrus.Info("committed ", row.spec.Key, ": ", value)
	row.spec.Value = value
	// echo the committed value back down as the new authoritative text
	row.field.SetText(value)
	d.status.SetText(row.spec.DisplayLabel() + " saved")

	d.values.Set(row.spec.Key, value)
	if d.store != nil {
		if err := d.store.SaveValues(d.values); err != nil {
			logrus.Error("persisting committed values: ", err)
		}
	}
}

// shutdown persists state exactly once, whether the window closed or the app
// quit some other way.
func (d *Demo) shutdown() {
	if d.done.IsBroken() {
		return
	}
	d.done.Break()
	if key, ok := d.group.Current(); ok {
		d.values.LastFocused = key
	}
	if d.store != nil {
		if err := d.store.SaveValues(d.values); err != nil {
			logrus.Error("persisting values on shutdown: ", err)
		}
		size := d.window.Canvas().Size()
		if err := d.store.SavePrefs(store.Prefs{WindowWidth: size.Width, WindowHeight: size.Height}); err != nil {
			logrus.Error("persisting window prefs: ", err)
		}
	}
	logrus.Debug("saved fields: ", maps.Keys(d.values.Fields))
}

func run(cfg *config.Config) error {
	d, err := newDemo(cfg)
	if err != nil {
		return err
	}

	d.window.Show()
	if cfg.InitialFocus != "" {
		d.group.Focus(cfg.InitialFocus)
	} else if d.values.LastFocused != "" {
		d.group.Focus(d.values.LastFocused)
	}
	if runtime.GOOS == "darwin" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := util.ActivateWindow(ctx, cfg.Title); err != nil {
			logrus.Debug("window activation: ", err)
		}
	}

	d.app.Run()
	d.shutdown()
	return nil
}
