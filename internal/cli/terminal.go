package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/hamidzr/editfield"
	"github.com/hamidzr/editfield/internal/config"
	"github.com/hamidzr/editfield/model"
)

// terminalField hosts one controller on a repainted terminal line. It plays
// the role the fyne entry plays in the GUI: it owns the visible buffer and
// feeds edits back as draft changes.
type terminalField struct {
	spec model.FieldSpec
	ctrl *editfield.Controller
	buf  []rune
}

// DisplayText implements editfield.Host.
func (f *terminalField) DisplayText(text string) {
	f.buf = []rune(text)
}

// DropFocus implements editfield.Host. Focus lives in the shared group here,
// so there is no widget focus to drop.
func (f *terminalField) DropFocus() {}

func (f *terminalField) repaint() {
	fmt.Printf("\r\x1b[K%s: %s", f.spec.DisplayLabel(), string(f.buf))
}

// RunTerminal drives the same controllers from raw terminal input: typing
// edits the draft, Enter commits and advances, Tab moves focus, Escape
// discards, Ctrl+C exits.
func RunTerminal(cfg *config.Config) error {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return errors.Wrap(err, "failed to set raw terminal mode")
	}
	defer func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			logrus.Error("failed to restore terminal: ", err)
		}
	}()

	queue := &editfield.Queue{}
	group := editfield.NewFocusGroup[string]()

	specs := defaultSpecs()
	fields := make([]*terminalField, 0, len(specs))
	for _, spec := range specs {
		f := &terminalField{spec: spec}
		f.ctrl = editfield.NewController(spec.Value, func(v string) {
			fmt.Printf("\r\x1b[K%s = %s\r\n", f.spec.DisplayLabel(), v)
			f.ctrl.SetText(v)
		}).
			DiscardOnCancel(cfg.DiscardOnCancel).
			ClearFocusKeyOnDiscard(cfg.ClearFocusOnDiscard).
			WithScheduler(queue).
			WithHost(f).
			BindFocus(group.Bind(spec.Key))
		fields = append(fields, f)
	}

	reader := bufio.NewReader(os.Stdin)
	active := 0
	group.Focus(fields[active].spec.Key)
	fields[active].repaint()

	focusNext := func() {
		active = (active + 1) % len(fields)
		group.Focus(fields[active].spec.Key)
	}

	for {
		queue.Drain()

		char, err := reader.ReadByte()
		if err != nil {
			return errors.Wrap(err, "reading terminal input")
		}

		field := fields[active]
		switch {
		case char == '\r' || char == '\n':
			// commit via focus loss, then move on
			focusNext()
		case char == '\t':
			focusNext()
		case char == 27: // escape
			if !field.ctrl.Cancel() {
				continue
			}
			// discarded; stay on this row and re-open it
			group.Focus(field.spec.Key)
		case char == 3: // ctrl+c
			fmt.Print("\r\n")
			return model.NewExitError(model.UserCanceled, nil)
		case char == 127 || char == 8: // backspace
			if len(field.buf) > 0 {
				field.buf = field.buf[:len(field.buf)-1]
				field.ctrl.DraftChanged(string(field.buf))
			}
		case char >= 32 && char <= 126:
			field.buf = append(field.buf, rune(char))
			field.ctrl.DraftChanged(string(field.buf))
		default:
			continue
		}
		fields[active].repaint()
	}
}
