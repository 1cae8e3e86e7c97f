// Package progress renders workflow step events either as terminal spinners or as
// structured log lines.
package progress

import (
	"fmt"
	"os"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"webhooktask/cli/internal/logging"
	"webhooktask/cli/internal/terminal"
	"webhooktask/cli/internal/workflow"
)

// Label is the human-readable name of a step.
func Label(step workflow.Step) string {
	switch step {
	case workflow.StepRegister:
		return "Registering for webhook"
	case workflow.StepGenerateQuery:
		return "Generating SQL query"
	case workflow.StepSubmitQuery:
		return "Submitting query to webhook"
	default:
		return step.String()
	}
}

// Renderer turns step events into output. Every event is logged; spinners are
// drawn only when interactive. Terminal output, cursor control codes included,
// goes to stderr so stdout carries only results.
type Renderer struct {
	log         zerolog.Logger
	interactive bool
	width       int

	term         *os.File
	cursor       *cursor.Cursor
	spinner      *pterm.SpinnerPrinter
	cursorHidden bool
}

// NewRenderer creates a renderer. width bounds spinner lines in interactive mode.
func NewRenderer(log zerolog.Logger, interactive bool, width int) *Renderer {
	return newRenderer(log, interactive, width, os.Stderr)
}

func newRenderer(log zerolog.Logger, interactive bool, width int, term *os.File) *Renderer {
	return &Renderer{
		log:         log,
		interactive: interactive,
		width:       width,
		term:        term,
		cursor:      cursor.NewCursor().WithWriter(term),
	}
}

// Render processes a single event.
func (r *Renderer) Render(ev workflow.StepEvent) {
	label := Label(ev.Step)

	switch {
	case ev.Err != nil:
		r.log.Error().Str("step", ev.Step.String()).Str("error", logging.Mask(ev.Err.Error())).Msg(label + " failed")
		if r.spinner != nil {
			r.spinner.Fail(label)
			r.spinner = nil
		}
	case ev.Done:
		detail := logging.Mask(ev.Detail)
		r.log.Info().Str("step", ev.Step.String()).Str("detail", detail).Msg(label)
		if r.spinner != nil {
			r.spinner.Success(r.line(label, detail))
			r.spinner = nil
		}
	default:
		r.log.Debug().Str("step", ev.Step.String()).Msg(label)
		if r.interactive {
			r.start(label)
		}
	}
}

func (r *Renderer) start(label string) {
	if !r.cursorHidden {
		r.cursor.Hide()
		r.cursorHidden = true
	}
	sp, err := pterm.DefaultSpinner.WithWriter(r.term).Start(label + "...")
	if err != nil {
		r.log.Debug().Err(err).Msg("spinner unavailable")
		return
	}
	r.spinner = sp
}

// line fits "label: detail" into the terminal width.
func (r *Renderer) line(label, detail string) string {
	if detail == "" {
		return label
	}
	text := fmt.Sprintf("%s: %s", label, detail)
	// leave room for the spinner's status prefix
	return terminal.Truncate(text, r.width-10)
}

// Close stops a running spinner and restores the cursor.
func (r *Renderer) Close() {
	if r.spinner != nil {
		_ = r.spinner.Stop()
		r.spinner = nil
	}
	if r.cursorHidden {
		r.cursor.Show()
		r.cursorHidden = false
	}
}
