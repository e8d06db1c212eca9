package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// SpinnerSink shows a spinner while ABIs are being fetched
type SpinnerSink struct {
	out     io.Writer
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !event.Spinner {
		if s.spinner.Active() {
			s.spinner.Stop()
		}
		return
	}

	suffix := " " + event.Message
	if event.Total > 1 {
		suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
	}
	s.spinner.Suffix = suffix
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.pause(func() { color.New(color.FgCyan).Fprintln(s.out, message) })
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.pause(func() { color.New(color.FgRed).Fprintln(s.out, message) })
}

// pause stops the spinner around print
func (s *SpinnerSink) pause(print func()) {
	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}
	print()
	if wasActive {
		s.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
