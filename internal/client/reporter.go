package client

import (
	"time"

	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/briandowns/spinner"
)

// stepReporter shows workflow progress, animated when attached to a terminal.
type stepReporter struct {
	p       *printer
	spinner *spinner.Spinner
	logger  *logger.Logger
}

func newStepReporter(p *printer, animate bool, logger *logger.Logger) *stepReporter {
	r := &stepReporter{p: p, logger: logger}
	if animate {
		r.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.errOut))
	}
	return r
}

func (r *stepReporter) Start(step service.Step) {
	if r.spinner == nil {
		return
	}
	r.spinner.Suffix = " " + step.Title() + "..."
	r.spinner.Start()
}

func (r *stepReporter) stop() {
	if r.spinner != nil {
		r.spinner.Stop()
	}
}

func (r *stepReporter) Done(step service.Step, detail string) {
	r.stop()
	msg := step.Title()
	if detail != "" {
		msg += ": " + boldStyle.Render(detail)
	}
	r.p.success(msg)
}

func (r *stepReporter) Fail(step service.Step, err error) {
	r.stop()
	r.logger.Error().Err(err).Str("step", string(step)).Msg("step failed")
	r.p.fail(step.Title() + " failed")
}

func (r *stepReporter) Warn(step service.Step, msg string) {
	r.stop()
	r.logger.Warn().Str("step", string(step)).Msg(msg)
	r.p.warn(step.Title() + ": " + msg)
}
