package service

import (
	"context"
	"fmt"
)

// Step names one remote or local action of a workflow.
type Step string

const (
	StepCheck   Step = "check"
	StepTunnel  Step = "tunnel"
	StepIngress Step = "ingress"
	StepDNS     Step = "dns"
	StepToken   Step = "token"
	StepCache   Step = "cache"

	StepLookupTunnel Step = "lookup-tunnel"
	StepLookupDNS    Step = "lookup-dns"
	StepCleanup      Step = "cleanup"
	StepDeleteTunnel Step = "delete-tunnel"
	StepDeleteDNS    Step = "delete-dns"

	StepVerify   Step = "verify"
	StepDiscover Step = "discover"
	StepList     Step = "list"
)

var stepTitles = map[Step]string{
	StepCheck:        "Checking for an existing tunnel",
	StepTunnel:       "Creating tunnel",
	StepIngress:      "Configuring ingress",
	StepDNS:          "Creating DNS record",
	StepToken:        "Fetching tunnel token",
	StepCache:        "Caching token locally",
	StepLookupTunnel: "Looking up tunnel",
	StepLookupDNS:    "Looking up DNS record",
	StepCleanup:      "Cleaning up active connections",
	StepDeleteTunnel: "Deleting tunnel",
	StepDeleteDNS:    "Deleting DNS record",
	StepVerify:       "Verifying token",
	StepDiscover:     "Fetching accounts and zones",
	StepList:         "Fetching tunnels",
}

// Title is a human readable description of the step.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return string(s)
}

// StepError identifies the workflow step that failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step.Title(), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Reporter observes workflow progress.
type Reporter interface {
	Start(step Step)
	Done(step Step, detail string)
	Fail(step Step, err error)
	Warn(step Step, msg string)
}

type nopReporter struct{}

func (nopReporter) Start(Step)        {}
func (nopReporter) Done(Step, string) {}
func (nopReporter) Fail(Step, error)  {}
func (nopReporter) Warn(Step, string) {}

type reporterKey struct{}

// WithReporter attaches r to ctx.
func WithReporter(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterKey{}, r)
}

func reporterFrom(ctx context.Context) Reporter {
	if r, ok := ctx.Value(reporterKey{}).(Reporter); ok && r != nil {
		return r
	}
	return nopReporter{}
}

// runStep reports and executes one step, wrapping its failure.
func runStep[T any](ctx context.Context, step Step, fn func() (T, error), detail func(T) string) (T, error) {
	r := reporterFrom(ctx)
	r.Start(step)

	v, err := fn()
	if err != nil {
		r.Fail(step, err)
		return v, &StepError{Step: step, Err: err}
	}

	d := ""
	if detail != nil {
		d = detail(v)
	}
	r.Done(step, d)
	return v, nil
}
