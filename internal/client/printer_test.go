package client

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 domain", plural(1, "domain"))
	assert.Equal(t, "0 domains", plural(0, "domain"))
	assert.Equal(t, "3 domains", plural(3, "domain"))
}

func TestPrinter_configSummary(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPrinter(out, &bytes.Buffer{})

	p.configSummary(testConfig, "Acme")
	assert.Contains(t, out.String(), "Acme")
	assert.Contains(t, out.String(), testConfig.HostnamePattern())

	out.Reset()
	p.configSummary(testConfig.ClearDomain(), "")
	assert.Contains(t, out.String(), "acc-1")
	assert.Contains(t, out.String(), "quick tunnel mode only")
}

func TestPrinter_deleteReport(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	p := newPrinter(out, errOut)

	p.deleteReport(models.DeleteReport{Outcomes: []models.ResourceOutcome{
		{Resource: models.ResourceTunnel, Name: "team-a", Status: models.OutcomeDeleted, Warnings: []string{"connections not cleaned"}},
		{Resource: models.ResourceDNS, Name: "team-a.example.com", Status: models.OutcomeFailed, Err: errors.New("denied")},
	}})

	assert.Contains(t, out.String(), "team-a")
	assert.Contains(t, out.String(), "deleted")
	assert.Contains(t, errOut.String(), "denied")
	assert.Contains(t, errOut.String(), "connections not cleaned")
}

func TestStepReporter(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := newStepReporter(newPrinter(out, errOut), false, logger.Nop())

	r.Start(service.StepTunnel)
	r.Done(service.StepTunnel, "team-a")
	r.Warn(service.StepCache, "read-only disk")
	r.Fail(service.StepDNS, errors.New("x"))

	assert.Contains(t, out.String(), service.StepTunnel.Title()+": ")
	assert.Contains(t, out.String(), "team-a")
	assert.Contains(t, errOut.String(), "read-only disk")
	assert.Contains(t, errOut.String(), service.StepDNS.Title()+" failed")
}
