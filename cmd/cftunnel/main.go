package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cftunnel/internal/client"
	"github.com/MKhiriev/cftunnel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fillBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	code := client.Execute(ctx, app, os.Args[1:])

	stop()
	os.Exit(code)
}

func fillBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
}
