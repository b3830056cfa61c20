package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/cftunnel/internal/adapter"
	"github.com/MKhiriev/cftunnel/internal/config"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/internal/tui"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// annotationStandalone marks commands that run without settings or stores.
const annotationStandalone = "standalone"

type App struct {
	buildInfo   models.AppBuildInfo
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
	printer     *printer

	// Filled by prepare unless injected.
	services *service.ClientServices
	prompter tui.Prompter
	paths    store.Paths
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the application on the process standard streams.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return newApp(buildInfo, os.Stdin, os.Stdout, os.Stderr, isTerminal(os.Stdin))
}

func newApp(buildInfo models.AppBuildInfo, in io.Reader, out, errOut io.Writer, interactive bool) *App {
	return &App{
		buildInfo:   buildInfo,
		in:          in,
		out:         out,
		errOut:      errOut,
		interactive: interactive,
		printer:     newPrinter(out, errOut),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run executes args against the command tree.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close()

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	return root.ExecuteContext(ctx)
}

// prepare resolves settings from flags, environment and file, then wires the
// service layer.
func (a *App) prepare(cmd *cobra.Command) error {
	if a.services != nil {
		return nil
	}

	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	a.logger = logger.NewClientLogger("cftunnel", cfg.Storage.DataDir, cfg.Log.Level)
	a.logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")
	cmd.SetContext(a.logger.WithContext(cmd.Context()))

	storages := store.NewClientStorages(cfg.Storage.DataDir, a.logger)
	cfAdapter := adapter.NewCloudflareAdapter(cfg.API, a.logger)
	supervisor := process.NewSupervisor(storages.PIDs, storages.Paths.ConnectorLog(), cfg.Connector, a.logger.GetChildLogger())

	a.services = service.NewClientServices(storages, cfAdapter, supervisor, cfg.Connector, a.logger)
	a.paths = storages.Paths
	if a.prompter == nil {
		a.prompter = tui.NewTerminal(a.in, a.out)
	}
	return nil
}

func (a *App) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cftunnel",
		Short: "Cloudflare Tunnel CLI for local development",
		Long: `cftunnel exposes local development servers through Cloudflare Tunnels.

An operator runs setup once, then creates one named tunnel per developer
(<prefix>-<name>.<domain>). Developers start the connector with the token
they were given, or use quick tunnels without any configuration.`,
		Version:       a.buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationStandalone] == "true" {
				return nil
			}
			return a.prepare(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "cftunnel %s\n" .Version}}`)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.newSetupCommand(),
		a.newStatusCommand(),
		a.newDomainCommand(),
		a.newCreateCommand(),
		a.newDeleteCommand(),
		a.newListCommand(),
		a.newTokenCommand(),
		a.newStartCommand(),
		a.newStopCommand(),
		a.newCompletionsCommand(),
		a.newVersionCommand(),
	)
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// reporting returns ctx carrying a step reporter bound to the printer.
func (a *App) reporting(ctx context.Context) context.Context {
	return service.WithReporter(ctx, newStepReporter(a.printer, a.interactive, logger.FromContext(ctx)))
}
