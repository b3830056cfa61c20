package client

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationStandalone: "true",
		},
		Run: func(*cobra.Command, []string) {
			p := a.printer
			p.line("cftunnel %s", a.buildInfo.BuildVersion())
			p.fields(
				field("Build date", a.buildInfo.BuildDate()),
				field("Commit", a.buildInfo.BuildCommit()),
				field("Go", runtime.Version()),
				field("Platform", runtime.GOOS+"/"+runtime.GOARCH),
			)
		},
	}
}
