package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	introStyle   = lipgloss.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	dangerStyle  = lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Padding(0, 1)
)

var tunnelStatusColors = map[models.TunnelStatus]text.Colors{
	models.TunnelHealthy:  {text.FgGreen},
	models.TunnelInactive: {text.FgHiBlack},
	models.TunnelDown:     {text.FgRed},
	models.TunnelDegraded: {text.FgYellow},
}

// printer renders command output. Results go to out, diagnostics to errOut.
type printer struct {
	out    io.Writer
	errOut io.Writer
}

func newPrinter(out, errOut io.Writer) *printer {
	return &printer{out: out, errOut: errOut}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) blank() {
	fmt.Fprintln(p.out)
}

func (p *printer) intro(title string) {
	p.line("%s", introStyle.Render("cftunnel "+title))
}

func (p *printer) introDanger(title string) {
	p.line("%s", dangerStyle.Render("cftunnel "+title))
}

func (p *printer) info(msg string) {
	p.line("%s %s", stepStyle.Render("●"), msg)
}

func (p *printer) step(msg string) {
	p.line("%s %s", stepStyle.Render("◇"), msg)
}

func (p *printer) success(msg string) {
	p.line("%s %s", successStyle.Render("✔"), msg)
}

func (p *printer) warn(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", warnStyle.Render("▲"), msg)
}

func (p *printer) fail(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", errorStyle.Render("✖"), msg)
}

func (p *printer) hint(msg string) {
	fmt.Fprintln(p.errOut, dimStyle.Render(msg))
}

// fields renders aligned "label  value" lines indented under a heading.
func (p *printer) fields(rows ...[2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		label := r[0] + strings.Repeat(" ", width-len(r[0]))
		p.line("  %s  %s", boldStyle.Render(label), r[1])
	}
}

func field(label, value string) [2]string {
	return [2]string{label, value}
}

func (p *printer) configSummary(cfg models.AppConfig, accountName string) {
	account := cfg.AccountID
	if accountName != "" {
		account = accountName
	}

	rows := [][2]string{field("Account", account)}
	if cfg.HasDomain() {
		rows = append(rows,
			field("Domain", cfg.Domain),
			field("Prefix", cfg.Prefix),
			field("Pattern", cfg.HostnamePattern()),
		)
	} else {
		rows = append(rows, field("Domain", dimStyle.Render(app.MsgQuickModeOnly)))
	}
	p.fields(rows...)
}

func colorStatus(s models.TunnelStatus) string {
	if c, ok := tunnelStatusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return text.FgHiBlack.Sprint(string(s))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// tunnels renders the tunnel table. Ingress columns appear only when
// withIngress is set.
func (p *printer) tunnels(summaries []models.TunnelSummary, withIngress bool) {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)

	header := table.Row{"NAME", "STATUS", "CONNECTIONS", "CREATED"}
	if withIngress {
		header = append(header, "ROUTES")
	}
	t.AppendHeader(header)

	for _, s := range summaries {
		created := "-"
		if !s.Tunnel.CreatedAt.IsZero() {
			created = s.Tunnel.CreatedAt.Format("2006-01-02")
		}
		row := table.Row{s.Tunnel.Name, colorStatus(s.Tunnel.Status), len(s.Tunnel.Connections), created}
		if withIngress {
			row = append(row, ingressSummary(s))
		}
		t.AppendRow(row)
	}

	t.Render()
}

func ingressSummary(s models.TunnelSummary) string {
	if s.IngressErr != nil {
		return text.FgRed.Sprint("unavailable")
	}

	var routes []string
	for _, r := range s.Ingress {
		if r.IsCatchAll() {
			continue
		}
		routes = append(routes, r.Hostname+" → "+r.Service)
	}
	if len(routes) == 0 {
		return text.FgHiBlack.Sprint("none")
	}
	return strings.Join(routes, "\n")
}

// deleteReport renders one line per resource outcome.
func (p *printer) deleteReport(report models.DeleteReport) {
	for _, o := range report.Outcomes {
		label := fmt.Sprintf("%-6s %s", o.Resource, o.Name)
		switch o.Status {
		case models.OutcomeDeleted:
			p.success(label + " " + successStyle.Render(string(o.Status)))
		case models.OutcomeFailed:
			p.fail(label + " " + errorStyle.Render(string(o.Status)) + ": " + o.Err.Error())
		case models.OutcomeSkipped:
			p.line("  %s", dimStyle.Render(label+" "+string(o.Status)))
		default:
			p.info(label + " " + dimStyle.Render(string(o.Status)))
		}
		for _, w := range o.Warnings {
			p.warn("  " + w)
		}
	}
}
