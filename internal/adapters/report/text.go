package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.trai.ch/babblewitz/internal/core/domain"
)

func (r *Renderer) renderText(w io.Writer, rep *domain.Report, markdown bool) error {
	ew := &errWriter{w: w}
	task := rep.Task()
	g := newGrid(rep)

	if markdown {
		ew.printf("%s\n\n", Marker)
	}
	ew.printf("%s results for %s\n\n", title(task.Kind()), task)

	if len(g.impls) == 0 {
		ew.printf("No results.\n")
	} else {
		tw := newTable(ew)
		header := table.Row{"Implementation"}
		for _, game := range g.games {
			header = append(header, string(game))
		}
		tw.AppendHeader(header)
		for _, impl := range g.impls {
			row := table.Row{impl}
			for _, game := range g.games {
				row = append(row, cellText(g, task, impl, game, markdown))
			}
			tw.AppendRow(row)
		}
		render(tw, markdown)
	}

	if markdown {
		ew.printf("\n_Last updated: %s_\n", r.now().UTC().Format(timestampLayout))
	}

	writeFailures(ew, rep, markdown)
	return ew.err
}

func title(kind domain.TaskKind) string {
	if kind == domain.KindPerformance {
		return "Performance"
	}
	return "Conformance"
}

func cellText(g grid, task domain.TaskName, impl string, game domain.Game, markdown bool) string {
	s, ok := g.cell(task, impl, game)
	if !ok {
		return "-"
	}
	if task.Kind() == domain.KindPerformance {
		return performanceCell(s, markdown)
	}
	return conformanceCell(s, markdown)
}

func writeFailures(ew *errWriter, rep *domain.Report, markdown bool) {
	bullet := "  "
	heading := func(s string) string { return "\n" + s + ":\n" }
	if markdown {
		bullet = "- "
		heading = func(s string) string { return "\n### " + s + "\n\n" }
	}

	if failures := failureLines(rep); len(failures) > 0 {
		ew.printf("%s", heading("Failures"))
		for _, f := range failures {
			ew.printf("%s%s (%s): %s\n", bullet, f.Implementation, f.Source, f.Outcome.Describe())
		}
	}
	if rejected := rep.Rejected(); len(rejected) > 0 {
		ew.printf("%s", heading("Rejected corpus files"))
		for _, f := range rejected {
			ew.printf("%s%s: %s\n", bullet, f.Path, oneLine(f.Reason))
		}
	}
	if invalid := rep.Invalid(); len(invalid) > 0 {
		ew.printf("%s", heading("Invalid implementations"))
		for _, i := range invalid {
			ew.printf("%s%s: %s\n", bullet, i.Name, oneLine(i.Err))
		}
	}
}

func renderBuildTable(w io.Writer, builds []domain.BuildResult, markdown bool) error {
	ew := &errWriter{w: w}
	if len(builds) == 0 {
		ew.printf("No implementations built.\n")
		return ew.err
	}

	tw := newTable(ew)
	tw.AppendHeader(table.Row{"Implementation", "Status", "Duration", "Command"})
	failed := 0
	for _, b := range builds {
		status := "✓ built"
		if !b.Ready() {
			failed++
			status = fmt.Sprintf("✗ failed (exit %d)", b.ExitCode)
		}
		tw.AppendRow(table.Row{b.Implementation, status, b.Duration.Round(time.Millisecond).String(), b.Command})
	}
	render(tw, markdown)
	ew.printf("\n%d built, %d failed\n", len(builds)-failed, failed)
	return ew.err
}

// newTable returns a table writer that keeps header case, since game tags
// are lowercase identifiers.
func newTable(w io.Writer) table.Writer {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(style)
	return tw
}

func render(tw table.Writer, markdown bool) {
	if markdown {
		tw.RenderMarkdown()
		return
	}
	tw.Render()
}

func oneLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

// errWriter keeps the first write error so rendering code can ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(e, format, args...)
}
