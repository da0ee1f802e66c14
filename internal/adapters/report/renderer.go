// Package report renders run reports as terminal tables, GitHub markdown or JSON.
package report

import (
	"fmt"
	"io"
	"time"

	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
)

// Marker lets CI jobs locate the results block inside a markdown document.
const Marker = "<!-- conformance-results -->"

const timestampLayout = "2006-01-02 15:04:05 UTC"

var _ ports.ReportRenderer = (*Renderer)(nil)

// Renderer implements ports.ReportRenderer.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used for "last updated" timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the results of one task run.
func (r *Renderer) Render(w io.Writer, rep *domain.Report, format ports.Format) error {
	switch format {
	case ports.FormatTable:
		return r.renderText(w, rep, false)
	case ports.FormatGitHub:
		return r.renderText(w, rep, true)
	case ports.FormatJSON:
		return writeJSON(w, newJSONReport(rep))
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
}

// RenderBuilds writes one line per build followed by a tally.
func (r *Renderer) RenderBuilds(w io.Writer, builds []domain.BuildResult, format ports.Format) error {
	switch format {
	case ports.FormatTable, ports.FormatGitHub:
		return renderBuildTable(w, builds, format == ports.FormatGitHub)
	case ports.FormatJSON:
		return writeJSON(w, newJSONBuilds(builds))
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
}

// grid is the implementation by game matrix of a report.
type grid struct {
	impls     []string
	games     []domain.Game
	summaries map[domain.ReportKey]domain.Summary
}

func newGrid(rep *domain.Report) grid {
	g := grid{
		impls:     rep.Implementations(),
		games:     rep.Games(),
		summaries: make(map[domain.ReportKey]domain.Summary),
	}
	for _, s := range rep.Summaries() {
		g.summaries[s.Key] = s
	}
	return g
}

func (g grid) cell(task domain.TaskName, impl string, game domain.Game) (domain.Summary, bool) {
	s, ok := g.summaries[domain.ReportKey{Implementation: impl, Task: task, Game: game}]
	return s, ok && s.Total > 0
}

func conformanceCell(s domain.Summary, markdown bool) string {
	pct := int(s.SuccessRate() * 100)
	switch {
	case s.Complete() && markdown:
		return "✅"
	case s.Complete():
		return "✓"
	case markdown:
		return fmt.Sprintf("⚠️ %d%%", pct)
	default:
		return fmt.Sprintf("%d%%", pct)
	}
}

func performanceCell(s domain.Summary, markdown bool) string {
	if s.Succeeded == 0 {
		return "✗"
	}
	cell := fmt.Sprintf("%.2f MB/s", s.Throughput)
	if s.Complete() {
		return cell
	}
	if markdown {
		return cell + " ⚠️"
	}
	return cell + " ⚠"
}

// failureLine is one distinct failed file. An outcome recorded under several
// games is listed once.
type failureLine struct {
	Implementation string
	Source         string
	Games          []domain.Game
	Outcome        domain.Outcome
}

func failureLines(rep *domain.Report) []failureLine {
	var lines []failureLine
	index := make(map[[2]string]int)
	for _, rec := range rep.Failures() {
		k := [2]string{rec.Key.Implementation, rec.Source}
		if i, ok := index[k]; ok {
			lines[i].Games = append(lines[i].Games, rec.Key.Game)
			continue
		}
		index[k] = len(lines)
		lines = append(lines, failureLine{
			Implementation: rec.Key.Implementation,
			Source:         rec.Source,
			Games:          []domain.Game{rec.Key.Game},
			Outcome:        rec.Outcome,
		})
	}
	for i := range lines {
		lines[i].Games = domain.SortGames(lines[i].Games)
	}
	return lines
}
