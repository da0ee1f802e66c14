package ports

import (
	"io"

	"go.trai.ch/babblewitz/internal/core/domain"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatTable renders aligned terminal tables.
	FormatTable Format = "table"
	// FormatGitHub renders GitHub flavored markdown.
	FormatGitHub Format = "github"
	// FormatJSON renders the report data as JSON.
	FormatJSON Format = "json"
)

// ReportRenderer turns reports into human or machine readable output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	// Render writes the task report in format.
	Render(w io.Writer, report *domain.Report, format Format) error
	// RenderBuilds writes the summary of a build run.
	RenderBuilds(w io.Writer, builds []domain.BuildResult, format Format) error
}
