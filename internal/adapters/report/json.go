package report

import (
	"encoding/json"
	"io"
	"time"

	"go.trai.ch/babblewitz/internal/core/domain"
)

type jsonReport struct {
	Task     string         `json:"task"`
	Kind     string         `json:"kind"`
	Started  time.Time      `json:"started"`
	Rows     []jsonRow      `json:"rows"`
	Failures []jsonFailure  `json:"failures"`
	Rejected []jsonRejected `json:"rejected"`
	Invalid  []jsonInvalid  `json:"invalid"`
	Builds   []jsonBuild    `json:"builds"`
}

type jsonRow struct {
	Implementation string          `json:"implementation"`
	Game           string          `json:"game"`
	Total          int             `json:"total"`
	Succeeded      int             `json:"succeeded"`
	SuccessRate    float64         `json:"success_rate"`
	ThroughputMBps float64         `json:"throughput_mb_per_s"`
	InputBytes     int64           `json:"input_bytes"`
	DurationUS     jsonPercentiles `json:"duration_us"`
	WallClockUS    jsonPercentiles `json:"wall_clock_us"`
}

type jsonPercentiles struct {
	Count int   `json:"count"`
	Min   int64 `json:"min"`
	P50   int64 `json:"p50"`
	P90   int64 `json:"p90"`
	P99   int64 `json:"p99"`
	Max   int64 `json:"max"`
}

type jsonFailure struct {
	Implementation string   `json:"implementation"`
	Source         string   `json:"source"`
	Games          []string `json:"games"`
	Status         string   `json:"status"`
	ExitCode       int      `json:"exit_code"`
	Message        string   `json:"message"`
}

type jsonRejected struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type jsonInvalid struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type jsonBuild struct {
	Implementation string `json:"implementation"`
	Status         string `json:"status"`
	Command        string `json:"command"`
	ExitCode       int    `json:"exit_code"`
	DurationMS     int64  `json:"duration_ms"`
}

func newJSONReport(rep *domain.Report) jsonReport {
	out := jsonReport{
		Task:     rep.Task().String(),
		Kind:     rep.Task().Kind().String(),
		Started:  rep.Started().UTC(),
		Rows:     []jsonRow{},
		Failures: []jsonFailure{},
		Rejected: []jsonRejected{},
		Invalid:  []jsonInvalid{},
		Builds:   newJSONBuilds(rep.Builds()),
	}
	for _, s := range rep.Summaries() {
		out.Rows = append(out.Rows, jsonRow{
			Implementation: s.Key.Implementation,
			Game:           string(s.Key.Game),
			Total:          s.Total,
			Succeeded:      s.Succeeded,
			SuccessRate:    s.SuccessRate(),
			ThroughputMBps: s.Throughput,
			InputBytes:     s.InputBytes,
			DurationUS:     micros(s.Durations),
			WallClockUS:    micros(s.WallClock),
		})
	}
	for _, f := range failureLines(rep) {
		games := make([]string, len(f.Games))
		for i, g := range f.Games {
			games[i] = string(g)
		}
		out.Failures = append(out.Failures, jsonFailure{
			Implementation: f.Implementation,
			Source:         f.Source,
			Games:          games,
			Status:         string(f.Outcome.Status),
			ExitCode:       f.Outcome.ExitCode,
			Message:        f.Outcome.Describe(),
		})
	}
	for _, f := range rep.Rejected() {
		out.Rejected = append(out.Rejected, jsonRejected{Path: f.Path, Reason: oneLine(f.Reason)})
	}
	for _, i := range rep.Invalid() {
		out.Invalid = append(out.Invalid, jsonInvalid{Name: i.Name, Error: oneLine(i.Err)})
	}
	return out
}

func newJSONBuilds(builds []domain.BuildResult) []jsonBuild {
	out := make([]jsonBuild, 0, len(builds))
	for _, b := range builds {
		out = append(out, jsonBuild{
			Implementation: b.Implementation,
			Status:         string(b.Status),
			Command:        b.Command,
			ExitCode:       b.ExitCode,
			DurationMS:     b.Duration.Milliseconds(),
		})
	}
	return out
}

func micros(p domain.Percentiles) jsonPercentiles {
	return jsonPercentiles{
		Count: p.Count,
		Min:   p.Min.Microseconds(),
		P50:   p.P50.Microseconds(),
		P90:   p.P90.Microseconds(),
		P99:   p.P99.Microseconds(),
		Max:   p.Max.Microseconds(),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
