package domain

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// ReportKey identifies one row of a report.
type ReportKey struct {
	Implementation string
	Task           TaskName
	Game           Game
}

func compareKeys(a, b ReportKey) int {
	return cmp.Or(
		cmp.Compare(a.Implementation, b.Implementation),
		cmp.Compare(a.Task, b.Task),
		cmp.Compare(a.Game, b.Game),
	)
}

// Record is one folded outcome: which file ran under which key, and how it went.
type Record struct {
	Key     ReportKey
	Source  string
	Digest  string
	Outcome Outcome
}

// Summary is the derived statistics of one report row.
type Summary struct {
	Key       ReportKey
	Total     int
	Succeeded int
	// Durations covers self-reported durations of succeeded outcomes only.
	Durations Percentiles
	// WallClock covers harness-measured durations of succeeded outcomes only.
	WallClock Percentiles
	// Throughput is the mean MB/s over succeeded outcomes with a positive duration.
	Throughput float64
	// InputBytes is the total payload size of every outcome.
	InputBytes int64
}

// SuccessRate returns the fraction of outcomes that succeeded, in [0, 1].
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}

// Complete reports whether every outcome succeeded and there was at least one.
func (s Summary) Complete() bool {
	return s.Total > 0 && s.Succeeded == s.Total
}

// Report aggregates the outcomes of one run. Records are append-only and safe
// for concurrent use; readers get sorted copies.
type Report struct {
	mu       sync.Mutex
	task     TaskName
	started  time.Time
	records  []Record
	expected map[ReportKey]struct{}
	builds   []BuildResult
	rejected []RejectedFile
	invalid  []InvalidImplementation
}

// NewReport creates an empty report for task.
func NewReport(task TaskName, started time.Time) *Report {
	return &Report{
		task:     task,
		started:  started,
		expected: make(map[ReportKey]struct{}),
	}
}

// Task returns the task the report was created for.
func (r *Report) Task() TaskName {
	return r.task
}

// Started returns the run start time.
func (r *Report) Started() time.Time {
	return r.started
}

// Expect registers a row so that it appears even when no outcome is recorded for it.
func (r *Report) Expect(key ReportKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expected[key] = struct{}{}
}

// Record appends one outcome.
func (r *Report) Record(key ReportKey, source, digest string, outcome Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Key: key, Source: source, Digest: digest, Outcome: outcome})
}

// RecordBuild appends the result of a build.
func (r *Report) RecordBuild(b BuildResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builds = append(r.builds, b)
}

// Reject lists a corpus file that was excluded from the run.
func (r *Report) Reject(f RejectedFile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = append(r.rejected, f)
}

// AddInvalid lists an implementation whose configuration was rejected.
func (r *Report) AddInvalid(i InvalidImplementation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalid = append(r.invalid, i)
}

// Records returns every record ordered by key, then source.
func (r *Report) Records() []Record {
	r.mu.Lock()
	out := slices.Clone(r.records)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Record) int {
		return cmp.Or(compareKeys(a.Key, b.Key), cmp.Compare(a.Source, b.Source))
	})
	return out
}

// RecordsFor returns the records of one row ordered by source.
func (r *Report) RecordsFor(key ReportKey) []Record {
	return slices.DeleteFunc(r.Records(), func(rec Record) bool {
		return rec.Key != key
	})
}

// Keys returns every expected or recorded row in sorted order.
func (r *Report) Keys() []ReportKey {
	r.mu.Lock()
	seen := make(map[ReportKey]struct{}, len(r.expected))
	for k := range r.expected {
		seen[k] = struct{}{}
	}
	for _, rec := range r.records {
		seen[rec.Key] = struct{}{}
	}
	r.mu.Unlock()

	keys := make([]ReportKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// Implementations returns the implementation names present in the report, sorted.
func (r *Report) Implementations() []string {
	var names []string
	for _, k := range r.Keys() {
		if !slices.Contains(names, k.Implementation) {
			names = append(names, k.Implementation)
		}
	}
	return names
}

// Games returns the games present in the report in canonical order.
func (r *Report) Games() []Game {
	keys := r.Keys()
	games := make([]Game, 0, len(keys))
	for _, k := range keys {
		games = append(games, k.Game)
	}
	return SortGames(games)
}

// Builds returns the recorded builds ordered by implementation.
func (r *Report) Builds() []BuildResult {
	r.mu.Lock()
	out := slices.Clone(r.builds)
	r.mu.Unlock()
	slices.SortStableFunc(out, func(a, b BuildResult) int {
		return cmp.Compare(a.Implementation, b.Implementation)
	})
	return out
}

// Rejected returns the excluded corpus files ordered by path.
func (r *Report) Rejected() []RejectedFile {
	r.mu.Lock()
	out := slices.Clone(r.rejected)
	r.mu.Unlock()
	slices.SortStableFunc(out, func(a, b RejectedFile) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return out
}

// Invalid returns the rejected implementations ordered by name.
func (r *Report) Invalid() []InvalidImplementation {
	r.mu.Lock()
	out := slices.Clone(r.invalid)
	r.mu.Unlock()
	slices.SortStableFunc(out, func(a, b InvalidImplementation) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Failures returns every record that did not succeed, ordered by key then source.
func (r *Report) Failures() []Record {
	return slices.DeleteFunc(r.Records(), func(rec Record) bool {
		return rec.Outcome.Succeeded()
	})
}

// Summarize computes the statistics of one row on demand. Only succeeded
// outcomes contribute to the duration distributions and throughput; every
// outcome counts toward the total.
func (r *Report) Summarize(key ReportKey) Summary {
	s := Summary{Key: key}
	var (
		durations  []time.Duration
		wallClock  []time.Duration
		throughput []float64
	)
	for _, rec := range r.RecordsFor(key) {
		o := rec.Outcome
		s.Total++
		s.InputBytes += int64(o.InputBytes)
		if !o.Succeeded() {
			continue
		}
		s.Succeeded++
		durations = append(durations, o.Duration)
		wallClock = append(wallClock, o.WallClock)
		if o.Duration > 0 {
			throughput = append(throughput, Throughput(o.InputBytes, o.Duration))
		}
	}
	s.Durations = ComputePercentiles(durations)
	s.WallClock = ComputePercentiles(wallClock)
	if len(throughput) > 0 {
		var sum float64
		for _, t := range throughput {
			sum += t
		}
		s.Throughput = sum / float64(len(throughput))
	}
	return s
}

// Summaries returns the summary of every row in key order.
func (r *Report) Summaries() []Summary {
	keys := r.Keys()
	out := make([]Summary, len(keys))
	for i, k := range keys {
		out[i] = r.Summarize(k)
	}
	return out
}
