package shell

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/babblewitz/internal/core/domain"
)

// parseOutput applies the two-line contract to the stdout of a process that
// exited zero. Line 1 is a microsecond count, line 2 the verbatim result.
// Lines after the second are ignored.
func parseOutput(stdout []byte) domain.Outcome {
	lines := splitLines(stdout)
	if len(lines) < 2 {
		return domain.Outcome{
			Status:  domain.StatusMalformedOutput,
			RawLine: firstOrEmpty(lines),
			Detail:  "expected two lines of output, got " + strconv.Itoa(len(lines)),
		}
	}

	raw := lines[0]
	micros, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return domain.Outcome{
			Status:  domain.StatusMalformedOutput,
			RawLine: raw,
			Detail:  "line 1 is not a non-negative microsecond count: " + strconv.Quote(raw),
		}
	}
	if micros > math.MaxInt64/uint64(time.Microsecond) {
		return domain.Outcome{
			Status:  domain.StatusMalformedOutput,
			RawLine: raw,
			Detail:  "line 1 duration is out of range",
		}
	}

	return domain.Outcome{
		Status:   domain.StatusSucceeded,
		Duration: time.Duration(micros) * time.Microsecond, //nolint:gosec // bounded above
		Result:   lines[1],
	}
}

// splitLines splits on LF, dropping a CR before each LF. A final terminator
// does not start a new line.
func splitLines(out []byte) []string {
	if len(out) == 0 {
		return nil
	}
	out = bytes.TrimSuffix(out, []byte("\n"))
	parts := bytes.Split(out, []byte("\n"))
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(bytes.TrimSuffix(p, []byte("\r")))
	}
	return lines
}

func firstOrEmpty(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
