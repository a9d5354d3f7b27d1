package mission

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// FieldCount is the minimum number of pipe-delimited fields a data
// line must carry.
const FieldCount = 8

// metadataPrefixes mark free-form header lines that are skipped before
// field parsing.
var metadataPrefixes = []string{"SYSTEM:", "CONFIG:", "CHECKSUM:"}

var securityCodeRE = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}-[A-Z]{3}$`)

// Predicate selects the mission category and status to report on.
// Both comparisons are case-insensitive.
type Predicate struct {
	Destination string
	Status      string
}

// DefaultPredicate matches completed Mars missions.
func DefaultPredicate() Predicate {
	return Predicate{Destination: "mars", Status: "completed"}
}

// ParseStream reads a mission log line by line and returns the valid
// records (in line order), the run statistics, and any read error.
// Diagnostics for malformed or discarded lines go to log; pass
// zerolog.Nop() to suppress them.
func ParseStream(r io.Reader, pred Predicate, log zerolog.Logger) ([]Record, Statistics, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	var stats Statistics
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		stats.TotalLines++
		line := scanner.Text()

		if IsCommentOrMetadata(line) {
			continue
		}
		stats.DataLines++

		fields := strings.Split(line, "|")
		if len(fields) < FieldCount {
			stats.Errors++
			log.Warn().Int("line", lineNo).Int("fields", len(fields)).
				Msg("malformed line: missing fields")
			continue
		}

		destination := NormalizeField(fields[2])
		if !strings.EqualFold(destination, pred.Destination) {
			continue
		}
		stats.CategoryMatches++

		status := NormalizeField(fields[3])
		if !strings.EqualFold(status, pred.Status) {
			continue
		}
		stats.QualifyingMatches++

		durationRaw := NormalizeField(fields[5])
		duration, err := strconv.Atoi(durationRaw)
		if err != nil || duration <= 0 {
			stats.Errors++
			log.Warn().Int("line", lineNo).Str("duration", durationRaw).
				Msg("invalid duration")
			continue
		}

		code := NormalizeField(fields[7])
		if !securityCodeRE.MatchString(code) {
			stats.Errors++
			log.Warn().Int("line", lineNo).Str("security_code", code).
				Msg("invalid security code format")
			continue
		}

		stats.ValidCount++
		records = append(records, Record{
			Date:         NormalizeField(fields[0]),
			MissionID:    NormalizeField(fields[1]),
			Destination:  destination,
			Status:       status,
			CrewSize:     NormalizeField(fields[4]),
			DurationDays: duration,
			SuccessRate:  NormalizeField(fields[6]),
			SecurityCode: code,
			Line:         lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scanning mission log: %w", err)
	}
	return records, stats, nil
}

// ParseBytes is a convenience for parsing from a byte slice.
func ParseBytes(data []byte, pred Predicate, log zerolog.Logger) ([]Record, Statistics, error) {
	return ParseStream(strings.NewReader(string(data)), pred, log)
}

// NormalizeField strips leading and trailing spaces and tabs. Internal
// whitespace is preserved.
func NormalizeField(s string) string {
	return strings.Trim(s, " \t")
}

// IsCommentOrMetadata reports whether a line is skipped before field
// parsing: blank, comment, or a reserved metadata header.
func IsCommentOrMetadata(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return true
	}
	for _, p := range metadataPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
