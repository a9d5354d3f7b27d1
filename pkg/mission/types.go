// Package mission implements the single-pass mission log pipeline:
// skip rules, field normalization, record validation, predicate
// classification, and statistics aggregation.
package mission

// Record is one validated mission entry. A Record is only constructed
// after the field-count, predicate, duration, and security-code checks
// all pass, and is immutable afterwards.
type Record struct {
	Date         string `json:"date"`
	MissionID    string `json:"mission_id"`
	Destination  string `json:"destination"`
	Status       string `json:"status"`
	CrewSize     string `json:"crew_size"`
	DurationDays int    `json:"duration_days"`
	SuccessRate  string `json:"success_rate"`
	SecurityCode string `json:"security_code"`
	Line         int    `json:"line_number"` // 1-based position in the input
}

// Statistics accumulates counters across one pass. Per-line errors are
// additive only; they never abort the pass.
type Statistics struct {
	TotalLines        int `json:"total_lines"`
	DataLines         int `json:"data_lines"`
	CategoryMatches   int `json:"category_matches"`
	QualifyingMatches int `json:"qualifying_matches"`
	ValidCount        int `json:"valid_count"`
	Errors            int `json:"errors"`
}

// FailureReason describes the furthest stage reached when a pass ends
// with zero valid records. Only meaningful when ValidCount == 0.
func (s Statistics) FailureReason() string {
	switch {
	case s.DataLines == 0:
		return "no data lines processed"
	case s.CategoryMatches == 0:
		return "no matching-category missions found"
	case s.QualifyingMatches == 0:
		return "matches found but none with qualifying status"
	default:
		return "qualifying records found but all had invalid data"
	}
}
