package render

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// csvHeader names the ten output columns, one per rendered field.
var csvHeader = []string{
	"Rank", "Date", "Mission ID", "Destination", "Status",
	"Crew Size", "Duration (days)", "Success Rate", "Security Code", "Line Number",
}

// CSV renders the report as a tabular document: one header row, one
// row per ranked record.
type CSV struct{}

// NewCSV creates a CSV renderer.
func NewCSV() *CSV {
	return &CSV{}
}

// Render formats the report as CSV.
func (c *CSV) Render(r Report) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write(csvHeader)
	for i, rec := range r.Records {
		_ = w.Write([]string{
			strconv.Itoa(i + 1),
			rec.Date,
			rec.MissionID,
			rec.Destination,
			rec.Status,
			rec.CrewSize,
			strconv.Itoa(rec.DurationDays),
			rec.SuccessRate,
			rec.SecurityCode,
			strconv.Itoa(rec.Line),
		})
	}
	w.Flush()
	return sb.String()
}
