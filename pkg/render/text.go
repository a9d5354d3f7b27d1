package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marslog/pkg/mission"
)

var titleCaser = cases.Title(language.English)

// Text renders the report as human-readable output. The compact form
// prints the security code and mission length per record; verbose
// prints every field.
type Text struct {
	theme   Theme
	verbose bool
}

// NewText creates a text renderer with the given theme.
func NewText(theme Theme, verbose bool) *Text {
	return &Text{theme: theme, verbose: verbose}
}

// Render formats the ranked records for terminal display.
func (t *Text) Render(r Report) string {
	var sb strings.Builder

	if t.verbose {
		sb.WriteString(t.theme.Bold.Render(Headline(r)))
		sb.WriteString("\n")
	}

	for i, rec := range r.Records {
		if len(r.Records) > 1 {
			sb.WriteString("\n")
			sb.WriteString(t.theme.Bold.Render(fmt.Sprintf("--- Rank #%d ---", i+1)))
			sb.WriteString("\n")
		}
		if t.verbose {
			t.writeRows(&sb, FieldRows(rec))
		} else {
			t.writeRows(&sb, [][2]string{
				{"Security Code", rec.SecurityCode},
				{"Mission Length", fmt.Sprintf("%d days", rec.DurationDays)},
			})
		}
	}
	return sb.String()
}

func (t *Text) writeRows(sb *strings.Builder, rows [][2]string) {
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}
	for _, row := range rows {
		label := runewidth.FillRight(row[0]+":", width+1)
		sb.WriteString(t.theme.Muted.Render(label))
		sb.WriteString(" ")
		sb.WriteString(t.theme.Primary.Render(row[1]))
		sb.WriteString("\n")
	}
}

// FieldRows returns every record field as label/value pairs, in the
// order the log carries them.
func FieldRows(rec mission.Record) [][2]string {
	return [][2]string{
		{"Date", rec.Date},
		{"Mission ID", rec.MissionID},
		{"Destination", rec.Destination},
		{"Status", rec.Status},
		{"Crew Size", rec.CrewSize},
		{"Duration", fmt.Sprintf("%d days", rec.DurationDays)},
		{"Success Rate", rec.SuccessRate + "%"},
		{"Security Code", rec.SecurityCode},
		{"Found at line", fmt.Sprintf("%d", rec.Line)},
	}
}

// Headline builds a title from the query predicate, e.g.
// "Top 3 Completed Mars Missions".
func Headline(r Report) string {
	noun := "Missions"
	if len(r.Records) == 1 {
		noun = "Mission"
	}
	return fmt.Sprintf("Top %d %s %s %s",
		len(r.Records),
		titleCaser.String(r.Query.Status),
		titleCaser.String(r.Query.Destination),
		noun)
}
