package render

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"marslog/pkg/mission"
)

func sampleReport() Report {
	return Report{
		Records: []mission.Record{
			{
				Date: "2041-03-01", MissionID: "M-77", Destination: "Mars",
				Status: "Completed", CrewSize: "4", DurationDays: 1629,
				SuccessRate: "98.2", SecurityCode: "XRT-421-ZQP", Line: 3,
			},
			{
				Date: "2042-05-09", MissionID: "M-81", Destination: "Mars",
				Status: "Completed", CrewSize: "6", DurationDays: 904,
				SuccessRate: "91.0", SecurityCode: "LHD-204-WQK", Line: 9,
			},
		},
		Stats: mission.Statistics{
			TotalLines: 12, DataLines: 10, CategoryMatches: 5,
			QualifyingMatches: 3, ValidCount: 2, Errors: 1,
		},
		Query: mission.Predicate{Destination: "mars", Status: "completed"},
	}
}

func TestJSON_Structure(t *testing.T) {
	out := NewJSON().Render(sampleReport())

	var doc struct {
		Statistics mission.Statistics `json:"statistics"`
		Missions   []map[string]any   `json:"missions"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Statistics.TotalLines != 12 || doc.Statistics.Errors != 1 {
		t.Errorf("unexpected statistics block: %+v", doc.Statistics)
	}
	if len(doc.Missions) != 2 {
		t.Fatalf("expected 2 missions, got %d", len(doc.Missions))
	}
	first := doc.Missions[0]
	if first["rank"].(float64) != 1 {
		t.Errorf("expected rank 1, got %v", first["rank"])
	}
	if first["security_code"] != "XRT-421-ZQP" {
		t.Errorf("unexpected security_code: %v", first["security_code"])
	}
	if first["line_number"].(float64) != 3 {
		t.Errorf("unexpected line_number: %v", first["line_number"])
	}
}

func TestCSV_HeaderAndRows(t *testing.T) {
	out := NewCSV().Render(sampleReport())

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := "Rank,Date,Mission ID,Destination,Status,Crew Size,Duration (days),Success Rate,Security Code,Line Number"
	if strings.Join(rows[0], ",") != wantHeader {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "1" || rows[1][8] != "XRT-421-ZQP" || rows[1][6] != "1629" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "2" || rows[2][9] != "9" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}

// CSV and JSON renderings of the same report must carry identical
// field values for every record.
func TestCSVAndJSON_CrossFormatConsistency(t *testing.T) {
	report := sampleReport()

	var doc struct {
		Missions []struct {
			Rank int `json:"rank"`
			mission.Record
		} `json:"missions"`
	}
	if err := json.Unmarshal([]byte(NewJSON().Render(report)), &doc); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(strings.NewReader(NewCSV().Render(report))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	for i, m := range doc.Missions {
		row := rows[i+1]
		if row[0] != strconv.Itoa(m.Rank) ||
			row[1] != m.Date ||
			row[2] != m.MissionID ||
			row[3] != m.Destination ||
			row[4] != m.Status ||
			row[5] != m.CrewSize ||
			row[6] != strconv.Itoa(m.DurationDays) ||
			row[7] != m.SuccessRate ||
			row[8] != m.SecurityCode ||
			row[9] != strconv.Itoa(m.Line) {
			t.Errorf("record %d differs between CSV and JSON: %v vs %+v", i, row, m)
		}
	}
}

func TestText_CompactShowsCodeAndLength(t *testing.T) {
	out := NewText(MonoTheme(), false).Render(sampleReport())

	if !strings.Contains(out, "Security Code:") || !strings.Contains(out, "XRT-421-ZQP") {
		t.Errorf("missing security code; got:\n%s", out)
	}
	if !strings.Contains(out, "1629 days") {
		t.Errorf("missing mission length; got:\n%s", out)
	}
	if !strings.Contains(out, "--- Rank #1 ---") || !strings.Contains(out, "--- Rank #2 ---") {
		t.Errorf("missing rank separators; got:\n%s", out)
	}
	if strings.Contains(out, "Crew Size") {
		t.Errorf("compact mode leaked verbose fields; got:\n%s", out)
	}
}

func TestText_SingleRecordHasNoRankSeparator(t *testing.T) {
	report := sampleReport()
	report.Records = report.Records[:1]

	out := NewText(MonoTheme(), false).Render(report)

	if strings.Contains(out, "Rank #") {
		t.Errorf("unexpected rank separator for single result:\n%s", out)
	}
}

func TestText_VerboseShowsEveryField(t *testing.T) {
	out := NewText(MonoTheme(), true).Render(sampleReport())

	for _, want := range []string{
		"Top 2 Completed Mars Missions",
		"Date:", "2041-03-01",
		"Mission ID:", "M-77",
		"Destination:", "Mars",
		"Status:", "Completed",
		"Crew Size:", "4",
		"Duration:", "1629 days",
		"Success Rate:", "98.2%",
		"Security Code:", "XRT-421-ZQP",
		"Found at line:", "3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q; got:\n%s", want, out)
		}
	}
}

func TestText_MonoThemeHasNoANSI(t *testing.T) {
	out := NewText(MonoTheme(), true).Render(sampleReport())
	if strings.Contains(out, "\033[") {
		t.Error("mono theme output contains ANSI escape codes")
	}
}

func TestHeadline_TitleCasesPredicate(t *testing.T) {
	report := sampleReport()
	report.Records = report.Records[:1]
	report.Query = mission.Predicate{Destination: "europa", Status: "active"}

	if got := Headline(report); got != "Top 1 Active Europa Mission" {
		t.Errorf("unexpected headline: %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("orca").Name != "orca" {
		t.Error("expected orca theme")
	}
	if ThemeByName("mono").Name != "mono" {
		t.Error("expected mono theme")
	}
	if ThemeByName("unknown").Name != "default" {
		t.Error("expected fallback to default theme")
	}
}
