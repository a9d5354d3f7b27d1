package render

import (
	"encoding/json"

	"marslog/pkg/mission"
)

// JSON renders the report as a structured document for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonMission struct {
	Rank int `json:"rank"`
	mission.Record
}

// jsonOutput is the top-level JSON structure: a statistics block plus
// the ranked missions.
type jsonOutput struct {
	Statistics mission.Statistics `json:"statistics"`
	Missions   []jsonMission      `json:"missions"`
}

// Render formats the report as indented JSON.
func (j *JSON) Render(r Report) string {
	out := jsonOutput{
		Statistics: r.Stats,
		Missions:   make([]jsonMission, 0, len(r.Records)),
	}
	for i, rec := range r.Records {
		out.Missions = append(out.Missions, jsonMission{Rank: i + 1, Record: rec})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
