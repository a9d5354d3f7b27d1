// Package render provides output renderers for ranked mission results.
package render

import "marslog/pkg/mission"

// Report is the payload handed to renderers: the ranked selection, the
// run statistics, and the predicate the records were matched against.
type Report struct {
	Records []mission.Record
	Stats   mission.Statistics
	Query   mission.Predicate
}

// Renderer converts a report to formatted output. Renderers produce
// only the payload; diagnostics stay on the error channel so JSON and
// CSV output remain parseable.
type Renderer interface {
	Render(r Report) string
}
