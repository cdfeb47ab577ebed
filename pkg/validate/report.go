// Package validate provides deterministic syntax checks and a heuristic result
// estimator for the two supported search dialects. All functions are pure:
// reports are recomputed from the input string on every call, never persisted.
package validate

import (
	"math"
)

// Report holds the findings for one search string. Valid is true iff Issues is
// empty; Warnings never affect validity.
type Report struct {
	Valid           bool     `json:"valid"`
	Issues          []string `json:"issues"`
	Warnings        []string `json:"warnings"`
	ComplexityScore float64  `json:"complexity_score"`
	AndCount        int      `json:"and_count"`
	OrCount         int      `json:"or_count"`
	TitleCount      int      `json:"title_count,omitempty"`
	NotCount        int      `json:"not_count,omitempty"`
	Length          int      `json:"length"`
}

// Estimate is a heuristic result-count projection derived from a Report's
// operator counts and length. It is an approximation, not a real query: no
// guarantee about actual platform result counts should be read into it.
type Estimate struct {
	EstimatedRange string  `json:"estimated_range"`
	Score          float64 `json:"score"`
	Quality        string  `json:"quality"`
}

// roundOne rounds to one decimal place.
func roundOne(x float64) (rounded float64) {
	rounded = math.Round(x*10) / 10
	return rounded
}
