package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// lowercaseOperators matches lowercase boolean operators on word boundaries.
// LinkedIn requires AND/OR/NOT uppercase; "Anderson" does not match.
//
//nolint:gochecknoglobals // Compiled once
var lowercaseOperators = regexp.MustCompile(`\b(and|or|not)\b`)

// LinkedIn validates a LinkedIn Recruiter Boolean search string.
func LinkedIn(searchString string) (report Report) {
	issues := []string{}
	warnings := []string{}

	if lowercaseOperators.MatchString(searchString) {
		issues = append(issues, "Boolean operators must be UPPERCASE (AND, OR, NOT)")
	}

	if strings.Count(searchString, `"`)%2 != 0 {
		issues = append(issues, "Unmatched quotes detected")
	}

	if strings.Count(searchString, "(") != strings.Count(searchString, ")") {
		issues = append(issues, "Unmatched parentheses")
	}

	if len(searchString) > 1000 {
		warnings = append(warnings, "Search string very long (>1000 chars) - may be slow")
	}

	andCount := strings.Count(strings.ToUpper(searchString), " AND ")
	orCount := strings.Count(strings.ToUpper(searchString), " OR ")
	titleCount := strings.Count(strings.ToLower(searchString), "title:")

	// Each AND cuts results hard; title: even harder.
	complexityScore := float64(andCount)*2 + float64(orCount)*0.5 + float64(titleCount)*3

	if andCount > 4 {
		warnings = append(warnings, fmt.Sprintf("Too many AND operators (%d) - may be too restrictive", andCount))
	}

	if titleCount > 2 {
		warnings = append(warnings, fmt.Sprintf("Multiple title: operators (%d) - very restrictive", titleCount))
	}

	report = Report{
		Valid:           len(issues) == 0,
		Issues:          issues,
		Warnings:        warnings,
		ComplexityScore: roundOne(complexityScore),
		AndCount:        andCount,
		OrCount:         orCount,
		TitleCount:      titleCount,
		Length:          len(searchString),
	}
	return report
}

// EstimateLinkedIn projects a result-count band for a LinkedIn search string
// from its operator counts. Baseline 100, decayed per AND and per title:
// operator, with a penalty for long strings.
func EstimateLinkedIn(searchString string) (estimate Estimate) {
	report := LinkedIn(searchString)

	score := 100.0
	score *= math.Pow(0.35, float64(report.AndCount))
	score *= math.Pow(0.25, float64(report.TitleCount))

	if report.Length > 500 {
		score *= 0.7
	}

	var estimatedRange, quality string
	switch {
	case score > 50:
		estimatedRange = "500-2000+"
		quality = "good breadth"
	case score > 20:
		estimatedRange = "100-500"
		quality = "acceptable"
	case score > 5:
		estimatedRange = "20-100"
		quality = "may be restrictive"
	default:
		estimatedRange = "0-20"
		quality = "likely too restrictive"
	}

	estimate = Estimate{
		EstimatedRange: estimatedRange,
		Score:          roundOne(score),
		Quality:        quality,
	}
	return estimate
}
