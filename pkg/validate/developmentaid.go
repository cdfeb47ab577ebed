package validate

import (
	"regexp"
	"strings"
)

// uppercaseOperators matches LinkedIn-style boolean operators, which
// DevelopmentAid replaces with +, | and -.
//
//nolint:gochecknoglobals // Compiled once
var uppercaseOperators = regexp.MustCompile(`\b(AND|OR|NOT)\b`)

// prefixWildcard matches a * immediately followed by word characters. Only the
// suffix form (financ*) is legal in this dialect.
//
//nolint:gochecknoglobals // Compiled once
var prefixWildcard = regexp.MustCompile(`\*\w+`)

// quotedWildcard matches a * inside a quoted phrase.
//
//nolint:gochecknoglobals // Compiled once
var quotedWildcard = regexp.MustCompile(`"[^"]*\*[^"]*"`)

// DevelopmentAid validates a DevelopmentAid search string. The dialect uses
// + (or space) for AND, | (or comma) for OR, - for NOT, trailing * wildcards,
// and a ^weight boost that only makes sense alongside an OR grouping.
func DevelopmentAid(searchString string) (report Report) {
	issues := []string{}
	warnings := []string{}

	if uppercaseOperators.MatchString(searchString) {
		warnings = append(warnings, "Using uppercase AND/OR/NOT - DevelopmentAid uses +, |, - instead")
	}

	if strings.Count(searchString, `"`)%2 != 0 {
		issues = append(issues, "Unmatched quotes detected")
	}

	if strings.Count(searchString, "(") != strings.Count(searchString, ")") {
		issues = append(issues, "Unmatched parentheses")
	}

	if strings.Contains(searchString, "^") && !strings.Contains(searchString, "|") {
		warnings = append(warnings, "Boost operator ^ should be used with OR (|)")
	}

	if prefixWildcard.MatchString(searchString) {
		issues = append(issues, "Wildcard * cannot be used before word stem (e.g., *finance is invalid)")
	}

	if quotedWildcard.MatchString(searchString) {
		issues = append(issues, "Wildcard * cannot be used inside quoted phrases")
	}

	andCount := strings.Count(searchString, "+") + strings.Count(searchString, " AND ")
	orCount := strings.Count(searchString, "|") + strings.Count(searchString, " OR ")
	notCount := strings.Count(searchString, "-") + strings.Count(searchString, " NOT ")

	complexityScore := float64(andCount)*1.5 + float64(orCount)*0.3 + float64(notCount)*1

	report = Report{
		Valid:           len(issues) == 0,
		Issues:          issues,
		Warnings:        warnings,
		ComplexityScore: roundOne(complexityScore),
		AndCount:        andCount,
		OrCount:         orCount,
		NotCount:        notCount,
		Length:          len(searchString),
	}
	return report
}
