// Package export renders a generated analysis to its JSON and plain-text
// output formats and writes them to disk.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nikogura/search-tailor/pkg/search"
	"github.com/pkg/errors"
)

// JSON renders the full analysis as indented JSON.
func JSON(analysis search.GeneratedAnalysis) (data []byte, err error) {
	data, err = json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal analysis")
		return data, err
	}
	return data, err
}

// Text renders a human-readable summary: strategy, detected domain, each
// platform's searches in tier order, and the manual review tips.
func Text(analysis search.GeneratedAnalysis) (out string) {
	var b strings.Builder

	b.WriteString("# Job Search Strings Generated\n\n")
	b.WriteString("## Strategy\n")
	b.WriteString(analysis.SearchStrategy)
	b.WriteString("\n\n")

	domain := analysis.DomainDetected
	if domain == "" {
		domain = "General"
	}
	b.WriteString("## Domain: " + domain + "\n\n")

	if len(analysis.LinkedInSearches) > 0 {
		b.WriteString("\n## LinkedIn Recruiter Searches\n\n")
		writeTiers(&b, analysis.LinkedInSearches)
	}

	if len(analysis.DevelopmentAidSearches) > 0 {
		b.WriteString("\n## DevelopmentAid Searches\n\n")
		writeTiers(&b, analysis.DevelopmentAidSearches)
	}

	if len(analysis.ManualReviewTips) > 0 {
		b.WriteString("\n## Manual Review Tips\n")
		for _, tip := range analysis.ManualReviewTips {
			b.WriteString("- " + tip + "\n")
		}
	}

	out = b.String()
	return out
}

// writeTiers renders each present tier from broadest to narrowest.
func writeTiers(b *strings.Builder, tiers map[search.Tier]search.TierSearch) {
	for _, tier := range search.Tiers {
		tierSearch, ok := tiers[tier]
		if !ok {
			continue
		}
		b.WriteString("### " + tierTitle(tier) + "\n")
		b.WriteString(tierSearch.Search)
		b.WriteString("\n\n")
	}
}

// tierTitle converts a tier identifier like "ultra_specific" to "Ultra Specific".
func tierTitle(tier search.Tier) (title string) {
	words := strings.Split(string(tier), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	title = strings.Join(words, " ")
	return title
}

// Write renders both formats into outputDir under a unique run identifier and
// returns the paths written.
func Write(analysis search.GeneratedAnalysis, outputDir string) (jsonPath string, textPath string, err error) {
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return jsonPath, textPath, err
	}

	runID := uuid.New().String()

	var data []byte
	data, err = JSON(analysis)
	if err != nil {
		return jsonPath, textPath, err
	}

	jsonPath = filepath.Join(outputDir, "search_strings_"+runID+".json")
	err = os.WriteFile(jsonPath, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write JSON export: %s", jsonPath)
		return jsonPath, textPath, err
	}

	textPath = filepath.Join(outputDir, "search_strings_"+runID+".txt")
	err = os.WriteFile(textPath, []byte(Text(analysis)), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write text export: %s", textPath)
		return jsonPath, textPath, err
	}

	return jsonPath, textPath, err
}
