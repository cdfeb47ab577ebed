package llm

import (
	"encoding/json"
	"strings"

	"github.com/nikogura/search-tailor/pkg/search"
	"github.com/tidwall/gjson"
)

// rawAnalysis mirrors GeneratedAnalysis with the per-tier search maps left as
// raw JSON, so entries that arrive as bare strings instead of objects can be
// normalized at the parse boundary.
type rawAnalysis struct {
	DomainDetected         string                          `json:"domain_detected"`
	Analysis               search.Analysis                 `json:"analysis"`
	ContextualSynonyms     map[string]search.SynonymSet    `json:"contextualSynonyms"`
	LinkedInSearches       map[search.Tier]json.RawMessage `json:"linkedinSearches"`
	DevelopmentAidSearches map[search.Tier]json.RawMessage `json:"developmentaidSearches"`
	SearchStrategy         string                          `json:"searchStrategy"`
	Warnings               []string                        `json:"warnings"`
	ManualReviewTips       []string                        `json:"manualReviewTips"`
}

// parseAnalysis recovers a GeneratedAnalysis from the model's response text.
// Strict parse first; if that fails, retry on the outermost brace-delimited
// substring, which recovers the common case of JSON wrapped in prose. The
// fallback is lossy: it can misfire on unrelated braces in free text. If both
// attempts fail, the raw body is returned inside a ResponseFormatError.
func parseAnalysis(body string) (analysis search.GeneratedAnalysis, err error) {
	candidate := stripMarkdownCodeFences(body)

	var raw rawAnalysis
	parseErr := json.Unmarshal([]byte(candidate), &raw)
	if parseErr != nil {
		start := strings.Index(candidate, "{")
		end := strings.LastIndex(candidate, "}")
		if start == -1 || end <= start {
			err = &ResponseFormatError{Raw: body}
			return analysis, err
		}

		candidate = candidate[start : end+1]
		raw = rawAnalysis{}
		parseErr = json.Unmarshal([]byte(candidate), &raw)
		if parseErr != nil {
			err = &ResponseFormatError{Raw: body}
			return analysis, err
		}
	}

	analysis = search.GeneratedAnalysis{
		DomainDetected:         raw.DomainDetected,
		Analysis:               raw.Analysis,
		ContextualSynonyms:     raw.ContextualSynonyms,
		LinkedInSearches:       normalizeTiers(raw.LinkedInSearches),
		DevelopmentAidSearches: normalizeTiers(raw.DevelopmentAidSearches),
		SearchStrategy:         raw.SearchStrategy,
		Warnings:               raw.Warnings,
		ManualReviewTips:       raw.ManualReviewTips,
	}

	analysis.Warnings = append(analysis.Warnings, schemaWarnings(candidate)...)

	return analysis, err
}

// normalizeTiers canonicalizes tier entries into the
// {search, rationale, estimated_results} shape. The model occasionally emits
// a bare search string where an object is expected; downstream code should
// never have to handle that.
func normalizeTiers(raw map[search.Tier]json.RawMessage) (tiers map[search.Tier]search.TierSearch) {
	if raw == nil {
		return tiers
	}

	tiers = make(map[search.Tier]search.TierSearch, len(raw))
	for tier, message := range raw {
		result := gjson.ParseBytes(message)
		if result.Type == gjson.String {
			tiers[tier] = search.TierSearch{Search: result.String()}
			continue
		}

		var tierSearch search.TierSearch
		unmarshalErr := json.Unmarshal(message, &tierSearch)
		if unmarshalErr != nil {
			continue
		}
		tiers[tier] = tierSearch
	}

	return tiers
}

// stripMarkdownCodeFences removes markdown code fences from JSON responses.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}

	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}
