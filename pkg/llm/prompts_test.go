package llm

import (
	"strings"
	"testing"

	"github.com/nikogura/search-tailor/pkg/search"
)

func TestBuildSearchPromptIncludesJobText(t *testing.T) {
	jobText := "We need a Senior Go Engineer with Kubernetes experience."
	cfg := search.GenerationConfig{
		Platform: search.PlatformBoth,
		Domain:   search.DomainAutoDetect,
	}

	prompt := buildSearchPrompt(jobText, cfg)

	if !strings.Contains(prompt, jobText) {
		t.Errorf("prompt does not contain the job description text")
	}
}

func TestBuildSearchPromptDomainContext(t *testing.T) {
	cases := []struct {
		name     string
		domain   search.Domain
		expected string
	}{
		{
			name:     "software engineering context",
			domain:   search.DomainSoftwareEngineering,
			expected: "## Software Engineering Context:",
		},
		{
			name:     "international development context",
			domain:   search.DomainInternationalDevelopment,
			expected: "## International Development Context:",
		},
		{
			name:     "finance context",
			domain:   search.DomainFinance,
			expected: "## Finance Context:",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := search.GenerationConfig{
				Platform: search.PlatformBoth,
				Domain:   tc.domain,
			}

			prompt := buildSearchPrompt("some job", cfg)

			if !strings.Contains(prompt, tc.expected) {
				t.Errorf("prompt missing domain context %q", tc.expected)
			}
		})
	}
}

func TestBuildSearchPromptAutoDetectHasNoContextBlock(t *testing.T) {
	cfg := search.GenerationConfig{
		Platform: search.PlatformBoth,
		Domain:   search.DomainAutoDetect,
	}

	prompt := buildSearchPrompt("some job", cfg)

	if strings.Contains(prompt, "Context:") {
		t.Errorf("auto-detect should not inject a domain context block")
	}
}

func TestBuildSearchPromptTruncatesLongJobText(t *testing.T) {
	marker := "ZZZENDMARKER"
	jobText := strings.Repeat("a", 20000) + marker

	cfg := search.GenerationConfig{
		Platform: search.PlatformLinkedIn,
		Domain:   search.DomainAutoDetect,
	}

	prompt := buildSearchPrompt(jobText, cfg)

	if strings.Contains(prompt, marker) {
		t.Errorf("text beyond the truncation limit leaked into the prompt")
	}

	if !strings.Contains(prompt, strings.Repeat("a", maxJobTextChars)) {
		t.Errorf("prompt should contain the first %d characters of the job text", maxJobTextChars)
	}

	if strings.Contains(prompt, strings.Repeat("a", maxJobTextChars+1)) {
		t.Errorf("prompt contains more than %d characters of the job text", maxJobTextChars)
	}
}

func TestBuildSearchPromptConfigurationSection(t *testing.T) {
	cfg := search.GenerationConfig{
		Platform:          search.PlatformDevelopmentAid,
		Domain:            search.DomainFinance,
		IncludeLocation:   true,
		IncludeSeniority:  false,
		IncludeVariations: true,
	}

	prompt := buildSearchPrompt("some job", cfg)

	expected := []string{
		"Platform: developmentaid",
		"Domain: finance",
		"Include location: true",
		"Include seniority: false",
		"Include variations: true",
	}

	for _, e := range expected {
		if !strings.Contains(prompt, e) {
			t.Errorf("prompt missing configuration line %q", e)
		}
	}
}

func TestBuildSearchPromptOutputContract(t *testing.T) {
	cfg := search.GenerationConfig{
		Platform: search.PlatformBoth,
		Domain:   search.DomainAutoDetect,
	}

	prompt := buildSearchPrompt("some job", cfg)

	keys := []string{
		`"domain_detected"`,
		`"analysis"`,
		`"contextualSynonyms"`,
		`"linkedinSearches"`,
		`"developmentaidSearches"`,
		`"searchStrategy"`,
		`"warnings"`,
		`"manualReviewTips"`,
	}

	for _, key := range keys {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt output contract missing key %s", key)
		}
	}

	tiers := []string{`"broad"`, `"primary"`, `"focused"`, `"ultra_specific"`}
	for _, tier := range tiers {
		if strings.Count(prompt, tier) < 2 {
			t.Errorf("prompt should describe tier %s for both platforms", tier)
		}
	}
}
