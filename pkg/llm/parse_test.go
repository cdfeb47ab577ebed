package llm

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nikogura/search-tailor/pkg/search"
)

const sampleAnalysisJSON = `{
  "domain_detected": "Software Engineering",
  "analysis": {
    "coreSkills": ["Go", "Kubernetes"],
    "secondarySkills": ["PostgreSQL", "gRPC"],
    "jobTitles": ["Software Engineer", "Backend Engineer", "SWE"],
    "seniorityLevel": "senior",
    "keyEvidence": ["Docker", "Terraform"]
  },
  "contextualSynonyms": {
    "Go": {
      "formal": ["Go", "Golang"],
      "profile_language": ["built services in Go"],
      "evidence": ["goroutines", "gRPC"],
      "combined_or_clause": "(Go OR Golang OR gRPC)"
    }
  },
  "linkedinSearches": {
    "broad": {
      "search": "(Go OR Golang)",
      "rationale": "Core skill only",
      "estimated_results": "300-1000"
    },
    "primary": {
      "search": "(Go OR Golang) AND (Kubernetes OR K8s)",
      "rationale": "Add the critical filter",
      "estimated_results": "100-500"
    },
    "focused": {
      "search": "(Go OR Golang) AND (Kubernetes OR K8s) AND (Docker OR Terraform)",
      "rationale": "Add evidence terms",
      "estimated_results": "50-200"
    },
    "ultra_specific": {
      "search": "(Go OR Golang) AND (Kubernetes OR K8s) AND (Docker OR Terraform) AND senior",
      "rationale": "Perfect matches only",
      "estimated_results": "10-50"
    }
  },
  "developmentaidSearches": {
    "broad": {
      "search": "(software|engineering)^10",
      "rationale": "Sector keywords",
      "estimated_results": "200-800"
    },
    "primary": {
      "search": "(software|engineering)^10 + (golang|go)",
      "rationale": "Sector plus skill",
      "estimated_results": "80-300"
    },
    "focused": {
      "search": "(software|engineering)^10 + (golang|go) + (kubernetes)",
      "rationale": "Narrowed further",
      "estimated_results": "30-150"
    },
    "ultra_specific": {
      "search": "(software|engineering)^10 + (golang|go) + (kubernetes) + senior",
      "rationale": "Exact matches",
      "estimated_results": "10-50"
    }
  },
  "searchStrategy": "Start broad on the core language and narrow with orchestration terms.",
  "warnings": [],
  "manualReviewTips": ["Look for production Kubernetes experience."]
}`

func TestParseAnalysisCleanJSON(t *testing.T) {
	analysis, err := parseAnalysis(sampleAnalysisJSON)
	if err != nil {
		t.Fatalf("failed to parse clean JSON: %v", err)
	}

	if analysis.DomainDetected != "Software Engineering" {
		t.Errorf("domain: got %q", analysis.DomainDetected)
	}

	if len(analysis.Analysis.CoreSkills) != 2 {
		t.Errorf("core skills: got %d, want 2", len(analysis.Analysis.CoreSkills))
	}

	for _, tier := range search.Tiers {
		if _, ok := analysis.LinkedInSearches[tier]; !ok {
			t.Errorf("linkedin searches missing tier %q", tier)
		}
		if _, ok := analysis.DevelopmentAidSearches[tier]; !ok {
			t.Errorf("developmentaid searches missing tier %q", tier)
		}
	}

	broad := analysis.LinkedInSearches[search.TierBroad]
	if broad.Search != "(Go OR Golang)" {
		t.Errorf("broad search: got %q", broad.Search)
	}
	if broad.EstimatedResults != "300-1000" {
		t.Errorf("broad estimate: got %q", broad.EstimatedResults)
	}

	if len(analysis.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", analysis.Warnings)
	}
}

func TestParseAnalysisMarkdownFences(t *testing.T) {
	fenced := "```json\n" + sampleAnalysisJSON + "\n```"

	analysis, err := parseAnalysis(fenced)
	if err != nil {
		t.Fatalf("failed to parse fenced JSON: %v", err)
	}

	clean, err := parseAnalysis(sampleAnalysisJSON)
	if err != nil {
		t.Fatalf("failed to parse clean JSON: %v", err)
	}

	if !reflect.DeepEqual(analysis, clean) {
		t.Errorf("fenced result differs from clean result")
	}
}

func TestParseAnalysisProseWrapped(t *testing.T) {
	wrapped := "Here are your searches:\n" + sampleAnalysisJSON + "\nHope this helps!"

	analysis, err := parseAnalysis(wrapped)
	if err != nil {
		t.Fatalf("failed to recover JSON from prose: %v", err)
	}

	clean, err := parseAnalysis(sampleAnalysisJSON)
	if err != nil {
		t.Fatalf("failed to parse clean JSON: %v", err)
	}

	if !reflect.DeepEqual(analysis, clean) {
		t.Errorf("recovered result differs from clean result")
	}
}

func TestParseAnalysisStringTiers(t *testing.T) {
	doc := `{
  "domain_detected": "General",
  "analysis": {},
  "contextualSynonyms": {},
  "linkedinSearches": {
    "broad": "(Go OR Golang)",
    "primary": {"search": "(Go OR Golang) AND Kubernetes", "rationale": "r", "estimated_results": "100-500"}
  },
  "developmentaidSearches": {},
  "searchStrategy": "s",
  "warnings": [],
  "manualReviewTips": []
}`

	analysis, err := parseAnalysis(doc)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	broad := analysis.LinkedInSearches[search.TierBroad]
	if broad.Search != "(Go OR Golang)" {
		t.Errorf("bare string tier not normalized: got %q", broad.Search)
	}
	if broad.Rationale != "" {
		t.Errorf("bare string tier should have empty rationale, got %q", broad.Rationale)
	}

	primary := analysis.LinkedInSearches[search.TierPrimary]
	if primary.Search != "(Go OR Golang) AND Kubernetes" {
		t.Errorf("object tier mangled: got %q", primary.Search)
	}
}

func TestParseAnalysisSchemaWarnings(t *testing.T) {
	doc := `{"domain_detected": "General", "linkedinSearches": {}}`

	analysis, err := parseAnalysis(doc)
	if err != nil {
		t.Fatalf("incomplete but valid JSON should still parse: %v", err)
	}

	if len(analysis.Warnings) == 0 {
		t.Errorf("expected schema warnings for missing required keys")
	}
}

func TestParseAnalysisUnparseable(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "no json at all",
			body: "I cannot produce searches for this input.",
		},
		{
			name: "broken json",
			body: "{ this is not valid json }",
		},
		{
			name: "empty body",
			body: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAnalysis(tc.body)
			if err == nil {
				t.Fatalf("expected an error")
			}

			var formatErr *ResponseFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected ResponseFormatError, got %T", err)
			}

			if formatErr.Raw != tc.body {
				t.Errorf("Raw should carry the original body")
			}
		})
	}
}

func TestStripMarkdownCodeFences(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "plain fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "no fence",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stripMarkdownCodeFences(tc.input)
			if got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestParseAnalysisDevAidBoostSyntaxSurvives(t *testing.T) {
	analysis, err := parseAnalysis(sampleAnalysisJSON)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	broad := analysis.DevelopmentAidSearches[search.TierBroad]
	if !strings.Contains(broad.Search, "^10") {
		t.Errorf("boost operator lost in parsing: %q", broad.Search)
	}
}
