package llm

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// analysisSchema describes the document the model is asked to produce. Tier
// entries may legally be either a full object or a bare search string since
// both are normalized after parsing.
const analysisSchema = `{
  "type": "object",
  "required": [
    "domain_detected",
    "analysis",
    "contextualSynonyms",
    "linkedinSearches",
    "developmentaidSearches",
    "searchStrategy",
    "warnings",
    "manualReviewTips"
  ],
  "properties": {
    "domain_detected": {"type": "string"},
    "analysis": {
      "type": "object",
      "properties": {
        "coreSkills": {"type": "array", "items": {"type": "string"}},
        "secondarySkills": {"type": "array", "items": {"type": "string"}},
        "jobTitles": {"type": "array", "items": {"type": "string"}},
        "seniorityLevel": {"type": "string"},
        "keyEvidence": {"type": "array", "items": {"type": "string"}}
      }
    },
    "contextualSynonyms": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "formal": {"type": "array", "items": {"type": "string"}},
          "profile_language": {"type": "array", "items": {"type": "string"}},
          "evidence": {"type": "array", "items": {"type": "string"}},
          "combined_or_clause": {"type": "string"}
        }
      }
    },
    "linkedinSearches": {"$ref": "#/definitions/tierMap"},
    "developmentaidSearches": {"$ref": "#/definitions/tierMap"},
    "searchStrategy": {"type": "string"},
    "warnings": {"type": "array", "items": {"type": "string"}},
    "manualReviewTips": {"type": "array", "items": {"type": "string"}}
  },
  "definitions": {
    "tierMap": {
      "type": "object",
      "additionalProperties": {
        "oneOf": [
          {"type": "string"},
          {
            "type": "object",
            "required": ["search"],
            "properties": {
              "search": {"type": "string"},
              "rationale": {"type": "string"},
              "estimated_results": {"type": "string"}
            }
          }
        ]
      }
    }
  }
}`

// schemaWarnings validates a parsed response document against the expected
// shape and reports mismatches as human-readable warnings. Schema drift never
// fails a generation; the caller appends these to the analysis warnings.
func schemaWarnings(document string) (warnings []string) {
	schemaLoader := gojsonschema.NewStringLoader(analysisSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("response schema check skipped: %v", err))
		return warnings
	}

	if result.Valid() {
		return warnings
	}

	for _, resultErr := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("response schema: %s: %s", resultErr.Field(), resultErr.Description()))
	}

	return warnings
}
