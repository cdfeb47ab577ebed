package llm

import (
	"fmt"

	"github.com/nikogura/search-tailor/pkg/search"
)

// maxJobTextChars bounds the job description embedded in a prompt. Longer text
// is silently truncated.
const maxJobTextChars = 15000

// systemPrompt sets the model's role for every generation call.
const systemPrompt = "You are an expert recruiter specializing in creating effective Boolean search strings. " +
	"You understand the critical importance of simple searches that return results."

// buildSearchPrompt composes the full generation prompt: simplicity
// philosophy, platform syntax rules, domain context, tiered strategy, caller
// configuration, the (truncated) job text, and the literal JSON output
// contract. Pure string composition; never fails.
//
//nolint:funlen // Prompt template
func buildSearchPrompt(jobText string, cfg search.GenerationConfig) (prompt string) {
	domainContext := search.DomainContext(cfg.Domain)

	if len(jobText) > maxJobTextChars {
		jobText = jobText[:maxJobTextChars]
	}

	prompt = fmt.Sprintf(`You are an expert recruiter who creates EFFECTIVE search strings that actually return results.

# CRITICAL PHILOSOPHY: SIMPLER IS BETTER

The biggest mistake in Boolean search is over-engineering. Each restriction cuts results by 50-80%%.

## LinkedIn Reality Check:
- Each AND operator = 50-70%% reduction in results
- title: operator = 80%% reduction in results
- Exact phrases = 40%% reduction in results
- Perfect match search with 5 ANDs = 0-20 results
- Simple search with 2 ANDs = 200-500 results

## DevelopmentAid Reality Check:
- Focus on sector keywords and donor experience
- Use boost operator (^) to prioritize key terms
- Include geographic context
- Broader searches work better than narrow ones

# PLATFORM SYNTAX:

## LinkedIn Recruiter:
- AND, OR, NOT (must be UPPERCASE)
- Quotes for exact phrases: "Machine Learning"
- Parentheses for grouping: (Python OR Java)
- title: operator (use sparingly!)
- Maximum 3 AND operators in primary search
- Maximum 5 AND operators even in focused search

## DevelopmentAid:
- AND: + or space (space is assumed AND)
- OR: | or comma ,
- NOT: - (minus)
- Exact phrase: "water sanitation"
- Grouping: (water|sanitation) + (project|programme)
- Wildcard: financ* (finds finance, financial, financing)
- Boost: term^5 (must use with OR: (water)^10 | sanitation)
- Example: (WASH|"water sanitation")^10 | (M&E)^8 + (USAID|"World Bank")

# YOUR TASK:

Analyze the job description and create SIMPLE, EFFECTIVE searches.

%s

## Step 1: Extract Core Requirements

Identify:
1. **2-3 Core Skills** (absolute must-haves that define the role)
2. **3-5 Secondary Skills** (nice-to-haves for filtering)
3. **5-10 Job Title Variations** (be creative!)
4. **Evidence Terms** (tools/outputs that prove skills)

## Step 2: Generate Context-Aware Synonyms

For each core skill, provide:
- **Formal terms**: Professional/academic language
- **Profile phrases**: How people actually describe doing this work
- **Evidence terms**: Tools, outputs, certifications that prove it

Example:
Requirement: "Machine Learning"
- Formal: "Machine Learning", "ML", "Artificial Intelligence", "Data Science"
- Profile: "built ML models", "trained algorithms", "deployed models", "worked on AI"
- Evidence: "TensorFlow", "PyTorch", "scikit-learn", "model deployment"

## Step 3: Create Tiered Searches

Generate 4 search tiers:

1. **broad** (300-1000 results): 1-2 core concepts, mostly OR variations
2. **primary** (100-500 results): Add one critical filter
3. **focused** (50-200 results): Add niche requirements
4. **ultra_specific** (10-50 results): Kitchen sink for perfect matches

## Search Building Formula:

**LinkedIn:**
Broad: (skill1 OR skill2 OR skill3)
Primary: (skill1 OR skill2 OR skill3) AND (role1 OR role2 OR role3)
Focused: (skill1 OR skill2 OR skill3) AND (role1 OR role2 OR role3) AND (evidence1 OR evidence2)
Ultra_specific: Add location, seniority, or more evidence

**DevelopmentAid:**
Broad: (sector1|sector2)^10 | (sector3)^8
Primary: (sector1|sector2)^10 | (sector3) + (donor1|donor2)
Focused: (sector1|sector2)^10 + (donor1|donor2) + (geography1|geography2)
Ultra_specific: Add specific technical skills or certifications

# CONFIGURATION:
- Platform: %s
- Domain: %s
- Include location: %t
- Include seniority: %t
- Include variations: %t

# JOB DESCRIPTION:
%s

# OUTPUT FORMAT (JSON):

{
  "domain_detected": "Detected domain/industry",

  "analysis": {
    "coreSkills": ["2-3 absolute must-haves"],
    "secondarySkills": ["3-5 nice-to-haves"],
    "jobTitles": ["5-10 title variations"],
    "seniorityLevel": "entry|mid|senior|lead",
    "keyEvidence": ["Tools/outputs that prove skills"]
  },

  "contextualSynonyms": {
    "SkillName": {
      "formal": ["Professional terms"],
      "profile_language": ["How people describe doing it"],
      "evidence": ["Tools/outputs"],
      "combined_or_clause": "(term1 OR term2 OR term3 OR tool1 OR tool2)"
    }
  },

  "linkedinSearches": {
    "broad": {
      "search": "Search string with 1-2 AND operators max",
      "rationale": "Why this structure",
      "estimated_results": "300-1000"
    },
    "primary": {
      "search": "Search string with 2-3 AND operators max",
      "rationale": "Why this structure",
      "estimated_results": "100-500"
    },
    "focused": {
      "search": "Search string with 3-4 AND operators max",
      "rationale": "Why this structure",
      "estimated_results": "50-200"
    },
    "ultra_specific": {
      "search": "Kitchen sink search",
      "rationale": "For perfect matches only",
      "estimated_results": "10-50"
    }
  },

  "developmentaidSearches": {
    "broad": {
      "search": "Simple sector search with boost",
      "rationale": "Why this structure",
      "estimated_results": "200-800"
    },
    "primary": {
      "search": "Sector + donor/geography",
      "rationale": "Why this structure",
      "estimated_results": "80-300"
    },
    "focused": {
      "search": "Sector + donor + specific skills",
      "rationale": "Why this structure",
      "estimated_results": "30-150"
    },
    "ultra_specific": {
      "search": "All criteria with wildcards",
      "rationale": "For exact matches",
      "estimated_results": "10-50"
    }
  },

  "searchStrategy": "2-3 sentences explaining the overall approach",
  "warnings": ["Any concerns about search difficulty"],
  "manualReviewTips": ["What to look for when reviewing results"]
}

# QUALITY CHECKLIST:

LinkedIn:
- Maximum 3 AND operators in primary search
- Each OR group has 3-5 variations
- Includes both formal terms and profile language
- Evidence terms (tools) included
- Avoid or minimize title: operator usage

DevelopmentAid:
- Uses correct syntax: +, |, -, not AND/OR/NOT
- Boost operator (^) used with key terms
- Includes sector-specific terminology
- Includes donor/geography context
- Wildcard (*) used for term variations

Generate searches that WILL RETURN RESULTS, not perfect theoretical matches!`,
		domainContext,
		cfg.Platform, cfg.Domain,
		cfg.IncludeLocation, cfg.IncludeSeniority, cfg.IncludeVariations,
		jobText)

	return prompt
}
