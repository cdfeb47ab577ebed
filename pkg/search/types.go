package search

import (
	"github.com/pkg/errors"
)

// Platform identifies a target recruiting platform.
type Platform string

const (
	// PlatformBoth generates searches for both platforms.
	PlatformBoth Platform = "both"
	// PlatformLinkedIn targets LinkedIn Recruiter Boolean search.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformDevelopmentAid targets DevelopmentAid search.
	PlatformDevelopmentAid Platform = "developmentaid"
)

// Domain identifies an industry/domain used to bias generation.
type Domain string

const (
	// DomainAutoDetect lets the model detect the domain.
	DomainAutoDetect Domain = "auto_detect"
	// DomainSoftwareEngineering is the software engineering domain.
	DomainSoftwareEngineering Domain = "software_engineering"
	// DomainInternationalDevelopment is the international development domain.
	DomainInternationalDevelopment Domain = "international_development"
	// DomainFinance is the finance domain.
	DomainFinance Domain = "finance"
	// DomainHealthcare is the healthcare domain.
	DomainHealthcare Domain = "healthcare"
	// DomainConsulting is the consulting domain.
	DomainConsulting Domain = "consulting"
	// DomainGeneral is the catch-all domain.
	DomainGeneral Domain = "general"
)

// Tier identifies a search breadth level, trading result volume for specificity.
type Tier string

const (
	// TierBroad targets 300-1000+ results.
	TierBroad Tier = "broad"
	// TierPrimary targets 100-500 results.
	TierPrimary Tier = "primary"
	// TierFocused targets 50-200 results.
	TierFocused Tier = "focused"
	// TierUltraSpecific targets 10-50 results.
	TierUltraSpecific Tier = "ultra_specific"
)

// Tiers lists all tiers from broadest to narrowest.
//
//nolint:gochecknoglobals // Fixed enumeration
var Tiers = []Tier{TierBroad, TierPrimary, TierFocused, TierUltraSpecific}

// Platforms lists all valid platform selections.
//
//nolint:gochecknoglobals // Fixed enumeration
var Platforms = []Platform{PlatformBoth, PlatformLinkedIn, PlatformDevelopmentAid}

// Domains lists all valid domain selections.
//
//nolint:gochecknoglobals // Fixed enumeration
var Domains = []Domain{
	DomainAutoDetect,
	DomainSoftwareEngineering,
	DomainInternationalDevelopment,
	DomainFinance,
	DomainHealthcare,
	DomainConsulting,
	DomainGeneral,
}

// ParsePlatform validates a platform string.
func ParsePlatform(s string) (platform Platform, err error) {
	for _, p := range Platforms {
		if string(p) == s {
			platform = p
			return platform, err
		}
	}
	err = errors.Errorf("invalid platform %q: must be one of both, linkedin, developmentaid", s)
	return platform, err
}

// ParseDomain validates a domain string.
func ParseDomain(s string) (domain Domain, err error) {
	for _, d := range Domains {
		if string(d) == s {
			domain = d
			return domain, err
		}
	}
	err = errors.Errorf("invalid domain %q", s)
	return domain, err
}

// GenerationConfig holds the caller's configuration for one generation request.
// Constructed once per request, never mutated.
type GenerationConfig struct {
	Platform          Platform `json:"platform"`
	Domain            Domain   `json:"domain"`
	IncludeLocation   bool     `json:"include_location"`
	IncludeSeniority  bool     `json:"include_seniority"`
	IncludeVariations bool     `json:"include_variations"`
}

// TierSearch is one generated search string with its rationale and the model's
// own result estimate.
type TierSearch struct {
	Search           string `json:"search"`
	Rationale        string `json:"rationale"`
	EstimatedResults string `json:"estimated_results"`
}

// Analysis holds the requirements the model extracted from the job description.
type Analysis struct {
	CoreSkills      []string `json:"coreSkills"`
	SecondarySkills []string `json:"secondarySkills"`
	JobTitles       []string `json:"jobTitles"`
	SeniorityLevel  string   `json:"seniorityLevel"`
	KeyEvidence     []string `json:"keyEvidence"`
}

// SynonymSet maps one requirement to its formal terms, profile-language
// phrasings, evidence terms, and a precomposed OR clause.
type SynonymSet struct {
	Formal           []string `json:"formal"`
	ProfileLanguage  []string `json:"profile_language"`
	Evidence         []string `json:"evidence"`
	CombinedORClause string   `json:"combined_or_clause"`
}

// GeneratedAnalysis is the parsed model output for one generation call. A new
// generation replaces it wholesale; it is never partially updated.
type GeneratedAnalysis struct {
	DomainDetected         string                `json:"domain_detected"`
	Analysis               Analysis              `json:"analysis"`
	ContextualSynonyms     map[string]SynonymSet `json:"contextualSynonyms"`
	LinkedInSearches       map[Tier]TierSearch   `json:"linkedinSearches"`
	DevelopmentAidSearches map[Tier]TierSearch   `json:"developmentaidSearches"`
	SearchStrategy         string                `json:"searchStrategy"`
	Warnings               []string              `json:"warnings"`
	ManualReviewTips       []string              `json:"manualReviewTips"`
}
