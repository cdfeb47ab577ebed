package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nikogura/search-tailor/pkg/config"
	"github.com/nikogura/search-tailor/pkg/export"
	"github.com/nikogura/search-tailor/pkg/jd"
	"github.com/nikogura/search-tailor/pkg/llm"
	"github.com/nikogura/search-tailor/pkg/search"
	"github.com/nikogura/search-tailor/pkg/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var platform string

//nolint:gochecknoglobals // Cobra boilerplate
var domain string

//nolint:gochecknoglobals // Cobra boilerplate
var model string

//nolint:gochecknoglobals // Cobra boilerplate
var includeLocation bool

//nolint:gochecknoglobals // Cobra boilerplate
var includeSeniority bool

//nolint:gochecknoglobals // Cobra boilerplate
var includeVariations bool

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportFiles bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate <jd-file-or-url>",
	Short: "Generate Boolean search strings from a job description",
	Long: `Generate tiered Boolean search strings from a job description.

The job description can be provided as:
- A text, PDF, or Word file path (e.g., jd.txt, jd.pdf, jd.docx)
- A URL (e.g., https://example.com/jobs/123)

Example:
  search-tailor generate jd.txt
  search-tailor generate jd.pdf --platform linkedin --domain software_engineering
  search-tailor generate https://example.com/jobs/123 --export`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&platform, "platform", "", "Target platform: both, linkedin, developmentaid (default from config)")
	generateCmd.Flags().StringVar(&domain, "domain", "", "Domain hint: auto_detect, software_engineering, international_development, finance, healthcare, consulting, general (default from config)")
	generateCmd.Flags().StringVar(&model, "model", "", "OpenAI model to use (default from config)")
	generateCmd.Flags().BoolVar(&includeLocation, "include-location", false, "Include location terms in searches")
	generateCmd.Flags().BoolVar(&includeSeniority, "include-seniority", false, "Include seniority terms in searches")
	generateCmd.Flags().BoolVar(&includeVariations, "include-variations", true, "Include job title variations")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory for exports (default from config)")
	generateCmd.Flags().BoolVar(&exportFiles, "export", false, "Write JSON and text exports to the output directory")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	jdInput := args[0]

	// Setup: load config, resolve generation options, fetch JD
	var cfg config.Config
	var genCfg search.GenerationConfig
	var jobText string
	var client *llm.Client
	cfg, genCfg, jobText, client, err = setupGeneration(jdInput)
	if err != nil {
		return err
	}

	var analysis search.GeneratedAnalysis
	analysis, err = runGenerationPhase(ctx, client, jobText, genCfg)
	if err != nil {
		return err
	}

	displayAnalysis(analysis, genCfg.Platform)

	if exportFiles {
		baseOutDir := getBaseOutputDir(cfg)

		var jsonPath string
		var textPath string
		jsonPath, textPath, err = export.Write(analysis, baseOutDir)
		if err != nil {
			return err
		}

		fmt.Printf("\nExports written:\n")
		fmt.Printf("  JSON: %s\n", jsonPath)
		fmt.Printf("  Text: %s\n", textPath)
	}

	return err
}

// setupGeneration handles initial setup: config loading, option resolution,
// and JD fetching.
func setupGeneration(jdInput string) (cfg config.Config, genCfg search.GenerationConfig, jobText string, client *llm.Client, err error) {
	// Load configuration
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, genCfg, jobText, client, err
	}

	// Resolve generation options from flags with config defaults
	genCfg, err = resolveGenerationConfig(cfg)
	if err != nil {
		return cfg, genCfg, jobText, client, err
	}

	// Resolve the model
	genModel := model
	if genModel == "" {
		genModel = cfg.GetModel()
	}
	if !llm.ModelAllowed(genModel) {
		err = errors.Errorf("model %q is not supported: must be one of %v", genModel, llm.AllowedModels)
		return cfg, genCfg, jobText, client, err
	}

	// Fetch job description
	jobText, err = fetchAndLogJD(jdInput)
	if err != nil {
		return cfg, genCfg, jobText, client, err
	}

	// Create client
	client = llm.NewClient(cfg.OpenAIAPIKey, genModel)

	return cfg, genCfg, jobText, client, err
}

// resolveGenerationConfig merges command flags over config defaults.
func resolveGenerationConfig(cfg config.Config) (genCfg search.GenerationConfig, err error) {
	platformStr := platform
	if platformStr == "" {
		platformStr = cfg.Defaults.Platform
	}

	genCfg.Platform, err = search.ParsePlatform(platformStr)
	if err != nil {
		return genCfg, err
	}

	domainStr := domain
	if domainStr == "" {
		domainStr = cfg.Defaults.Domain
	}

	genCfg.Domain, err = search.ParseDomain(domainStr)
	if err != nil {
		return genCfg, err
	}

	// Flags can enable what the config leaves off; --include-variations
	// defaults on and wins outright so it can be switched off.
	genCfg.IncludeLocation = includeLocation || cfg.Defaults.IncludeLocation
	genCfg.IncludeSeniority = includeSeniority || cfg.Defaults.IncludeSeniority
	genCfg.IncludeVariations = includeVariations

	return genCfg, err
}

func runGenerationPhase(ctx context.Context, client *llm.Client, jobText string, genCfg search.GenerationConfig) (analysis search.GeneratedAnalysis, err error) {
	// Show spinner during generation unless in verbose mode
	var genSpinner *spinner
	if !getVerbose() {
		genSpinner = newSpinner("Generating search strings with OpenAI API...")
		genSpinner.start()
	} else {
		fmt.Println("Generating search strings with OpenAI API...")
	}

	analysis, err = client.GenerateSearches(ctx, llm.SearchRequest{
		JobText: jobText,
		Config:  genCfg,
	})

	if genSpinner != nil {
		genSpinner.stopSpinner()
	}

	if err != nil {
		err = errors.Wrap(err, "OpenAI API generation failed")
		return analysis, err
	}

	if !getVerbose() {
		fmt.Println("✓ Generation complete")
	}

	logAnalysisResults(analysis)

	return analysis, err
}

func fetchAndLogJD(jdInput string) (jobText string, err error) {
	if getVerbose() {
		fmt.Printf("Loading job description from: %s\n", jdInput)
	}

	jobText, err = jd.Fetch(jdInput)
	if err != nil {
		// If fetching failed, offer to accept manual input
		fmt.Printf("\nWarning: Failed to fetch job description: %v\n", err)
		fmt.Println("This often happens with JavaScript-rendered pages (Lever, Workable, etc.)")
		fmt.Println("\nPlease paste the job description text below.")
		fmt.Println("When finished, press Ctrl+D (Unix/Mac) or Ctrl+Z then Enter (Windows):")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}

		if scanner.Err() != nil {
			err = errors.Wrap(scanner.Err(), "failed to read job description from stdin")
			return jobText, err
		}

		jobText = strings.Join(lines, "\n")
		jobText = strings.TrimSpace(jobText)

		if jobText == "" {
			err = errors.New("no job description provided")
			return jobText, err
		}

		fmt.Printf("\nJob description received (%d characters)\n", len(jobText))
		err = nil
		return jobText, err
	}

	if getVerbose() {
		fmt.Printf("Job description loaded (%d characters)\n", len(jobText))
	}

	return jobText, err
}

func logAnalysisResults(analysis search.GeneratedAnalysis) {
	if !getVerbose() {
		return
	}

	fmt.Printf("Detected domain: %s\n", analysis.DomainDetected)
	fmt.Printf("Core skills:\n")
	for _, skill := range analysis.Analysis.CoreSkills {
		fmt.Printf("  - %s\n", skill)
	}
	fmt.Printf("Seniority level: %s\n", analysis.Analysis.SeniorityLevel)
}

// displayAnalysis prints the generated searches with validation results for
// the selected platform(s).
func displayAnalysis(analysis search.GeneratedAnalysis, target search.Platform) {
	fmt.Printf("\nDomain: %s\n", analysis.DomainDetected)

	if analysis.SearchStrategy != "" {
		fmt.Printf("\nStrategy: %s\n", analysis.SearchStrategy)
	}

	if target == search.PlatformBoth || target == search.PlatformLinkedIn {
		fmt.Println("\n=== LinkedIn Recruiter Searches ===")
		displayLinkedInTiers(analysis.LinkedInSearches)
	}

	if target == search.PlatformBoth || target == search.PlatformDevelopmentAid {
		fmt.Println("\n=== DevelopmentAid Searches ===")
		displayDevelopmentAidTiers(analysis.DevelopmentAidSearches)
	}

	if len(analysis.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, warning := range analysis.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
	}

	if len(analysis.ManualReviewTips) > 0 {
		fmt.Println("\nManual review tips:")
		for _, tip := range analysis.ManualReviewTips {
			fmt.Printf("  - %s\n", tip)
		}
	}
}

func displayLinkedInTiers(tiers map[search.Tier]search.TierSearch) {
	for _, tier := range search.Tiers {
		tierSearch, ok := tiers[tier]
		if !ok {
			continue
		}

		fmt.Printf("\n[%s]\n", tier)
		fmt.Printf("  %s\n", tierSearch.Search)
		if tierSearch.Rationale != "" && getVerbose() {
			fmt.Printf("  Rationale: %s\n", tierSearch.Rationale)
		}

		report := validate.LinkedIn(tierSearch.Search)
		displayReport(report)

		estimate := validate.EstimateLinkedIn(tierSearch.Search)
		fmt.Printf("  Estimated results: %s (%s)\n", estimate.EstimatedRange, estimate.Quality)
	}
}

func displayDevelopmentAidTiers(tiers map[search.Tier]search.TierSearch) {
	for _, tier := range search.Tiers {
		tierSearch, ok := tiers[tier]
		if !ok {
			continue
		}

		fmt.Printf("\n[%s]\n", tier)
		fmt.Printf("  %s\n", tierSearch.Search)
		if tierSearch.Rationale != "" && getVerbose() {
			fmt.Printf("  Rationale: %s\n", tierSearch.Rationale)
		}

		report := validate.DevelopmentAid(tierSearch.Search)
		displayReport(report)
	}
}

func displayReport(report validate.Report) {
	for _, issue := range report.Issues {
		fmt.Printf("  ✗ %s\n", issue)
	}
	for _, warning := range report.Warnings {
		fmt.Printf("  ⚠ %s\n", warning)
	}
	if getVerbose() {
		fmt.Printf("  Complexity: %.1f\n", report.ComplexityScore)
	}
}

// getBaseOutputDir returns the base output directory from flag or config.
func getBaseOutputDir(cfg config.Config) (baseOutDir string) {
	baseOutDir = outputDir
	if baseOutDir == "" {
		baseOutDir = cfg.Defaults.OutputDir
	}
	return baseOutDir
}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for {
			select {
			case <-s.stop:
				// Clear the line and ensure cursor is at start of new line
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}
