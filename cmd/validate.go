package cmd

import (
	"fmt"

	"github.com/nikogura/search-tailor/pkg/search"
	"github.com/nikogura/search-tailor/pkg/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var validatePlatform string

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate <search-string>",
	Short: "Validate a Boolean search string",
	Long: `Validate a Boolean search string against platform syntax rules.

Checks operator casing, quote and parenthesis balance, and platform-specific
operators, and reports a complexity score. For LinkedIn searches an estimated
result range is included.

Example:
  search-tailor validate '(Python OR Java) AND "Machine Learning"' --platform linkedin
  search-tailor validate '(water|sanitation)^10 + (USAID|"World Bank")' --platform developmentaid`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validatePlatform, "platform", string(search.PlatformLinkedIn), "Platform syntax to validate against: linkedin, developmentaid")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	searchString := args[0]

	var target search.Platform
	target, err = search.ParsePlatform(validatePlatform)
	if err != nil {
		return err
	}
	if target == search.PlatformBoth {
		err = errors.New("validate requires a single platform: linkedin or developmentaid")
		return err
	}

	var report validate.Report
	switch target {
	case search.PlatformLinkedIn:
		report = validate.LinkedIn(searchString)
	case search.PlatformDevelopmentAid:
		report = validate.DevelopmentAid(searchString)
	case search.PlatformBoth:
		// Rejected above
	}

	if report.Valid {
		fmt.Println("✓ Search string is valid")
	} else {
		fmt.Println("✗ Search string has issues")
	}

	for _, issue := range report.Issues {
		fmt.Printf("  ✗ %s\n", issue)
	}
	for _, warning := range report.Warnings {
		fmt.Printf("  ⚠ %s\n", warning)
	}

	fmt.Printf("\nLength: %d characters\n", report.Length)
	fmt.Printf("Complexity score: %.1f\n", report.ComplexityScore)

	if target == search.PlatformLinkedIn {
		estimate := validate.EstimateLinkedIn(searchString)
		fmt.Printf("Estimated results: %s (%s)\n", estimate.EstimatedRange, estimate.Quality)
	}

	if !report.Valid {
		err = errors.New("validation failed")
		return err
	}

	return err
}
