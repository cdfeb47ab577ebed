package cmd

import (
	"fmt"

	"github.com/nikogura/search-tailor/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file at $HOME/.search-tailor/config.json.

Edit the generated file to set your OpenAI API key, or set the OPENAI_API_KEY
environment variable.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Println("Configuration file created. Edit it to set your OpenAI API key.")
	return err
}
