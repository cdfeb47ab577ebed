package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nikogura/search-tailor/pkg/llm"
	"github.com/nikogura/search-tailor/pkg/search"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	OpenAIAPIKey string        `json:"openai_api_key"`
	Model        string        `json:"model,omitempty"`
	Defaults     DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	Platform          string `json:"platform,omitempty"`
	Domain            string `json:"domain,omitempty"`
	IncludeLocation   bool   `json:"include_location,omitempty"`
	IncludeSeniority  bool   `json:"include_seniority,omitempty"`
	IncludeVariations bool   `json:"include_variations"`
	OutputDir         string `json:"output_dir"`
}

// GetModel returns the configured model or the default if not specified.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = llm.DefaultModel
	return model
}

// Load reads configuration from file with environment variable overrides.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".search-tailor", "config.json")
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'search-tailor init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	// Override with environment variable if set
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.OpenAIAPIKey = apiKey
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present and sets defaults.
func (c *Config) Validate() (err error) {
	if c.OpenAIAPIKey == "" {
		err = errors.New("openai_api_key is required (set in config or OPENAI_API_KEY env var)")
		return err
	}

	if c.Model != "" && !llm.ModelAllowed(c.Model) {
		err = errors.Errorf("model %q is not supported: must be one of %v", c.Model, llm.AllowedModels)
		return err
	}

	if c.Defaults.Platform != "" {
		_, err = search.ParsePlatform(c.Defaults.Platform)
		if err != nil {
			return err
		}
	}

	if c.Defaults.Domain != "" {
		_, err = search.ParseDomain(c.Defaults.Domain)
		if err != nil {
			return err
		}
	}

	// Set defaults if not specified
	if c.Defaults.Platform == "" {
		c.Defaults.Platform = string(search.PlatformBoth)
	}

	if c.Defaults.Domain == "" {
		c.Defaults.Domain = string(search.DomainAutoDetect)
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "./searches"
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".search-tailor", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		OpenAIAPIKey: "sk-...",
		Model:        llm.DefaultModel,
		Defaults: DefaultConfig{
			Platform:          string(search.PlatformBoth),
			Domain:            string(search.DomainAutoDetect),
			IncludeVariations: true,
			OutputDir:         filepath.Join(homeDir, "Documents", "Searches"),
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
