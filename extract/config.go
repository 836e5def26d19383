package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvAPIKey is the environment variable overriding the API key
	EnvAPIKey = "OPENAI_API_KEY"
	// EnvBaseURL is the environment variable overriding the API base URL
	EnvBaseURL = "OPENAI_BASE_URL"

	configFileName = "config.json"
	defaultBaseURL = "https://api.openai.com/v1"
)

// DefaultModels is the built-in extraction fallback order, tried first to
// last until one succeeds.
var DefaultModels = []string{"gpt-4o", "gpt-4o-mini"}

type Config struct {
	APIKey  string   `json:"api_key"`
	BaseURL string   `json:"base_url"`
	Models  []string `json:"models"`
}

// LoadConfig reads the configuration file at path, falling back to
// ~/.config/math2doc/config.json when path is empty. A missing file is not
// an error: defaults apply. Environment variables take precedence over file
// values.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{BaseURL: defaultBaseURL, Models: DefaultModels}

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}

		path = filepath.Join(home, ".config", "math2doc", configFileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// keep defaults
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if len(cfg.Models) == 0 {
		cfg.Models = DefaultModels
	}

	return cfg, nil
}
