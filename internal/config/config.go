// Package config loads testforge configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level testforge configuration.
type Config struct {
	LLM        LLMConfig        `yaml:"llm"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
}

// defaultTimeout bounds the LLM call when the config is silent or invalid.
const defaultTimeout = 5 * time.Minute

// LLMConfig configures the text-generation backend.
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini, openai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"` // Go duration string, e.g. "5m"
}

// TimeoutDuration parses Timeout, falling back to the default on empty or
// unparseable values.
func (c LLMConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// ValidationConfig configures report acceptance policy.
type ValidationConfig struct {
	// Strict escalates warnings to errors. Defaults to true.
	Strict bool `yaml:"strict"`
}

// OutputConfig configures where the CLI writes accepted tests.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "gemini",
			Timeout:  "5m",
		},
		Validation: ValidationConfig{
			Strict: true,
		},
		Output: OutputConfig{
			Dir: ".",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields
// defaults; environment variables override file values either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if provider := os.Getenv("TESTFORGE_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}
	if model := os.Getenv("TESTFORGE_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && c.LLM.Provider == "gemini" {
		c.LLM.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && c.LLM.Provider == "openai" {
		c.LLM.APIKey = key
	}
	if strict := os.Getenv("TESTFORGE_STRICT"); strict != "" {
		if v, err := strconv.ParseBool(strict); err == nil {
			c.Validation.Strict = v
		}
	}
	if dir := os.Getenv("TESTFORGE_OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}
}
