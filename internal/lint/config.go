package lint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config file names, in priority order within a directory.
const (
	// ConfigJSON is the JSON config filename.
	ConfigJSON = ".typelint.json"

	// ConfigTOML is the TOML config filename.
	ConfigTOML = "typelint.toml"
)

// Config represents the typelint configuration file structure.
type Config struct {
	// Enable is a list of rules or categories to enable (e.g., ["all"], ["complexity"])
	Enable []string `json:"enable,omitempty" toml:"enable"`

	// Disable is a list of rules or patterns to disable (e.g., ["no-*"])
	Disable []string `json:"disable,omitempty" toml:"disable"`

	// WarningsAsErrors treats all warnings as errors
	WarningsAsErrors bool `json:"warnings_as_errors,omitempty" toml:"warnings_as_errors"`

	// Rules contains per-rule configuration overrides
	Rules map[string]RuleConfigOverride `json:"rules,omitempty" toml:"rules"`
}

// RuleConfigOverride allows overriding rule-specific settings.
type RuleConfigOverride struct {
	// Severity overrides the default severity for this rule
	Severity string `json:"severity,omitempty" toml:"severity"`

	// Options is the raw rule options value: a bare scalar or an object.
	// Its shape is validated against the rule's schema when the config is
	// applied to a registry.
	Options any `json:"options,omitempty" toml:"options"`
}

// LoadConfig loads the configuration file from the specified path.
// If path is empty, it searches for a config file in the current
// directory and parent directories and returns a default config when
// none is found. The format is chosen by file extension.
func LoadConfig(path string) (*Config, error) {
	configPath := path

	if configPath == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &Config{}, nil
		}
		configPath = found
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if filepath.Ext(configPath) == ".toml" {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	} else {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	return &config, nil
}

// findConfigFile searches for a config file in the current directory and
// parent directories. Returns an empty string if none is found.
func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		for _, name := range []string{ConfigJSON, ConfigTOML} {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the root directory
			break
		}
		dir = parent
	}

	return "", nil
}

// ApplyToRegistry applies the configuration to a registry. Rule options
// are schema-validated here, so a malformed options value is a
// configuration error surfaced before any rule runs.
func (c *Config) ApplyToRegistry(registry *Registry) error {
	if len(c.Enable) > 0 {
		registry.Enable(c.Enable...)
	}
	if len(c.Disable) > 0 {
		registry.Disable(c.Disable...)
	}

	for ruleName, override := range c.Rules {
		if _, exists := registry.Rule(ruleName); !exists {
			return fmt.Errorf("unknown rule in config: %s", ruleName)
		}

		var severity Severity
		if override.Severity != "" {
			sev, err := parseSeverity(override.Severity)
			if err != nil {
				return fmt.Errorf("invalid severity for rule %s: %w", ruleName, err)
			}
			severity = sev
		}

		if err := registry.SetConfig(ruleName, RuleConfig{
			Severity: severity,
			Options:  override.Options,
		}); err != nil {
			return err
		}
	}

	return nil
}

// parseSeverity converts a string to a Severity value.
func parseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	default:
		return severityUnset, fmt.Errorf("unknown severity: %s (must be one of: error, warning, info, hint)", s)
	}
}
