package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// CandidateFiles are the well-known document names looked up in the project root.
var CandidateFiles = []string{"style.yaml", "style.yml", "style.json", "style.hcl"}

// ConfigLoadOptions provides options for loading configuration
type ConfigLoadOptions struct {
	// Path is an explicit document path. When empty the candidates in Dir are searched.
	Path              string
	Dir               string
	AllowMissing      bool
	ValidateStructure bool
	ApplyDefaults     bool
	WarnOnIssues      bool
	Quiet             bool
	Plugins           *PluginRegistry
	Logger            *slog.Logger
}

// DefaultLoadOptions returns sensible defaults for config loading
func DefaultLoadOptions() ConfigLoadOptions {
	return ConfigLoadOptions{
		Path:              "",
		Dir:               ".",
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     true,
		WarnOnIssues:      true,
		Quiet:             false,
	}
}

// ConfigManager handles configuration loading, validation, and management
type ConfigManager struct {
	options ConfigLoadOptions
	plugins *PluginRegistry
	logger  *slog.Logger
}

// NewConfigManager creates a new configuration manager
func NewConfigManager(options ConfigLoadOptions) *ConfigManager {
	if options.Dir == "" {
		options.Dir = "."
	}

	plugins := options.Plugins
	if plugins == nil {
		plugins = DefaultPlugins()
	}

	logger := options.Logger
	switch {
	case options.Quiet:
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	case logger == nil:
		logger = slog.Default()
	}

	return &ConfigManager{
		options: options,
		plugins: plugins,
		logger:  logger,
	}
}

// Plugins returns the registry used to resolve plugin identifiers.
func (cm *ConfigManager) Plugins() *PluginRegistry {
	return cm.plugins
}

// LoadConfig locates and loads the configuration document.
func (cm *ConfigManager) LoadConfig() (*StyleConfig, error) {
	path, err := cm.Locate()
	if err != nil {
		if errors.Is(err, ErrNotFound) && cm.options.AllowMissing {
			cm.logger.Warn("configuration file not found, using defaults", "dir", cm.options.Dir)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cm.LoadConfigFromPath(path)
}

// Locate resolves the document path: the explicit Path, or the single
// candidate present in Dir.
func (cm *ConfigManager) Locate() (string, error) {
	if cm.options.Path != "" {
		if _, err := os.Stat(cm.options.Path); err != nil {
			if os.IsNotExist(err) {
				return "", &NotFoundError{Path: cm.options.Path}
			}
			return "", fmt.Errorf("failed to stat configuration file %s: %w", cm.options.Path, err)
		}
		return cm.options.Path, nil
	}

	var found []string
	for _, name := range CandidateFiles {
		candidate := filepath.Join(cm.options.Dir, name)
		info, err := os.Stat(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to stat configuration file %s: %w", candidate, err)
		}
		if !info.IsDir() {
			found = append(found, candidate)
		}
	}

	switch len(found) {
	case 0:
		return "", &NotFoundError{Path: cm.options.Dir, Candidates: CandidateFiles}
	case 1:
		return found[0], nil
	default:
		return "", &DuplicateSourceError{Paths: found}
	}
}

// LoadConfigFromPath loads configuration from a specific path
func (cm *ConfigManager) LoadConfigFromPath(path string) (*StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if cm.options.AllowMissing {
				cm.logger.Warn("configuration file not found, using defaults", "path", path)
				return DefaultConfig(), nil
			}
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	return cm.Load(data, FormatFromPath(path), path)
}

// Load decodes, completes and validates an in-memory document. name is used in messages.
func (cm *ConfigManager) Load(data []byte, format Format, name string) (*StyleConfig, error) {
	cfg, err := Decode(data, format, name)
	if err != nil {
		return nil, err
	}

	if cm.options.ApplyDefaults {
		cfg.Tokens = MergeTokens(BaseTokens(), cfg.Theme.Extend)
	}

	if cm.options.ValidateStructure {
		if errs := validateConfig(cfg, cm.plugins); errs.HasErrors() {
			return nil, &validationFailure{path: name, errs: errs}
		}
	}

	if cm.options.WarnOnIssues {
		for _, issue := range Lint(cfg, cm.plugins) {
			cm.logger.Warn(issue, "path", name)
		}
	}

	cm.logger.Debug("configuration loaded", "path", name, "format", format,
		"content", len(cfg.Content), "plugins", len(cfg.Plugins))
	return cfg, nil
}

// Validate runs structural validation on an already decoded document.
func (cm *ConfigManager) Validate(cfg *StyleConfig) ValidationErrors {
	return validateConfig(cfg, cm.plugins)
}

// validationFailure carries the collected errors of one document.
type validationFailure struct {
	path string
	errs ValidationErrors
}

func (f *validationFailure) Error() string {
	return fmt.Sprintf("configuration validation failed for %s:\n%s", f.path, formatValidationErrors(f.errs))
}

func (f *validationFailure) Unwrap() error {
	return f.errs
}

// formatValidationErrors formats validation errors in a user-friendly way
func formatValidationErrors(errors ValidationErrors) string {
	var lines []string
	for i, err := range errors {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return strings.Join(lines, "\n")
}

// Convenience functions for common use cases

// LoadConfig loads configuration from the working directory using default options
func LoadConfig() (*StyleConfig, error) {
	cm := NewConfigManager(DefaultLoadOptions())
	return cm.LoadConfig()
}

// LoadConfigFromPath loads configuration from an explicit path using default options
func LoadConfigFromPath(path string) (*StyleConfig, error) {
	options := DefaultLoadOptions()
	options.Path = path
	cm := NewConfigManager(options)
	return cm.LoadConfig()
}
