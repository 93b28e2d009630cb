package config

import (
	"path/filepath"
)

// ConfigInfo contains summary information about a configuration
type ConfigInfo struct {
	Path            string
	Format          Format
	ContentPatterns []string
	Plugins         []string
	FontFamilies    []string
	Animations      []string
	Keyframes       []string
	Themes          []string
	DarkTheme       string
	ContainerCenter bool
	Issues          []string
}

// GetConfigInfo loads path quietly and returns its summary
func GetConfigInfo(path string) (*ConfigInfo, error) {
	options := DefaultLoadOptions()
	options.Path = path
	options.Quiet = true

	cfg, err := NewConfigManager(options).LoadConfig()
	if err != nil {
		return nil, err
	}
	return InfoFor(cfg, path, nil), nil
}

// InfoFor summarizes an already loaded document.
func InfoFor(cfg *StyleConfig, path string, plugins *PluginRegistry) *ConfigInfo {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	info := &ConfigInfo{
		Path:            absPath,
		Format:          FormatFromPath(path),
		ContentPatterns: cfg.Content,
		Plugins:         cfg.Plugins,
		FontFamilies:    sortedKeys(cfg.Theme.Extend.FontFamily),
		Animations:      sortedKeys(cfg.Theme.Extend.Animation),
		Keyframes:       sortedKeys(cfg.Theme.Extend.Keyframes),
		ContainerCenter: cfg.Theme.Container.Center,
		Issues:          Lint(cfg, plugins),
	}
	if cfg.DaisyUI != nil {
		info.Themes = cfg.DaisyUI.Themes
		info.DarkTheme = cfg.DaisyUI.DarkTheme
	}
	return info
}
