package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var plainKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// fieldKey appends a map key to a field path.
func fieldKey(prefix, key string) string {
	if plainKey.MatchString(key) {
		return prefix + "." + key
	}
	return fmt.Sprintf("%s[%q]", prefix, key)
}

func fieldIndex(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}

// validateConfig performs comprehensive validation on the configuration
func validateConfig(cfg *StyleConfig, plugins *PluginRegistry) ValidationErrors {
	var errors ValidationErrors

	if len(cfg.Content) == 0 {
		errors = append(errors, ValidationError{
			Field:   "content",
			Value:   cfg.Content,
			Message: "at least one content glob pattern is required",
		})
	}
	for i, pattern := range cfg.Content {
		if strings.TrimSpace(pattern) == "" {
			errors = append(errors, ValidationError{
				Field:   fieldIndex("content", i),
				Value:   pattern,
				Message: "content glob pattern cannot be empty",
			})
		}
	}

	errors = append(errors, validateExtension("theme.extend", cfg.Theme.Extend)...)
	if cfg.Extend != nil {
		errors = append(errors, validateExtension("extend", *cfg.Extend)...)
	}

	seen := make(map[string]string)
	for i, id := range cfg.Plugins {
		field := fieldIndex("plugins", i)
		plugin, ok := plugins.Lookup(id)
		if !ok {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   id,
				Message: fmt.Sprintf("unknown plugin '%s', registered plugins are: %s", id, strings.Join(plugins.Names(), ", ")),
			})
			continue
		}
		if previous, dup := seen[plugin.Name]; dup {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   id,
				Message: fmt.Sprintf("plugin '%s' is already activated as '%s'", plugin.Name, previous),
			})
			continue
		}
		seen[plugin.Name] = id
	}

	if cfg.DaisyUI != nil {
		errors = append(errors, validateCatalog("daisyui", cfg.DaisyUI)...)
	}

	return errors
}

func validateExtension(prefix string, ext ThemeExtension) ValidationErrors {
	var errors ValidationErrors

	for _, name := range sortedKeys(ext.FontFamily) {
		field := fieldKey(prefix+".fontFamily", name)
		stack := ext.FontFamily[name]
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{Field: field, Value: name, Message: "font family name cannot be empty"})
		}
		if len(stack) == 0 {
			errors = append(errors, ValidationError{Field: field, Value: stack, Message: "font stack must list at least one family"})
		}
		for i, family := range stack {
			if strings.TrimSpace(family) == "" {
				errors = append(errors, ValidationError{Field: fieldIndex(field, i), Value: family, Message: "font family cannot be empty"})
			}
		}
	}

	for _, name := range sortedKeys(ext.Animation) {
		field := fieldKey(prefix+".animation", name)
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{Field: field, Value: name, Message: "animation name cannot be empty"})
		}
		if strings.TrimSpace(ext.Animation[name]) == "" {
			errors = append(errors, ValidationError{Field: field, Value: ext.Animation[name], Message: "animation shorthand cannot be empty"})
		}
	}

	for _, name := range sortedKeys(ext.Keyframes) {
		field := fieldKey(prefix+".keyframes", name)
		frames := ext.Keyframes[name]
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{Field: field, Value: name, Message: "keyframes name cannot be empty"})
		}
		if len(frames) == 0 {
			errors = append(errors, ValidationError{Field: field, Value: frames, Message: "keyframes must define at least one selector"})
		}
		for _, selector := range sortedKeys(frames) {
			selectorField := fieldKey(field, selector)
			if _, err := ParseSelector(selector); err != nil {
				errors = append(errors, ValidationError{Field: selectorField, Value: selector, Message: err.Error()})
			}
			for _, prop := range sortedKeys(frames[selector]) {
				if strings.TrimSpace(prop) == "" {
					errors = append(errors, ValidationError{Field: selectorField, Value: prop, Message: "CSS property name cannot be empty"})
				}
			}
		}
	}

	return errors
}

func validateCatalog(prefix string, catalog *ThemeCatalog) ValidationErrors {
	var errors ValidationErrors

	seen := make(map[string]bool, len(catalog.Themes))
	for i, name := range catalog.Themes {
		field := fieldIndex(prefix+".themes", i)
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{Field: field, Value: name, Message: "theme name cannot be empty"})
			continue
		}
		if seen[name] {
			errors = append(errors, ValidationError{Field: field, Value: name, Message: fmt.Sprintf("theme '%s' is listed more than once", name)})
			continue
		}
		seen[name] = true
	}

	if catalog.DarkTheme != "" && !catalog.Has(catalog.DarkTheme) {
		errors = append(errors, ValidationError{
			Field:   prefix + ".darkTheme",
			Value:   catalog.DarkTheme,
			Message: fmt.Sprintf("dark theme must be one of the enabled themes: [%s]", strings.Join(catalog.Themes, ", ")),
		})
	}

	return errors
}

// Lint returns non-fatal issues: settings the build tool accepts but
// probably does not do what the author meant.
func Lint(cfg *StyleConfig, plugins *PluginRegistry) []string {
	if plugins == nil {
		plugins = DefaultPlugins()
	}

	var issues []string

	if cfg.Extend != nil && !cfg.Extend.IsZero() {
		issues = append(issues, "top-level 'extend' is ignored by the build tool; move it under 'theme.extend'")
	}

	if cfg.DaisyUI != nil && !activates(cfg, plugins, "daisyui") {
		issues = append(issues, "'daisyui' section is set but the daisyui plugin is not activated")
	}

	if cfg.DaisyUI != nil && len(cfg.DaisyUI.Themes) == 0 && cfg.DaisyUI.DarkTheme == "" {
		issues = append(issues, "'daisyui' section enables no themes")
	}

	keyframes := cfg.Tokens.Keyframes
	if keyframes == nil {
		keyframes = MergeTokens(BaseTokens(), cfg.Theme.Extend).Keyframes
	}
	issues = append(issues, undefinedKeyframes("theme.extend.animation", cfg.Theme.Extend.Animation, keyframes, nil)...)
	if cfg.Extend != nil {
		issues = append(issues, undefinedKeyframes("extend.animation", cfg.Extend.Animation, keyframes, cfg.Extend.Keyframes)...)
	}

	return issues
}

func undefinedKeyframes(prefix string, animations map[string]string, sets ...map[string]Keyframes) []string {
	var issues []string
	for _, name := range sortedKeys(animations) {
		ref := animationName(animations[name])
		if ref == "" {
			continue
		}
		defined := false
		for _, set := range sets {
			if _, ok := set[ref]; ok {
				defined = true
				break
			}
		}
		if !defined {
			issues = append(issues, fmt.Sprintf("%s: keyframes '%s' are not defined", fieldKey(prefix, name), ref))
		}
	}
	return issues
}

func activates(cfg *StyleConfig, plugins *PluginRegistry, name string) bool {
	for _, id := range cfg.Plugins {
		if p, ok := plugins.Lookup(id); ok && p.Name == name {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
