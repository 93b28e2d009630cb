package ui

import (
	"strings"
	"testing"

	"github.com/barisgit/fluxstyle/config"
)

func TestSummary(t *testing.T) {
	info := &config.ConfigInfo{
		Path:            "/project/style.yaml",
		Format:          config.FormatYAML,
		ContentPatterns: []string{"src/**/*.rs"},
		Plugins:         []string{"forms", "daisyui"},
		Themes:          []string{"lofi", "black"},
		DarkTheme:       "black",
	}

	out := Summary(info)
	for _, want := range []string{"Style Configuration Summary", "src/**/*.rs", "forms, daisyui", "lofi, black", "Dark theme"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain '%s', got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Keyframes") {
		t.Errorf("Expected keyframes row to be omitted without animations, got:\n%s", out)
	}
}

func TestIssues(t *testing.T) {
	if Issues(nil) != "" {
		t.Error("Expected no output without issues")
	}

	out := Issues([]string{"first", "second"})
	if !strings.Contains(out, "1. first") || !strings.Contains(out, "2. second") {
		t.Errorf("Expected numbered issues, got:\n%s", out)
	}
}

func TestPluginTable(t *testing.T) {
	out := PluginTable(config.DefaultPlugins().List())
	for _, want := range []string{"@tailwindcss/forms (forms)", "daisyui", "Prose classes"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected plugin table to contain '%s', got:\n%s", want, out)
		}
	}
}

func TestStatusLines(t *testing.T) {
	if got := Success("loaded %d", 2); !strings.Contains(got, "loaded 2") {
		t.Errorf("Expected formatted message, got %q", got)
	}
	if got := Fail("broken"); !strings.Contains(got, "broken") {
		t.Errorf("Expected formatted message, got %q", got)
	}
}
