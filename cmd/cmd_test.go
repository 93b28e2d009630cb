package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{"style.yaml": testutil.MinimalDocument})

	out, err := execute(t, "validate", "--dir", dir)
	if err != nil {
		t.Fatalf("Expected validation to succeed, got %v", err)
	}
	if !strings.Contains(out, "Configuration is valid!") {
		t.Errorf("Expected success message, got:\n%s", out)
	}
	if !strings.Contains(out, "lofi, black") {
		t.Errorf("Expected themes in the summary, got:\n%s", out)
	}
}

func TestValidateCommandMalformed(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{
		"style.yaml": "content: [\"index.html\"]\ndaisyui:\n  themes: [\"lofi\"]\n  darkTheme: black\n",
	})

	out, err := execute(t, "validate", "--dir", dir)
	if !errors.Is(err, config.ErrMalformedConfig) {
		t.Fatalf("Expected ErrMalformedConfig, got %v", err)
	}
	if !strings.Contains(out, "daisyui.darkTheme") {
		t.Errorf("Expected the offending field in the output, got:\n%s", out)
	}
}

func TestValidateCommandStrict(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{"style.yaml": testutil.OriginalDocument})

	if _, err := execute(t, "validate", "--dir", dir); err != nil {
		t.Fatalf("Expected lint issues not to fail validation, got %v", err)
	}

	_, err := execute(t, "validate", "--dir", dir, "--strict")
	if err == nil || !strings.Contains(err.Error(), "strict validation failed") {
		t.Errorf("Expected strict validation to fail, got %v", err)
	}
}

func TestValidateCommandNotFound(t *testing.T) {
	_, err := execute(t, "validate", "--dir", t.TempDir())
	if !errors.Is(err, config.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", "--dir", dir)
	if err != nil {
		t.Fatalf("Expected init to succeed, got %v", err)
	}
	if !strings.Contains(out, "Created configuration file") {
		t.Errorf("Expected creation message, got:\n%s", out)
	}

	if _, err := execute(t, "validate", "--dir", dir); err != nil {
		t.Errorf("Expected generated configuration to validate, got %v", err)
	}

	if _, err := execute(t, "init", "--dir", dir); err == nil {
		t.Error("Expected init to refuse an existing configuration")
	}
	if _, err := execute(t, "init", "--dir", dir, "--force"); err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}
	if _, err := execute(t, "init", "--dir", dir, "--format", "hcl", "--force"); err == nil {
		t.Error("Expected init to refuse creating a second source")
	}
	if _, err := os.Stat(filepath.Join(dir, "style.hcl")); !os.IsNotExist(err) {
		t.Error("Expected style.hcl not to be created")
	}
}

func TestFmtCommandConvert(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{"style.hcl": testutil.HCLDocument})

	if _, err := execute(t, "fmt", "--dir", dir, "--to", "json"); err != nil {
		t.Fatalf("Expected conversion to succeed, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "style.hcl")); !os.IsNotExist(err) {
		t.Error("Expected the source document to be removed")
	}

	options := config.DefaultLoadOptions()
	options.Dir = dir
	options.Quiet = true
	cfg, err := config.NewConfigManager(options).LoadConfig()
	if err != nil {
		t.Fatalf("Expected converted document to load, got %v", err)
	}
	if cfg.DaisyUI == nil || cfg.DaisyUI.DarkTheme != "black" {
		t.Errorf("Expected darkTheme to survive conversion, got %+v", cfg.DaisyUI)
	}
	if len(cfg.Theme.Extend.Keyframes["type"]) != 3 {
		t.Errorf("Expected 3 keyframe selectors, got %v", cfg.Theme.Extend.Keyframes["type"])
	}

	if _, err := execute(t, "fmt", "--dir", dir, "--check"); err != nil {
		t.Errorf("Expected converted document to be canonical, got %v", err)
	}
}

func TestFmtCommandCheck(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{"style.yaml": testutil.MinimalDocument})

	if _, err := execute(t, "fmt", "--dir", dir, "--check"); err == nil {
		t.Fatal("Expected flow-style document not to be canonical")
	}

	if _, err := execute(t, "fmt", "--dir", dir, "--backup"); err != nil {
		t.Fatalf("Expected formatting to succeed, got %v", err)
	}
	backup, err := os.ReadFile(filepath.Join(dir, "style.yaml.backup"))
	if err != nil || string(backup) != testutil.MinimalDocument {
		t.Errorf("Expected backup of the original document, got %q (%v)", backup, err)
	}

	if _, err := execute(t, "fmt", "--dir", dir, "--check"); err != nil {
		t.Errorf("Expected formatted document to be canonical, got %v", err)
	}
}

func TestShowCommand(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{"style.yaml": testutil.MinimalDocument})
	path := filepath.Join(dir, "style.yaml")

	out, err := execute(t, "show", path, "--verbose", "--format", "json", "--resolved")
	if err != nil {
		t.Fatalf("Expected show to succeed, got %v", err)
	}
	for _, want := range []string{"Style Configuration Summary", `"fontFamily"`, "Resolved tokens", "spin 1s linear infinite"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPluginsCommand(t *testing.T) {
	out, err := execute(t, "plugins")
	if err != nil {
		t.Fatalf("Expected plugins to succeed, got %v", err)
	}
	for _, p := range config.DefaultPlugins().List() {
		if !strings.Contains(out, p.Name) {
			t.Errorf("Expected %s in the plugin table, got:\n%s", p.Name, out)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("FLUXSTYLE_CONFIG", "env.yaml")

	if got := getConfigPath([]string{"arg.yaml"}); got != "arg.yaml" {
		t.Errorf("Expected argument to win, got '%s'", got)
	}
	if got := getConfigPath(nil); got != "env.yaml" {
		t.Errorf("Expected FLUXSTYLE_CONFIG, got '%s'", got)
	}
}
