package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/ui"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate the style configuration",
		Long:  "Validate the syntax, structure and value ranges of the style configuration document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}

	cmd.Flags().Bool("strict", false, "Enable strict validation (fail on warnings)")

	return cmd
}

func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [config-file]",
		Short: "Show configuration information",
		Long:  "Display a summary of the style configuration, the full document, or the resolved design tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("verbose", false, "Print the full document")
	cmd.Flags().Bool("resolved", false, "Print the design tokens after merging the theme extension")
	cmd.Flags().String("format", "", "Output format for --verbose (yaml, json, hcl); defaults to the file's format")

	return cmd
}

func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new style configuration",
		Long:  "Create a new style configuration document with default values",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite existing configuration file")
	cmd.Flags().String("format", "yaml", "Document format (yaml, json, hcl)")
	cmd.Flags().Bool("interactive", false, "Choose content globs, plugins and themes interactively")

	return cmd
}

func FmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [config-file]",
		Short: "Rewrite the configuration in canonical form",
		Long:  "Load and validate the style configuration, then rewrite it canonically, optionally converting its format",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFmt,
	}

	cmd.Flags().String("to", "", "Convert to another format (yaml, json, hcl)")
	cmd.Flags().Bool("check", false, "Fail if the file is not already canonical instead of rewriting it")
	cmd.Flags().Bool("backup", false, "Create backup of original file")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	strict, _ := cmd.Flags().GetBool("strict")

	options := loadOptions(cmd, args)
	options.WarnOnIssues = false
	cm := config.NewConfigManager(options)

	path, err := cm.Locate()
	if err != nil {
		fmt.Fprintln(out, ui.Fail("%v", err))
		return err
	}

	fmt.Fprintf(out, "🔍 Validating configuration file: %s\n", path)

	cfg, err := cm.LoadConfigFromPath(path)
	if err != nil {
		fmt.Fprintln(out, ui.Fail("Configuration validation failed:\n%v", err))
		return err
	}

	fmt.Fprintln(out, ui.Success("Configuration is valid!"))

	info := config.InfoFor(cfg, path, cm.Plugins())
	fmt.Fprintf(out, "\n%s\n", ui.Summary(info))

	if len(info.Issues) > 0 {
		fmt.Fprintf(out, "\n%s\n", ui.Issues(info.Issues))
		if strict {
			return fmt.Errorf("strict validation failed due to %d issue(s)", len(info.Issues))
		}
	}

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	verbose, _ := cmd.Flags().GetBool("verbose")
	resolved, _ := cmd.Flags().GetBool("resolved")
	formatName, _ := cmd.Flags().GetString("format")

	options := loadOptions(cmd, args)
	options.WarnOnIssues = false
	cm := config.NewConfigManager(options)

	path, err := cm.Locate()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg, err := cm.LoadConfigFromPath(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintln(out, ui.Summary(config.InfoFor(cfg, path, cm.Plugins())))

	if verbose {
		format := config.FormatFromPath(path)
		if formatName != "" {
			if format, err = config.ParseFormat(formatName); err != nil {
				return err
			}
		}

		data, err := config.Encode(cfg, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n📝 Detailed Configuration:\n```%s\n%s```\n", format, string(data))
	}

	if resolved {
		data, err := yaml.Marshal(cfg.Tokens)
		if err != nil {
			return fmt.Errorf("failed to marshal tokens: %w", err)
		}
		fmt.Fprintf(out, "\n🎨 Resolved tokens:\n```yaml\n%s```\n", string(data))
	}

	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")
	formatName, _ := cmd.Flags().GetString("format")
	dir, _ := cmd.Flags().GetString("dir")

	format, err := config.ParseFormat(formatName)
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "style"+format.Extension())

	// Any other candidate would make the project ambiguous.
	for _, name := range config.CandidateFiles {
		existing := filepath.Join(dir, name)
		if _, err := os.Stat(existing); err != nil {
			continue
		}
		if existing != configPath {
			return fmt.Errorf("configuration file already exists: %s\nRemove it or run 'fluxstyle fmt --to %s' to convert it", existing, format)
		}
		if !force {
			return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", existing)
		}
	}

	cfg := config.DefaultConfig()
	if interactive {
		if err := askConfig(cfg); err != nil {
			return err
		}
	}

	cm := config.NewConfigManager(config.ConfigLoadOptions{Quiet: true})
	if errs := cm.Validate(cfg); errs.HasErrors() {
		return fmt.Errorf("configuration validation failed: %w", errs)
	}

	if err := config.WriteConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.Success("Created configuration file: %s", configPath))
	fmt.Fprintf(out, "   Content: %s\n", strings.Join(cfg.Content, ", "))
	fmt.Fprintf(out, "   Plugins: %s\n", strings.Join(cfg.Plugins, ", "))
	if cfg.DaisyUI != nil {
		fmt.Fprintf(out, "   Themes: %s\n", strings.Join(cfg.DaisyUI.Themes, ", "))
	}

	return nil
}

// askConfig fills cfg from interactive prompts, using its values as defaults.
func askConfig(cfg *config.StyleConfig) error {
	var content string
	if err := survey.AskOne(&survey.Input{
		Message: "Content globs (comma separated):",
		Default: strings.Join(cfg.Content, ", "),
	}, &content); err != nil {
		return err
	}
	cfg.Content = splitList(content)

	var options []string
	for _, p := range config.DefaultPlugins().List() {
		options = append(options, p.Name)
	}
	var plugins []string
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Plugins:",
		Options: options,
		Default: cfg.Plugins,
	}, &plugins); err != nil {
		return err
	}
	cfg.Plugins = plugins

	if !contains(plugins, "daisyui") {
		cfg.DaisyUI = nil
		return nil
	}

	var themes string
	if err := survey.AskOne(&survey.Input{
		Message: "daisyUI themes (comma separated):",
		Default: strings.Join(cfg.DaisyUI.Themes, ", "),
	}, &themes); err != nil {
		return err
	}
	cfg.DaisyUI.Themes = splitList(themes)

	if len(cfg.DaisyUI.Themes) > 0 {
		const none = "(none)"
		var dark string
		if err := survey.AskOne(&survey.Select{
			Message: "Dark theme:",
			Options: append([]string{none}, cfg.DaisyUI.Themes...),
			Default: none,
		}, &dark); err != nil {
			return err
		}
		if dark != none {
			cfg.DaisyUI.DarkTheme = dark
		}
	}

	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	toName, _ := cmd.Flags().GetString("to")
	check, _ := cmd.Flags().GetBool("check")
	backup, _ := cmd.Flags().GetBool("backup")

	options := loadOptions(cmd, args)
	options.WarnOnIssues = false
	cm := config.NewConfigManager(options)

	path, err := cm.Locate()
	if err != nil {
		return err
	}
	cfg, err := cm.LoadConfigFromPath(path)
	if err != nil {
		return err
	}

	format := config.FormatFromPath(path)
	target := path
	if toName != "" {
		if format, err = config.ParseFormat(toName); err != nil {
			return err
		}
		target = strings.TrimSuffix(path, filepath.Ext(path)) + format.Extension()
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if check {
		if target != path || !bytes.Equal(original, data) {
			fmt.Fprintln(out, ui.Warn("%s is not canonical", path))
			return fmt.Errorf("configuration file %s needs formatting", path)
		}
		fmt.Fprintln(out, ui.Success("%s is canonical", path))
		return nil
	}

	if backup {
		backupPath := path + ".backup"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		fmt.Fprintf(out, "📋 Created backup: %s\n", backupPath)
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", target, err)
	}
	if target != path {
		// Leaving the source behind would make the project ambiguous.
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s after conversion: %w", path, err)
		}
		fmt.Fprintln(out, ui.Success("Converted %s to %s", path, target))
		return nil
	}

	fmt.Fprintln(out, ui.Success("Formatted %s", target))
	return nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
