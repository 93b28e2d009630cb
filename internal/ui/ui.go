// Package ui renders CLI output.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/barisgit/fluxstyle/config"
)

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var nord = palette{
	Text:    lipgloss.Color("#eceff4"),
	Muted:   lipgloss.Color("#81a1c1"),
	Accent:  lipgloss.Color("#88c0d0"),
	Border:  lipgloss.Color("#4c566a"),
	Success: lipgloss.Color("#a3be8c"),
	Warning: lipgloss.Color("#ebcb8b"),
	Error:   lipgloss.Color("#bf616a"),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(nord.Accent)
	labelStyle   = lipgloss.NewStyle().Foreground(nord.Muted).Width(20)
	valueStyle   = lipgloss.NewStyle().Foreground(nord.Text)
	successStyle = lipgloss.NewStyle().Foreground(nord.Success)
	warningStyle = lipgloss.NewStyle().Foreground(nord.Warning)
	errorStyle   = lipgloss.NewStyle().Foreground(nord.Error)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(nord.Border).
			Padding(0, 1)
)

// Success formats a status line for a completed step.
func Success(format string, args ...any) string {
	return successStyle.Render("✅ " + fmt.Sprintf(format, args...))
}

// Warn formats a status line for a non-fatal issue.
func Warn(format string, args ...any) string {
	return warningStyle.Render("⚠️  " + fmt.Sprintf(format, args...))
}

// Fail formats a status line for a failed step.
func Fail(format string, args ...any) string {
	return errorStyle.Render("❌ " + fmt.Sprintf(format, args...))
}

// Summary renders a configuration summary panel.
func Summary(info *config.ConfigInfo) string {
	rows := []string{titleStyle.Render("📋 Style Configuration Summary")}
	row := func(label, value string) {
		rows = append(rows, labelStyle.Render(label)+valueStyle.Render(value))
	}

	row("Path", fmt.Sprintf("%s (%s)", info.Path, info.Format))
	row("Content", list(info.ContentPatterns))
	row("Plugins", list(info.Plugins))
	row("Fonts", list(info.FontFamilies))
	if len(info.Animations) > 0 || len(info.Keyframes) > 0 {
		row("Animations", list(info.Animations))
		row("Keyframes", list(info.Keyframes))
	}
	row("Themes", list(info.Themes))
	if info.DarkTheme != "" {
		row("Dark theme", info.DarkTheme)
	}
	row("Centered container", fmt.Sprintf("%t", info.ContainerCenter))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Issues renders numbered lint issues, or nothing when there are none.
func Issues(issues []string) string {
	if len(issues) == 0 {
		return ""
	}
	lines := []string{Warn("Potential issues found:")}
	for i, issue := range issues {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, issue))
	}
	return strings.Join(lines, "\n")
}

// PluginTable renders the plugin registry.
func PluginTable(plugins []config.Plugin) string {
	rows := []string{titleStyle.Render("🧩 Registered plugins")}
	for _, p := range plugins {
		name := p.Name
		if len(p.Aliases) > 0 {
			name += " (" + strings.Join(p.Aliases, ", ") + ")"
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(nord.Text).Width(52).Render(name)+
			lipgloss.NewStyle().Foreground(nord.Muted).Render(p.Description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func list(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
