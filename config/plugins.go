package config

import (
	"fmt"
	"sort"
	"strings"
)

// Plugin describes a presentation plugin the build tool can activate.
type Plugin struct {
	Name        string
	Aliases     []string
	Description string
	// Section is the top-level document key the plugin reads its options from, if any.
	Section string
}

// PluginRegistry resolves plugin identifiers (names or aliases) to plugins.
type PluginRegistry struct {
	plugins map[string]*Plugin
	ids     map[string]*Plugin
}

// NewPluginRegistry creates an empty registry
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		plugins: make(map[string]*Plugin),
		ids:     make(map[string]*Plugin),
	}
}

// Register adds a plugin. Names and aliases must be unique across the registry.
func (r *PluginRegistry) Register(p Plugin) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}
	ids := append([]string{p.Name}, p.Aliases...)
	for _, id := range ids {
		if existing, ok := r.ids[id]; ok {
			return fmt.Errorf("plugin identifier '%s' already registered by '%s'", id, existing.Name)
		}
	}

	plugin := p
	r.plugins[p.Name] = &plugin
	for _, id := range ids {
		r.ids[id] = &plugin
	}
	return nil
}

// Lookup resolves a plugin by name or alias.
func (r *PluginRegistry) Lookup(id string) (*Plugin, bool) {
	p, ok := r.ids[id]
	return p, ok
}

// List returns the registered plugins sorted by name.
func (r *PluginRegistry) List() []Plugin {
	list := make([]Plugin, 0, len(r.plugins))
	for _, p := range r.plugins {
		list = append(list, *p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Names returns every registered identifier, aliases included, sorted.
func (r *PluginRegistry) Names() []string {
	names := make([]string, 0, len(r.ids))
	for id := range r.ids {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// DefaultPlugins returns a registry with the plugins the build tool ships support for.
func DefaultPlugins() *PluginRegistry {
	r := NewPluginRegistry()
	for _, p := range []Plugin{
		{Name: "@tailwindcss/forms", Aliases: []string{"forms"}, Description: "Form element reset styles"},
		{Name: "@tailwindcss/typography", Aliases: []string{"typography"}, Description: "Prose classes for rendered content"},
		{Name: "@tailwindcss/aspect-ratio", Aliases: []string{"aspect-ratio"}, Description: "Aspect ratio utilities"},
		{Name: "@tailwindcss/container-queries", Aliases: []string{"container-queries"}, Description: "Container query variants"},
		{Name: "@tailwindcss/line-clamp", Aliases: []string{"line-clamp"}, Description: "Multi-line truncation utilities"},
		{Name: "daisyui", Description: "Component classes and named themes", Section: "daisyui"},
	} {
		r.mustRegister(p)
	}
	return r
}

func (r *PluginRegistry) mustRegister(p Plugin) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}
