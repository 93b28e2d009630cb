package config

// StyleConfig is the style configuration document consumed by the CSS build tool.
type StyleConfig struct {
	Content []string      `yaml:"content,omitempty" json:"content,omitempty"`
	Theme   ThemeConfig   `yaml:"theme,omitempty" json:"theme,omitempty"`
	Plugins []string      `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	DaisyUI *ThemeCatalog `yaml:"daisyui,omitempty" json:"daisyui,omitempty"`

	// Extend is a top-level "extend" key. The build tool ignores it; it is
	// kept so it can be validated and reported.
	Extend *ThemeExtension `yaml:"extend,omitempty" json:"extend,omitempty"`

	// Tokens is the base token set merged with Theme.Extend. Derived, never written.
	Tokens TokenSet `yaml:"-" json:"-"`
}

type ThemeConfig struct {
	Extend    ThemeExtension  `yaml:"extend,omitempty" json:"extend,omitempty"`
	Container ContainerConfig `yaml:"container,omitempty" json:"container,omitempty"`
}

type ContainerConfig struct {
	Center  bool   `yaml:"center,omitempty" json:"center,omitempty"`
	Padding string `yaml:"padding,omitempty" json:"padding,omitempty"`
}

// ThemeExtension holds additive overrides for the base design tokens
type ThemeExtension struct {
	FontFamily map[string][]string  `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	Animation  map[string]string    `yaml:"animation,omitempty" json:"animation,omitempty"`
	Keyframes  map[string]Keyframes `yaml:"keyframes,omitempty" json:"keyframes,omitempty"`
}

// IsZero reports whether the extension declares nothing.
func (e ThemeExtension) IsZero() bool {
	return len(e.FontFamily) == 0 && len(e.Animation) == 0 && len(e.Keyframes) == 0
}

// Keyframes maps a selector such as "0%", "5%, 10%", "from" or "to" to its declarations.
type Keyframes map[string]Declarations

// Declarations maps a CSS property to its value. Values are opaque.
type Declarations map[string]string

// ThemeCatalog is the set of enabled named themes plus an optional default dark theme.
type ThemeCatalog struct {
	Themes    []string `yaml:"themes,omitempty" json:"themes,omitempty"`
	DarkTheme string   `yaml:"darkTheme,omitempty" json:"darkTheme,omitempty"`
}

// Has reports whether name is one of the enabled themes.
func (c *ThemeCatalog) Has(name string) bool {
	if c == nil {
		return false
	}
	return contains(c.Themes, name)
}

// TokenSet is a resolved set of design tokens.
type TokenSet struct {
	FontFamily map[string][]string  `yaml:"fontFamily" json:"fontFamily"`
	Animation  map[string]string    `yaml:"animation" json:"animation"`
	Keyframes  map[string]Keyframes `yaml:"keyframes" json:"keyframes"`
}
