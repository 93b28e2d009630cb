package config

// BaseTokens returns a fresh copy of the framework's base design tokens.
func BaseTokens() TokenSet {
	return TokenSet{
		FontFamily: map[string][]string{
			"sans":  {"ui-sans-serif", "system-ui", "sans-serif", `"Apple Color Emoji"`, `"Segoe UI Emoji"`, `"Segoe UI Symbol"`, `"Noto Color Emoji"`},
			"serif": {"ui-serif", "Georgia", "Cambria", `"Times New Roman"`, "Times", "serif"},
			"mono":  {"ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas", `"Liberation Mono"`, `"Courier New"`, "monospace"},
		},
		Animation: map[string]string{
			"none":   "none",
			"spin":   "spin 1s linear infinite",
			"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce": "bounce 1s infinite",
		},
		Keyframes: map[string]Keyframes{
			"spin": {
				"to": {"transform": "rotate(360deg)"},
			},
			"ping": {
				"75%, 100%": {"transform": "scale(2)", "opacity": "0"},
			},
			"pulse": {
				"50%": {"opacity": ".5"},
			},
			"bounce": {
				"0%, 100%": {"transform": "translateY(-25%)", "animationTimingFunction": "cubic-bezier(0.8,0,1,1)"},
				"50%":      {"transform": "none", "animationTimingFunction": "cubic-bezier(0,0,0.2,1)"},
			},
		},
	}
}

// MergeTokens returns base with ext layered on top. Keys missing from ext
// keep their base value; keys present in ext replace the base entry of the
// same name. Neither argument is modified.
func MergeTokens(base TokenSet, ext ThemeExtension) TokenSet {
	merged := TokenSet{
		FontFamily: make(map[string][]string, len(base.FontFamily)+len(ext.FontFamily)),
		Animation:  make(map[string]string, len(base.Animation)+len(ext.Animation)),
		Keyframes:  make(map[string]Keyframes, len(base.Keyframes)+len(ext.Keyframes)),
	}

	for name, stack := range base.FontFamily {
		merged.FontFamily[name] = append([]string(nil), stack...)
	}
	for name, stack := range ext.FontFamily {
		merged.FontFamily[name] = append([]string(nil), stack...)
	}

	for name, value := range base.Animation {
		merged.Animation[name] = value
	}
	for name, value := range ext.Animation {
		merged.Animation[name] = value
	}

	for name, frames := range base.Keyframes {
		merged.Keyframes[name] = frames.clone()
	}
	for name, frames := range ext.Keyframes {
		merged.Keyframes[name] = frames.clone()
	}

	return merged
}

func (k Keyframes) clone() Keyframes {
	if k == nil {
		return nil
	}
	out := make(Keyframes, len(k))
	for selector, decls := range k {
		copied := make(Declarations, len(decls))
		for prop, value := range decls {
			copied[prop] = value
		}
		out[selector] = copied
	}
	return out
}

// DefaultConfig returns the document written by "fluxstyle init" and used
// when a document is allowed to be missing. Tokens are already resolved.
func DefaultConfig() *StyleConfig {
	cfg := &StyleConfig{
		Content: []string{"./index.html", "./src/**/*.{html,js,ts,jsx,tsx,rs}"},
		Theme: ThemeConfig{
			Container: ContainerConfig{Center: true},
		},
		Plugins: []string{"@tailwindcss/forms", "@tailwindcss/typography", "daisyui"},
		DaisyUI: &ThemeCatalog{
			Themes: []string{"lofi", "black"},
		},
	}
	cfg.Tokens = MergeTokens(BaseTokens(), cfg.Theme.Extend)
	return cfg
}

// normalize drops empty collections so that a decoded document and its
// re-encoded form compare equal.
func normalize(cfg *StyleConfig) {
	if len(cfg.Content) == 0 {
		cfg.Content = nil
	}
	if len(cfg.Plugins) == 0 {
		cfg.Plugins = nil
	}
	normalizeExtension(&cfg.Theme.Extend)
	if cfg.Extend != nil {
		normalizeExtension(cfg.Extend)
	}
	if cfg.DaisyUI != nil && len(cfg.DaisyUI.Themes) == 0 {
		cfg.DaisyUI.Themes = nil
	}
}

func normalizeExtension(ext *ThemeExtension) {
	if len(ext.FontFamily) == 0 {
		ext.FontFamily = nil
	}
	for name, stack := range ext.FontFamily {
		if len(stack) == 0 {
			ext.FontFamily[name] = nil
		}
	}
	if len(ext.Animation) == 0 {
		ext.Animation = nil
	}
	if len(ext.Keyframes) == 0 {
		ext.Keyframes = nil
	}
	for name, frames := range ext.Keyframes {
		if len(frames) == 0 {
			ext.Keyframes[name] = nil
			continue
		}
		for selector, decls := range frames {
			if len(decls) == 0 {
				frames[selector] = nil
			}
		}
	}
}
