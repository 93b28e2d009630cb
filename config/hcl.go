package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclDocument is the top-level structure of a style.hcl file for decoding.
type hclDocument struct {
	Content []string      `hcl:"content,optional"`
	Plugins []string      `hcl:"plugins,optional"`
	Theme   *hclTheme     `hcl:"theme,block"`
	DaisyUI *hclCatalog   `hcl:"daisyui,block"`
	Extend  *hclExtension `hcl:"extend,block"`
}

type hclTheme struct {
	Container *hclContainer `hcl:"container,block"`
	Extend    *hclExtension `hcl:"extend,block"`
}

type hclContainer struct {
	Center  bool   `hcl:"center,optional"`
	Padding string `hcl:"padding,optional"`
}

type hclExtension struct {
	FontFamily map[string][]string                     `hcl:"fontFamily,optional"`
	Animation  map[string]string                       `hcl:"animation,optional"`
	Keyframes  map[string]map[string]map[string]string `hcl:"keyframes,optional"`
}

type hclCatalog struct {
	Themes    []string `hcl:"themes,optional"`
	DarkTheme string   `hcl:"darkTheme,optional"`
}

func decodeHCL(data []byte, filename string) (*StyleConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diags
	}

	cfg := &StyleConfig{
		Content: doc.Content,
		Plugins: doc.Plugins,
	}
	if doc.Theme != nil {
		if doc.Theme.Container != nil {
			cfg.Theme.Container = ContainerConfig{
				Center:  doc.Theme.Container.Center,
				Padding: doc.Theme.Container.Padding,
			}
		}
		if doc.Theme.Extend != nil {
			cfg.Theme.Extend = doc.Theme.Extend.toExtension()
		}
	}
	if doc.DaisyUI != nil {
		cfg.DaisyUI = &ThemeCatalog{
			Themes:    doc.DaisyUI.Themes,
			DarkTheme: doc.DaisyUI.DarkTheme,
		}
	}
	if doc.Extend != nil {
		ext := doc.Extend.toExtension()
		cfg.Extend = &ext
	}
	return cfg, nil
}

func (e *hclExtension) toExtension() ThemeExtension {
	ext := ThemeExtension{
		FontFamily: e.FontFamily,
		Animation:  e.Animation,
	}
	if e.Keyframes != nil {
		ext.Keyframes = make(map[string]Keyframes, len(e.Keyframes))
		for name, frames := range e.Keyframes {
			kf := make(Keyframes, len(frames))
			for selector, decls := range frames {
				kf[selector] = Declarations(decls)
			}
			ext.Keyframes[name] = kf
		}
	}
	return ext
}

func encodeHCL(cfg *StyleConfig) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if cfg.Content != nil {
		body.SetAttributeValue("content", stringList(cfg.Content))
	}
	if cfg.Plugins != nil {
		body.SetAttributeValue("plugins", stringList(cfg.Plugins))
	}

	if !cfg.Theme.Extend.IsZero() || cfg.Theme.Container != (ContainerConfig{}) {
		body.AppendNewline()
		theme := body.AppendNewBlock("theme", nil).Body()
		if c := cfg.Theme.Container; c != (ContainerConfig{}) {
			container := theme.AppendNewBlock("container", nil).Body()
			if c.Center {
				container.SetAttributeValue("center", cty.True)
			}
			if c.Padding != "" {
				container.SetAttributeValue("padding", cty.StringVal(c.Padding))
			}
		}
		if !cfg.Theme.Extend.IsZero() {
			writeExtension(theme.AppendNewBlock("extend", nil).Body(), cfg.Theme.Extend)
		}
	}

	if cfg.DaisyUI != nil {
		body.AppendNewline()
		catalog := body.AppendNewBlock("daisyui", nil).Body()
		if cfg.DaisyUI.Themes != nil {
			catalog.SetAttributeValue("themes", stringList(cfg.DaisyUI.Themes))
		}
		if cfg.DaisyUI.DarkTheme != "" {
			catalog.SetAttributeValue("darkTheme", cty.StringVal(cfg.DaisyUI.DarkTheme))
		}
	}

	if cfg.Extend != nil {
		body.AppendNewline()
		writeExtension(body.AppendNewBlock("extend", nil).Body(), *cfg.Extend)
	}

	return f.Bytes()
}

func writeExtension(body *hclwrite.Body, ext ThemeExtension) {
	if len(ext.FontFamily) > 0 {
		stacks := make(map[string]cty.Value, len(ext.FontFamily))
		for name, stack := range ext.FontFamily {
			stacks[name] = stringList(stack)
		}
		body.SetAttributeValue("fontFamily", cty.MapVal(stacks))
	}

	if len(ext.Animation) > 0 {
		body.SetAttributeValue("animation", stringMap(ext.Animation))
	}

	if len(ext.Keyframes) > 0 {
		all := make(map[string]cty.Value, len(ext.Keyframes))
		for name, frames := range ext.Keyframes {
			if len(frames) == 0 {
				all[name] = cty.MapValEmpty(cty.Map(cty.String))
				continue
			}
			steps := make(map[string]cty.Value, len(frames))
			for selector, decls := range frames {
				steps[selector] = stringMap(decls)
			}
			all[name] = cty.MapVal(steps)
		}
		body.SetAttributeValue("keyframes", cty.MapVal(all))
	}
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}

func stringMap(values map[string]string) cty.Value {
	if len(values) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	vals := make(map[string]cty.Value, len(values))
	for k, v := range values {
		vals[k] = cty.StringVal(v)
	}
	return cty.MapVal(vals)
}
