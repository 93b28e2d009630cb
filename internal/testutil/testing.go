package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// OriginalDocument is the style configuration of the project this tool was
// extracted from, including its top-level "extend" that the build tool ignores.
const OriginalDocument = `content:
  - "./src/**/*.rs"
  - "./index.html"
theme:
  extend:
    fontFamily:
      sans: ["Nunito", "sans"]
  container:
    center: true
plugins:
  - "@tailwindcss/forms"
  - "@tailwindcss/typography"
  - daisyui
daisyui:
  themes: ["lofi", "black"]
extend:
  animation:
    cursor: "cursor .6s linear infinite alternate"
    type: "type 2.7s ease-out .8s infinite alternate both"
    type-reverse: "type 1.8s ease-out 0s infinite alternate-reverse both"
  keyframes:
    type:
      "0%": { transform: "translateX(0ch)" }
      "5%, 10%": { transform: "translateX(1ch)" }
      "15%, 20%": { transform: "translateX(2ch)" }
      "25%, 30%": { transform: "translateX(3ch)" }
      "35%, 40%": { transform: "translateX(4ch)" }
      "45%, 50%": { transform: "translateX(5ch)" }
      "55%, 60%": { transform: "translateX(6ch)" }
      "65%, 70%": { transform: "translateX(7ch)" }
      "75%, 80%": { transform: "translateX(8ch)" }
      "85%, 90%": { transform: "translateX(9ch)" }
      "95%, 100%": { transform: "translateX(11ch)" }
`

// MinimalDocument is the smallest complete document.
const MinimalDocument = `content: ["src/**/*.rs", "index.html"]
theme:
  extend:
    fontFamily:
      sans: ["Nunito", "sans"]
plugins: ["forms", "typography", "daisyui"]
daisyui:
  themes: ["lofi", "black"]
`

// HCLDocument is MinimalDocument plus keyframes, written as HCL.
const HCLDocument = `content = ["src/**/*.rs", "index.html"]
plugins = ["forms", "typography", "daisyui"]

theme {
  container {
    center = true
  }
  extend {
    fontFamily = {
      sans = ["Nunito", "sans"]
    }
    animation = {
      type = "type 2.7s ease-out .8s infinite alternate both"
    }
    keyframes = {
      type = {
        "0%"       = { transform = "translateX(0ch)" }
        "5%, 10%"  = { transform = "translateX(1ch)" }
        "95%, to"  = { transform = "translateX(11ch)" }
      }
    }
  }
}

daisyui {
  themes    = ["lofi", "black"]
  darkTheme = "black"
}
`

// DocumentTestCase describes a document and the field a load failure must name.
type DocumentTestCase struct {
	Name      string
	Filename  string
	Body      string
	WantField string
}

// GetMalformedDocumentTests returns documents that must fail to load as malformed.
func GetMalformedDocumentTests() []DocumentTestCase {
	return []DocumentTestCase{
		{
			Name:      "dark theme outside theme set",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\nplugins: [daisyui]\ndaisyui:\n  themes: [pastel]\n  darkTheme: business\n",
			WantField: "daisyui.darkTheme",
		},
		{
			Name:      "keyframe offset above 100",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\ntheme:\n  extend:\n    keyframes:\n      grow:\n        \"50%, 105%\": { width: \"10ch\" }\n",
			WantField: `theme.extend.keyframes.grow["50%, 105%"]`,
		},
		{
			Name:      "keyframe offset below 0",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\ntheme:\n  extend:\n    keyframes:\n      grow:\n        \"-5%\": { width: \"0\" }\n",
			WantField: `theme.extend.keyframes.grow["-5%"]`,
		},
		{
			Name:      "keyframe offset without percent",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\ntheme:\n  extend:\n    keyframes:\n      grow:\n        \"50\": { width: \"0\" }\n",
			WantField: `theme.extend.keyframes.grow["50"]`,
		},
		{
			Name:      "keyframe offset not a number",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\ntheme:\n  extend:\n    keyframes:\n      grow:\n        \"NaN%\": { width: \"0\" }\n",
			WantField: `theme.extend.keyframes.grow["NaN%"]`,
		},
		{
			Name:      "unknown plugin",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\nplugins: [forms, tailwind-magic]\n",
			WantField: "plugins[1]",
		},
		{
			Name:      "plugin activated twice through alias",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\nplugins: [forms, \"@tailwindcss/forms\"]\n",
			WantField: "plugins[1]",
		},
		{
			Name:      "duplicate theme",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\nplugins: [daisyui]\ndaisyui:\n  themes: [lofi, lofi]\n",
			WantField: "daisyui.themes[1]",
		},
		{
			Name:      "empty content",
			Filename:  "style.yaml",
			Body:      "plugins: [forms]\n",
			WantField: "content",
		},
		{
			Name:      "blank content pattern",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\", \"  \"]\n",
			WantField: "content[1]",
		},
		{
			Name:      "empty font stack",
			Filename:  "style.yaml",
			Body:      "content: [\"index.html\"]\ntheme:\n  extend:\n    fontFamily:\n      display: []\n",
			WantField: "theme.extend.fontFamily.display",
		},
		{
			Name:      "dark theme outside theme set in hcl",
			Filename:  "style.hcl",
			Body:      "content = [\"index.html\"]\nplugins = [\"daisyui\"]\n\ndaisyui {\n  themes = [\"pastel\"]\n  darkTheme = \"business\"\n}\n",
			WantField: "daisyui.darkTheme",
		},
	}
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ProjectDir creates a temporary project root holding the given files.
func ProjectDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}
