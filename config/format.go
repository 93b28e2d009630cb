package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatYAML, FormatJSON, FormatHCL}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("unsupported format '%s', valid options are: yaml, json, hcl", name)
}

// FormatFromPath detects the format from a file extension. Unknown extensions read as YAML.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatYAML
}

// Extension returns the canonical file extension, with the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Decode parses a document. It does not apply defaults or validate.
func Decode(data []byte, format Format, filename string) (*StyleConfig, error) {
	var cfg *StyleConfig
	var err error

	switch format {
	case FormatHCL:
		cfg, err = decodeHCL(data, filename)
	case FormatYAML:
		cfg, err = decodeYAML(data)
	case FormatJSON:
		cfg, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported format '%s'", ErrMalformedConfig, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse configuration file %s: %v", ErrMalformedConfig, filename, err)
	}

	normalize(cfg)
	return cfg, nil
}

// decodeYAML decodes a single YAML document, rejecting unknown keys.
func decodeYAML(data []byte) (*StyleConfig, error) {
	var cfg StyleConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &cfg, nil
		}
		return nil, err
	}

	var extra yaml.Node
	switch err := decoder.Decode(&extra); err {
	case io.EOF:
		return &cfg, nil
	case nil:
		return nil, fmt.Errorf("expected a single YAML document, found more than one")
	default:
		return nil, err
	}
}

// decodeJSON decodes a single JSON value, rejecting unknown keys.
func decodeJSON(data []byte) (*StyleConfig, error) {
	var cfg StyleConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &cfg, nil
		}
		return nil, err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the top-level JSON value")
	}
	return &cfg, nil
}

// Encode serializes the authored part of a document. Tokens are not written.
func Encode(cfg *StyleConfig, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to marshal configuration: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal configuration: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal configuration: %w", err)
		}
		return append(data, '\n'), nil
	case FormatHCL:
		return encodeHCL(cfg), nil
	}
	return nil, fmt.Errorf("unsupported format '%s'", format)
}

// WriteConfig encodes cfg in the format implied by path and writes it.
func WriteConfig(path string, cfg *StyleConfig) error {
	data, err := Encode(cfg, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}
	return nil
}
