package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	eberrors "github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/errors"
)

// Settings file sections.
const (
	sectionAWS = "aws"
	sectionApp = "app"
)

// LoadSettingsFile loads Settings from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
//
// The file holds an optional "aws" and an optional "app" mapping with
// snake_case keys:
//
//	aws:
//	  environment: production
//	  region: eu-west-1
//	app:
//	  log_level: debug
//	  batch_size: 50
//
// Values are applied through BuildSettings, so the process environment is
// never consulted. An empty file is rejected.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, &eberrors.ConfigurationError{
			Section: "settings",
			Err:     fmt.Errorf("read settings file: %w", err),
		}
	}
	// A truncated file mid-write would otherwise load as all defaults.
	if len(bytes.TrimSpace(data)) == 0 {
		return Settings{}, &eberrors.ConfigurationError{
			Section: "settings",
			Err:     fmt.Errorf("settings file %s is empty", path),
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return ParseSettingsYAML(data)
	case ".json":
		return ParseSettingsJSON(data)
	default:
		return Settings{}, &eberrors.ConfigurationError{
			Section: "settings",
			Err:     fmt.Errorf("%w: %q", eberrors.ErrUnsupportedFormat, ext),
		}
	}
}

// ParseSettingsYAML parses YAML data into Settings.
func ParseSettingsYAML(data []byte) (Settings, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Settings{}, &eberrors.ConfigurationError{
			Section: "settings",
			Err:     fmt.Errorf("parse yaml: %w", err),
		}
	}
	return settingsFromSections(m)
}

// ParseSettingsJSON parses JSON data into Settings.
func ParseSettingsJSON(data []byte) (Settings, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Settings{}, &eberrors.ConfigurationError{
			Section: "settings",
			Err:     fmt.Errorf("parse json: %w", err),
		}
	}
	return settingsFromSections(m)
}

func settingsFromSections(m map[string]any) (Settings, error) {
	var fields []eberrors.FieldError
	section := func(name string) map[string]any {
		raw, ok := m[name]
		if !ok || raw == nil {
			return nil
		}
		sec, ok := raw.(map[string]any)
		if !ok {
			fields = append(fields, eberrors.FieldError{Field: name, Message: "section must be a mapping", Value: raw})
			return nil
		}
		return sec
	}

	aws := section(sectionAWS)
	app := section(sectionApp)
	for key := range m {
		if key != sectionAWS && key != sectionApp {
			fields = append(fields, eberrors.FieldError{Field: key, Message: "unknown section"})
		}
	}
	if len(fields) > 0 {
		return Settings{}, eberrors.NewConfigurationError("settings", fields)
	}

	return BuildSettings(aws, app)
}
