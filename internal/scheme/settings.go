package scheme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/compression"
	"github.com/jmylchreest/wcagcheck/internal/security"
)

// Format is a settings file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// settingsFile is the on-disk layout shared by all formats.
type settingsFile struct {
	AppBackground *colour.Color           `json:"app_background_color" yaml:"app_background_color" toml:"app_background_color"`
	States        map[string]settingsPair `json:"state_color_settings" yaml:"state_color_settings" toml:"state_color_settings"`
}

type settingsPair struct {
	Background *colour.Color `json:"background" yaml:"background" toml:"background"`
	Foreground *colour.Color `json:"foreground" yaml:"foreground" toml:"foreground"`
}

// FormatFor infers the settings format from a file name, ignoring any
// compression suffix.
func FormatFor(path string) (Format, error) {
	_, name := compression.Detect(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported settings file extension: %s", path)
	}
}

// Load reads a scheme from a JSON, YAML or TOML settings file, optionally
// compressed with xz, gzip or bzip2.
func Load(path string) (Scheme, error) {
	if err := security.ValidateFilePath(path); err != nil {
		return Scheme{}, err
	}
	format, err := FormatFor(path)
	if err != nil {
		return Scheme{}, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Scheme{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	// Both the raw and the decompressed stream are bounded.
	codec, _ := compression.Detect(path)
	raw := security.NewLimitedReader(f, security.MaxSettingsSize+1)
	data, err := compression.Read(codec, raw, security.MaxSettingsSize)
	if err != nil {
		return Scheme{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s, err := Decode(data, format)
	if err != nil {
		return Scheme{}, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return s, nil
}

// Decode parses settings data in the given format.
func Decode(data []byte, format Format) (Scheme, error) {
	var doc settingsFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return Scheme{}, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Scheme{}, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Scheme{}, fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		return Scheme{}, fmt.Errorf("unsupported settings format: %s", format)
	}

	if doc.AppBackground == nil || doc.States == nil {
		return Scheme{}, fmt.Errorf("missing required keys app_background_color and state_color_settings")
	}

	s := Scheme{AppBackground: *doc.AppBackground, States: make(map[State]Pair, len(doc.States))}
	for name, p := range doc.States {
		if p.Background == nil || p.Foreground == nil {
			return Scheme{}, fmt.Errorf("missing 'background' or 'foreground' for state: %s", name)
		}
		s.States[State(name)] = Pair{Foreground: *p.Foreground, Background: *p.Background}
	}

	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}

// Encode serialises a scheme in the given format.
func Encode(s Scheme, format Format) ([]byte, error) {
	doc := settingsFile{
		AppBackground: &s.AppBackground,
		States:        make(map[string]settingsPair, len(s.States)),
	}
	for st, p := range s.States {
		doc.States[string(st)] = settingsPair{Background: &p.Background, Foreground: &p.Foreground}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported settings format: %s", format)
	}
}

// Save writes a scheme to path, choosing format and compression from the
// file name.
func Save(path string, s Scheme) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(s, format)
	if err != nil {
		return err
	}

	codec, _ := compression.Detect(path)
	data, err = compression.Encode(codec, data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - settings files are not secret
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
