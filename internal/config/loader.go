package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/wcagcheck/internal/security"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "WCAGCHECK_CONFIG"

var configFilenames = []string{
	"config.yaml",
	"config.yml",
	"config.toml",
	"config.json",
}

// LoadFile reads overrides from a YAML, TOML or JSON config file.
func LoadFile(path string) (Overrides, error) {
	var o Overrides
	if err := security.ValidateFilePath(path); err != nil {
		return o, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return o, err
	}
	defer f.Close()

	data, err := security.ReadAllLimited(f, security.MaxSettingsSize)
	if err != nil {
		return o, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
			return o, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&o); err != nil {
			return o, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&o); err != nil {
			return o, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return o, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return o, nil
}

// Find locates the config file. An explicit path wins; otherwise the first
// existing config.{yaml,yml,toml,json} under $XDG_CONFIG_HOME/wcagcheck (or
// ~/.config/wcagcheck) is used. Returns "" when there is none.
func Find(explicit, xdgHome, home string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		if err := security.ValidateFilePath(p); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return p, nil
	}

	root := strings.TrimSpace(xdgHome)
	if root == "" {
		homeDir := strings.TrimSpace(home)
		if homeDir == "" {
			if h, err := os.UserHomeDir(); err == nil {
				homeDir = h
			}
		}
		if homeDir == "" {
			return "", nil
		}
		root = filepath.Join(homeDir, ".config")
	}

	for _, name := range configFilenames {
		candidate := filepath.Join(root, "wcagcheck", name)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// Resolve builds the effective configuration from defaults, the config file
// and the environment, in increasing precedence. It returns the config file
// used, if any. The result is not validated: command-line overrides are
// applied on top of it first.
func Resolve(explicitPath string, getenv func(string) string) (Config, string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Default()

	explicit := explicitPath
	if explicit == "" {
		explicit = getenv(EnvConfig)
	}
	path, err := Find(explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return cfg, "", err
	}
	if path != "" {
		fileOverrides, err := LoadFile(path)
		if err != nil {
			return cfg, path, err
		}
		cfg = cfg.Apply(fileOverrides)
	}

	envOverrides, err := FromEnv(getenv)
	if err != nil {
		return cfg, path, err
	}
	return cfg.Apply(envOverrides), path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
