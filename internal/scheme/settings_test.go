package scheme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/wcagcheck/internal/compression"
	"github.com/jmylchreest/wcagcheck/internal/security"
)

const settingsJSON = `{
    "app_background_color": "#F0F0F0",
    "state_color_settings": {
        "default": {"background": "#4682B4", "foreground": "#FFFFFF"},
        "hover": {"background": "#326496", "foreground": "#FFFFFF"},
        "focused": {"background": "#5A96C8", "foreground": "#FFFFFF"},
        "active": {"background": "#1E466E", "foreground": "#FFFFFF"},
        "disabled": {"background": "#BED2E6", "foreground": "#696969"}
    }
}`

func TestDecodeSettingsLayout(t *testing.T) {
	got, err := Decode([]byte(settingsJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Default(), got, colourComparer); diff != "" {
		t.Errorf("decoded scheme mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML(t *testing.T) {
	data := `
app_background_color: "#F0F0F0"
state_color_settings:
  default: {background: "#4682B4", foreground: "#FFFFFF"}
  hover: {background: "#326496", foreground: "#FFFFFF"}
  focused: {background: "#5A96C8", foreground: "#FFFFFF"}
  active: {background: "#1E466E", foreground: "#FFFFFF"}
  disabled: {background: "#BED2E6", foreground: "#696969"}
`
	got, err := Decode([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Default(), got, colourComparer); diff != "" {
		t.Errorf("decoded scheme mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not an object",
			data:    `[]`,
			wantErr: "failed to decode JSON",
		},
		{
			name:    "missing keys",
			data:    `{"app_background_color": "#FFFFFF"}`,
			wantErr: "missing required keys",
		},
		{
			name:    "missing state",
			data:    `{"app_background_color": "#FFFFFF", "state_color_settings": {}}`,
			wantErr: "missing colours for state: default",
		},
		{
			name:    "missing foreground",
			data:    `{"app_background_color": "#FFFFFF", "state_color_settings": {"default": {"background": "#000000"}}}`,
			wantErr: "missing 'background' or 'foreground' for state: default",
		},
		{
			name:    "bad colour",
			data:    `{"app_background_color": "#FFF", "state_color_settings": {}}`,
			wantErr: "invalid hex colour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), FormatJSON)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want, _ := newFixer().Fix(Default())

	for _, name := range []string{
		"scheme.json",
		"scheme.yaml",
		"scheme.yml",
		"scheme.toml",
		"scheme.json.xz",
		"scheme.toml.gz",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(want, got, colourComparer); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveJSONKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.json")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"app_background_color": "#F0F0F0"`, `"state_color_settings"`, `"foreground": "#696969"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved JSON missing %s:\n%s", want, data)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.json":    FormatJSON,
		"a.YAML":    FormatYAML,
		"a.yml.xz":  FormatYAML,
		"a.toml.gz": FormatTOML,
	}
	for path, want := range tests {
		got, err := FormatFor(path)
		if err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q, %v, want %q", path, got, err, want)
		}
	}
	if _, err := FormatFor("scheme.ini"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOversized(t *testing.T) {
	dir := t.TempDir()
	padded := []byte(settingsJSON + strings.Repeat(" ", 2*security.MaxSettingsSize))

	plain := filepath.Join(dir, "big.json")
	if err := os.WriteFile(plain, padded, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(plain); !errors.Is(err, security.ErrSizeLimit) {
		t.Errorf("Load(big.json) error = %v, want size limit", err)
	}

	// Compresses far below the limit but expands past it.
	packed, err := compression.Encode(compression.Xz, padded)
	if err != nil {
		t.Fatal(err)
	}
	compressed := filepath.Join(dir, "big.json.xz")
	if err := os.WriteFile(compressed, packed, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(compressed); !errors.Is(err, security.ErrSizeLimit) {
		t.Errorf("Load(big.json.xz) error = %v, want size limit", err)
	}
}
