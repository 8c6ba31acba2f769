package barnode

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Symbology != 20 || c.ForegroundColor != "fff000" || c.BackgroundColor != "000000" {
		t.Errorf("defaults = %+v", c)
	}
	if c.Scale != 1.0 || c.Option1 != -1 || c.Option2 != -1 || c.Option3 != -1 || !c.ShowHRT {
		t.Errorf("defaults = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	c := Config{Option2: 3}.Normalize()
	if c.Symbology != DefaultSymbology || c.Scale != DefaultScale || c.FileName != DefaultFileName {
		t.Errorf("Normalize = %+v", c)
	}
	if c.Option1 != Unset || c.Option2 != 3 || c.Option3 != Unset {
		t.Errorf("options = %d %d %d", c.Option1, c.Option2, c.Option3)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"short colour", func(c *Config) { c.ForegroundColor = "fff" }},
		{"non hex colour", func(c *Config) { c.BackgroundColor = "zzzzzz" }},
		{"negative scale", func(c *Config) { c.Scale = -1 }},
		{"huge scale", func(c *Config) { c.Scale = 1000 }},
		{"negative height", func(c *Config) { c.Height = -5 }},
		{"odd rotation", func(c *Config) { c.Rotation = 45 }},
		{"negative eci", func(c *Config) { c.ECI = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mod(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if Code(err) != CodeValidation {
				t.Errorf("Code = %d", Code(err))
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"fff000", color.NRGBA{0xff, 0xf0, 0x00, 0xff}},
		{"#000000", color.NRGBA{0, 0, 0, 0xff}},
		{"11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	doc := `
symbology = 58
foreground_color = "000000"
background_color = "ffffff"
scale = 2.5
option1 = 3
show_hrt = false
`
	c, err := DecodeConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if c.Symbology != SymbologyQRCode || c.Scale != 2.5 || c.Option1 != 3 || c.ShowHRT {
		t.Errorf("config = %+v", c)
	}
	if c.Option2 != Unset || c.FileName != DefaultFileName {
		t.Errorf("unspecified keys should keep defaults: %+v", c)
	}
}

func TestDecodeConfigRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("symbology = 20\ncolour = \"red\"\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "colour") {
		t.Errorf("message %q should name the key", err.Error())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbol.toml")
	if err := os.WriteFile(path, []byte("symbology = 8\nfile_name = \"code39.svg\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Symbology != SymbologyCode39 || c.FileName != "code39.svg" {
		t.Errorf("config = %+v", c)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
