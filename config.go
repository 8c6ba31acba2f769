package barnode

import (
	"encoding/hex"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Configuration defaults.
const (
	DefaultSymbology       = SymbologyCode128
	DefaultForegroundColor = "fff000"
	DefaultBackgroundColor = "000000"
	DefaultFileName        = "out.png"
	DefaultScale           = 1.0

	maxScale  = 100
	maxHeight = 1000
)

// Config describes one symbol request apart from its text. Build it with
// DefaultConfig and override fields, or load it with LoadConfig.
type Config struct {
	Symbology Symbology `toml:"symbology"`

	// ForegroundColor and BackgroundColor are RRGGBB or RRGGBBAA hex.
	ForegroundColor string `toml:"foreground_color"`
	BackgroundColor string `toml:"background_color"`

	// FileName is the output path for file generation. Its extension picks
	// the output format.
	FileName string `toml:"file_name"`

	// Scale multiplies the base module size of 2 pixels.
	Scale float64 `toml:"scale"`

	// Option1 to Option3 are symbology specific; Unset (-1) when not used.
	Option1 int `toml:"option1"`
	Option2 int `toml:"option2"`
	Option3 int `toml:"option3"`

	// ShowHRT draws the human-readable text row under linear symbols.
	ShowHRT bool `toml:"show_hrt"`

	// Height overrides the bar height of linear symbols, in modules.
	Height int `toml:"height"`

	// Rotation turns the output clockwise by 0, 90, 180 or 270 degrees.
	Rotation int `toml:"rotation"`

	// ECI forces a character set designator for QR Code and Data Matrix.
	ECI int `toml:"eci"`
}

// DefaultConfig returns the configuration used when a caller supplies
// nothing: Code 128, yellow on black, scale 1, text row shown.
func DefaultConfig() Config {
	return Config{
		Symbology:       DefaultSymbology,
		ForegroundColor: DefaultForegroundColor,
		BackgroundColor: DefaultBackgroundColor,
		FileName:        DefaultFileName,
		Scale:           DefaultScale,
		Option1:         Unset,
		Option2:         Unset,
		Option3:         Unset,
		ShowHRT:         true,
	}
}

// Normalize replaces zero values with their defaults. Option values of 0
// mean unset. ShowHRT is left alone.
func (c Config) Normalize() Config {
	if c.Symbology == 0 {
		c.Symbology = DefaultSymbology
	}
	if c.ForegroundColor == "" {
		c.ForegroundColor = DefaultForegroundColor
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = DefaultBackgroundColor
	}
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	for _, o := range []*int{&c.Option1, &c.Option2, &c.Option3} {
		if *o == 0 {
			*o = Unset
		}
	}
	return c
}

// Validate checks the shape of the configuration. It does not consult the
// symbology table.
func (c Config) Validate() error {
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	if math.IsNaN(c.Scale) || c.Scale <= 0 || c.Scale > maxScale {
		return Invalidf("scale must be in (0, %d], got %g", maxScale, c.Scale)
	}
	if c.Height < 0 || c.Height > maxHeight {
		return Invalidf("height must be in [0, %d], got %d", maxHeight, c.Height)
	}
	switch c.Rotation {
	case 0, 90, 180, 270:
	default:
		return Invalidf("rotation must be 0, 90, 180 or 270, got %d", c.Rotation)
	}
	if c.ECI < 0 || c.ECI > 999999 {
		return Invalidf("eci must be in [0, 999999], got %d", c.ECI)
	}
	return nil
}

// Colors parses the foreground and background colours.
func (c Config) Colors() (fg, bg color.NRGBA, err error) {
	if fg, err = ParseColor(c.ForegroundColor); err != nil {
		return fg, bg, err
	}
	bg, err = ParseColor(c.BackgroundColor)
	return fg, bg, err
}

// ParseColor parses an RRGGBB or RRGGBBAA hex string, with an optional
// leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, Invalidf("colour %q must be 6 or 8 hex digits", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, Invalidf("colour %q is not hexadecimal", s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// DecodeConfig reads a TOML document on top of DefaultConfig. Unknown keys
// are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, &Error{
			Category: CategoryValidation,
			Message:  "decode config",
			Cause:    err,
			sentinel: ErrInvalidConfig,
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, Invalidf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &Error{
			Category: CategoryValidation,
			Message:  "open config",
			Cause:    err,
			sentinel: ErrInvalidConfig,
		}
	}
	defer f.Close()
	return DecodeConfig(f)
}
