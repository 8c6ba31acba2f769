package barnode

import (
	"fmt"
	"unicode/utf8"
)

// Unset marks a symbology option the caller did not supply.
const Unset = -1

// Options carries the symbology-specific knobs of a request. Each value is
// Unset or a value whose meaning is defined by the symbology.
type Options struct {
	Option1 int
	Option2 int
	Option3 int

	// ECI forces a character set designator for matrix symbologies.
	// Zero selects one automatically.
	ECI int
}

// Value returns option n (1, 2 or 3).
func (o Options) Value(n int) int {
	switch n {
	case 1:
		return o.Option1
	case 2:
		return o.Option2
	case 3:
		return o.Option3
	}
	return Unset
}

// RequireUnset returns an InvalidOption error naming the first of the given
// options that is set.
func (o Options) RequireUnset(name string, which ...int) error {
	for _, n := range which {
		if v := o.Value(n); v != Unset {
			return InvalidOption("%s does not support option%d (got %d)", name, n, v)
		}
	}
	return nil
}

// Encoder turns validated text into a symbol.
type Encoder interface {
	Encode(text string, opts Options) (*Symbol, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(text string, opts Options) (*Symbol, error)

// Encode calls f.
func (f EncoderFunc) Encode(text string, opts Options) (*Symbol, error) {
	return f(text, opts)
}

// Encode checks text against the descriptor's length bounds and character
// class, runs the symbology encoder and applies the presentation settings
// of cfg to the resulting symbol.
func Encode(d *Descriptor, text string, cfg Config) (*Symbol, error) {
	n := utf8.RuneCountInString(text)
	if n < d.MinLength || n > d.MaxLength {
		return nil, Length("%s accepts %d to %d characters, got %d", d.Name, d.MinLength, d.MaxLength, n)
	}
	if pos, r := d.Charset.Index(text); pos >= 0 {
		return nil, InvalidCharacter(r, pos, d.Charset.Name)
	}
	if d.Linear && cfg.ECI != 0 {
		return nil, InvalidOption("%s does not support ECI (got %d)", d.Name, cfg.ECI)
	}

	sym, err := d.Encoder.Encode(text, Options{
		Option1: cfg.Option1,
		Option2: cfg.Option2,
		Option3: cfg.Option3,
		ECI:     cfg.ECI,
	})
	if err != nil {
		return nil, err
	}
	if sym == nil || sym.Modules == nil {
		return nil, fmt.Errorf("%s encoder returned no modules", d.Name)
	}

	sym.Symbology = d.Symbology
	sym.Linear = d.Linear
	if sym.QuietZone == 0 {
		sym.QuietZone = d.QuietZone
	}
	if d.Linear {
		sym.Height = d.BarHeight
		if cfg.Height > 0 {
			sym.Height = cfg.Height
		}
	} else {
		sym.Height = 0
	}
	if !d.Linear || !cfg.ShowHRT {
		sym.Text = ""
	}
	return sym, nil
}
