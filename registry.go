package barnode

import (
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"
)

// CharClass is the set of characters a symbology accepts.
type CharClass struct {
	Name   string
	Allows func(r rune) bool
}

// Index returns the position (in runes) and value of the first character
// the class rejects, or -1 when every character is accepted.
func (c CharClass) Index(text string) (int, rune) {
	pos := 0
	for _, r := range text {
		if r == utf8.RuneError || !c.Allows(r) {
			return pos, r
		}
		pos++
	}
	return -1, 0
}

// CharSet builds a class accepting exactly the runes in chars.
func CharSet(name, chars string) CharClass {
	return CharClass{
		Name: name,
		Allows: func(r rune) bool {
			for _, c := range chars {
				if c == r {
					return true
				}
			}
			return false
		},
	}
}

// Common character classes.
var (
	Digits  = CharClass{Name: "digits", Allows: func(r rune) bool { return r >= '0' && r <= '9' }}
	ASCII   = CharClass{Name: "ASCII", Allows: func(r rune) bool { return r < 0x80 }}
	Unicode = CharClass{Name: "Unicode", Allows: func(r rune) bool { return utf8.ValidRune(r) }}
)

// Checksum describes whether a symbology carries check characters.
type Checksum int

const (
	ChecksumNone Checksum = iota
	ChecksumMandatory
	ChecksumOptional
)

// Descriptor holds the encoding rules of a symbology.
type Descriptor struct {
	Symbology Symbology
	Name      string
	Charset   CharClass
	MinLength int
	MaxLength int
	Checksum  Checksum

	// Linear is true for 1-D symbologies.
	Linear bool

	// BarHeight is the default bar height in modules for linear symbols,
	// i.e. the module aspect ratio. Matrix symbols use square modules.
	BarHeight int

	// QuietZone is the default margin in modules.
	QuietZone int

	Encoder Encoder
}

var (
	registryMu  sync.RWMutex
	descriptors = map[Symbology]*Descriptor{}
)

// Register adds a symbology to the table. It panics on duplicates, so it is
// meant to be called from package init functions.
func Register(d *Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := descriptors[d.Symbology]; dup {
		panic(fmt.Sprintf("barnode: symbology %d registered twice", d.Symbology))
	}
	descriptors[d.Symbology] = d
}

// Lookup returns the descriptor registered for s.
func Lookup(s Symbology) (*Descriptor, error) {
	registryMu.RLock()
	d, ok := descriptors[s]
	registryMu.RUnlock()
	if !ok {
		return nil, NotFound(s)
	}
	return d, nil
}

// Symbologies returns the registered symbologies in ascending order.
func Symbologies() []Symbology {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Symbology, 0, len(descriptors))
	for s := range descriptors {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
