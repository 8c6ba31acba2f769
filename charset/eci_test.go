package charset

import (
	"bytes"
	"errors"
	"testing"
)

func TestSelectLatin1NeedsNoDesignator(t *testing.T) {
	eci, data, err := Select("Grüße", 0)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if eci != nil {
		t.Errorf("eci = %v, want nil", eci.Name)
	}
	want := []byte{'G', 'r', 0xFC, 0xDF, 'e'}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %x, want %x", data, want)
	}
}

func TestSelectFallsBackToUTF8(t *testing.T) {
	eci, data, err := Select("Ж1", 0)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if eci != UTF8 {
		t.Fatalf("eci = %v, want UTF-8", eci)
	}
	if !bytes.Equal(data, []byte("Ж1")) {
		t.Errorf("data = %x", data)
	}
}

func TestSelectForced(t *testing.T) {
	eci, data, err := Select("Ж", 7)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if eci.Value != 7 {
		t.Errorf("eci = %d, want 7", eci.Value)
	}
	if !bytes.Equal(data, []byte{0xB6}) {
		t.Errorf("data = %x, want b6", data)
	}
}

func TestSelectForcedUnencodable(t *testing.T) {
	_, _, err := Select("abЖ", 3)
	var ue *UnencodableError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnencodableError", err)
	}
	if ue.Char != 'Ж' || ue.Position != 2 {
		t.Errorf("got %q at %d, want 'Ж' at 2", ue.Char, ue.Position)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup(999); !errors.Is(err, ErrUnknownECI) {
		t.Errorf("err = %v, want ErrUnknownECI", err)
	}
	if e, err := Lookup(20); err != nil || e.Name != "Shift_JIS" {
		t.Errorf("Lookup(20) = %v, %v", e, err)
	}
}
