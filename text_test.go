package barnode

import (
	"errors"
	"testing"
)

func TestTextBytes(t *testing.T) {
	eci, data, err := TextBytes("QR Code", "Grüße", 0)
	if err != nil {
		t.Fatal(err)
	}
	if eci != nil {
		t.Errorf("Latin-1 text should not need an ECI, got %d", eci.Value)
	}
	if len(data) != 5 || data[2] != 0xFC {
		t.Errorf("data = % x", data)
	}

	eci, _, err = TextBytes("QR Code", "Ж", 0)
	if err != nil {
		t.Fatal(err)
	}
	if eci == nil || eci.Value != 26 {
		t.Errorf("Cyrillic text should select UTF-8, got %v", eci)
	}
}

func TestTextBytesErrors(t *testing.T) {
	_, _, err := TextBytes("QR Code", "abЖ", 3)
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("err = %v, want ErrInvalidCharacter", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Position != 2 || e.Char != 'Ж' {
		t.Errorf("err = %#v, want position 2", err)
	}
	if want := "invalid character 'Ж' at position 2 (allowed: ISO-8859-1)"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if Code(err) != CodeInvalidData {
		t.Errorf("code = %d, want %d", Code(err), CodeInvalidData)
	}

	_, _, err = TextBytes("QR Code", "abc", 19)
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("err = %v, want ErrInvalidOption", err)
	}
}
