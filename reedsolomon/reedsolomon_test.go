package reedsolomon

import (
	"bytes"
	"testing"
)

func TestFieldTables(t *testing.T) {
	f := QRCodeField256
	if f.Exp(0) != 1 || f.Exp(1) != 2 || f.Exp(8) != 0x1D {
		t.Errorf("exp table wrong: %d %d %d", f.Exp(0), f.Exp(1), f.Exp(8))
	}
	for a := 1; a < 256; a++ {
		if f.Mul(a, 1) != a {
			t.Fatalf("Mul(%d, 1) = %d", a, f.Mul(a, 1))
		}
	}
	if f.Mul(0, 77) != 0 {
		t.Error("Mul by zero should be zero")
	}
}

func TestECCodewordsQRHelloWorld(t *testing.T) {
	// "HELLO WORLD" as version 1-M data codewords.
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	got := NewEncoder(QRCodeField256).ECCodewords(data, len(want))
	if !bytes.Equal(got, want) {
		t.Errorf("ECCodewords = %v, want %v", got, want)
	}
}

func TestECCodewordsDataMatrix(t *testing.T) {
	// "123456" in a 10x10 symbol: digit pairs 12, 34, 56.
	data := []byte{142, 164, 186}
	want := []byte{114, 25, 5, 88, 102}
	got := NewEncoder(DataMatrixField256).ECCodewords(data, len(want))
	if !bytes.Equal(got, want) {
		t.Errorf("ECCodewords = %v, want %v", got, want)
	}
}

func TestECCodewordsZeroRemainder(t *testing.T) {
	// A codeword appended with its own EC bytes divides the generator evenly.
	enc := NewEncoder(QRCodeField256)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ec := enc.ECCodewords(data, 7)
	again := enc.ECCodewords(append(append([]byte{}, data...), ec...), 7)
	if !bytes.Equal(again, make([]byte, 7)) {
		t.Errorf("remainder of full codeword = %v, want zeros", again)
	}
}
