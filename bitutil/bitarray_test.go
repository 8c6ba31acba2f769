package bitutil

import (
	"bytes"
	"testing"
)

func TestBitArrayAppendBits(t *testing.T) {
	a := NewBitArray()
	a.AppendBits(0x5, 3)
	a.AppendBits(0x1, 1)
	if a.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", a.Size())
	}
	want := []bool{true, false, true, true}
	for i, w := range want {
		if a.Get(i) != w {
			t.Errorf("bit %d = %v, want %v", i, a.Get(i), w)
		}
	}
}

func TestBitArrayGrowsAcrossWords(t *testing.T) {
	a := NewBitArray()
	for i := 0; i < 100; i++ {
		a.AppendBit(i%3 == 0)
	}
	if a.Size() != 100 {
		t.Fatalf("Size() = %d, want 100", a.Size())
	}
	for i := 0; i < 100; i++ {
		if a.Get(i) != (i%3 == 0) {
			t.Fatalf("bit %d = %v", i, a.Get(i))
		}
	}
}

func TestBitArrayBytes(t *testing.T) {
	a := NewBitArray()
	a.AppendBits(0xA5, 8)
	a.AppendBits(0x3, 2)
	got := a.Bytes()
	want := []byte{0xA5, 0xC0}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
	if a.SizeInBytes() != 2 {
		t.Errorf("SizeInBytes() = %d, want 2", a.SizeInBytes())
	}
}

func TestBitArrayAppendBitArray(t *testing.T) {
	a := NewBitArray()
	a.AppendBits(0x2, 2)
	b := NewBitArray()
	b.AppendBits(0x1, 2)
	a.AppendBitArray(b)
	if got := a.String(); got != "X..X" {
		t.Errorf("String() = %q, want %q", got, "X..X")
	}
}
