package pack

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeDDSPitchRecompute(t *testing.T) {
	cases := []struct {
		fourCC string
		width  uint32
		height uint32
		want   uint32
	}{
		{"DXT1", 8, 8, 32},
		{"DXT5", 8, 8, 64},
		{"BC4", 16, 4, 32},
		{"DXT1", 9, 9, 72}, // partial blocks round up
	}
	for _, c := range cases {
		b := ddsImage(c.width, c.height, 0, c.fourCC, make([]byte, c.want))
		h, texels, err := decodeDDS(b)
		if err != nil {
			t.Fatalf("%s %dx%d: unexpected error: %v", c.fourCC, c.width, c.height, err)
		}
		if h.PitchOrLinearSize != c.want {
			t.Errorf("%s %dx%d: expected linear size %d, got %d",
				c.fourCC, c.width, c.height, c.want, h.PitchOrLinearSize)
		}
		if uint32(len(texels)) != c.want {
			t.Errorf("%s %dx%d: expected %d texel bytes, got %d",
				c.fourCC, c.width, c.height, c.want, len(texels))
		}
	}
}

func TestDecodeDDSExplicitPitch(t *testing.T) {
	texels := bytes.Repeat([]byte{0x5A}, 16)
	b := ddsImage(4, 4, 16, "DXT5", texels)
	h, got, err := decodeDDS(b)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if h.PitchOrLinearSize != 16 {
		t.Error("expected pitch 16, got", h.PitchOrLinearSize)
	}
	if !bytes.Equal(got, texels) {
		t.Error("texel bytes do not match input")
	}
}

func TestDecodeDDSBadHeaderSize(t *testing.T) {
	b := ddsImage(4, 4, 8, "DXT1", make([]byte, 8))
	b[0] = 123
	_, _, err := decodeDDS(b)
	if !errors.Is(err, ErrInvalidDDSHeader) {
		t.Error("expected ErrInvalidDDSHeader, got", err)
	}
}

func TestDecodeDDSTruncatedPayload(t *testing.T) {
	b := ddsImage(8, 8, 0, "DXT1", make([]byte, 16))
	_, _, err := decodeDDS(b)
	if !errors.Is(err, ErrTruncated) {
		t.Error("expected ErrTruncated, got", err)
	}
}

func TestFourCCString(t *testing.T) {
	b := ddsImage(4, 4, 8, "BC4", make([]byte, 8))
	h, _, err := decodeDDS(b)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if s := h.Format.FourCCString(); s != "BC4" {
		t.Error("expected fourCC BC4, got", s)
	}
}
