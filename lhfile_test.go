package lhfile

import (
	"errors"
	"testing"
)

func TestCreateRawBlock(t *testing.T) {
	p := &Pack{}
	if err := p.CreateRawBlock("stuff", []byte{1, 2, 3}); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := p.CreateRawBlock("stuff", nil); !errors.Is(err, ErrDuplicateBlock) {
		t.Error("expected ErrDuplicateBlock, got", err)
	}
	if err := p.CreateRawBlock("", nil); !errors.Is(err, ErrBlockName) {
		t.Error("expected ErrBlockName for empty name, got", err)
	}
	if err := p.CreateRawBlock("name\x00withNUL", nil); !errors.Is(err, ErrBlockName) {
		t.Error("expected ErrBlockName for NUL in name, got", err)
	}
	if err := p.CreateRawBlock("0123456789012345678901234567890", nil); err != nil {
		t.Error("expected 31-byte name to be accepted, got", err)
	}
	if err := p.CreateRawBlock("01234567890123456789012345678901", nil); !errors.Is(err, ErrBlockName) {
		t.Error("expected ErrBlockName for 32-byte name, got", err)
	}

	p.Loaded = true
	if err := p.CreateRawBlock("other", nil); !errors.Is(err, ErrPackLoaded) {
		t.Error("expected ErrPackLoaded, got", err)
	}
}

func TestInsertMesh(t *testing.T) {
	p := &Pack{}
	if err := p.InsertMesh([]byte{1, 2}); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(p.Meshes) != 1 {
		t.Fatal("expected 1 mesh, got", len(p.Meshes))
	}

	p.Loaded = true
	if err := p.InsertMesh([]byte{3}); !errors.Is(err, ErrPackLoaded) {
		t.Error("expected ErrPackLoaded, got", err)
	}
	if len(p.Meshes) != 1 {
		t.Error("loaded pack must not gain meshes")
	}
}

func TestBlockLookup(t *testing.T) {
	p := &Pack{Blocks: []Block{
		{Name: "INFO", Data: []byte{1}},
		{Name: "MESHES", Data: []byte{2}},
	}}
	if !p.HasBlock("INFO") || p.HasBlock("Body") {
		t.Error("unexpected block presence")
	}
	if data, ok := p.BlockData("MESHES"); !ok || len(data) != 1 || data[0] != 2 {
		t.Error("unexpected block data:", data, ok)
	}
	if _, ok := p.BlockData("absent"); ok {
		t.Error("expected missing block")
	}
	r, ok := p.BlockReader("INFO")
	if !ok || r.Len() != 1 {
		t.Error("unexpected block reader:", r, ok)
	}
	names := p.BlockNames()
	if len(names) != 2 || names[0] != "INFO" || names[1] != "MESHES" {
		t.Error("unexpected block names:", names)
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		blocks []string
		kind   Kind
		str    string
	}{
		{nil, 0, "raw"},
		{[]string{"INFO"}, MeshPack, "mesh"},
		{[]string{"Body"}, AnimPack, "anim"},
		{[]string{"LHAudioBankSampleTable"}, SoundPack, "sound"},
		{[]string{"INFO", "Body"}, MeshPack | AnimPack, "mesh|anim"},
	}
	for _, c := range cases {
		p := &Pack{}
		for _, name := range c.blocks {
			p.Blocks = append(p.Blocks, Block{Name: name})
		}
		if k := p.Kind(); k != c.kind {
			t.Errorf("blocks %v: expected kind %d, got %d", c.blocks, c.kind, k)
		}
		if s := c.kind.String(); s != c.str {
			t.Errorf("kind %d: expected %q, got %q", c.kind, c.str, s)
		}
	}
}

func TestBlockIDToName(t *testing.T) {
	cases := map[uint32]string{
		0:    "0",
		1:    "1",
		10:   "a",
		0x1a: "1a",
		0xFF: "ff",
	}
	for id, want := range cases {
		if got := BlockIDToName(id); got != want {
			t.Errorf("id %d: expected %q, got %q", id, want, got)
		}
	}
}

func TestString256(t *testing.T) {
	var s String256
	copy(s[:], "hello")
	if s.String() != "hello" {
		t.Error("expected hello, got", s.String())
	}
	var full String256
	for i := range full {
		full[i] = 'x'
	}
	if len(full.String()) != 256 {
		t.Error("expected unterminated string to keep all bytes")
	}
}

func TestFindTexture(t *testing.T) {
	p := &Pack{Textures: []Texture{
		{Name: "1", Header: TextureHeader{ID: 1}},
		{Name: "2", Header: TextureHeader{ID: 2}},
	}}
	if tex, ok := p.FindTexture("2"); !ok || tex.Header.ID != 2 {
		t.Error("unexpected texture:", tex, ok)
	}
	if _, ok := p.FindTexture("3"); ok {
		t.Error("expected missing texture")
	}
}
