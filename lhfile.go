// The lhfile package handles the decoding, encoding, and manipulation of
// Lionhead Pack files, the container format used to bundle game assets
// such as meshes, textures, animations, and audio banks.
//
// A Pack file is a sequence of named, length-prefixed blocks. A handful
// of block names are sentinels that carry lookup tables addressing the
// remaining blocks: an INFO block marks a mesh pack, a Body block marks
// an animation pack, and an LHAudioBankSampleTable block marks a sound
// pack. The Pack struct holds both the raw blocks and the collections
// resolved from them.
//
// Pack structures are decoded from and encoded to the binary format by
// the "pack" sub-package. A Pack can also be built manually, block by
// block, and then encoded; the two modes are mutually exclusive per
// instance.
package lhfile

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel block names recognized by the format.
const (
	BlockInfo        = "INFO"
	BlockMeshes      = "MESHES"
	BlockBody        = "Body"
	BlockSampleTable = "LHAudioBankSampleTable"
	BlockWaveData    = "LHAudioWaveData"
)

// BlockNameSize is the fixed size of a block name field. A name occupies
// at most BlockNameSize-1 bytes and is NUL-padded to the full width.
const BlockNameSize = 0x20

var (
	// Indicates a builder call on a pack populated by a decoder, or an
	// encode of such a pack.
	ErrPackLoaded = errors.New("pack is already loaded")
	// Indicates a block name that is already present in the pack.
	ErrDuplicateBlock = errors.New("duplicate block name")
	// Indicates a block name that is empty, too long, or not printable.
	ErrBlockName = errors.New("invalid block name")
)

// Block is a named, length-prefixed byte region within a Pack file.
type Block struct {
	// Name identifies the block within its pack. Names are unique.
	Name string

	// Data is the raw body of the block.
	Data []byte
}

// Kind is a set of flags describing which asset families a pack carries,
// derived from the presence of sentinel blocks. A single file may carry
// several families at once.
type Kind uint8

const (
	MeshPack  Kind = 1 << iota // Has an INFO texture lookup.
	AnimPack                   // Has a Body animation lookup.
	SoundPack                  // Has an LHAudioBankSampleTable.
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if k == 0 {
		return "raw"
	}
	var parts []string
	if k&MeshPack != 0 {
		parts = append(parts, "mesh")
	}
	if k&AnimPack != 0 {
		parts = append(parts, "anim")
	}
	if k&SoundPack != 0 {
		parts = append(parts, "sound")
	}
	return strings.Join(parts, "|")
}

// Pack represents the contents of one Pack file: the raw blocks in file
// order, plus the collections resolved from the sentinel blocks.
type Pack struct {
	// Blocks lists the raw blocks of the pack in file order.
	Blocks []Block

	// InfoLookup is the texture lookup table decoded from the INFO
	// block of a mesh pack.
	InfoLookup []InfoEntry

	// Textures are the records extracted from the blocks addressed by
	// InfoLookup, in lookup order.
	Textures []Texture

	// Meshes are the byte ranges sliced from the MESHES block. The mesh
	// sub-format is not decoded at this layer.
	Meshes [][]byte

	// BodyLookup is the animation lookup table decoded from the Body
	// block of an animation pack.
	BodyLookup []BodyEntry

	// Animations are the records spliced from the Body block and the
	// Julien<i> companion blocks, in lookup order.
	Animations [][]byte

	// SampleHeaders are the fixed-size records decoded from the
	// LHAudioBankSampleTable block of a sound pack.
	SampleHeaders []SampleHeader

	// Samples are the byte ranges sliced from the LHAudioWaveData
	// block, one per sample header.
	Samples [][]byte

	// Loaded reports whether the pack was populated by a decoder. A
	// loaded pack is read-only: builder calls and encoding fail with
	// ErrPackLoaded.
	Loaded bool
}

// Kind returns the asset families present in the pack.
func (p *Pack) Kind() Kind {
	var k Kind
	if p.HasBlock(BlockInfo) {
		k |= MeshPack
	}
	if p.HasBlock(BlockBody) {
		k |= AnimPack
	}
	if p.HasBlock(BlockSampleTable) {
		k |= SoundPack
	}
	return k
}

// HasBlock returns whether a block of the given name is present.
func (p *Pack) HasBlock(name string) bool {
	_, ok := p.BlockData(name)
	return ok
}

// BlockData returns the body of the named block, or false if the block
// is not present.
func (p *Pack) BlockData(name string) ([]byte, bool) {
	for i := range p.Blocks {
		if p.Blocks[i].Name == name {
			return p.Blocks[i].Data, true
		}
	}
	return nil, false
}

// BlockReader returns a reader over the body of the named block, or
// false if the block is not present.
func (p *Pack) BlockReader(name string) (*bytes.Reader, bool) {
	data, ok := p.BlockData(name)
	if !ok {
		return nil, false
	}
	return bytes.NewReader(data), true
}

// BlockNames returns the block names in file order.
func (p *Pack) BlockNames() []string {
	names := make([]string, len(p.Blocks))
	for i := range p.Blocks {
		names[i] = p.Blocks[i].Name
	}
	return names
}

// FindTexture returns the texture extracted from the named block, or
// false if no such texture was extracted.
func (p *Pack) FindTexture(name string) (Texture, bool) {
	for _, tex := range p.Textures {
		if tex.Name == name {
			return tex, true
		}
	}
	return Texture{}, false
}

// CreateRawBlock appends a block with the given name and body. It fails
// with ErrPackLoaded on a loaded pack, ErrBlockName if the name does not
// fit the 32-byte NUL-padded name field, and ErrDuplicateBlock if the
// name is already present.
func (p *Pack) CreateRawBlock(name string, data []byte) error {
	if p.Loaded {
		return ErrPackLoaded
	}
	if !ValidBlockName(name) {
		return fmt.Errorf("%q: %w", name, ErrBlockName)
	}
	if p.HasBlock(name) {
		return fmt.Errorf("%q: %w", name, ErrDuplicateBlock)
	}
	p.Blocks = append(p.Blocks, Block{Name: name, Data: data})
	return nil
}

// InsertMesh appends mesh bytes to the in-memory mesh collection. The
// collection is serialized into a MESHES block by pack.CreateMeshBlock.
// It fails with ErrPackLoaded on a loaded pack.
func (p *Pack) InsertMesh(data []byte) error {
	if p.Loaded {
		return ErrPackLoaded
	}
	p.Meshes = append(p.Meshes, data)
	return nil
}

// ValidBlockName reports whether name fits the block name field: between
// 1 and 31 printable ASCII characters.
func ValidBlockName(name string) bool {
	if len(name) == 0 || len(name) >= BlockNameSize {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] > 0x7e {
			return false
		}
	}
	return true
}

// BlockIDToName formats a lookup entry's block id as the name of the
// block it addresses: a lowercase hexadecimal string with no leading
// zeros. The reverse direction is never needed; names are only compared.
func BlockIDToName(id uint32) string {
	return strconv.FormatUint(uint64(id), 16)
}
