package lhfile

import (
	"bytes"
)

// InfoEntry is one row of the INFO block's texture lookup table. The
// BlockID's hexadecimal string names a sibling block holding the
// texture; see BlockIDToName.
type InfoEntry struct {
	BlockID uint32

	// Unknown has undocumented semantics and is preserved verbatim.
	Unknown uint32
}

// BodyEntry is one row of the Body block's animation lookup table.
type BodyEntry struct {
	// Offset is a byte offset into the Body block at which the
	// animation's fixed-size header slice begins.
	Offset uint32

	// Unknown has undocumented semantics and is preserved verbatim.
	Unknown uint32
}

// TextureHeader is the fixed header at the start of a texture block.
type TextureHeader struct {
	Size uint32
	ID   uint32

	// Type has undocumented semantics and is preserved verbatim.
	Type uint32

	// DDSSize is the size of the embedded DDS file, which is stored
	// with its leading 4-byte magic stripped.
	DDSSize uint32
}

// Texture is one record extracted from a mesh pack: the texture block
// header, the decoded DDS header, and the compressed pixel payload.
// Pixel data is not decompressed at this layer.
type Texture struct {
	// Name is the name of the block the texture was extracted from.
	Name string

	Header TextureHeader
	DDS    DDSHeader
	Pixels []byte
}

// DDSPixelFormat is the 32-byte pixel format substructure of a DDS
// header.
type DDSPixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      [4]byte
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// FourCCString returns the four-character code with trailing NULs
// removed.
func (f DDSPixelFormat) FourCCString() string {
	return string(bytes.TrimRight(f.FourCC[:], "\x00"))
}

// DDSHeader is the 124-byte DDS file header that follows the (stripped)
// magic of the embedded texture image.
type DDSHeader struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	Format            DDSPixelFormat
	Caps              [4]uint32
	Reserved2         uint32
}

// LoopKind is the loop behavior of an audio sample.
type LoopKind uint16

const (
	LoopNone LoopKind = iota
	LoopRestart
	LoopOnce
	LoopOverlap
)

// String implements the fmt.Stringer interface.
func (k LoopKind) String() string {
	switch k {
	case LoopNone:
		return "None"
	case LoopRestart:
		return "Restart"
	case LoopOnce:
		return "Once"
	case LoopOverlap:
		return "Overlap"
	}
	return "Unknown"
}

// String256 is a fixed 256-byte NUL-terminated string field.
type String256 [256]byte

// String converts String256 to a string, dropping the NUL terminator
// and everything after it.
func (s String256) String() string {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return string(s[:i])
}

// SampleHeader is one fixed 640-byte record of the audio bank sample
// table. Field order and widths are format-fixed. Several fields have
// undocumented semantics; they, and the record's alignment padding, are
// kept in the Unknown fields so a record survives a decode byte-for-byte.
type SampleHeader struct {
	Name     String256
	Unknown0 uint32
	ID       uint32
	IsBank   uint32

	// Size and Offset locate the sample's bytes within the
	// LHAudioWaveData block.
	Size   uint32
	Offset uint32

	IsClone    uint32
	Group      uint16
	AtmosGroup uint16
	Unknown1   [12]byte
	SampleRate uint32
	Unknown2   [12]byte
	Start      uint32
	End        uint32

	Description String256
	Priority    uint16
	Unknown3    [6]byte
	Loop        uint16
	LoopStart   uint16
	Pan         uint8
	Unknown4    [3]byte
	Position    [3]float32
	Volume      uint8
	Unknown5    [1]byte
	UserParam   uint16
	Pitch       uint16
	Unknown6    uint16

	PitchDeviation uint16
	Unknown7       uint16
	MinDistance    float32
	MaxDistance    float32
	Scale          float32
	LoopKind       LoopKind
	Unknown8       [6]byte
	Atmosphere     uint16
	Unknown9       [2]byte
}
