// Package pack implements a decoder and encoder for the Lionhead Pack
// container format.
//
// The easiest way to decode and encode files is through the functions
// Open, OpenFS, OpenBytes, Write, and WriteFS. These convert directly
// between a filesystem or byte buffer and the Pack structure
// defined by the lhfile package. The Decoder and Encoder types give finer
// control over streams.
package pack

import (
	"github.com/lionheadapi/lhfile"
)

// Magic is the signature at the start of every Pack file.
const Magic = "LiOnHeAd"

// BlockMagic is the sub-magic at the start of the MESHES and Body block
// bodies.
const BlockMagic = "MKJC"

const (
	// A block header is a NUL-padded name field plus a u32 body size.
	blockHeaderSize = lhfile.BlockNameSize + 4

	textureHeaderSize = 16
	ddsHeaderSize     = 124
	ddsFormatSize     = 32

	// Size of the animation header slice taken from the Body block.
	animationHeaderSize = 0x54

	sampleHeaderSize = 640
)
