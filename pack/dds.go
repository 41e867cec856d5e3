package pack

import (
	"bytes"

	"github.com/anaminus/parse"
	"github.com/lionheadapi/lhfile"
	"golang.org/x/exp/constraints"
)

func ceilDiv[T constraints.Unsigned](a, b T) T {
	return (a + b - 1) / b
}

// blockLinearSize computes the byte size of a block-compressed image.
// The block size is 8 bytes for the DXT1, BC1, and BC4 formats, and 16
// bytes for all other block-compressed formats.
func blockLinearSize(width, height uint32, format lhfile.DDSPixelFormat) uint32 {
	blockSize := uint32(16)
	switch format.FourCCString() {
	case "DXT1", "BC1", "BC4":
		blockSize = 8
	}
	return ceilDiv(width, 4) * ceilDiv(height, 4) * blockSize
}

func readDDSFormat(fr *parse.BinaryReader, f *lhfile.DDSPixelFormat) (failed bool) {
	if fr.Number(&f.Size) || fr.Number(&f.Flags) {
		return true
	}
	if fr.Bytes(f.FourCC[:]) {
		return true
	}
	return fr.Number(&f.RGBBitCount) ||
		fr.Number(&f.RBitMask) || fr.Number(&f.GBitMask) ||
		fr.Number(&f.BBitMask) || fr.Number(&f.ABitMask)
}

func readDDSHeader(fr *parse.BinaryReader, h *lhfile.DDSHeader) (failed bool) {
	if fr.Number(&h.Size) || fr.Number(&h.Flags) ||
		fr.Number(&h.Height) || fr.Number(&h.Width) ||
		fr.Number(&h.PitchOrLinearSize) || fr.Number(&h.Depth) ||
		fr.Number(&h.MipMapCount) {
		return true
	}
	for i := range h.Reserved1 {
		if fr.Number(&h.Reserved1[i]) {
			return true
		}
	}
	if readDDSFormat(fr, &h.Format) {
		return true
	}
	for i := range h.Caps {
		if fr.Number(&h.Caps[i]) {
			return true
		}
	}
	return fr.Number(&h.Reserved2)
}

// decodeDDS decodes an embedded DDS image that has had its leading
// 4-byte magic stripped, returning the header and pixel payload.
//
// Some block-compressed textures omit pitchOrLinearSize; when the field
// is zero it is recomputed from the image dimensions and the four
// character code before the payload is sized.
func decodeDDS(b []byte) (lhfile.DDSHeader, []byte, error) {
	var h lhfile.DDSHeader

	fr := parse.NewBinaryReader(bytes.NewReader(b))
	if readDDSHeader(fr, &h) {
		return h, nil, decodeError(fr, nil)
	}
	if h.Size != ddsHeaderSize || h.Format.Size != ddsFormatSize {
		return h, nil, ErrInvalidDDSHeader
	}

	if h.PitchOrLinearSize == 0 {
		h.PitchOrLinearSize = blockLinearSize(h.Width, h.Height, h.Format)
	}
	if int64(ddsHeaderSize)+int64(h.PitchOrLinearSize) > int64(len(b)) {
		return h, nil, ErrTruncated
	}

	texels := make([]byte, h.PitchOrLinearSize)
	if fr.Bytes(texels) {
		return h, nil, decodeError(fr, nil)
	}
	return h, texels, nil
}
