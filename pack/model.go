package pack

import (
	"bytes"
	"io"

	"github.com/anaminus/parse"
	"github.com/lionheadapi/lhfile"
)

// formatModel models the outer framing of a Pack file: the magic header
// followed by named, length-prefixed blocks.
type formatModel struct {
	// blocks lists the raw blocks in file order.
	blocks []rawBlock
}

// rawBlock is one block as it appears on the wire, before any sub-format
// is resolved.
type rawBlock struct {
	name string
	data []byte
}

func decodeError(fr *parse.BinaryReader, err error) error {
	fr.Add(0, err)
	err = fr.Err()
	if err != nil {
		return DataError{Offset: fr.N(), Cause: err}
	}
	return nil
}

// readData parses the framing out of a complete file image. The total
// length must be known up front so that block sizes can be validated
// against it.
func (f *formatModel) readData(b []byte) error {
	if len(b) < len(Magic)+blockHeaderSize {
		return ErrTruncated
	}

	fr := parse.NewBinaryReader(bytes.NewReader(b))

	magic := make([]byte, len(Magic))
	if fr.Bytes(magic) {
		return decodeError(fr, nil)
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return ErrBadMagic
	}

	seen := map[string]struct{}{}
	for int64(len(b))-fr.N() >= blockHeaderSize {
		var name [lhfile.BlockNameSize]byte
		if fr.Bytes(name[:]) {
			return decodeError(fr, nil)
		}
		i := bytes.IndexByte(name[:], 0)
		if i < 0 {
			return ErrBlockName
		}
		blockName := string(name[:i])

		var size uint32
		if fr.Number(&size) {
			return decodeError(fr, nil)
		}
		if int64(len(b))-fr.N() < int64(size) {
			return BlockError{Name: blockName, Cause: ErrTruncated}
		}

		data := make([]byte, size)
		if fr.Bytes(data) {
			return decodeError(fr, nil)
		}

		if _, ok := seen[blockName]; ok {
			return BlockError{Name: blockName, Cause: lhfile.ErrDuplicateBlock}
		}
		seen[blockName] = struct{}{}
		f.blocks = append(f.blocks, rawBlock{name: blockName, data: data})
	}

	if fr.N() != int64(len(b)) {
		return ErrTrailing
	}
	return nil
}

// writeTo writes the framing in block order. Order is not significant to
// readers but is deterministic, so a written pack reads back identically.
func (f *formatModel) writeTo(w io.Writer) (n int64, err error) {
	fw := parse.NewBinaryWriter(w)

	if fw.Bytes([]byte(Magic)) {
		return fw.End()
	}

	for _, blk := range f.blocks {
		var name [lhfile.BlockNameSize]byte
		copy(name[:lhfile.BlockNameSize-1], blk.name)
		if fw.Bytes(name[:]) {
			return fw.End()
		}
		if fw.Number(uint32(len(blk.data))) {
			return fw.End()
		}
		if fw.Bytes(blk.data) {
			return fw.End()
		}
	}

	return fw.End()
}
