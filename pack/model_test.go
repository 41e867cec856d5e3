package pack

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/lionheadapi/lhfile"
)

func app(bs ...interface{}) []byte {
	s := make([]byte, 0, 64)
	for _, b := range bs {
		switch b := b.(type) {
		case string:
			s = append(s, []byte(b)...)
		case []byte:
			s = append(s, b...)
		case rune:
			s = append(s, []byte(string(b))...)
		case byte:
			s = append(s, b)
		case int:
			s = append(s, byte(b))
		case uint16:
			s = binary.LittleEndian.AppendUint16(s, b)
		case uint32:
			s = binary.LittleEndian.AppendUint32(s, b)
		case float32:
			s = binary.LittleEndian.AppendUint32(s, math.Float32bits(b))
		}
	}
	return s
}

// block builds a named block with a padded 32-byte name and a size prefix.
func block(name string, data []byte) []byte {
	var padded [lhfile.BlockNameSize]byte
	copy(padded[:lhfile.BlockNameSize-1], name)
	return app(padded[:], uint32(len(data)), data)
}

func packFile(blocks ...[]byte) []byte {
	b := []byte(Magic)
	for _, blk := range blocks {
		b = append(b, blk...)
	}
	return b
}

func TestReadDataBadMagic(t *testing.T) {
	f := new(formatModel)
	err := f.readData(app("NotLionH", make([]byte, blockHeaderSize)))
	if !errors.Is(err, ErrBadMagic) {
		t.Error("expected ErrBadMagic, got", err)
	}
}

func TestReadDataTooSmall(t *testing.T) {
	f := new(formatModel)
	err := f.readData(app("LiOnH"))
	if !errors.Is(err, ErrTruncated) {
		t.Error("expected ErrTruncated, got", err)
	}
}

func TestReadDataTruncatedBlock(t *testing.T) {
	f := new(formatModel)
	b := packFile(block("stuff", []byte{1, 2, 3, 4}))
	err := f.readData(b[:len(b)-2])
	var berr BlockError
	if !errors.As(err, &berr) || !errors.Is(err, ErrTruncated) {
		t.Error("expected truncated BlockError, got", err)
	}
	if berr.Name != "stuff" {
		t.Error("expected block name stuff, got", berr.Name)
	}
}

func TestReadDataTrailing(t *testing.T) {
	f := new(formatModel)
	b := packFile(block("stuff", []byte{1, 2, 3, 4}))
	b = append(b, 0xFF, 0xFF)
	err := f.readData(b)
	if !errors.Is(err, ErrTrailing) {
		t.Error("expected ErrTrailing, got", err)
	}
}

func TestReadDataDuplicateBlock(t *testing.T) {
	f := new(formatModel)
	b := packFile(
		block("stuff", []byte{1}),
		block("stuff", []byte{2}),
	)
	err := f.readData(b)
	if !errors.Is(err, lhfile.ErrDuplicateBlock) {
		t.Error("expected ErrDuplicateBlock, got", err)
	}
}

func TestReadDataBlockName(t *testing.T) {
	f := new(formatModel)
	var bad [lhfile.BlockNameSize]byte
	for i := range bad {
		bad[i] = 'x'
	}
	b := app(Magic, bad[:], uint32(0))
	err := f.readData(b)
	if !errors.Is(err, ErrBlockName) {
		t.Error("expected ErrBlockName, got", err)
	}
}

func TestReadDataBlocks(t *testing.T) {
	f := new(formatModel)
	b := packFile(
		block("first", []byte{1, 2, 3}),
		block("second", nil),
		block("third", []byte("payload")),
	)
	if err := f.readData(b); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(f.blocks) != 3 {
		t.Fatal("expected 3 blocks, got", len(f.blocks))
	}
	if f.blocks[0].name != "first" || string(f.blocks[0].data) != "\x01\x02\x03" {
		t.Error("unexpected first block:", f.blocks[0])
	}
	if f.blocks[1].name != "second" || len(f.blocks[1].data) != 0 {
		t.Error("unexpected second block:", f.blocks[1])
	}
	if f.blocks[2].name != "third" || string(f.blocks[2].data) != "payload" {
		t.Error("unexpected third block:", f.blocks[2])
	}
}
