package pack

import (
	"bytes"

	"github.com/anaminus/parse"
	"github.com/lionheadapi/lhfile"
)

// CreateMeshBlock serializes the pack's in-memory mesh collection into a
// MESHES block: sub-magic, mesh count, offset table, then the mesh bytes
// back to back. Offsets are relative to the start of the block body.
func CreateMeshBlock(p *lhfile.Pack) error {
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)

	fw.Bytes([]byte(BlockMagic))
	fw.Number(uint32(len(p.Meshes)))

	offset := uint32(len(BlockMagic)) + 4 + 4*uint32(len(p.Meshes))
	for _, mesh := range p.Meshes {
		fw.Number(offset)
		offset += uint32(len(mesh))
	}
	for _, mesh := range p.Meshes {
		fw.Bytes(mesh)
	}
	if _, err := fw.End(); err != nil {
		return err
	}

	return p.CreateRawBlock(lhfile.BlockMeshes, buf.Bytes())
}

// CreateInfoBlock serializes the pack's texture lookup table into an
// INFO block.
func CreateInfoBlock(p *lhfile.Pack) error {
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)

	fw.Number(uint32(len(p.InfoLookup)))
	for _, entry := range p.InfoLookup {
		fw.Number(entry.BlockID)
		fw.Number(entry.Unknown)
	}
	if _, err := fw.End(); err != nil {
		return err
	}

	return p.CreateRawBlock(lhfile.BlockInfo, buf.Bytes())
}

// CreateBodyBlock serializes the pack's animation lookup table into a
// Body block: sub-magic, animation count, then the lookup entries.
func CreateBodyBlock(p *lhfile.Pack) error {
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)

	fw.Bytes([]byte(BlockMagic))
	fw.Number(uint32(len(p.BodyLookup)))
	for _, entry := range p.BodyLookup {
		fw.Number(entry.Offset)
		fw.Number(entry.Unknown)
	}
	if _, err := fw.End(); err != nil {
		return err
	}

	return p.CreateRawBlock(lhfile.BlockBody, buf.Bytes())
}

// CreateTextureBlocks would serialize the pack's textures into one block
// per texture plus the matching lookup entries. Writing texture blocks
// is not supported; the hook fails explicitly rather than producing an
// invalid file.
func CreateTextureBlocks(p *lhfile.Pack) error {
	if p.Loaded {
		return lhfile.ErrPackLoaded
	}
	return ErrNotSupported
}
