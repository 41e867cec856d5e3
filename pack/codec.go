package pack

import (
	"bytes"
	"fmt"

	"github.com/anaminus/parse"
	"github.com/lionheadapi/lhfile"
)

// packCodec converts between the raw block framing and the resolved Pack
// structure, emulating the behavior of the original game loader.
type packCodec struct{}

func blockError(name string, err error) error {
	return BlockError{Name: name, Cause: err}
}

// animationBlockName formats the name of the companion block holding
// animation i's payload.
func animationBlockName(i int) string {
	return fmt.Sprintf("Julien%d", i)
}

// Decode populates a fresh Pack from a format model. The sentinel blocks
// present select which resolver passes run; raw skips them all.
func (c packCodec) Decode(f *formatModel, raw bool) (*lhfile.Pack, error) {
	if f == nil {
		panic("formatModel is nil")
	}

	p := &lhfile.Pack{}
	p.Blocks = make([]lhfile.Block, len(f.blocks))
	for i, blk := range f.blocks {
		p.Blocks[i] = lhfile.Block{Name: blk.name, Data: blk.data}
	}
	p.Loaded = true

	if raw {
		return p, nil
	}

	// Mesh pack.
	if p.HasBlock(lhfile.BlockInfo) {
		if err := c.resolveInfoBlock(p); err != nil {
			return nil, err
		}
		if err := c.extractTextures(p); err != nil {
			return nil, err
		}
		if err := c.resolveMeshBlock(p); err != nil {
			return nil, err
		}
	}
	// Animation pack.
	if p.HasBlock(lhfile.BlockBody) {
		if err := c.resolveBodyBlock(p); err != nil {
			return nil, err
		}
		if err := c.extractAnimations(p); err != nil {
			return nil, err
		}
	}
	// Sound pack.
	if p.HasBlock(lhfile.BlockSampleTable) {
		if err := c.resolveSampleTable(p); err != nil {
			return nil, err
		}
		if err := c.extractSamples(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Encode lowers a Pack to a format model. It refuses loaded packs; only
// programmatically built containers can be written.
func (c packCodec) Encode(p *lhfile.Pack) (*formatModel, error) {
	if p == nil {
		panic("Pack is nil")
	}
	if p.Loaded {
		return nil, lhfile.ErrPackLoaded
	}

	f := &formatModel{}
	f.blocks = make([]rawBlock, len(p.Blocks))
	for i, blk := range p.Blocks {
		if !lhfile.ValidBlockName(blk.Name) {
			return nil, blockError(blk.Name, lhfile.ErrBlockName)
		}
		f.blocks[i] = rawBlock{name: blk.Name, data: blk.Data}
	}
	return f, nil
}

// resolveInfoBlock decodes the INFO block into the texture lookup table.
func (c packCodec) resolveInfoBlock(p *lhfile.Pack) error {
	data, ok := p.BlockData(lhfile.BlockInfo)
	if !ok {
		return blockError(lhfile.BlockInfo, ErrMissingBlock)
	}

	fr := parse.NewBinaryReader(bytes.NewReader(data))

	var count uint32
	if fr.Number(&count) {
		return blockError(lhfile.BlockInfo, decodeError(fr, nil))
	}
	if int64(len(data)) < 4+int64(count)*8 {
		return blockError(lhfile.BlockInfo, ErrTruncated)
	}

	p.InfoLookup = make([]lhfile.InfoEntry, count)
	for i := range p.InfoLookup {
		if fr.Number(&p.InfoLookup[i].BlockID) || fr.Number(&p.InfoLookup[i].Unknown) {
			return blockError(lhfile.BlockInfo, decodeError(fr, nil))
		}
	}
	return nil
}

// extractTextures fetches and decodes the texture block addressed by
// each lookup entry.
func (c packCodec) extractTextures(p *lhfile.Pack) error {
	seen := make(map[string]struct{}, len(p.InfoLookup))
	for _, entry := range p.InfoLookup {
		name := lhfile.BlockIDToName(entry.BlockID)
		data, ok := p.BlockData(name)
		if !ok {
			return blockError(name, ErrMissingBlock)
		}

		fr := parse.NewBinaryReader(bytes.NewReader(data))

		var header lhfile.TextureHeader
		if fr.Number(&header.Size) || fr.Number(&header.ID) ||
			fr.Number(&header.Type) || fr.Number(&header.DDSSize) {
			return blockError(name, decodeError(fr, nil))
		}
		if header.ID != entry.BlockID {
			return blockError(name, ErrBlockIDMismatch)
		}
		if int64(len(data)) < textureHeaderSize+int64(header.DDSSize) {
			return blockError(name, ErrTruncated)
		}
		if _, ok := seen[name]; ok {
			return blockError(name, lhfile.ErrDuplicateBlock)
		}

		dds := make([]byte, header.DDSSize)
		if fr.Bytes(dds) {
			return blockError(name, decodeError(fr, nil))
		}
		ddsHeader, texels, err := decodeDDS(dds)
		if err != nil {
			return blockError(name, err)
		}

		seen[name] = struct{}{}
		p.Textures = append(p.Textures, lhfile.Texture{
			Name:   name,
			Header: header,
			DDS:    ddsHeader,
			Pixels: texels,
		})
	}
	return nil
}

// resolveMeshBlock decodes the MESHES block's offset table and slices
// the mesh byte ranges.
func (c packCodec) resolveMeshBlock(p *lhfile.Pack) error {
	data, ok := p.BlockData(lhfile.BlockMeshes)
	if !ok {
		return blockError(lhfile.BlockMeshes, ErrMissingBlock)
	}

	fr := parse.NewBinaryReader(bytes.NewReader(data))

	magic := make([]byte, len(BlockMagic))
	if fr.Bytes(magic) {
		return blockError(lhfile.BlockMeshes, decodeError(fr, nil))
	}
	if !bytes.Equal(magic, []byte(BlockMagic)) {
		return blockError(lhfile.BlockMeshes, ErrBadMagic)
	}

	var count uint32
	if fr.Number(&count) {
		return blockError(lhfile.BlockMeshes, decodeError(fr, nil))
	}
	if int64(len(data)) < 8+int64(count)*4 {
		return blockError(lhfile.BlockMeshes, ErrTruncated)
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		if fr.Number(&offsets[i]) {
			return blockError(lhfile.BlockMeshes, decodeError(fr, nil))
		}
	}

	p.Meshes = make([][]byte, count)
	for i, offset := range offsets {
		end := uint32(len(data))
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		if offset > end || int64(end) > int64(len(data)) {
			return blockError(lhfile.BlockMeshes, ErrInvalidRange)
		}
		p.Meshes[i] = data[offset:end]
	}
	return nil
}

// resolveBodyBlock decodes the Body block header into the animation
// lookup table.
func (c packCodec) resolveBodyBlock(p *lhfile.Pack) error {
	data, ok := p.BlockData(lhfile.BlockBody)
	if !ok {
		return blockError(lhfile.BlockBody, ErrMissingBlock)
	}

	fr := parse.NewBinaryReader(bytes.NewReader(data))

	magic := make([]byte, len(BlockMagic))
	if fr.Bytes(magic) {
		return blockError(lhfile.BlockBody, decodeError(fr, nil))
	}
	if !bytes.Equal(magic, []byte(BlockMagic)) {
		return blockError(lhfile.BlockBody, ErrBadMagic)
	}

	var count uint32
	if fr.Number(&count) {
		return blockError(lhfile.BlockBody, decodeError(fr, nil))
	}
	if int64(len(data)) < 8+int64(count)*8 {
		return blockError(lhfile.BlockBody, ErrTruncated)
	}

	p.BodyLookup = make([]lhfile.BodyEntry, count)
	for i := range p.BodyLookup {
		if fr.Number(&p.BodyLookup[i].Offset) || fr.Number(&p.BodyLookup[i].Unknown) {
			return blockError(lhfile.BlockBody, decodeError(fr, nil))
		}
	}
	return nil
}

// extractAnimations splices each animation's header slice from the Body
// block with the payload of its Julien<i> companion block.
func (c packCodec) extractAnimations(p *lhfile.Pack) error {
	body, ok := p.BlockData(lhfile.BlockBody)
	if !ok {
		return blockError(lhfile.BlockBody, ErrMissingBlock)
	}

	p.Animations = make([][]byte, len(p.BodyLookup))
	for i, entry := range p.BodyLookup {
		name := animationBlockName(i)
		data, ok := p.BlockData(name)
		if !ok {
			return blockError(name, ErrMissingBlock)
		}
		if int64(entry.Offset)+animationHeaderSize > int64(len(body)) {
			return blockError(lhfile.BlockBody, ErrInvalidRange)
		}

		record := make([]byte, animationHeaderSize+len(data))
		copy(record, body[entry.Offset:int64(entry.Offset)+animationHeaderSize])
		copy(record[animationHeaderSize:], data)
		p.Animations[i] = record
	}
	return nil
}

// resolveSampleTable decodes the audio bank sample table into fixed-size
// sample header records.
func (c packCodec) resolveSampleTable(p *lhfile.Pack) error {
	data, ok := p.BlockData(lhfile.BlockSampleTable)
	if !ok {
		return blockError(lhfile.BlockSampleTable, ErrMissingBlock)
	}
	if len(data) < 4 {
		return blockError(lhfile.BlockSampleTable, ErrTruncated)
	}

	fr := parse.NewBinaryReader(bytes.NewReader(data))

	var count, unknown uint16
	if fr.Number(&count) || fr.Number(&unknown) {
		return blockError(lhfile.BlockSampleTable, decodeError(fr, nil))
	}
	if count == 0 {
		return blockError(lhfile.BlockSampleTable, ErrEmptyTable)
	}
	if int64(len(data)) != 4+int64(count)*sampleHeaderSize {
		return blockError(lhfile.BlockSampleTable, ErrInconsistentSize)
	}

	p.SampleHeaders = make([]lhfile.SampleHeader, count)
	for i := range p.SampleHeaders {
		if readSampleHeader(fr, &p.SampleHeaders[i]) {
			return blockError(lhfile.BlockSampleTable, decodeError(fr, nil))
		}
	}
	return nil
}

// extractSamples slices each sample's byte range out of the wave data
// block.
func (c packCodec) extractSamples(p *lhfile.Pack) error {
	data, ok := p.BlockData(lhfile.BlockWaveData)
	if !ok {
		return blockError(lhfile.BlockWaveData, ErrMissingBlock)
	}

	p.Samples = make([][]byte, len(p.SampleHeaders))
	for i, header := range p.SampleHeaders {
		if int64(header.Offset) > int64(len(data)) ||
			int64(header.Offset)+int64(header.Size) > int64(len(data)) {
			return blockError(lhfile.BlockWaveData, ErrInvalidRange)
		}
		p.Samples[i] = data[header.Offset : int64(header.Offset)+int64(header.Size)]
	}
	return nil
}
