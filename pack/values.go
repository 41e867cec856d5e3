package pack

import (
	"github.com/anaminus/parse"
	"github.com/lionheadapi/lhfile"
)

// readSampleHeader reads one fixed 640-byte sample header record. Every
// field, including the unknown and padding bytes, is consumed so that
// the cursor lands exactly on the next record.
func readSampleHeader(fr *parse.BinaryReader, h *lhfile.SampleHeader) (failed bool) {
	if fr.Bytes(h.Name[:]) {
		return true
	}
	if fr.Number(&h.Unknown0) || fr.Number(&h.ID) || fr.Number(&h.IsBank) ||
		fr.Number(&h.Size) || fr.Number(&h.Offset) || fr.Number(&h.IsClone) {
		return true
	}
	if fr.Number(&h.Group) || fr.Number(&h.AtmosGroup) {
		return true
	}
	if fr.Bytes(h.Unknown1[:]) || fr.Number(&h.SampleRate) || fr.Bytes(h.Unknown2[:]) {
		return true
	}
	if fr.Number(&h.Start) || fr.Number(&h.End) {
		return true
	}
	if fr.Bytes(h.Description[:]) {
		return true
	}
	if fr.Number(&h.Priority) || fr.Bytes(h.Unknown3[:]) ||
		fr.Number(&h.Loop) || fr.Number(&h.LoopStart) {
		return true
	}
	if fr.Number(&h.Pan) || fr.Bytes(h.Unknown4[:]) {
		return true
	}
	for i := range h.Position {
		if fr.Number(&h.Position[i]) {
			return true
		}
	}
	if fr.Number(&h.Volume) || fr.Bytes(h.Unknown5[:]) ||
		fr.Number(&h.UserParam) || fr.Number(&h.Pitch) || fr.Number(&h.Unknown6) {
		return true
	}
	if fr.Number(&h.PitchDeviation) || fr.Number(&h.Unknown7) {
		return true
	}
	if fr.Number(&h.MinDistance) || fr.Number(&h.MaxDistance) || fr.Number(&h.Scale) {
		return true
	}
	var loop uint16
	if fr.Number(&loop) {
		return true
	}
	h.LoopKind = lhfile.LoopKind(loop)
	return fr.Bytes(h.Unknown8[:]) || fr.Number(&h.Atmosphere) || fr.Bytes(h.Unknown9[:])
}
