package pack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/lionheadapi/lhfile/errors"
)

// Dump writes to w a readable representation of the pack decoded from r.
func (d Decoder) Dump(w io.Writer, r io.Reader) error {
	if w == nil {
		return errors.New("nil writer")
	}

	p, err := d.Decode(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Kind: %s", p.Kind())
	fmt.Fprintf(bw, "\nBlocks: (count:%d) {", len(p.Blocks))
	for i, blk := range p.Blocks {
		fmt.Fprintf(bw, "\n\t#%d: %q (len:%d)", i, blk.Name, len(blk.Data))
		if d.Raw {
			dumpBytes(bw, 1, blk.Data)
		}
	}
	fmt.Fprint(bw, "\n}")

	if len(p.Textures) > 0 {
		fmt.Fprintf(bw, "\nTextures: (count:%d) {", len(p.Textures))
		for i, tex := range p.Textures {
			fmt.Fprintf(bw, "\n\t#%d: %q id:%d type:%d %dx%d %s (texels:%d)",
				i, tex.Name, tex.Header.ID, tex.Header.Type,
				tex.DDS.Width, tex.DDS.Height, tex.DDS.Format.FourCCString(),
				len(tex.Pixels))
		}
		fmt.Fprint(bw, "\n}")
	}
	if len(p.Meshes) > 0 {
		fmt.Fprintf(bw, "\nMeshes: (count:%d) {", len(p.Meshes))
		for i, mesh := range p.Meshes {
			fmt.Fprintf(bw, "\n\t#%d: (len:%d)", i, len(mesh))
		}
		fmt.Fprint(bw, "\n}")
	}
	if len(p.Animations) > 0 {
		fmt.Fprintf(bw, "\nAnimations: (count:%d) {", len(p.Animations))
		for i, anim := range p.Animations {
			fmt.Fprintf(bw, "\n\t#%d: %q (len:%d)", i, animationBlockName(i), len(anim))
		}
		fmt.Fprint(bw, "\n}")
	}
	if len(p.SampleHeaders) > 0 {
		fmt.Fprintf(bw, "\nSamples: (count:%d) {", len(p.SampleHeaders))
		for i, h := range p.SampleHeaders {
			fmt.Fprintf(bw, "\n\t#%d: %q id:%d rate:%d loop:%s priority:%d (len:%d)",
				i, h.Name.String(), h.ID, h.SampleRate, h.LoopKind, h.Priority, h.Size)
		}
		fmt.Fprint(bw, "\n}")
	}
	fmt.Fprint(bw, "\n")

	return bw.Flush()
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
