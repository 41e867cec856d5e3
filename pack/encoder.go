package pack

import (
	"io"
	"path/filepath"

	"github.com/lionheadapi/lhfile"
	"github.com/lionheadapi/lhfile/errors"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Encoder encodes an lhfile.Pack into a stream of bytes.
type Encoder struct{}

// Encode writes the pack's blocks to w in the outer framing. Only
// programmatically built packs can be encoded; a pack populated by a
// decoder fails with lhfile.ErrPackLoaded.
func (e Encoder) Encode(w io.Writer, p *lhfile.Pack) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if p == nil {
		return errors.New("nil pack")
	}

	codec := packCodec{}
	f, err := codec.Encode(p)
	if err != nil {
		return err
	}
	_, err = f.writeTo(w)
	return err
}

// Write encodes the pack to a file at the given path on the host
// filesystem. Errors are wrapped with the path.
func Write(path string, p *lhfile.Pack) error {
	fs := osfs.New(filepath.Dir(path))
	if err := writeFile(fs, filepath.Base(path), p); err != nil {
		return FileError{Name: path, Cause: err}
	}
	return nil
}

// WriteFS encodes the pack to a file at the given path of a filesystem.
// Errors are wrapped with the path.
func WriteFS(fs billy.Basic, path string, p *lhfile.Pack) error {
	if err := writeFile(fs, path, p); err != nil {
		return FileError{Name: path, Cause: err}
	}
	return nil
}

// writeFile encodes into one file. The handle is released on every exit
// path.
func writeFile(fs billy.Basic, path string, p *lhfile.Pack) error {
	file, err := fs.Create(path)
	if err != nil {
		return err
	}
	return errors.Union(Encoder{}.Encode(file, p), file.Close())
}
