package pack

import (
	"io"
	"path/filepath"

	"github.com/anaminus/parse"
	"github.com/lionheadapi/lhfile"
	"github.com/lionheadapi/lhfile/errors"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Decoder decodes a stream of bytes into an lhfile.Pack.
type Decoder struct {
	// If Raw is true, then the decoder stops after splitting the
	// container into named blocks, skipping the resolver and extractor
	// passes that populate the typed collections.
	Raw bool
}

// Decode reads data from r and decodes it into a fresh Pack. The stream
// is consumed fully before parsing; a Pack file is never processed
// piecemeal. On failure the returned pack is nil.
func (d Decoder) Decode(r io.Reader) (*lhfile.Pack, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}

	fr := parse.NewBinaryReader(r)
	data, _ := fr.All()
	if _, err := fr.End(); err != nil {
		return nil, err
	}

	f := &formatModel{}
	if err := f.readData(data); err != nil {
		return nil, err
	}

	codec := packCodec{}
	return codec.Decode(f, d.Raw)
}

// Open decodes the Pack file at the given path on the host filesystem.
// Errors are wrapped with the path.
func Open(path string) (*lhfile.Pack, error) {
	fs := osfs.New(filepath.Dir(path))
	p, err := openFile(fs, filepath.Base(path))
	if err != nil {
		return nil, FileError{Name: path, Cause: err}
	}
	return p, nil
}

// OpenFS decodes the Pack file at the given path of a filesystem.
// Errors are wrapped with the path.
func OpenFS(fs billy.Basic, path string) (*lhfile.Pack, error) {
	p, err := openFile(fs, path)
	if err != nil {
		return nil, FileError{Name: path, Cause: err}
	}
	return p, nil
}

// OpenBytes decodes a Pack file held in memory. Errors are wrapped with
// the sentinel name "buffer".
func OpenBytes(b []byte) (*lhfile.Pack, error) {
	f := &formatModel{}
	if err := f.readData(b); err != nil {
		return nil, FileError{Name: "buffer", Cause: err}
	}
	codec := packCodec{}
	p, err := codec.Decode(f, false)
	if err != nil {
		return nil, FileError{Name: "buffer", Cause: err}
	}
	return p, nil
}

// openFile reads and decodes one file. The handle is released on every
// exit path.
func openFile(fs billy.Basic, path string) (*lhfile.Pack, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	p, err := Decoder{}.Decode(file)
	if err := errors.Union(err, file.Close()); err != nil {
		return nil, err
	}
	return p, nil
}
