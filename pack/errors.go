package pack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Indicates an unexpected file signature.
	ErrBadMagic = errors.New("unrecognized pack header")
	// Indicates a declared size running past the end of the data.
	ErrTruncated = errors.New("truncated data")
	// Indicates leftover bytes that do not form a complete block.
	ErrTrailing = errors.New("file not evenly split into whole blocks")
	// Indicates a block name field with no NUL terminator.
	ErrBlockName = errors.New("block name is not NUL-terminated")
	// Indicates a sentinel or referenced block that is not present.
	ErrMissingBlock = errors.New("required block missing")
	// Indicates a texture whose header id differs from its lookup id.
	ErrBlockIDMismatch = errors.New("texture block id does not match lookup id")
	// Indicates a DDS header whose declared sizes are not the fixed
	// header and pixel format sizes.
	ErrInvalidDDSHeader = errors.New("invalid DDS header sizes")
	// Indicates a sample table whose block size does not fit its count.
	ErrInconsistentSize = errors.New("block size does not fit sample count")
	// Indicates a sample table declaring zero samples.
	ErrEmptyTable = errors.New("sample table has no entries")
	// Indicates a slice that falls outside its source block.
	ErrInvalidRange = errors.New("range exceeds block bounds")
	// Indicates a builder hook the format does not support yet.
	ErrNotSupported = errors.New("not supported")
)

// BlockError indicates an error that occurred within a named block.
type BlockError struct {
	// Name is the name of the block.
	Name string

	Cause error
}

func (err BlockError) Error() string {
	return fmt.Sprintf("%q block: %s", err.Name, err.Cause.Error())
}

func (err BlockError) Unwrap() error {
	return err.Cause
}

// FileError wraps an error with the name of the file being decoded or
// encoded. Packs loaded from memory use the name "buffer".
type FileError struct {
	// Name is the path of the file, or "buffer".
	Name string

	Cause error
}

func (err FileError) Error() string {
	if err.Cause == nil {
		return "pack error in " + err.Name
	}
	return err.Cause.Error() + "\nfilename: " + err.Name
}

func (err FileError) Unwrap() error {
	return err.Cause
}

// DataError wraps an error that occurred while reading or writing byte
// data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}
