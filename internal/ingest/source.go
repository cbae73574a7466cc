package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/meshview/pkg/encoding"
)

// SourceFile is a user-supplied file. Callers consume either Bytes or Text,
// never both.
type SourceFile interface {
	Name() string
	Bytes(ctx context.Context) ([]byte, error)
	Text(ctx context.Context) (string, error)
}

// DiskFile is a file on the local filesystem, as chosen in the file picker or
// dropped on the window.
type DiskFile struct {
	Path string
}

// NewDiskFile returns a SourceFile for path.
func NewDiskFile(path string) *DiskFile {
	return &DiskFile{Path: path}
}

// Name returns the base name of the file.
func (f *DiskFile) Name() string {
	return filepath.Base(f.Path)
}

// Bytes reads the whole file.
func (f *DiskFile) Bytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// Text reads the file and decodes it to UTF-8.
func (f *DiskFile) Text(ctx context.Context) (string, error) {
	data, err := f.Bytes(ctx)
	if err != nil {
		return "", err
	}
	return decode(f.Name(), data)
}

// siblingSource is a SourceFile that can locate files referenced from it,
// such as an OBJ material library.
type siblingSource interface {
	Sibling(name string) string
}

// Sibling returns the path of name relative to the file's directory.
func (f *DiskFile) Sibling(name string) string {
	name = filepath.FromSlash(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(filepath.Dir(f.Path), name)
}

// MemoryFile is an in-memory SourceFile.
type MemoryFile struct {
	FileName string
	Data     []byte
}

// NewMemoryFile returns a SourceFile named name holding data.
func NewMemoryFile(name string, data []byte) *MemoryFile {
	return &MemoryFile{FileName: name, Data: data}
}

// Name returns the file name.
func (f *MemoryFile) Name() string {
	return f.FileName
}

// Bytes returns the data.
func (f *MemoryFile) Bytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Data, nil
}

// Text decodes the data to UTF-8.
func (f *MemoryFile) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return decode(f.FileName, f.Data)
}

func decode(name string, data []byte) (string, error) {
	text, err := encoding.DecodeText(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return text, nil
}
