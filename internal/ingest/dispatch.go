// Package ingest turns user-supplied files into parsed models, choosing the
// parser by file extension.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/pkg/formats"
)

// ErrUnsupportedFormat is returned for files whose extension is not handled.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Extension is a lower-cased file suffix without the dot.
type Extension string

const (
	ExtOBJ Extension = "obj"
	ExtSTL Extension = "stl"
)

// SupportedExtensions returns the handled extensions in display order.
func SupportedExtensions() []Extension {
	return []Extension{ExtOBJ, ExtSTL}
}

// Classify returns the extension of filename. The name must contain a dot;
// the comparison ignores case.
func Classify(filename string) (Extension, error) {
	dot := strings.LastIndexByte(filename, '.')
	if dot < 0 {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, filename)
	}

	ext := Extension(strings.ToLower(filename[dot+1:]))
	for _, supported := range SupportedExtensions() {
		if ext == supported {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
}

// ParseError wraps a read or parse failure with the file it came from.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parsers holds the format parsers used by a Dispatcher.
type Parsers struct {
	STL func(data []byte) (*formats.STL, error)
	OBJ func(text string) (*formats.OBJ, error)
	MTL func(path string) (map[string]formats.OBJMaterial, error)
}

// DefaultParsers returns the parsers from pkg/formats.
func DefaultParsers() Parsers {
	return Parsers{
		STL: formats.ParseSTL,
		OBJ: formats.ParseOBJ,
		MTL: formats.ReadMTL,
	}
}

// Dispatcher parses a SourceFile with the parser for its extension.
type Dispatcher struct {
	parsers Parsers
}

// NewDispatcher creates a dispatcher. Nil parsers fall back to the defaults.
func NewDispatcher(parsers Parsers) *Dispatcher {
	defaults := DefaultParsers()
	if parsers.STL == nil {
		parsers.STL = defaults.STL
	}
	if parsers.OBJ == nil {
		parsers.OBJ = defaults.OBJ
	}
	if parsers.MTL == nil {
		parsers.MTL = defaults.MTL
	}
	return &Dispatcher{parsers: parsers}
}

// Parse reads src and returns the parsed model: *model.Geometry for STL,
// *model.Object for OBJ. Unsupported files return ErrUnsupportedFormat
// without being read.
func (d *Dispatcher) Parse(ctx context.Context, src SourceFile) (model.Model, error) {
	ext, err := Classify(src.Name())
	if err != nil {
		return nil, err
	}

	switch ext {
	case ExtSTL:
		data, err := src.Bytes(ctx)
		if err != nil {
			return nil, &ParseError{File: src.Name(), Err: err}
		}
		stl, err := d.parsers.STL(data)
		if err != nil {
			return nil, &ParseError{File: src.Name(), Err: err}
		}
		return model.FromSTL(stl), nil

	case ExtOBJ:
		text, err := src.Text(ctx)
		if err != nil {
			return nil, &ParseError{File: src.Name(), Err: err}
		}
		obj, err := d.parsers.OBJ(text)
		if err != nil {
			return nil, &ParseError{File: src.Name(), Err: err}
		}
		d.resolveMaterials(obj, src)
		return model.FromOBJ(obj), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, src.Name())
	}
}

// resolveMaterials reads the OBJ's material library when src can locate it.
// A missing or unreadable library leaves the default materials.
func (d *Dispatcher) resolveMaterials(obj *formats.OBJ, src SourceFile) {
	if obj.MaterialLib == "" {
		return
	}
	sib, ok := src.(siblingSource)
	if !ok {
		return
	}
	if materials, err := d.parsers.MTL(sib.Sibling(obj.MaterialLib)); err == nil {
		obj.Materials = materials
	}
}
