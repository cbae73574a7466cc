package ingest

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/pkg/formats"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		want    Extension
		wantErr bool
	}{
		{"cube.stl", ExtSTL, false},
		{"scene.obj", ExtOBJ, false},
		{"CUBE.STL", ExtSTL, false},
		{"Scene.Obj", ExtOBJ, false},
		{"archive.tar.obj", ExtOBJ, false},
		{"notes.txt", "", true},
		{"stl", "", true},
		{"cube.", "", true},
		{"model.stl.bak", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// countingSource records which accessors were used.
type countingSource struct {
	name      string
	data      []byte
	bytesRead int
	textRead  int
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) Bytes(ctx context.Context) ([]byte, error) {
	s.bytesRead++
	return s.data, nil
}

func (s *countingSource) Text(ctx context.Context) (string, error) {
	s.textRead++
	return string(s.data), nil
}

// countingParsers returns parsers that record calls and return empty results.
func countingParsers(stlCalls, objCalls *int) Parsers {
	return Parsers{
		STL: func(data []byte) (*formats.STL, error) {
			*stlCalls++
			return &formats.STL{}, nil
		},
		OBJ: func(text string) (*formats.OBJ, error) {
			*objCalls++
			return &formats.OBJ{}, nil
		},
	}
}

func TestDispatcher_Routing(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		wantKind  model.Kind
		wantErr   bool
		wantSTL   int
		wantOBJ   int
		wantBytes int
		wantText  int
	}{
		{"stl uses bytes", "cube.stl", model.KindGeometry, false, 1, 0, 1, 0},
		{"obj uses text", "scene.obj", model.KindObject, false, 0, 1, 0, 1},
		{"upper case", "CUBE.STL", model.KindGeometry, false, 1, 0, 1, 0},
		{"unsupported", "notes.txt", 0, true, 0, 0, 0, 0},
		{"no extension", "README", 0, true, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stlCalls, objCalls int
			d := NewDispatcher(countingParsers(&stlCalls, &objCalls))
			src := &countingSource{name: tt.file, data: []byte("data")}

			m, err := d.Parse(context.Background(), src)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				if m != nil {
					t.Errorf("expected no model, got %T", m)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Kind() != tt.wantKind {
					t.Errorf("expected %s, got %s", tt.wantKind, m.Kind())
				}
			}

			if stlCalls != tt.wantSTL || objCalls != tt.wantOBJ {
				t.Errorf("expected parser calls stl=%d obj=%d, got stl=%d obj=%d", tt.wantSTL, tt.wantOBJ, stlCalls, objCalls)
			}
			if src.bytesRead != tt.wantBytes || src.textRead != tt.wantText {
				t.Errorf("expected reads bytes=%d text=%d, got bytes=%d text=%d", tt.wantBytes, tt.wantText, src.bytesRead, src.textRead)
			}
		})
	}
}

func TestDispatcher_ParseErrorWrapped(t *testing.T) {
	d := NewDispatcher(Parsers{})

	_, err := d.Parse(context.Background(), NewMemoryFile("empty.stl", nil))
	if !errors.Is(err, formats.ErrEmptySTL) {
		t.Errorf("expected ErrEmptySTL, got %v", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.File != "empty.stl" {
		t.Errorf("expected file 'empty.stl', got %q", perr.File)
	}
	if perr.Error() != "parse empty.stl: empty STL data" {
		t.Errorf("unexpected message %q", perr.Error())
	}
}

func TestDispatcher_DefaultParsers(t *testing.T) {
	d := NewDispatcher(Parsers{})

	m, err := d.Parse(context.Background(), NewMemoryFile("tri.obj", []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.CountTriangles(m) != 1 {
		t.Errorf("expected 1 triangle, got %d", model.CountTriangles(m))
	}
}

func TestDiskFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.stl")

	data := make([]byte, 84+50)
	binary.LittleEndian.PutUint32(data[80:], 1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f := NewDiskFile(path)
	if f.Name() != "tri.stl" {
		t.Errorf("expected name 'tri.stl', got %q", f.Name())
	}

	m, err := NewDispatcher(Parsers{}).Parse(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.CountTriangles(m) != 1 {
		t.Errorf("expected 1 triangle, got %d", model.CountTriangles(m))
	}
}

func TestDiskFile_MaterialLibrary(t *testing.T) {
	dir := t.TempDir()
	objText := "mtllib mats/scene.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl red\nf 1 2 3\n"
	if err := os.MkdirAll(filepath.Join(dir, "mats"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scene.obj"), []byte(objText), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "mats", "scene.mtl"), []byte("newmtl red\nKd 1 0 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := NewDispatcher(Parsers{}).Parse(context.Background(), NewDiskFile(filepath.Join(dir, "scene.obj")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := m.(*model.Object)
	if got := obj.Root.Children[0].Mesh.Material.Color; got != [3]float32{1, 0, 0} {
		t.Errorf("expected red from the library, got %v", got)
	}
}

func TestDispatcher_MaterialLibraryNotResolved(t *testing.T) {
	mtlCalls := 0
	d := NewDispatcher(Parsers{
		MTL: func(string) (map[string]formats.OBJMaterial, error) {
			mtlCalls++
			return nil, os.ErrNotExist
		},
	})

	// Memory files cannot locate a library.
	src := NewMemoryFile("scene.obj", []byte("mtllib scene.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl red\nf 1 2 3\n"))
	m, err := d.Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mtlCalls != 0 {
		t.Errorf("expected no library read, got %d", mtlCalls)
	}

	// A missing library keeps the defaults.
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.obj")
	if err := os.WriteFile(path, src.Data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err = d.Parse(context.Background(), NewDiskFile(path))
	if err != nil {
		t.Fatalf("expected missing library to be ignored, got %v", err)
	}
	if mtlCalls != 1 {
		t.Errorf("expected one library read, got %d", mtlCalls)
	}
	obj := m.(*model.Object)
	if got := obj.Root.Children[0].Mesh.Material; got != model.DefaultMaterial("red") {
		t.Errorf("expected default material, got %+v", got)
	}
}

func TestDiskFile_Sibling(t *testing.T) {
	f := NewDiskFile(filepath.Join("models", "scene.obj"))
	if got := f.Sibling("scene.mtl"); got != filepath.Join("models", "scene.mtl") {
		t.Errorf("expected library next to the OBJ, got %q", got)
	}
	abs := filepath.Join(t.TempDir(), "shared.mtl")
	if got := f.Sibling(abs); got != abs {
		t.Errorf("expected absolute path kept, got %q", got)
	}
}

func TestDiskFile_Missing(t *testing.T) {
	f := NewDiskFile(filepath.Join(t.TempDir(), "missing.stl"))

	_, err := NewDispatcher(Parsers{}).Parse(context.Background(), f)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []SourceFile{
		NewMemoryFile("a.stl", []byte("x")),
		NewDiskFile(filepath.Join(t.TempDir(), "a.stl")),
	}
	for _, src := range sources {
		if _, err := src.Bytes(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("%T: expected context.Canceled, got %v", src, err)
		}
		if _, err := src.Text(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("%T: expected context.Canceled, got %v", src, err)
		}
	}
}

func TestMemoryFile_Text(t *testing.T) {
	f := NewMemoryFile("bom.obj", []byte{0xEF, 0xBB, 0xBF, 'v', ' ', '1'})
	text, err := f.Text(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "v 1" {
		t.Errorf("expected 'v 1', got %q", text)
	}
}
