// STL (stereolithography) loading, binary and ASCII.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hschendel/stl"
)

// STL format errors.
var (
	ErrEmptySTL                = errors.New("empty STL data")
	ErrTruncatedSTL            = errors.New("truncated STL data")
	ErrInvalidSTLTriangleCount = errors.New("invalid STL triangle count")
	ErrMalformedASCIISTL       = errors.New("malformed ASCII STL")
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // normal + 3 vertices (12 float32) + attribute (uint16)

	// maxSTLTriangles caps the declared count of binary files.
	maxSTLTriangles = 50_000_000
)

// STLTriangle is one facet of an STL file.
type STLTriangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// STL represents a parsed STL file.
type STL struct {
	Name      string // solid name (ASCII) or trimmed header (binary)
	Binary    bool
	Triangles []STLTriangle
}

// VertexCount returns the number of vertices (3 per triangle).
func (s *STL) VertexCount() int {
	return len(s.Triangles) * 3
}

// ParseSTL parses STL data. A file whose size matches the binary layout for
// its declared triangle count is read as binary. A file that starts with
// "solid" and is plain text is read as ASCII. Anything else must be a
// well-formed binary file.
func ParseSTL(data []byte) (*STL, error) {
	if len(data) == 0 {
		return nil, ErrEmptySTL
	}

	if !binarySizeMatches(data) && hasSolidPrefix(data) && isText(data) {
		return parseASCIISTL(data)
	}
	return parseBinarySTL(data)
}

func binarySizeMatches(data []byte) bool {
	if len(data) < stlHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return uint64(stlHeaderSize+4)+uint64(count)*stlTriangleSize == uint64(len(data))
}

func hasSolidPrefix(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(bytes.ToLower(firstN(trimmed, 5)), []byte("solid"))
}

// isText reports whether data is UTF-8 without control bytes other than
// whitespace. Binary payloads almost always carry NULs.
func isText(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	for _, b := range data {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' && b != '\v' {
			return false
		}
	}
	return true
}

func firstN(b []byte, n int) []byte {
	if len(b) < n {
		return b
	}
	return b[:n]
}

func parseBinarySTL(data []byte) (*STL, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedSTL, len(data), stlHeaderSize+4)
	}

	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	if count > maxSTLTriangles {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSTLTriangleCount, count)
	}
	need := uint64(stlHeaderSize+4) + uint64(count)*stlTriangleSize
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: %d triangles need %d bytes, got %d", ErrTruncatedSTL, count, need, len(data))
	}

	name := readHeaderName(data[:stlHeaderSize])

	// The reader sniffs the "solid" keyword, so a binary header carrying it
	// is blanked on a copy.
	payload := data[:need]
	if hasSolidPrefix(payload) {
		payload = bytes.Clone(payload)
		clear(payload[:stlHeaderSize])
	}

	solid, err := stl.ReadAll(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedSTL, err)
	}
	if uint32(len(solid.Triangles)) != count {
		return nil, fmt.Errorf("%w: read %d of %d triangles", ErrTruncatedSTL, len(solid.Triangles), count)
	}
	return fromSolid(solid, name, true), nil
}

func parseASCIISTL(data []byte) (*STL, error) {
	solid, err := stl.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedASCIISTL, err)
	}
	return fromSolid(solid, strings.TrimSpace(solid.Name), false), nil
}

func fromSolid(solid *stl.Solid, name string, isBinary bool) *STL {
	out := &STL{
		Name:      name,
		Binary:    isBinary,
		Triangles: make([]STLTriangle, len(solid.Triangles)),
	}
	for i, t := range solid.Triangles {
		tri := &out.Triangles[i]
		tri.Normal = [3]float32(t.Normal)
		for v := range tri.Vertices {
			tri.Vertices[v] = [3]float32(t.Vertices[v])
		}
		tri.Attribute = t.Attributes
	}
	return out
}

// readHeaderName returns the printable prefix of a binary header.
func readHeaderName(header []byte) string {
	end := len(header)
	for i, b := range header {
		if b == 0 || b < 0x20 || b > 0x7e {
			end = i
			break
		}
	}
	return strings.TrimSpace(string(header[:end]))
}
