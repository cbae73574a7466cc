// Wavefront OBJ parser built on github.com/flywave/go-obj.
package formats

import (
	"errors"
	"fmt"
	"strings"

	gobj "github.com/flywave/go-obj"
	"github.com/flywave/go3d/vec3"
)

// OBJ format errors.
var (
	ErrOBJFaceIndex = errors.New("OBJ face references a missing vertex")
)

// DefaultOBJMaterial names faces that precede any usemtl statement.
const DefaultOBJMaterial = "default"

// OBJGroup holds the triangles of one material, three vertices per triangle.
type OBJGroup struct {
	Material  string
	Positions [][3]float32
	Normals   [][3]float32
}

// TriangleCount returns the number of triangles in the group.
func (g *OBJGroup) TriangleCount() int {
	return len(g.Positions) / 3
}

// OBJ represents a parsed OBJ file regrouped by material.
// Groups are ordered by the first face that uses each material.
type OBJ struct {
	VertexCount int    // declared "v" records
	MaterialLib string // mtllib reference, unresolved
	Groups      []OBJGroup

	// Materials is filled from the material library when the caller can
	// resolve it. Groups without an entry keep the default look.
	Materials map[string]OBJMaterial
}

// OBJMaterial is the part of an MTL entry the viewer shows.
type OBJMaterial struct {
	Name      string
	Diffuse   [3]float32
	Roughness float32
	Metalness float32
}

// TriangleCount returns the number of triangles across all groups.
func (o *OBJ) TriangleCount() int {
	total := 0
	for i := range o.Groups {
		total += o.Groups[i].TriangleCount()
	}
	return total
}

// ParseOBJ parses OBJ text. Polygons are fan-triangulated; faces without
// normal references get the flat face normal.
func ParseOBJ(text string) (*OBJ, error) {
	reader := &gobj.ObjReader{}
	if err := reader.Read(strings.NewReader(text)); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	obj := &OBJ{VertexCount: len(reader.V), MaterialLib: reader.MTL}
	groupIndex := make(map[string]int)

	for fi, face := range reader.F {
		if len(face.Corners) < 3 {
			continue
		}

		material := face.Material
		if material == "" {
			material = DefaultOBJMaterial
		}
		idx, ok := groupIndex[material]
		if !ok {
			idx = len(obj.Groups)
			groupIndex[material] = idx
			obj.Groups = append(obj.Groups, OBJGroup{Material: material})
		}
		group := &obj.Groups[idx]

		for _, c := range face.Corners {
			if c.VertexIndex < 0 || c.VertexIndex >= len(reader.V) {
				return nil, fmt.Errorf("%w: face %d uses vertex %d of %d", ErrOBJFaceIndex, fi, c.VertexIndex+1, len(reader.V))
			}
		}

		for i := 1; i < len(face.Corners)-1; i++ {
			corners := [3]objCorner{objCorner(face.Corners[0]), objCorner(face.Corners[i]), objCorner(face.Corners[i+1])}
			appendTriangle(group, reader, corners)
		}
	}

	return obj, nil
}

// objCorner mirrors go-obj's unexported face corner type.
type objCorner struct {
	VertexIndex   int
	NormalIndex   int
	TexcoordIndex int
}

func appendTriangle(group *OBJGroup, reader *gobj.ObjReader, corners [3]objCorner) {
	var positions [3]vec3.T
	for i, c := range corners {
		positions[i] = reader.V[c.VertexIndex]
	}
	flat := faceNormal(positions[0], positions[1], positions[2])

	for i, c := range corners {
		normal := flat
		if c.NormalIndex >= 0 && c.NormalIndex < len(reader.VN) {
			normal = reader.VN[c.NormalIndex]
		}
		group.Positions = append(group.Positions, [3]float32(positions[i]))
		group.Normals = append(group.Normals, [3]float32(normal))
	}
}

func faceNormal(v0, v1, v2 vec3.T) vec3.T {
	e1 := vec3.Sub(&v1, &v0)
	e2 := vec3.Sub(&v2, &v0)
	n := vec3.Cross(&e1, &e2)

	length := n.Length()
	if length == 0 {
		return vec3.T{0, 1, 0}
	}
	return vec3.T{n[0] / length, n[1] / length, n[2] / length}
}

// ReadMTL reads the material library at path.
func ReadMTL(path string) (map[string]OBJMaterial, error) {
	loaded, err := gobj.ReadMaterials(path)
	if err != nil {
		return nil, fmt.Errorf("reading MTL %s: %w", path, err)
	}

	materials := make(map[string]OBJMaterial, len(loaded))
	for name, m := range loaded {
		if m == nil {
			continue
		}
		mat := OBJMaterial{
			Name:      name,
			Diffuse:   [3]float32{1, 1, 1},
			Roughness: m.Roughness,
			Metalness: m.Metallic,
		}
		if len(m.Diffuse) >= 3 {
			mat.Diffuse = [3]float32{m.Diffuse[0], m.Diffuse[1], m.Diffuse[2]}
		}
		materials[name] = mat
	}
	return materials, nil
}
