// Package model provides the parsed model variants, their builders, and the
// normalizer that recenters a model before it is displayed.
package model

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// Kind identifies a Model variant.
type Kind int

const (
	KindGeometry Kind = iota
	KindObject
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Model is the result of parsing a mesh file. It has exactly two variants,
// *Geometry and *Object; the unexported method keeps the set closed.
type Model interface {
	Kind() Kind
	isModel()
}

// Geometry is a flat triangle buffer without hierarchy.
// Positions and Normals hold three entries per triangle.
type Geometry struct {
	Positions []math.Vec3
	Normals   []math.Vec3
}

func (*Geometry) isModel() {}

// Kind returns KindGeometry.
func (*Geometry) Kind() Kind { return KindGeometry }

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Positions) / 3
}

// Bounds returns the axis-aligned bounding box of all positions.
func (g *Geometry) Bounds() math.Box {
	box := math.EmptyBox()
	for _, p := range g.Positions {
		box = box.Extend(p)
	}
	return box
}

// Clone returns a deep copy.
func (g *Geometry) Clone() *Geometry {
	return &Geometry{
		Positions: append([]math.Vec3(nil), g.Positions...),
		Normals:   append([]math.Vec3(nil), g.Normals...),
	}
}

// Material describes how a mesh is shaded.
type Material struct {
	Name      string
	Color     [3]float32 // linear RGB, 0..1
	Roughness float32
	Metalness float32
}

// UniformMaterial replaces every material of a normalized Object.
var UniformMaterial = Material{
	Name:      "uniform",
	Color:     [3]float32{0.6, 0.6, 0.6},
	Roughness: 0.5,
	Metalness: 0.1,
}

// DefaultMaterial is assigned to OBJ groups without a library entry.
func DefaultMaterial(name string) Material {
	return Material{Name: name, Color: [3]float32{1, 1, 1}, Roughness: 1}
}

// Transform is a node's local position, rotation and scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// IdentityTransform returns a transform that changes nothing.
func IdentityTransform() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix returns T * R * S.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// Mesh is geometry plus the material it is drawn with.
type Mesh struct {
	Geometry *Geometry
	Material Material
}

// Node is an element of an Object hierarchy. Nodes without a Mesh only
// contribute their transform.
type Node struct {
	Name      string
	Transform Transform
	Mesh      *Mesh
	Children  []*Node
}

// Object is a hierarchy of nodes rooted at Root.
type Object struct {
	Root *Node
}

func (*Object) isModel() {}

// Kind returns KindObject.
func (*Object) Kind() Kind { return KindObject }

// Normalized is a model prepared for display.
type Normalized struct {
	Model  Model
	Offset math.Vec3 // translation applied by Normalize
	Bounds math.Box  // bounds after translation
}
