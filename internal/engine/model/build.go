package model

import (
	"github.com/Faultbox/meshview/pkg/formats"
	"github.com/Faultbox/meshview/pkg/math"
)

// FromSTL builds a Geometry from parsed STL data. Facet normals that are
// missing or zero are recomputed from the vertices.
func FromSTL(stl *formats.STL) *Geometry {
	g := &Geometry{
		Positions: make([]math.Vec3, 0, len(stl.Triangles)*3),
		Normals:   make([]math.Vec3, 0, len(stl.Triangles)*3),
	}

	for _, tri := range stl.Triangles {
		v0 := vec3(tri.Vertices[0])
		v1 := vec3(tri.Vertices[1])
		v2 := vec3(tri.Vertices[2])

		normal := vec3(tri.Normal)
		if normal.Length() < 1e-6 {
			normal = faceNormal(v0, v1, v2)
		} else {
			normal = normal.Normalize()
		}

		g.Positions = append(g.Positions, v0, v1, v2)
		g.Normals = append(g.Normals, normal, normal, normal)
	}

	return g
}

// FromOBJ builds an Object with one mesh node per material group under a
// transform-only root.
func FromOBJ(obj *formats.OBJ) *Object {
	root := &Node{Name: "root", Transform: IdentityTransform()}

	for _, group := range obj.Groups {
		g := &Geometry{
			Positions: make([]math.Vec3, len(group.Positions)),
			Normals:   make([]math.Vec3, len(group.Normals)),
		}
		for i, p := range group.Positions {
			g.Positions[i] = vec3(p)
		}
		for i, n := range group.Normals {
			g.Normals[i] = vec3(n)
		}

		root.Children = append(root.Children, &Node{
			Name:      group.Material,
			Transform: IdentityTransform(),
			Mesh: &Mesh{
				Geometry: g,
				Material: groupMaterial(obj, group.Material),
			},
		})
	}

	return &Object{Root: root}
}

// groupMaterial returns the library material for name, or the default.
func groupMaterial(obj *formats.OBJ, name string) Material {
	m, ok := obj.Materials[name]
	if !ok {
		return DefaultMaterial(name)
	}
	return Material{
		Name:      name,
		Color:     m.Diffuse,
		Roughness: m.Roughness,
		Metalness: m.Metalness,
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or +Y
// when the triangle is degenerate.
func faceNormal(v0, v1, v2 math.Vec3) math.Vec3 {
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	if n.Length() < 1e-12 {
		return math.Vec3{Y: 1}
	}
	return n.Normalize()
}
