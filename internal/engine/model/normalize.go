package model

import (
	"fmt"

	"github.com/Faultbox/meshview/pkg/math"
)

// Batch is a run of world-space triangles drawn with one material.
type Batch struct {
	Material  Material
	Positions []math.Vec3
	Normals   []math.Vec3
}

// Normalize returns a copy of m recentered on the origin. Objects also get
// UniformMaterial on every mesh. The input is not modified. A model with no
// vertices is returned unchanged with a zero offset.
func Normalize(m Model) *Normalized {
	switch v := m.(type) {
	case *Geometry:
		return normalizeGeometry(v)
	case *Object:
		return normalizeObject(v)
	default:
		panic(unknownVariant(m))
	}
}

func normalizeGeometry(g *Geometry) *Normalized {
	bounds := g.Bounds()
	offset := bounds.Center().Negate()

	out := g.Clone()
	for i, p := range out.Positions {
		out.Positions[i] = p.Add(offset)
	}

	return &Normalized{
		Model:  out,
		Offset: offset,
		Bounds: bounds.Translate(offset),
	}
}

func normalizeObject(o *Object) *Normalized {
	root := MapMeshes(o.Root, func(mesh Mesh) Mesh {
		mesh.Material = UniformMaterial
		return mesh
	})

	bounds := objectBounds(root)
	offset := bounds.Center().Negate()
	if root != nil {
		root.Transform.Position = root.Transform.Position.Add(offset)
	}

	return &Normalized{
		Model:  &Object{Root: root},
		Offset: offset,
		Bounds: bounds.Translate(offset),
	}
}

// ComputeBounds returns the world-space bounding box of m.
func ComputeBounds(m Model) math.Box {
	switch v := m.(type) {
	case *Geometry:
		return v.Bounds()
	case *Object:
		return objectBounds(v.Root)
	default:
		panic(unknownVariant(m))
	}
}

func objectBounds(root *Node) math.Box {
	box := math.EmptyBox()
	Walk(root, func(n *Node, world math.Mat4) {
		if n.Mesh == nil || n.Mesh.Geometry == nil {
			return
		}
		mesh := math.EmptyBox()
		for _, p := range n.Mesh.Geometry.Positions {
			mesh = mesh.Extend(world.TransformVec3(p))
		}
		box = box.Union(mesh)
	})
	return box
}

// WorldTriangles flattens the model into world-space batches, one per mesh.
func (n *Normalized) WorldTriangles() []Batch {
	switch v := n.Model.(type) {
	case *Geometry:
		if v.VertexCount() == 0 {
			return nil
		}
		return []Batch{{
			Material:  UniformMaterial,
			Positions: v.Positions,
			Normals:   v.Normals,
		}}
	case *Object:
		var batches []Batch
		Walk(v.Root, func(node *Node, world math.Mat4) {
			if node.Mesh == nil || node.Mesh.Geometry == nil || node.Mesh.Geometry.VertexCount() == 0 {
				return
			}
			g := node.Mesh.Geometry
			b := Batch{
				Material:  node.Mesh.Material,
				Positions: make([]math.Vec3, len(g.Positions)),
				Normals:   make([]math.Vec3, len(g.Normals)),
			}
			for i, p := range g.Positions {
				b.Positions[i] = world.TransformVec3(p)
			}
			for i, nrm := range g.Normals {
				b.Normals[i] = world.TransformDirection(nrm).Normalize()
			}
			batches = append(batches, b)
		})
		return batches
	default:
		panic(unknownVariant(n.Model))
	}
}

func unknownVariant(m Model) string {
	return fmt.Sprintf("model: unknown variant %T", m)
}
