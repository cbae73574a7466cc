package model

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// VisitFunc is called for every node with its world matrix.
type VisitFunc func(node *Node, world math.Mat4)

// Walk visits root and its descendants depth-first, parents before children.
// The world matrix of a node is parent × T × R × S.
func Walk(root *Node, fn VisitFunc) {
	if root == nil {
		return
	}
	walk(root, math.Identity(), fn)
}

func walk(n *Node, parent math.Mat4, fn VisitFunc) {
	world := parent.Mul(n.Transform.Matrix())
	fn(n, world)
	for _, child := range n.Children {
		walk(child, world, fn)
	}
}

// MapMeshes returns a copy of the tree in which every mesh has been replaced
// by fn(mesh). Geometry buffers are shared with the input.
func MapMeshes(root *Node, fn func(Mesh) Mesh) *Node {
	if root == nil {
		return nil
	}

	out := &Node{
		Name:      root.Name,
		Transform: root.Transform,
	}
	if root.Mesh != nil {
		mesh := fn(*root.Mesh)
		out.Mesh = &mesh
	}
	if len(root.Children) > 0 {
		out.Children = make([]*Node, len(root.Children))
		for i, child := range root.Children {
			out.Children[i] = MapMeshes(child, fn)
		}
	}
	return out
}

// CountMeshes returns the number of drawable meshes in m.
func CountMeshes(m Model) int {
	switch v := m.(type) {
	case *Geometry:
		if v.VertexCount() == 0 {
			return 0
		}
		return 1
	case *Object:
		count := 0
		Walk(v.Root, func(n *Node, _ math.Mat4) {
			if n.Mesh != nil && n.Mesh.Geometry != nil {
				count++
			}
		})
		return count
	default:
		panic(unknownVariant(m))
	}
}

// CountTriangles returns the number of triangles in m.
func CountTriangles(m Model) int {
	switch v := m.(type) {
	case *Geometry:
		return v.TriangleCount()
	case *Object:
		count := 0
		Walk(v.Root, func(n *Node, _ math.Mat4) {
			if n.Mesh != nil && n.Mesh.Geometry != nil {
				count += n.Mesh.Geometry.TriangleCount()
			}
		})
		return count
	default:
		panic(unknownVariant(m))
	}
}
