// Package formats provides parsers for the mesh file formats the viewer opens.
//
// STL bytes are decoded with github.com/hschendel/stl after a binary or ASCII
// check. OBJ text and MTL libraries are read with github.com/flywave/go-obj
// and regrouped by material.
package formats
