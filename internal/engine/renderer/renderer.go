// Package renderer draws the current model into an offscreen texture that the
// UI displays.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/gizmo"
	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

const (
	ringSegments = 96
	// RingScale is the gizmo ring radius relative to the model radius.
	RingScale = 1.15
)

var (
	backgroundColor = [4]float32{0.15, 0.15, 0.2, 1.0}
	ringColors      = [3][3]float32{
		{0.90, 0.30, 0.30},
		{0.35, 0.85, 0.35},
		{0.35, 0.50, 0.95},
	}
	ringActiveColor = [3]float32{1.0, 0.85, 0.2}
)

// Frame is everything needed to draw one frame.
type Frame struct {
	Model     *model.Normalized
	Rotation  math.Quat
	Camera    *camera.OrbitCamera
	ShowGizmo bool
	Dragging  bool // highlights the rings
}

// gpuBatch is one uploaded mesh batch.
type gpuBatch struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	material    model.Material
}

// Renderer owns the offscreen target and the GPU copy of the current model.
// It must be created and used on the thread that owns the GL context.
type Renderer struct {
	target *target
	light  lighting.Directional
	mesh   *shader.Program
	lines  *shader.Program

	uploaded *model.Normalized
	batches  []gpuBatch

	ringVAO uint32
	ringVBO uint32
}

// New creates a renderer with a width x height target. OpenGL must already
// be initialized.
func New(width, height int32) (*Renderer, error) {
	r := &Renderer{light: lighting.Studio()}

	var err error
	r.target, err = newTarget(width, height)
	if err != nil {
		return nil, fmt.Errorf("creating render target: %w", err)
	}

	r.mesh, err = shader.New(meshVertexShader, meshFragmentShader,
		"uModel", "uView", "uProjection", "uColor", "uRoughness", "uMetalness",
		"uLightDir", "uLightColor", "uAmbient")
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	r.lines, err = shader.New(lineVertexShader, lineFragmentShader,
		"uModel", "uView", "uProjection", "uColor")
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.createRings()

	logger.Debug("renderer created", zap.Int32("width", width), zap.Int32("height", height))
	return r, nil
}

// Resize changes the target size.
func (r *Renderer) Resize(width, height int32) {
	r.target.resize(width, height)
}

// ReadPixels returns the last rendered frame as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	return r.target.readPixels()
}

// Render draws f and returns the color texture.
func (r *Renderer) Render(f Frame) uint32 {
	r.sync(f.Model)

	restore := r.target.bind()
	defer restore()

	r.target.clear(backgroundColor)
	if f.Model == nil || f.Camera == nil {
		return r.target.colorTexture
	}

	projection := f.Camera.ProjectionMatrix(r.target.aspect())
	view := f.Camera.ViewMatrix()
	rotation := f.Rotation.ToMat4()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if len(r.batches) > 0 {
		r.mesh.Use()
		r.mesh.SetMat4("uProjection", projection)
		r.mesh.SetMat4("uView", view)
		r.mesh.SetMat4("uModel", rotation)
		r.mesh.SetVec3("uLightDir", r.light.Direction.Array())
		r.mesh.SetVec3("uLightColor", r.light.Color)
		r.mesh.SetFloat("uAmbient", r.light.Ambient)

		for _, b := range r.batches {
			r.mesh.SetVec3("uColor", b.material.Color)
			r.mesh.SetFloat("uRoughness", b.material.Roughness)
			r.mesh.SetFloat("uMetalness", b.material.Metalness)
			gl.BindVertexArray(b.vao)
			gl.DrawArrays(gl.TRIANGLES, 0, b.vertexCount)
		}
	}

	if f.ShowGizmo {
		r.drawRings(f, projection, view, rotation)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)

	return r.target.colorTexture
}

func (r *Renderer) drawRings(f Frame, projection, view, rotation math.Mat4) {
	radius := max(f.Model.Bounds.Radius(), 1e-3) * RingScale
	m := rotation.Mul(math.Scale(radius, radius, radius))

	gl.Disable(gl.DEPTH_TEST)
	r.lines.Use()
	r.lines.SetMat4("uProjection", projection)
	r.lines.SetMat4("uView", view)
	r.lines.SetMat4("uModel", m)

	gl.BindVertexArray(r.ringVAO)
	for axis := 0; axis < 3; axis++ {
		color := ringColors[axis]
		if f.Dragging {
			color = ringActiveColor
		}
		r.lines.SetVec3("uColor", color)
		gl.DrawArrays(gl.LINE_LOOP, int32(axis*ringSegments), ringSegments)
	}
}

// sync uploads m if it is not the model already on the GPU, releasing the
// previous buffers.
func (r *Renderer) sync(m *model.Normalized) {
	if m == r.uploaded {
		return
	}
	r.releaseModel()
	r.uploaded = m
	if m == nil {
		return
	}

	for _, batch := range m.WorldTriangles() {
		data := interleave(batch)
		if len(data) == 0 {
			continue
		}

		b := gpuBatch{
			vertexCount: int32(len(batch.Positions)),
			material:    batch.Material,
		}
		gl.GenVertexArrays(1, &b.vao)
		gl.BindVertexArray(b.vao)

		gl.GenBuffers(1, &b.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

		// Position (location 0), Normal (location 1)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 12)
		gl.EnableVertexAttribArray(1)

		r.batches = append(r.batches, b)
	}
	gl.BindVertexArray(0)

	logger.Debug("model uploaded",
		zap.Int("batches", len(r.batches)),
		zap.Int("triangles", model.CountTriangles(m.Model)))
}

func (r *Renderer) releaseModel() {
	for i := range r.batches {
		b := &r.batches[i]
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
	}
	r.batches = nil
	r.uploaded = nil
}

func (r *Renderer) createRings() {
	data := ringVertices(ringSegments)

	gl.GenVertexArrays(1, &r.ringVAO)
	gl.BindVertexArray(r.ringVAO)
	gl.GenBuffers(1, &r.ringVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.ringVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

// Destroy releases all OpenGL resources.
func (r *Renderer) Destroy() {
	r.releaseModel()
	if r.ringVAO != 0 {
		gl.DeleteVertexArrays(1, &r.ringVAO)
		r.ringVAO = 0
	}
	if r.ringVBO != 0 {
		gl.DeleteBuffers(1, &r.ringVBO)
		r.ringVBO = 0
	}
	if r.mesh != nil {
		r.mesh.Delete()
	}
	if r.lines != nil {
		r.lines.Delete()
	}
	if r.target != nil {
		r.target.destroy()
	}
}

// vertexStride is the byte size of one interleaved position+normal vertex.
const vertexStride = 6 * 4

// interleave packs a batch as position/normal pairs. Missing normals are
// written as zero.
func interleave(b model.Batch) []float32 {
	out := make([]float32, 0, len(b.Positions)*6)
	for i, p := range b.Positions {
		var n math.Vec3
		if i < len(b.Normals) {
			n = b.Normals[i]
		}
		out = append(out, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return out
}

// ringVertices returns three unit rings (X, Y, Z axes) of segments points each.
func ringVertices(segments int) []float32 {
	out := make([]float32, 0, 3*segments*3)
	for axis := 0; axis < 3; axis++ {
		for _, p := range gizmo.Ring(axis, segments) {
			out = append(out, p.X, p.Y, p.Z)
		}
	}
	return out
}
