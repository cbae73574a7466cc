package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/viewer"
)

// renderViewport draws the model texture filling the window and feeds the
// pointer to the interaction state.
func (app *App) renderViewport(snap viewer.Snapshot) {
	avail := imgui.ContentRegionAvail()
	width := max(avail.X, 1)
	height := max(avail.Y, 1)

	app.renderer.Resize(int32(width), int32(height))
	app.input.layout(width, height)

	textureID := app.renderer.Render(renderer.Frame{
		Model:     snap.Model,
		Rotation:  app.controller.Rotation(),
		Camera:    app.camera,
		ShowGizmo: app.controller.GizmoVisible(),
		Dragging:  app.controller.Dragging(),
	})

	origin := imgui.CursorScreenPos()

	// Display rendered texture (flip V for OpenGL)
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(width, height),
		imgui.NewVec2(0, 1), // UV flipped
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	mouse := imgui.MousePos()
	app.input.update(pointer{
		X:       mouse.X - origin.X,
		Y:       mouse.Y - origin.Y,
		Down:    imgui.IsMouseDown(imgui.MouseButtonLeft),
		Hovered: imgui.IsItemHovered(),
		Wheel:   imgui.CurrentIO().MouseWheel(),
	})

	if snap.Model == nil {
		app.renderPrompt(origin, width, height, snap.Status)
	}
}

// renderPrompt centers the status text over an empty viewport.
func (app *App) renderPrompt(origin imgui.Vec2, width, height float32, s viewer.Status) {
	text := s.String()
	size := imgui.CalcTextSize(text)
	imgui.SetCursorScreenPos(imgui.NewVec2(
		origin.X+(width-size.X)/2,
		origin.Y+(height-size.Y)/2,
	))
	imgui.TextDisabled(text)
}
