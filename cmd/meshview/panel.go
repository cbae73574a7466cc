package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/interaction"
	"github.com/Faultbox/meshview/internal/viewer"
)

var (
	colorError   = imgui.NewVec4(0.9, 0.35, 0.35, 1)
	colorWarning = imgui.NewVec4(1, 0.8, 0, 1)
	colorActive  = imgui.NewVec4(1, 0.85, 0.2, 1)
)

// renderPanel draws the side panel.
func (app *App) renderPanel(snap viewer.Snapshot) {
	loading := snap.Status.Phase == viewer.PhaseLoading

	if imgui.Button("Open... (O)") {
		app.openFileDialog()
	}
	imgui.SameLine()
	if imgui.Button("Reload (F5)") {
		app.reload()
	}
	imgui.SameLine()
	imgui.BeginDisabledV(snap.Model == nil && !loading)
	if imgui.Button("Clear") {
		app.holder.Clear()
	}
	imgui.EndDisabled()
	imgui.TextDisabled("(or drop a file on the window)")

	imgui.Separator()
	if app.variant == interaction.VariantDual {
		app.renderModeControls()
	} else {
		app.renderSliders()
	}

	imgui.Separator()
	if imgui.Button("Reset View") {
		app.camera.Reset()
	}
	imgui.SameLine()
	imgui.TextDisabled("(Drag to orbit, scroll to zoom)")

	imgui.Separator()
	app.renderModelInfo(snap.Model)
}

// renderModeControls draws the orbit/gizmo switch of the dual variant.
func (app *App) renderModeControls() {
	gizmoOn := app.controller.Mode() == interaction.GizmoRotate
	if imgui.Checkbox("Rotation gizmo (G)", &gizmoOn) {
		if gizmoOn {
			app.controller.SetMode(interaction.GizmoRotate)
		} else {
			app.controller.SetMode(interaction.OrbitOnly)
		}
	}
	if imgui.IsItemHovered() {
		imgui.SetTooltip("Drag the rings to rotate the model; drag elsewhere to orbit")
	}

	switch {
	case app.controller.Dragging():
		imgui.TextColored(colorActive, "Rotating model")
	case app.controller.Mode() == interaction.GizmoRotate && app.controller.Target() == nil:
		imgui.TextDisabled("Gizmo appears when a model is loaded")
	default:
		imgui.TextDisabled(fmt.Sprintf("Mode: %s", app.controller.Mode()))
	}

	if imgui.Button("Reset Rotation (R)") {
		app.resetRotation()
	}
}

// renderSliders draws the X/Y/Z rotation sliders of the simple variant.
func (app *App) renderSliders() {
	imgui.Text("Rotation")
	for _, axis := range []interaction.Axis{interaction.AxisX, interaction.AxisY, interaction.AxisZ} {
		deg := app.sliders.Get(axis)
		imgui.Text(axis.String())
		imgui.SameLine()
		imgui.SetNextItemWidth(-1)
		if imgui.SliderFloatV("##rot"+axis.String(), &deg, interaction.MinDegrees, interaction.MaxDegrees, "%.0f deg", imgui.SliderFlagsNone) {
			app.sliders.Set(axis, deg)
		}
	}
	if imgui.Button("Reset Rotation (R)") {
		app.resetRotation()
	}
}

// renderModelInfo shows statistics and the node tree of the current model.
func (app *App) renderModelInfo(m *model.Normalized) {
	if m == nil {
		imgui.TextDisabled("No model loaded")
		return
	}

	imgui.Text(fmt.Sprintf("Kind: %s", m.Model.Kind()))
	imgui.Text(fmt.Sprintf("Meshes: %d", model.CountMeshes(m.Model)))
	imgui.Text(fmt.Sprintf("Triangles: %d", model.CountTriangles(m.Model)))

	size := m.Bounds.Size()
	imgui.Text(fmt.Sprintf("Size: %.3f x %.3f x %.3f", size.X, size.Y, size.Z))
	imgui.Text(fmt.Sprintf("Offset: (%.3f, %.3f, %.3f)", m.Offset.X, m.Offset.Y, m.Offset.Z))
	if m.Bounds.IsEmpty() {
		imgui.TextColored(colorWarning, "Model has no geometry")
	}

	obj, ok := m.Model.(*model.Object)
	if !ok || obj.Root == nil {
		return
	}
	if imgui.TreeNodeExStrV("Hierarchy", imgui.TreeNodeFlagsDefaultOpen) {
		app.renderNode(obj.Root)
		imgui.TreePop()
	}
}

func (app *App) renderNode(n *model.Node) {
	label := n.Name
	if label == "" {
		label = "(unnamed)"
	}
	if n.Mesh != nil && n.Mesh.Geometry != nil {
		label = fmt.Sprintf("%s [%d tris]", label, n.Mesh.Geometry.TriangleCount())
	}
	// Node names repeat; the pointer keeps IDs unique.
	label = fmt.Sprintf("%s##%p", label, n)

	if len(n.Children) == 0 {
		imgui.TreeNodeExStrV(label, imgui.TreeNodeFlagsLeaf|imgui.TreeNodeFlagsNoTreePushOnOpen)
		app.renderMaterialTooltip(n)
		return
	}

	open := imgui.TreeNodeExStrV(label, imgui.TreeNodeFlagsDefaultOpen)
	app.renderMaterialTooltip(n)
	if open {
		for _, child := range n.Children {
			app.renderNode(child)
		}
		imgui.TreePop()
	}
}

func (app *App) renderMaterialTooltip(n *model.Node) {
	if n.Mesh == nil || !imgui.IsItemHovered() {
		return
	}
	mat := n.Mesh.Material
	imgui.BeginTooltip()
	imgui.Text(fmt.Sprintf("Material: %s", mat.Name))
	imgui.Text(fmt.Sprintf("Color: %.2f %.2f %.2f", mat.Color[0], mat.Color[1], mat.Color[2]))
	imgui.Text(fmt.Sprintf("Roughness: %.2f  Metalness: %.2f", mat.Roughness, mat.Metalness))
	imgui.EndTooltip()
}

// renderStatusBar shows the holder status.
func (app *App) renderStatusBar(snap viewer.Snapshot) {
	switch snap.Status.Phase {
	case viewer.PhaseError:
		imgui.TextColored(colorError, app.statusText)
	default:
		if snap.Status.Unsupported() {
			imgui.TextColored(colorWarning, app.statusText)
		} else {
			imgui.Text(app.statusText)
		}
	}
}
