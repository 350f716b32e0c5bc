package main

import (
	"fmt"

	"Terralight/internal/daylight"

	"github.com/inkyblackness/imgui-go/v4"
)

// renderDaylightPanel draws the four lighting controls: two preset buttons,
// the "No simulation" button and the cloudy checkbox.
func renderDaylightPanel() {
	if controller == nil || !showDaylightPanel {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: daylightPanelLayout.PosX, Y: daylightPanelLayout.PosY}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: daylightPanelLayout.SizeX, Y: daylightPanelLayout.SizeY}, imgui.ConditionFirstUseEver)

	if imgui.BeginV("Daylight", &showDaylightPanel, 0) {
		imgui.Text("Sun position")
		imgui.Separator()

		if imgui.Button("Morning") {
			controller.SetTimeOfDay(daylight.Morning)
		}
		imgui.SameLine()
		if imgui.Button("Afternoon") {
			controller.SetTimeOfDay(daylight.Afternoon)
		}
		imgui.SameLine()
		if imgui.Button("No simulation") {
			// Leaves the cloudy checkbox as the user set it; only the
			// lighting reverts
			controller.Deactivate()
		}

		imgui.Spacing()
		if imgui.Checkbox("Cloudy", &cloudyChecked) {
			controller.SetCloudy(cloudyChecked)
		}

		imgui.Separator()
		state := controller.State()
		if state.Active {
			p := daylight.Derive(state)
			imgui.Text(fmt.Sprintf("Preset: %s", state.TimeOfDay))
			imgui.Text(fmt.Sprintf("Sun intensity: %.2f", p.SunIntensity))
			imgui.Text(fmt.Sprintf("Ambient intensity: %.2f", p.AmbientIntensity))
		} else {
			imgui.Text("Simulation off")
		}

		// Remember where the user parked the panel
		pos := imgui.WindowPos()
		size := imgui.WindowSize()
		daylightPanelLayout = PanelLayout{PosX: pos.X, PosY: pos.Y, SizeX: size.X, SizeY: size.Y}
	}
	imgui.End()
}
