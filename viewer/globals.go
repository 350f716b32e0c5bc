package main

import (
	"Terralight/internal/daylight"
	"Terralight/internal/engine"
	"Terralight/viewer/platforms"
	"Terralight/viewer/renderers"
)

var (
	eng           *engine.Viewer
	platform      *platforms.GLFW
	imguiRenderer *renderers.OpenGL3
	controller    *daylight.Controller

	imguiInitialized = false
	sceneSetup       = false

	showDaylightPanel = true

	// Mirrors the checkbox; pushed into the controller on change
	cloudyChecked = false

	// Viewer config
	configPath = "viewer_config.json"

	daylightPanelLayout = PanelLayout{PosX: 20, PosY: 20, SizeX: 260, SizeY: 190}
)

// PanelLayout stores panel position and size
type PanelLayout struct {
	PosX  float32 `json:"pos_x"`
	PosY  float32 `json:"pos_y"`
	SizeX float32 `json:"size_x"`
	SizeY float32 `json:"size_y"`
}
