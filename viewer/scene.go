package main

import (
	"Terralight/internal/daylight"
	"Terralight/internal/renderer"
	"Terralight/internal/terrain"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// setupScene builds the terrain, gives the host its default lighting, and
// wires the daylight controller to the ready engine.
func setupScene() {
	renderer.SetSkyColor(0.53, 0.71, 0.92)

	ground := terrain.Generate(terrain.DefaultConfig())
	eng.AddModel(ground)

	// The host's own light set. This is what "No simulation" restores.
	defaultLight := renderer.CreateDirectionalLight(
		mgl.Vec3{-0.2, -1.0, -0.3}.Normalize(),
		mgl.Vec3{1, 1, 1},
		1.0,
	)
	defaultLight.Name = "Default Light"
	eng.AddLight(defaultLight)

	// Default orientation already looks down -z toward the terrain
	eng.Camera.Position = mgl.Vec3{0, 150, 300}

	controller = daylight.NewController(eng)
	cloudyChecked = controller.State().Cloudy
}
