package renderer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var FrustumCullingEnabled bool = false
var FaceCullingEnabled bool = false
var Debug bool = false
var DepthTestEnabled bool = true
var SkyColorR float32 = 0.53 // Background sky clear color
var SkyColorG float32 = 0.71
var SkyColorB float32 = 0.92

// SetSkyColor sets the clear color used as the sky backdrop.
func SetSkyColor(r, g, b float32) {
	SkyColorR, SkyColorG, SkyColorB = r, g, b
}

type Render interface {
	Init(width, height int32, window *glfw.Window)
	Render(camera Camera)
	AddModel(model *Model)
	RemoveModel(model *Model)
	AddLight(light *Light)
	RemoveLight(light *Light)
	Lights() []*Light
	SetLights(lights []*Light)
	UpdateViewport(width, height int32)
	Cleanup()
}
