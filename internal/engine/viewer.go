package engine

import (
	"Terralight/internal/behaviour"
	"Terralight/internal/logger"
	"Terralight/internal/renderer"
	"runtime"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Initialize to the center of the window
var lastX, lastY float64
var firstMouse bool = true

// Viewer is the host application shell: it owns the window, the camera, the
// render loop and the renderer with its light container. Lighting add-ons
// talk to it through the container accessors and RequestRedraw.
type Viewer struct {
	Width             int32
	Height            int32
	Camera            *renderer.Camera
	EnableCameraInput bool // Disabled while UI widgets want keyboard/mouse
	OnDemandRendering bool // Only draw frames when something requested a redraw
	rendererAPI       renderer.Render
	window            *glfw.Window
	frameTrackId      int
	redrawRequested   bool
	ready             bool
	onRenderCallback  func(deltaTime float64) // Per-frame hook for UI overlays
}

func NewViewer() *Viewer {
	logger.Init()
	logger.Log.Info("Terralight viewer initializing...")
	return &Viewer{
		rendererAPI:       &renderer.OpenGLRenderer{},
		Width:             1280,
		Height:            800,
		frameTrackId:      0,
		EnableCameraInput: true,
	}
}

// Render opens the window at the given position and blocks in the render
// loop until the window closes.
func (v *Viewer) Render(x, y int) {
	lastX, lastY = float64(v.Width/2), float64(v.Height/2)
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var err error
	v.window, err = glfw.CreateWindow(int(v.Width), int(v.Height), "Terralight", nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return
	}

	v.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		logger.Log.Error("Could not initialize OpenGL", zap.Error(err))
		return
	}
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	v.window.SetPos(x, y)

	v.rendererAPI.Init(v.Width, v.Height, v.window)

	v.Camera = renderer.NewDefaultCamera(v.Width, v.Height)

	v.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	v.window.SetCursorPosCallback(v.mouseCallback)

	v.ready = true
	v.RenderLoop()
}

func (v *Viewer) RenderLoop() {
	var lastTime = glfw.GetTime()
	var lastWidth, lastHeight int32 = v.Width, v.Height

	for !v.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		actualWidth, actualHeight := v.window.GetSize()
		if int32(actualWidth) != v.Width || int32(actualHeight) != v.Height {
			v.Width = int32(actualWidth)
			v.Height = int32(actualHeight)
		}

		if v.Width != lastWidth || v.Height != lastHeight {
			v.rendererAPI.UpdateViewport(v.Width, v.Height)
			v.Camera.SetAspectRatio(float32(v.Width) / float32(v.Height))
			lastWidth, lastHeight = v.Width, v.Height
			v.redrawRequested = true
		}

		if v.EnableCameraInput {
			v.Camera.ProcessKeyboard(v.window, float32(deltaTime))
		}

		if v.frameTrackId >= 2 {
			behaviour.GlobalBehaviourManager.UpdateAllFixed()
			v.frameTrackId = 0
		}
		behaviour.GlobalBehaviourManager.UpdateAll()

		if !v.OnDemandRendering || v.redrawRequested {
			v.rendererAPI.Render(*v.Camera)
			v.redrawRequested = false
		}

		if v.onRenderCallback != nil {
			v.onRenderCallback(deltaTime)
		}

		v.window.SwapBuffers()
		v.frameTrackId++
		glfw.PollEvents()
	}
	v.rendererAPI.Cleanup()
}

// Ready reports whether the window and renderer are initialized. Add-ons
// poll this before touching the light container.
func (v *Viewer) Ready() bool {
	return v.ready
}

// RequestRedraw asks the host for a re-render. In continuous mode the next
// frame happens anyway; in on-demand mode this is what triggers it.
func (v *Viewer) RequestRedraw() {
	v.redrawRequested = true
}

// Lights exposes the scene's mutable light container.
func (v *Viewer) Lights() []*renderer.Light {
	return v.rendererAPI.Lights()
}

// SetLights replaces the scene's light container wholesale.
func (v *Viewer) SetLights(lights []*renderer.Light) {
	v.rendererAPI.SetLights(lights)
}

func (v *Viewer) AddLight(light *renderer.Light) {
	v.rendererAPI.AddLight(light)
}

func (v *Viewer) RemoveLight(light *renderer.Light) {
	v.rendererAPI.RemoveLight(light)
}

func (v *Viewer) AddModel(model *renderer.Model) {
	v.rendererAPI.AddModel(model)
}

func (v *Viewer) RemoveModel(model *renderer.Model) {
	v.rendererAPI.RemoveModel(model)
}

// SetOnRenderCallback sets a callback that will be called each frame after
// the 3D scene is rendered (UI overlays hook in here).
func (v *Viewer) SetOnRenderCallback(callback func(deltaTime float64)) {
	v.onRenderCallback = callback
}

func (v *Viewer) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

func (v *Viewer) SetFrustumCulling(enabled bool) {
	renderer.FrustumCullingEnabled = enabled
}

func (v *Viewer) SetFaceCulling(enabled bool) {
	renderer.FaceCullingEnabled = enabled
}

// GetWindow returns the GLFW window (for UI glue)
func (v *Viewer) GetWindow() *glfw.Window {
	return v.window
}

// GetRenderer returns the renderer API (for UI glue)
func (v *Viewer) GetRenderer() renderer.Render {
	return v.rendererAPI
}

func (v *Viewer) GetMousePosition() mgl.Vec2 {
	x, y := v.window.GetCursorPos()
	return mgl.Vec2{float32(x), float32(y)}
}

func (v *Viewer) IsMouseButtonPressed(button glfw.MouseButton) bool {
	return v.window.GetMouseButton(button) == glfw.Press
}

// Mouse callback function
func (v *Viewer) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	// Only rotate the camera while the right mouse button is held and no UI
	// widget owns the mouse
	if v.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // Reversed since y-coordinates go from bottom to top
		lastX = xpos
		lastY = ypos

		v.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
