package main

import (
	"fmt"
	"runtime"

	"Terralight/internal/engine"
	"Terralight/viewer/platforms"
	"Terralight/viewer/renderers"

	"github.com/inkyblackness/imgui-go/v4"
)

func main() {
	runtime.LockOSThread()

	fmt.Println("===========================================")
	fmt.Println("   Terralight terrain viewer")
	fmt.Println("===========================================")

	// Create ImGui context
	context := imgui.CreateContext(nil)
	defer context.Destroy()
	defer saveConfig() // Save viewer settings on exit

	eng = engine.NewViewer()
	loadConfig()

	// Set render callback to handle ImGui initialization and rendering on
	// the main thread
	eng.SetOnRenderCallback(func(deltaTime float64) {
		// Initialize ImGui on first render (when window exists and we're on
		// main thread)
		if !imguiInitialized && eng.GetWindow() != nil {
			initializeImGui()
		}

		// Setup scene once the host is ready
		if imguiInitialized && !sceneSetup && eng.Ready() {
			setupScene()
			sceneSetup = true
		}

		// Control camera input based on ImGui state
		if imguiInitialized {
			io := imgui.CurrentIO()
			wantsKeyboard := io.WantCaptureKeyboard()
			wantsMouse := io.WantCaptureMouse()
			anyItemActive := imgui.IsAnyItemActive()

			eng.EnableCameraInput = !wantsKeyboard && !wantsMouse && !anyItemActive
		}

		// Render ImGui UI
		if imguiInitialized {
			renderImGuiFrame()
		}
	})

	fmt.Println("Starting engine...")
	// Start engine (creates window inside Render())
	eng.Render(50, 50)
}

func initializeImGui() {
	fmt.Println("Initializing ImGui on main thread...")

	window := eng.GetWindow()
	io := imgui.CurrentIO()

	var err error
	platform, err = platforms.NewGLFWFromExistingWindow(window, io)
	if err != nil {
		fmt.Printf("ERROR: Failed to create GLFW platform: %v\n", err)
		return
	}

	// Create OpenGL3 renderer (this creates OpenGL objects, must be on main
	// thread!)
	imguiRenderer, err = renderers.NewOpenGL3(io)
	if err != nil {
		fmt.Printf("ERROR: Failed to create OpenGL3 renderer: %v\n", err)
		return
	}

	imguiInitialized = true
	fmt.Println("ImGui initialized")
}

func renderImGuiFrame() {
	if platform == nil || imguiRenderer == nil {
		return
	}

	platform.NewFrame()
	imgui.NewFrame()

	renderDaylightPanel()

	imgui.Render()
	displaySize := platform.DisplaySize()
	framebufferSize := platform.FramebufferSize()
	imguiRenderer.Render(displaySize, framebufferSize, imgui.RenderedDrawData())
}
