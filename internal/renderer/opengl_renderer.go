package renderer

import (
	"Terralight/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var frustum Frustum
var frustumDirty bool = true

// SetFrustumDirty flags the cached frustum for recalculation on the next frame
func SetFrustumDirty() {
	frustumDirty = true
}

type OpenGLRenderer struct {
	defaultShader        Shader
	uniforms             *UniformCache
	Models               []*Model
	lights               []*Light
	currentShaderProgram uint32
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)
	rend.InitShader()
	logger.Log.Info("OpenGL render initialized")
}

func (rend *OpenGLRenderer) InitShader() {
	rend.defaultShader = InitShader()
	rend.defaultShader.Compile()
	rend.uniforms = NewUniformCache(rend.defaultShader.program)
}

func (rend *OpenGLRenderer) AddModel(model *Model) {
	if len(model.InterleavedData) == 0 {
		model.BuildInterleavedData()
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32((8) * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo

	model.updateModelMatrix()
	model.CalculateBoundingSphere()

	rend.Models = append(rend.Models, model)
}

func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
}

// AddLight appends a light to the scene's light container.
func (rend *OpenGLRenderer) AddLight(light *Light) {
	rend.lights = append(rend.lights, light)
}

func (rend *OpenGLRenderer) RemoveLight(light *Light) {
	for i, l := range rend.lights {
		if l == light {
			rend.lights = append(rend.lights[:i], rend.lights[i+1:]...)
			break
		}
	}
}

// Lights returns the mutable light container. Callers may hold onto the
// returned slice only for the duration of a frame.
func (rend *OpenGLRenderer) Lights() []*Light {
	return rend.lights
}

// SetLights replaces the entire light container.
func (rend *OpenGLRenderer) SetLights(lights []*Light) {
	rend.lights = lights
}

func (rend *OpenGLRenderer) Render(camera Camera) {
	gl.ClearColor(SkyColorR, SkyColorG, SkyColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	viewProjection := camera.GetViewProjection()

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	if FrustumCullingEnabled && frustumDirty {
		frustum = camera.CalculateFrustum()
		frustumDirty = false
	}

	if rend.currentShaderProgram != rend.defaultShader.program {
		rend.defaultShader.Use()
		rend.currentShaderProgram = rend.defaultShader.program
	}

	// Lights are scene-wide, upload once per frame
	rend.uploadLights()
	rend.uniforms.SetVec3("viewPos", camera.Position[0], camera.Position[1], camera.Position[2])
	rend.uniforms.SetMat4("viewProjection", viewProjection)

	modLen := len(rend.Models)
	for i := 0; i < modLen; i++ {
		model := rend.Models[i]

		if FrustumCullingEnabled && !frustum.IntersectsSphere(model.BoundingSphereCenter, model.BoundingSphereRadius) {
			continue
		}

		if model.IsDirty {
			// Recalculate the model matrix only if necessary
			model.calculateModelMatrix()
			model.IsDirty = false
		}

		rend.uniforms.SetMat4("model", model.ModelMatrix)
		rend.setMaterialUniforms(model)

		gl.BindVertexArray(model.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

// uploadLights pushes the light container into the shader's light array
func (rend *OpenGLRenderer) uploadLights() {
	count := len(rend.lights)
	if count > MaxLights {
		count = MaxLights
	}
	rend.uniforms.SetInt("lightCount", int32(count))

	for i := 0; i < count; i++ {
		light := rend.lights[i]
		prefix := fmt.Sprintf("lights[%d].", i)

		mode := shaderLightPoint
		switch light.Mode {
		case "directional":
			mode = shaderLightDirectional
		case "ambient":
			mode = shaderLightAmbient
		case "hemisphere":
			mode = shaderLightHemisphere
		}

		rend.uniforms.SetInt(prefix+"mode", mode)
		rend.uniforms.SetVec3(prefix+"position", light.Position[0], light.Position[1], light.Position[2])
		rend.uniforms.SetVec3(prefix+"direction", light.Direction[0], light.Direction[1], light.Direction[2])
		rend.uniforms.SetVec3(prefix+"color", light.Color[0], light.Color[1], light.Color[2])
		rend.uniforms.SetVec3(prefix+"groundColor", light.GroundColor[0], light.GroundColor[1], light.GroundColor[2])
		rend.uniforms.SetFloat(prefix+"intensity", light.Intensity)
		rend.uniforms.SetFloat(prefix+"constantAtten", light.ConstantAtten)
		rend.uniforms.SetFloat(prefix+"linearAtten", light.LinearAtten)
		rend.uniforms.SetFloat(prefix+"quadraticAtten", light.QuadraticAtten)
	}
}

func (rend *OpenGLRenderer) setMaterialUniforms(model *Model) {
	material := model.Material
	if material == nil {
		material = DefaultMaterial
	}
	rend.uniforms.SetVec3("diffuseColor", material.DiffuseColor[0], material.DiffuseColor[1], material.DiffuseColor[2])
	rend.uniforms.SetVec3("specularColor", material.SpecularColor[0], material.SpecularColor[1], material.SpecularColor[2])
	rend.uniforms.SetFloat("shininess", material.Shininess)
	rend.uniforms.SetFloat("alpha", material.Alpha)
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		gl.DeleteBuffers(1, &model.EBO)
	}
	if rend.defaultShader.program != 0 {
		gl.DeleteProgram(rend.defaultShader.program)
	}
}

func (shader *Shader) Compile() {
	vertexShader := CompileShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragmentShader := CompileShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vertexShader, fragmentShader)
	shader.isCompiled = true
}

func CompileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile shader", zap.String("log", log))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
