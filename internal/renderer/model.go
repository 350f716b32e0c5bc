package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Alpha:         1.0,
}

type Material struct {
	DiffuseColor  [3]float32 // Base color for lighting
	SpecularColor [3]float32 // Specular highlight color
	Shininess     float32    // Specular exponent
	Alpha         float32    // Transparency (0.0 = transparent, 1.0 = opaque)
	Name          string
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
	Material    *Material
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IsDirty     bool

	// MEDIUM DATA - Conditional access
	BoundingSphereCenter mgl32.Vec3 // For frustum culling
	BoundingSphereRadius float32

	// COLD DATA - Initialization only
	Id              int
	Name            string
	Vertices        []float32
	Normals         []float32
	TextureCoords   []float32
	Faces           []int32
	InterleavedData []float32
}

func NewModel(name string) *Model {
	return &Model{
		Name:     name,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
		Material: DefaultMaterial,
		IsDirty:  true,
	}
}

func (m *Model) X() float32 {
	return m.Position[0]
}

func (m *Model) Y() float32 {
	return m.Position[1]
}

func (m *Model) Z() float32 {
	return m.Position[2]
}

func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.IsDirty = true
}

func (m *Model) SetDiffuseColor(r, g, b float32) {
	m.ensureOwnMaterial()
	m.Material.DiffuseColor = [3]float32{r, g, b}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureOwnMaterial()
	m.Material.SpecularColor = [3]float32{r, g, b}
}

// ensureOwnMaterial copies the shared default material before mutation so
// color changes never bleed between models.
func (m *Model) ensureOwnMaterial() {
	if m.Material == nil || m.Material == DefaultMaterial {
		mat := *DefaultMaterial
		m.Material = &mat
	}
}

func (m *Model) calculateModelMatrix() {
	translation := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z())
	rotation := m.Rotation.Mat4()
	scale := mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())
	m.ModelMatrix = translation.Mul4(rotation).Mul4(scale)
}

func (m *Model) updateModelMatrix() {
	m.calculateModelMatrix()
}

// CalculateBoundingSphere computes a world-space bounding sphere from the
// vertex data. Required for frustum culling.
func (m *Model) CalculateBoundingSphere() {
	if len(m.Vertices) < 3 {
		return
	}

	var center mgl32.Vec3
	vertexCount := len(m.Vertices) / 3
	for i := 0; i < len(m.Vertices); i += 3 {
		center = center.Add(mgl32.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]})
	}
	center = center.Mul(1.0 / float32(vertexCount))

	var radius float32
	for i := 0; i < len(m.Vertices); i += 3 {
		v := mgl32.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]}
		dist := v.Sub(center).Len()
		if dist > radius {
			radius = dist
		}
	}

	maxScale := float32(math.Max(float64(m.Scale.X()), math.Max(float64(m.Scale.Y()), float64(m.Scale.Z()))))
	m.BoundingSphereCenter = center.Add(m.Position)
	m.BoundingSphereRadius = radius * maxScale
}

// BuildInterleavedData packs position, texcoord and normal streams into the
// layout the default shader expects: pos(3) uv(2) normal(3), stride 8.
func (m *Model) BuildInterleavedData() {
	vertexCount := len(m.Vertices) / 3
	m.InterleavedData = make([]float32, 0, vertexCount*8)
	for i := 0; i < vertexCount; i++ {
		m.InterleavedData = append(m.InterleavedData,
			m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2])
		if len(m.TextureCoords) >= (i+1)*2 {
			m.InterleavedData = append(m.InterleavedData, m.TextureCoords[i*2], m.TextureCoords[i*2+1])
		} else {
			m.InterleavedData = append(m.InterleavedData, 0, 0)
		}
		if len(m.Normals) >= (i+1)*3 {
			m.InterleavedData = append(m.InterleavedData,
				m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2])
		} else {
			m.InterleavedData = append(m.InterleavedData, 0, 1, 0)
		}
	}
}
