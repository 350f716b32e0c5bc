package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType int

const (
	STATIC_LIGHT LightType = iota
	DYNAMIC_LIGHT
)

type Light struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3 // Directional lights only
	Color       mgl32.Vec3 // Hemisphere lights use this as the sky color
	GroundColor mgl32.Vec3 // Hemisphere lights only

	Intensity       float32
	AmbientStrength float32
	ShadowBias      float32

	Type LightType // "static", "dynamic"
	Mode string    // "directional", "ambient", "hemisphere", "point"
	Name string

	// Point light attenuation
	ConstantAtten  float32
	LinearAtten    float32
	QuadraticAtten float32
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 1500.0, 0.0},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		Mode:            "point",
		AmbientStrength: 0.1,
		Direction:       mgl32.Vec3{0, -1, 0},
		// Gentle falloff, suitable for large outdoor scenes
		ConstantAtten:  1.0,
		LinearAtten:    0.0001,
		QuadraticAtten: 0.0000001,
	}
}

// CreateDirectionalLight creates a directional light (like the sun)
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "directional"
	light.Direction = direction.Normalize()
	light.Color = color
	light.Intensity = intensity
	light.AmbientStrength = 0.15
	return light
}

// CreateSunlight creates a directional sun placed at the given position and
// aimed at the scene origin.
func CreateSunlight(position mgl32.Vec3) *Light {
	light := CreateDirectionalLight(position.Mul(-1).Normalize(), mgl32.Vec3{1.0, 0.95, 0.8}, 1.2)
	light.Position = position
	light.AmbientStrength = 0.2
	return light
}

// CreateAmbientLight creates an orientation-free fill light.
func CreateAmbientLight(color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "ambient"
	light.Color = color
	light.Intensity = intensity
	return light
}

// CreateHemisphereLight creates a sky/ground gradient light. Surfaces facing
// up receive the sky color, surfaces facing down the ground color.
func CreateHemisphereLight(sky mgl32.Vec3, ground mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "hemisphere"
	light.Position = mgl32.Vec3{0, 50, 0}
	light.Color = sky
	light.GroundColor = ground
	light.Intensity = intensity
	return light
}

// CreatePointLight creates a point light with attenuation derived from the
// desired range.
func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32, range_ float32) *Light {
	light := CreateLight()
	light.Mode = "point"
	light.Position = position
	light.Color = color
	light.Intensity = intensity

	// At range distance the light falls to roughly 1% intensity
	light.ConstantAtten = 1.0
	light.LinearAtten = 2.0 / range_
	light.QuadraticAtten = 1.0 / (range_ * range_)

	return light
}

// SetPosition moves the light. Directional lights are re-aimed at the scene
// origin so moving the sun changes where shadows fall.
func (l *Light) SetPosition(position mgl32.Vec3) {
	l.Position = position
	if l.Mode == "directional" && position.Len() > 0 {
		l.Direction = position.Mul(-1).Normalize()
	}
}
