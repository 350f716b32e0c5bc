// Package daylight swaps preset sun/sky lighting rigs in and out of a host
// scene's light container. The host keeps owning the container; this package
// only rewrites its contents and asks for redraws.
package daylight

import (
	"github.com/go-gl/mathgl/mgl32"
)

type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
)

func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	}
	return "unknown"
}

// Preset parameters. The whole simulation is these few numbers.
const (
	BaseSunIntensity     float32 = 3.5
	BaseAmbientIntensity float32 = 0.3
	CloudySunFactor      float32 = 0.3
	CloudyAmbientFactor  float32 = 0.5

	SunOffsetX float32 = 100.0 // +x for morning, -x for afternoon
	SunHeight  float32 = 60.0
	ShadowBias float32 = -0.0005

	HemisphereIntensity float32 = 0.6
)

// State is the discrete lighting state. It is mutated only from UI event
// handlers on the render thread and is never persisted.
type State struct {
	TimeOfDay TimeOfDay
	Cloudy    bool
	Active    bool
}

// DefaultState returns the startup state: morning, clear sky, inactive.
func DefaultState() State {
	return State{TimeOfDay: Morning, Cloudy: false, Active: false}
}

// Params are the light settings derived from a State.
type Params struct {
	SunIntensity     float32
	AmbientIntensity float32
	SunPosition      mgl32.Vec3
	ShadowBias       float32
}

// Derive computes the rig parameters for a state. Pure function so the
// arithmetic is testable without a scene.
func Derive(s State) Params {
	p := Params{
		SunIntensity:     BaseSunIntensity,
		AmbientIntensity: BaseAmbientIntensity,
		ShadowBias:       ShadowBias,
	}

	if s.Cloudy {
		p.SunIntensity *= CloudySunFactor
		p.AmbientIntensity *= CloudyAmbientFactor
	}

	x := SunOffsetX
	if s.TimeOfDay == Afternoon {
		x = -SunOffsetX
	}
	p.SunPosition = mgl32.Vec3{x, SunHeight, 0}

	return p
}
