package daylight

import (
	"Terralight/internal/logger"
	"Terralight/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Host is the slice of the scene the controller needs: the mutable light
// container and a way to force a redraw. engine.Viewer satisfies it.
type Host interface {
	Lights() []*renderer.Light
	SetLights(lights []*renderer.Light)
	RequestRedraw()
}

// Controller owns the daylight State and the three-light rig, and translates
// discrete UI events into light parameter assignments on the host.
//
// If the host is missing at construction time the controller logs one
// diagnostic and stays inert for its whole lifetime; every operation becomes
// a no-op. There is nothing downstream to propagate an error to.
type Controller struct {
	host  Host
	state State

	sun        *renderer.Light
	ambient    *renderer.Light
	hemisphere *renderer.Light
	original   []*renderer.Light // Host's light set captured at activation

	disabled bool
}

func NewController(host Host) *Controller {
	logger.Init()
	c := &Controller{
		host:  host,
		state: DefaultState(),
	}
	if host == nil {
		logger.Log.Warn("daylight: host scene or light container missing, controller disabled")
		c.disabled = true
	}
	return c
}

// State returns a copy of the current lighting state.
func (c *Controller) State() State {
	return c.state
}

// Active reports whether the rig is currently installed in the host.
func (c *Controller) Active() bool {
	return c.state.Active
}

// Activate installs the rig, replacing the host's lights. The original light
// set is captured for restoration. Activating twice is a no-op.
func (c *Controller) Activate() {
	if c.disabled || c.state.Active {
		return
	}

	// Capture a copy so later host-side mutation can't corrupt the restore set
	hostLights := c.host.Lights()
	c.original = make([]*renderer.Light, len(hostLights))
	copy(c.original, hostLights)

	c.sun = renderer.CreateSunlight(mgl32.Vec3{SunOffsetX, SunHeight, 0})
	c.sun.Name = "daylight sun"
	c.ambient = renderer.CreateAmbientLight(mgl32.Vec3{1, 1, 1}, BaseAmbientIntensity)
	c.ambient.Name = "daylight ambient"
	c.hemisphere = renderer.CreateHemisphereLight(
		mgl32.Vec3{0.6, 0.75, 1.0}, // sky
		mgl32.Vec3{0.4, 0.35, 0.3}, // ground
		HemisphereIntensity,
	)
	c.hemisphere.Name = "daylight hemisphere"

	c.host.SetLights([]*renderer.Light{c.sun, c.ambient, c.hemisphere})
	c.state.Active = true

	logger.Log.Info("daylight: simulation activated",
		zap.String("timeOfDay", c.state.TimeOfDay.String()),
		zap.Bool("cloudy", c.state.Cloudy))

	c.recompute()
}

// Deactivate removes the rig and restores exactly the light set the host had
// when Activate ran. The cloudy and time-of-day settings survive so the next
// activation resumes where the user left off.
func (c *Controller) Deactivate() {
	if c.disabled || !c.state.Active {
		return
	}

	c.host.SetLights(c.original)
	c.original = nil
	c.sun = nil
	c.ambient = nil
	c.hemisphere = nil
	c.state.Active = false

	logger.Log.Info("daylight: simulation deactivated, host lights restored")
	c.host.RequestRedraw()
}

// SetTimeOfDay stores the preset and recomputes the rig, activating it first
// if needed.
func (c *Controller) SetTimeOfDay(t TimeOfDay) {
	if c.disabled {
		return
	}
	c.state.TimeOfDay = t
	if !c.state.Active {
		c.Activate()
		return // Activate already recomputed with the new state
	}
	c.recompute()
}

// SetCloudy stores the overcast flag and recomputes the rig, activating it
// first if needed.
func (c *Controller) SetCloudy(cloudy bool) {
	if c.disabled {
		return
	}
	c.state.Cloudy = cloudy
	if !c.state.Active {
		c.Activate()
		return
	}
	c.recompute()
}

// recompute applies Derive(state) to the rig and asks the host to redraw.
func (c *Controller) recompute() {
	if c.disabled || !c.state.Active {
		return
	}

	p := Derive(c.state)

	c.sun.Intensity = p.SunIntensity
	c.sun.SetPosition(p.SunPosition)
	c.sun.ShadowBias = p.ShadowBias
	c.ambient.Intensity = p.AmbientIntensity

	c.host.RequestRedraw()
}
