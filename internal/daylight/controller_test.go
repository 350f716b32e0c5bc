package daylight

import (
	"testing"

	"Terralight/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeHost implements Host with a plain slice so controller behaviour can be
// checked without a window or GL context.
type fakeHost struct {
	lights   []*renderer.Light
	setCalls int
	redraws  int
}

func (f *fakeHost) Lights() []*renderer.Light { return f.lights }
func (f *fakeHost) SetLights(lights []*renderer.Light) {
	f.lights = lights
	f.setCalls++
}
func (f *fakeHost) RequestRedraw() { f.redraws++ }

func hostWithDefaultLight() *fakeHost {
	return &fakeHost{
		lights: []*renderer.Light{
			renderer.CreatePointLight(mgl32.Vec3{0, 500, 0}, mgl32.Vec3{1, 1, 1}, 1.0, 1000),
		},
	}
}

func (f *fakeHost) findMode(mode string) *renderer.Light {
	for _, l := range f.lights {
		if l.Mode == mode {
			return l
		}
	}
	return nil
}

func TestActivateInstallsRig(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.Activate()

	if !c.Active() {
		t.Fatal("Controller should be active after Activate")
	}

	if len(host.lights) != 3 {
		t.Fatalf("Rig should replace host lights with 3 lights, got %d", len(host.lights))
	}

	for _, mode := range []string{"directional", "ambient", "hemisphere"} {
		if host.findMode(mode) == nil {
			t.Errorf("Rig should contain a %s light", mode)
		}
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.Activate()
	setCalls := host.setCalls
	c.Activate()

	if host.setCalls != setCalls {
		t.Error("Second Activate should not touch the container again")
	}

	if len(host.lights) != 3 {
		t.Errorf("Second Activate must not duplicate lights, got %d", len(host.lights))
	}
}

func TestDeactivateRestoresOriginalLights(t *testing.T) {
	host := hostWithDefaultLight()
	original := host.lights[0]
	c := NewController(host)

	c.Activate()
	c.Deactivate()

	if c.Active() {
		t.Error("Controller should be inactive after Deactivate")
	}

	if len(host.lights) != 1 || host.lights[0] != original {
		t.Error("Deactivate should restore exactly the captured original light set")
	}

	if c.sun != nil || c.ambient != nil || c.hemisphere != nil {
		t.Error("Deactivate should clear the rig references")
	}

	if host.redraws == 0 {
		t.Error("Deactivate should request a redraw")
	}
}

func TestDeactivateKeepsCloudySetting(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.SetCloudy(true)
	c.Deactivate()

	if !c.State().Cloudy {
		t.Error("Cloudy flag should survive deactivation")
	}
}

func TestSetTimeOfDayActivatesImplicitly(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.SetTimeOfDay(Afternoon)

	if !c.Active() {
		t.Fatal("SetTimeOfDay on an inactive controller should activate it")
	}

	if host.setCalls != 1 {
		t.Errorf("Implicit activation should install the rig exactly once, got %d installs", host.setCalls)
	}
}

func TestSetCloudyActivatesImplicitly(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.SetCloudy(true)

	if !c.Active() {
		t.Fatal("SetCloudy on an inactive controller should activate it")
	}

	sun := host.findMode("directional")
	if sun == nil {
		t.Fatal("Rig sun missing")
	}
	if !almostEqual(sun.Intensity, 1.05) {
		t.Errorf("Cloudy sun intensity should be 1.05, got %f", sun.Intensity)
	}
}

func TestAfternoonCloudyExample(t *testing.T) {
	// Defaults, then afternoon, then cloudy.
	host := hostWithDefaultLight()
	c := NewController(host)

	c.SetTimeOfDay(Afternoon)
	c.SetCloudy(true)

	sun := host.findMode("directional")
	ambient := host.findMode("ambient")
	if sun == nil || ambient == nil {
		t.Fatal("Rig incomplete")
	}

	if !almostEqual(sun.Intensity, 1.05) {
		t.Errorf("Sun intensity should be 1.05, got %f", sun.Intensity)
	}

	if sun.Position.X() != -100 {
		t.Errorf("Afternoon sun x should be -100, got %f", sun.Position.X())
	}

	if !almostEqual(ambient.Intensity, 0.15) {
		t.Errorf("Ambient intensity should be 0.15, got %f", ambient.Intensity)
	}
}

func TestRecomputeRequestsRedraw(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.Activate()
	redraws := host.redraws
	c.SetCloudy(true)

	if host.redraws <= redraws {
		t.Error("Changing state while active should request a redraw")
	}
}

func TestMissingHostDisablesController(t *testing.T) {
	c := NewController(nil)

	// Every operation must be an inert no-op, not a panic.
	c.Activate()
	c.SetTimeOfDay(Afternoon)
	c.SetCloudy(true)
	c.Deactivate()

	if c.Active() {
		t.Error("Disabled controller should never report active")
	}
}

func TestSunAimedAtScene(t *testing.T) {
	host := hostWithDefaultLight()
	c := NewController(host)

	c.SetTimeOfDay(Morning)

	sun := host.findMode("directional")
	if sun == nil {
		t.Fatal("Rig sun missing")
	}

	// Morning sun sits east at +100 and shines westward/down
	if sun.Direction.X() >= 0 || sun.Direction.Y() >= 0 {
		t.Errorf("Morning sun should shine toward -x and down, got %v", sun.Direction)
	}
}
