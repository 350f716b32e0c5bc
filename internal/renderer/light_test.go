package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateSunlight(t *testing.T) {
	light := CreateSunlight(mgl32.Vec3{100, 60, 0})

	if light == nil {
		t.Fatal("CreateSunlight returned nil")
	}

	if light.Mode != "directional" {
		t.Errorf("Sunlight mode should be directional, got %s", light.Mode)
	}

	if light.Position != (mgl32.Vec3{100, 60, 0}) {
		t.Error("Sunlight should keep the requested position")
	}

	// Direction points from the position toward the origin
	if light.Direction.X() >= 0 {
		t.Error("Sunlight at +x should shine toward -x")
	}

	if diff := light.Direction.Len() - 1.0; diff > 0.0001 || diff < -0.0001 {
		t.Error("Sunlight direction should be normalized")
	}
}

func TestCreateAmbientLight(t *testing.T) {
	light := CreateAmbientLight(mgl32.Vec3{1, 1, 1}, 0.3)

	if light.Mode != "ambient" {
		t.Errorf("Ambient light mode wrong: %s", light.Mode)
	}

	if light.Intensity != 0.3 {
		t.Errorf("Ambient intensity should be 0.3, got %f", light.Intensity)
	}
}

func TestCreateHemisphereLight(t *testing.T) {
	sky := mgl32.Vec3{0.6, 0.75, 1.0}
	ground := mgl32.Vec3{0.4, 0.35, 0.3}
	light := CreateHemisphereLight(sky, ground, 0.6)

	if light.Mode != "hemisphere" {
		t.Errorf("Hemisphere light mode wrong: %s", light.Mode)
	}

	if light.Color != sky {
		t.Error("Hemisphere sky color not stored")
	}

	if light.GroundColor != ground {
		t.Error("Hemisphere ground color not stored")
	}
}

func TestSetPositionReaimsDirectional(t *testing.T) {
	light := CreateSunlight(mgl32.Vec3{100, 60, 0})

	light.SetPosition(mgl32.Vec3{-100, 60, 0})

	if light.Position != (mgl32.Vec3{-100, 60, 0}) {
		t.Error("SetPosition should move the light")
	}

	if light.Direction.X() <= 0 {
		t.Error("Moving a directional light to -x should re-aim it toward +x")
	}
}

func TestSetPositionLeavesPointDirection(t *testing.T) {
	light := CreatePointLight(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 1, 1}, 1.0, 100)
	before := light.Direction

	light.SetPosition(mgl32.Vec3{5, 5, 5})

	if light.Direction != before {
		t.Error("Point light direction should be untouched by SetPosition")
	}
}
