package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraSetAspectRatio(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetAspectRatio(2.0)

	if cam.Projection == before {
		t.Error("Changing aspect ratio should update the projection matrix")
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.updateCameraVectors()

	frustum := cam.CalculateFrustum()

	// A sphere right in front of the camera must be visible
	if !frustum.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1.0) {
		t.Error("Sphere in front of camera should intersect the frustum")
	}

	// A sphere far behind the camera must not be
	if frustum.IntersectsSphere(mgl32.Vec3{0, 0, 1000}, 1.0) {
		t.Error("Sphere behind camera should not intersect the frustum")
	}
}
