package renderer

import (
	"testing"
)

func TestNewModel(t *testing.T) {
	model := NewModel("test")

	if model == nil {
		t.Fatal("NewModel returned nil")
	}

	if model.Material != DefaultMaterial {
		t.Error("New model should start with the shared default material")
	}

	if !model.IsDirty {
		t.Error("New model should be marked dirty")
	}
}

func TestSetDiffuseColorCopiesDefaultMaterial(t *testing.T) {
	a := NewModel("a")
	b := NewModel("b")

	a.SetDiffuseColor(1, 0, 0)

	if a.Material == DefaultMaterial {
		t.Error("SetDiffuseColor should detach the model from the default material")
	}

	if b.Material.DiffuseColor != DefaultMaterial.DiffuseColor {
		t.Error("Changing one model's color must not affect others")
	}
}

func TestBuildInterleavedData(t *testing.T) {
	model := NewModel("quad")
	model.Vertices = []float32{
		0, 0, 0,
		1, 0, 0,
		0, 0, 1,
	}
	model.Normals = []float32{
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
	}
	model.TextureCoords = []float32{
		0, 0,
		1, 0,
		0, 1,
	}

	model.BuildInterleavedData()

	if len(model.InterleavedData) != 3*8 {
		t.Fatalf("Expected stride-8 layout for 3 vertices, got %d floats", len(model.InterleavedData))
	}

	// Second vertex: pos(1,0,0) uv(1,0) normal(0,1,0)
	v := model.InterleavedData[8:16]
	if v[0] != 1 || v[3] != 1 || v[6] != 1 {
		t.Error("Interleaved layout should be pos(3) uv(2) normal(3)")
	}
}

func TestCalculateBoundingSphere(t *testing.T) {
	model := NewModel("tri")
	model.Vertices = []float32{
		-1, 0, 0,
		1, 0, 0,
		0, 0, 0,
	}
	model.SetPosition(10, 0, 0)

	model.CalculateBoundingSphere()

	if model.BoundingSphereRadius <= 0 {
		t.Error("Bounding sphere radius should be positive")
	}

	if model.BoundingSphereCenter.X() != 10 {
		t.Errorf("Bounding sphere should follow model position, got x=%f", model.BoundingSphereCenter.X())
	}
}
