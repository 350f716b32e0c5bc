package terrain

import (
	"math"
	"testing"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 8
	return cfg
}

func TestGenerateMeshCounts(t *testing.T) {
	cfg := smallConfig()
	model := Generate(cfg)

	gridSize := cfg.Size + 1
	wantVerts := gridSize * gridSize * 3
	if len(model.Vertices) != wantVerts {
		t.Errorf("Expected %d vertex floats, got %d", wantVerts, len(model.Vertices))
	}

	wantFaces := cfg.Size * cfg.Size * 6
	if len(model.Faces) != wantFaces {
		t.Errorf("Expected %d indices, got %d", wantFaces, len(model.Faces))
	}

	if len(model.InterleavedData) != gridSize*gridSize*8 {
		t.Error("Generate should produce interleaved data ready for upload")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(smallConfig())
	b := Generate(smallConfig())

	if len(a.Vertices) != len(b.Vertices) {
		t.Fatal("Same config should give same vertex count")
	}

	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("Vertex %d differs between identical configs", i)
		}
	}
}

func TestGenerateSeedChangesTerrain(t *testing.T) {
	cfg := smallConfig()
	a := Generate(cfg)
	cfg.Seed = 99
	b := Generate(cfg)

	same := true
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			same = false
			break
		}
	}

	if same {
		t.Error("Different seeds should produce different terrain")
	}
}

func TestGenerateNormalsAreUnitLength(t *testing.T) {
	model := Generate(smallConfig())

	for i := 0; i < len(model.Normals); i += 3 {
		length := math.Sqrt(float64(model.Normals[i]*model.Normals[i] +
			model.Normals[i+1]*model.Normals[i+1] +
			model.Normals[i+2]*model.Normals[i+2]))
		if math.Abs(length-1.0) > 0.001 {
			t.Fatalf("Normal %d has length %f", i/3, length)
		}
	}
}

func TestGenerateHeightsWithinScale(t *testing.T) {
	cfg := smallConfig()
	model := Generate(cfg)

	for i := 1; i < len(model.Vertices); i += 3 {
		h := model.Vertices[i]
		if h > cfg.HeightScale || h < -cfg.HeightScale {
			t.Fatalf("Height %f exceeds scale %f", h, cfg.HeightScale)
		}
	}
}
