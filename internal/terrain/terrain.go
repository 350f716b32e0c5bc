// Package terrain builds the heightmap mesh the daylight presets are
// demonstrated on.
package terrain

import (
	"math"

	"Terralight/internal/renderer"

	perlin "github.com/aquilax/go-perlin"
)

type Config struct {
	Size        int     // Grid cells per side
	CellSize    float32 // World units per cell
	HeightScale float32 // Peak amplitude
	NoiseScale  float64 // Sample spacing in noise space
	Alpha       float64 // Perlin smoothness
	Beta        float64 // Perlin frequency multiplier
	Octaves     int32
	Seed        int64
}

func DefaultConfig() Config {
	return Config{
		Size:        128,
		CellSize:    4.0,
		HeightScale: 45.0,
		NoiseScale:  0.02,
		Alpha:       2.0,
		Beta:        2.0,
		Octaves:     3,
		Seed:        1337,
	}
}

// Generate builds a terrain model centered on the origin. The same config
// always yields the same mesh.
func Generate(cfg Config) *renderer.Model {
	noise := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, cfg.Seed)

	gridSize := cfg.Size + 1
	heights := make([]float32, gridSize*gridSize)
	for z := 0; z < gridSize; z++ {
		for x := 0; x < gridSize; x++ {
			h := noise.Noise2D(float64(x)*cfg.NoiseScale, float64(z)*cfg.NoiseScale)
			heights[z*gridSize+x] = float32(h) * cfg.HeightScale
		}
	}

	model := renderer.NewModel("terrain")
	half := float32(cfg.Size) * cfg.CellSize / 2

	model.Vertices = make([]float32, 0, gridSize*gridSize*3)
	model.TextureCoords = make([]float32, 0, gridSize*gridSize*2)
	model.Normals = make([]float32, 0, gridSize*gridSize*3)

	for z := 0; z < gridSize; z++ {
		for x := 0; x < gridSize; x++ {
			model.Vertices = append(model.Vertices,
				float32(x)*cfg.CellSize-half,
				heights[z*gridSize+x],
				float32(z)*cfg.CellSize-half)
			model.TextureCoords = append(model.TextureCoords,
				float32(x)/float32(cfg.Size),
				float32(z)/float32(cfg.Size))

			nx, ny, nz := normalAt(heights, gridSize, x, z, cfg.CellSize)
			model.Normals = append(model.Normals, nx, ny, nz)
		}
	}

	model.Faces = make([]int32, 0, cfg.Size*cfg.Size*6)
	for z := 0; z < cfg.Size; z++ {
		for x := 0; x < cfg.Size; x++ {
			topLeft := int32(z*gridSize + x)
			topRight := topLeft + 1
			bottomLeft := int32((z+1)*gridSize + x)
			bottomRight := bottomLeft + 1

			model.Faces = append(model.Faces,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight)
		}
	}

	model.BuildInterleavedData()
	model.SetDiffuseColor(0.35, 0.52, 0.28)
	model.SetSpecularColor(0.1, 0.1, 0.1)

	return model
}

// normalAt estimates the surface normal from central height differences.
func normalAt(heights []float32, gridSize, x, z int, cellSize float32) (float32, float32, float32) {
	left := sample(heights, gridSize, x-1, z)
	right := sample(heights, gridSize, x+1, z)
	down := sample(heights, gridSize, x, z-1)
	up := sample(heights, gridSize, x, z+1)

	nx := left - right
	nz := down - up
	ny := 2 * cellSize

	length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	return nx / length, ny / length, nz / length
}

func sample(heights []float32, gridSize, x, z int) float32 {
	if x < 0 {
		x = 0
	}
	if x >= gridSize {
		x = gridSize - 1
	}
	if z < 0 {
		z = 0
	}
	if z >= gridSize {
		z = gridSize - 1
	}
	return heights[z*gridSize+x]
}
