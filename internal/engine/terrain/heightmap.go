package terrain

import (
	gomath "math"
)

// GenOptions configures island generation.
type GenOptions struct {
	Tessellation int     // cells per side
	Extent       float32 // half width of the generated square
	Radius       float32 // land fades out at this distance from the center
	Peak         float32 // height of the highest possible point
	Floor        float32 // height of the sea bed at the edges
	Octaves      int
	Frequency    float32 // base noise lattice cells per world unit
	Seed         int64
}

// DefaultGenOptions returns the options of the stock island.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Tessellation: 48,
		Extent:       0.45,
		Radius:       0.4,
		Peak:         0.18,
		Floor:        -0.05,
		Octaves:      4,
		Frequency:    6,
		Seed:         1,
	}
}

// Generate builds an island heightmap from fractal value noise shaped by a
// radial falloff, so the center rises and the border sinks to Floor.
func Generate(opts GenOptions) *Heightmap {
	n := max(opts.Tessellation, 1)
	size := n + 1
	hm := &Heightmap{
		Heights: make([]float32, size*size),
		Size:    size,
		Extent:  opts.Extent,
		Floor:   opts.Floor,
	}
	for row := range size {
		z := hm.coord(row)
		for col := range size {
			x := hm.coord(col)
			hm.Heights[row*size+col] = islandHeight(opts, x, z)
		}
	}
	return hm
}

func islandHeight(opts GenOptions, x, z float32) float32 {
	dist := float32(gomath.Hypot(float64(x), float64(z)))
	falloff := float32(1)
	if opts.Radius > 0 {
		falloff = smoothstep(clampf(1-dist/opts.Radius, 0, 1))
	}
	noise := fbm(opts.Seed, x*opts.Frequency, z*opts.Frequency, max(opts.Octaves, 1))
	land := opts.Peak * falloff * (0.55 + 0.45*noise)
	return opts.Floor + (land-opts.Floor)*falloff
}

// coord maps a sample index to world space.
func (h *Heightmap) coord(i int) float32 {
	if i == h.Size-1 {
		return h.Extent
	}
	return -h.Extent + 2*h.Extent*float32(i)/float32(h.Size-1)
}

// At returns the sample at (row, col).
func (h *Heightmap) At(row, col int) float32 {
	return h.Heights[row*h.Size+col]
}

// HeightAt returns the bilinearly interpolated height at a world position.
// Positions outside the grid return Floor.
func (h *Heightmap) HeightAt(x, z float32) float32 {
	if h.Size < 2 || x < -h.Extent || x > h.Extent || z < -h.Extent || z > h.Extent {
		return h.Floor
	}

	cells := float32(h.Size - 1)
	fx := (x + h.Extent) / (2 * h.Extent) * cells
	fz := (z + h.Extent) / (2 * h.Extent) * cells
	col := min(int(fx), h.Size-2)
	row := min(int(fz), h.Size-2)

	fracX := clampf(fx-float32(col), 0, 1)
	fracZ := clampf(fz-float32(row), 0, 1)

	south := h.At(row, col)*(1-fracX) + h.At(row, col+1)*fracX
	north := h.At(row+1, col)*(1-fracX) + h.At(row+1, col+1)*fracX
	return south*(1-fracZ) + north*fracZ
}

// MaxHeight returns the highest sample.
func (h *Heightmap) MaxHeight() float32 {
	top := h.Floor
	for _, v := range h.Heights {
		top = max(top, v)
	}
	return top
}

// fbm sums octaves of value noise into [0, 1].
func fbm(seed int64, x, z float32, octaves int) float32 {
	var sum, norm float32
	amp := float32(1)
	for o := range octaves {
		sum += amp * valueNoise(seed+int64(o)*1013, x, z)
		norm += amp
		amp *= 0.5
		x *= 2
		z *= 2
	}
	return sum / norm
}

// valueNoise interpolates lattice values with a smoothstep curve.
func valueNoise(seed int64, x, z float32) float32 {
	x0 := int64(gomath.Floor(float64(x)))
	z0 := int64(gomath.Floor(float64(z)))
	tx := smoothstep(x - float32(x0))
	tz := smoothstep(z - float32(z0))

	a := lattice(seed, x0, z0)
	b := lattice(seed, x0+1, z0)
	c := lattice(seed, x0, z0+1)
	d := lattice(seed, x0+1, z0+1)

	top := a + (b-a)*tx
	bottom := c + (d-c)*tx
	return top + (bottom-top)*tz
}

// lattice hashes a lattice point to [0, 1].
func lattice(seed, x, z int64) float32 {
	h := uint64(seed)*0x9E3779B97F4A7C15 ^ uint64(x)*0xBF58476D1CE4E5B9 ^ uint64(z)*0x94D049BB133111EB
	h ^= h >> 31
	h *= 0xD6E8FEB86659FD93
	h ^= h >> 32
	return float32(h>>40) / float32(1<<24)
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
