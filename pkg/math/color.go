package math

// Color is an RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colours.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

// RGB returns an opaque colour.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// Clamp returns c with every component clamped into [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Lerp interpolates linearly between c and other.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		c.R + t*(other.R-c.R),
		c.G + t*(other.G-c.G),
		c.B + t*(other.B-c.B),
		c.A + t*(other.A-c.A),
	}
}

// Valid reports whether every component lies in [0, 1].
func (c Color) Valid() bool {
	return in01(c.R) && in01(c.G) && in01(c.B) && in01(c.A)
}

func clamp01(v float32) float32 {
	if v < 0 || !isFinite(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func in01(v float32) bool {
	return v >= 0 && v <= 1
}
