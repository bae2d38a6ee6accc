package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style returns a default style with c as foreground
func (c RGB) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color()).Background(tcell.ColorBlack)
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend mixes src over c by alpha
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RGBGround    = RGB{200, 160, 40}
	RGBCity      = RGB{40, 200, 220}
	RGBRuin      = RGB{110, 90, 60}
	RGBSilo      = RGB{60, 90, 255}
	RGBIncoming  = RGB{255, 40, 40}
	RGBDefense   = RGB{60, 120, 255}
	RGBFlyer     = RGB{230, 230, 230}
	RGBSmartbomb = RGB{255, 60, 255}
	RGBBlast     = RGB{255, 150, 0}
	RGBTarget    = RGB{60, 120, 255}
	RGBHUD       = RGB{255, 60, 60}
	RGBText      = RGB{60, 120, 255}
	RGBStatus    = RGB{120, 120, 120}
)
