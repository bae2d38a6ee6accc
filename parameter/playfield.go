package parameter

import "github.com/lixenwraith/missile-command/vmath"

// Logical play field, y grows downward
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// Screen is the logical play area
var Screen = vmath.Rect{X: 0, Y: 0, W: ScreenWidth, H: ScreenHeight}

// Container is the inflated area threats may roam before being culled
// Flyers enter at x=-16 and leave past the right edge without exploding
var Container = Screen.Inflate(64, 64)

// CrosshairConstraint keeps the aiming reticle above the ground line
var CrosshairConstraint = vmath.Rect{X: 0, Y: 0, W: ScreenWidth, H: ScreenHeight - 40}

// Battery layout
var (
	// PosBatteries holds the launch pad centers, left to right
	PosBatteries = []vmath.Vec2{
		{X: 24, Y: ScreenHeight - 28},
		{X: ScreenWidth / 2, Y: ScreenHeight - 28},
		{X: ScreenWidth - 24, Y: ScreenHeight - 28},
	}

	// BatterySiloOffset moves the silo pyramid below the pad center
	BatterySiloOffset = vmath.Vec2{X: 0, Y: 11}

	// SiloOffsets lays out a 1-2-3-4 pyramid of silos per battery
	SiloOffsets = []vmath.Vec2{
		{X: 0, Y: -2 * siloDY},
		{X: -siloDX / 2, Y: -siloDY}, {X: siloDX / 2, Y: -siloDY},
		{X: -siloDX, Y: 0}, {X: siloDX, Y: 0}, {X: 0, Y: 0},
		{X: -1.5 * siloDX, Y: siloDY}, {X: 1.5 * siloDX, Y: siloDY}, {X: -siloDX / 2, Y: siloDY}, {X: siloDX / 2, Y: siloDY},
	}
)

const (
	siloDX = 8
	siloDY = 3

	// MaxSilosPerBattery bounds the silo list of one battery
	MaxSilosPerBattery = 15
)

// PosCities holds the city centers, left to right
var PosCities = []vmath.Vec2{
	{X: 56, Y: ScreenHeight - 8 - 8 - 6},
	{X: 80, Y: ScreenHeight - 8 - 6 - 6},
	{X: 104, Y: ScreenHeight - 8 - 9 - 6},
	{X: 154, Y: ScreenHeight - 8 - 9 - 6},
	{X: 180, Y: ScreenHeight - 8 - 6 - 6},
	{X: 206, Y: ScreenHeight - 8 - 8 - 6},
}

// Hitbox sizes
const (
	CityHitboxW    = 22
	CityHitboxH    = 12
	BatteryHitboxW = 16
	BatteryHitboxH = 4
)

// HitboxCity returns the hitbox of city slot i
func HitboxCity(i int) vmath.Rect {
	return vmath.RectAt(PosCities[i], CityHitboxW, CityHitboxH)
}

// HitboxBattery returns the hitbox of battery i
func HitboxBattery(i int) vmath.Rect {
	return vmath.RectAt(PosBatteries[i], BatteryHitboxW, BatteryHitboxH)
}

// Debriefing tally rows
var (
	PosMissilesDebriefing = vmath.Vec2{X: ScreenWidth/2 - 15, Y: ScreenHeight / 2}
	PosCitiesDebriefing   = vmath.Vec2{X: ScreenWidth/2 - 15, Y: 2 * ScreenHeight / 3}
)
