package parameter

// Defaults for tunables that config may override
const (
	DefaultIncomingSlots          = 8
	DefaultSmartbombSlots         = 3
	DefaultMaxLaunchesPerFrame    = 4
	DefaultIncomingRequiredHeight = 60.0
	DefaultForkHeightMin          = 81.0
	DefaultForkHeightMax          = 112.0
	DefaultBonusCityScore         = 10000
	DefaultMaxScoreMult           = 6
	DefaultLowAmmoWarnThreshold   = 3
)

// World layout
const (
	CityCount    = 6
	BatteryCount = 3
)

// Well-known entity names
const (
	FlyerName     = "flyer"
	CrosshairName = "crosshair"
)

// Frame pacing of the terminal loop
const (
	TargetFPS = 60

	// MaxFrameDt clamps dt after stalls
	MaxFrameDt = 0.1

	// DemoSeed makes attract mode replay identically
	DemoSeed = 1
)
