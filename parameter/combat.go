package parameter

// Missiles
const (
	// MissileSpawnY is the launch height of incoming missiles, just off screen
	MissileSpawnY = -3

	// SiloDestructionLifetime is how long silos of a hit battery stay visible
	SiloDestructionLifetime = 0.3
)

// MissileSpeeds holds the defense missile speed per launch pad, pixels per second
var MissileSpeeds = []float64{136, 272, 136}

// Explosions
const (
	// ExplosionDuration is the length of one growth or shrink stage, seconds
	ExplosionDuration = 0.5

	// ExplosionScaleMin and ExplosionScaleMax bound the explosion curve
	ExplosionScaleMin = 0.1
	ExplosionScaleMax = 1.0

	// ExplosionMaskWidth is the unscaled explosion sprite width
	// Kill radius is ExplosionMaskWidth/2 * scale
	ExplosionMaskWidth = 32
)

// Flyers
const (
	PlaneSpeed     = 20
	SatelliteSpeed = 30

	// FlyerEntryX is where flyers appear, left of the screen
	FlyerEntryX = -16

	// FlyerLinger is how long a shot-down flyer stays visible
	FlyerLinger = 1.0

	PlaneMaskW     = 16
	PlaneMaskH     = 8
	SatelliteMaskW = 12
	SatelliteMaskH = 12
)

// Smart bombs
const (
	// SmartbombLethalFactor shrinks the explosion radius to the smart bomb kill radius
	SmartbombLethalFactor = 0.5

	// SmartbombDangerMargin extends the explosion radius to the evasion trigger radius
	SmartbombDangerMargin = 16.0

	// SmartbombCloseMargin is the distance past the kill radius where evasion turns radial
	SmartbombCloseMargin = 4.0

	// SmartbombDodge is the length of one evasive displacement, pixels
	SmartbombDodge = 6.0

	// SmartbombSlotCost is the number of incoming slots one smart bomb reserves
	SmartbombSlotCost = 2
)
