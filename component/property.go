package component

import "github.com/lixenwraith/missile-command/core"

// Property tags. Entity kind is implied by the tag combination:
// a missile always carries IsMissile and exactly one of IsIncoming/IsDefense
const (
	IsDead core.Property = iota
	IsMissile
	IsIncoming
	IsDefense
	IsTrail
	IsFlyer
	IsPlane
	IsSatellite
	IsSmartbomb
	IsExplosion
	IsCity
	IsRuin
	IsBattery
	IsSilo
	IsTarget
	IsLingering // Flyer shot down, visible until its lifetime expires
	IsCulled    // Left the container, removed without detonation
	IsCrosshair
	IsDebriefing
)

// PropertyNames maps tags to short names for logs and debug output
var PropertyNames = map[core.Property]string{
	IsDead:       "dead",
	IsMissile:    "missile",
	IsIncoming:   "incoming",
	IsDefense:    "defense",
	IsTrail:      "trail",
	IsFlyer:      "flyer",
	IsPlane:      "plane",
	IsSatellite:  "satellite",
	IsSmartbomb:  "smartbomb",
	IsExplosion:  "explosion",
	IsCity:       "city",
	IsRuin:       "ruin",
	IsBattery:    "battery",
	IsSilo:       "silo",
	IsTarget:     "target",
	IsLingering:  "lingering",
	IsCulled:     "culled",
	IsCrosshair:  "crosshair",
	IsDebriefing: "debriefing",
}
