package parameter

// Score values before the wave multiplier
const (
	ScoreUnusedMissile = 5
	ScoreMissile       = 20
	ScoreCity          = 100
	ScorePlane         = 100
	ScoreSatellite     = 100
	ScoreSmartbomb     = 125
)

// Debriefing cadence, seconds
const (
	DebriefLingerPre  = 2.0
	DebriefCount      = 0.1
	DebriefCityCount  = 0.275
	DebriefLingerPost = 3.0
)

// BriefingDuration is how long the wave multiplier is shown before play
const BriefingDuration = 2.0

// Debriefing tally spacing, pixels
const (
	DebriefSiloSpacing = 5.0
	DebriefCitySpacing = 1.2 * 16
)
