package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/wave"
)

var (
	ErrEmptyWaveTable  = errors.New("config: wave table is empty")
	ErrEmptyFlyerTable = errors.New("config: flyer table is empty")
	ErrInvalidValue    = errors.New("config: invalid value")
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Waves   []WaveConfig  `toml:"waves"`
	Flyers  []FlyerConfig `toml:"flyers"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	Paths   PathsConfig   `toml:"paths"`
}

type GameConfig struct {
	IncomingSlots          int     `toml:"incoming_slots"`
	SmartbombSlots         int     `toml:"smartbomb_slots"`
	MaxLaunchesPerFrame    int     `toml:"max_launches_per_frame"`
	IncomingRequiredHeight float64 `toml:"incoming_required_height"` // y a missile must pass before the next batch
	ForkHeightMin          float64 `toml:"fork_height_min"`          // exclusive
	ForkHeightMax          float64 `toml:"fork_height_max"`          // exclusive
	BonusCityScore         int     `toml:"bonus_city_score"`
	MaxScoreMult           int     `toml:"max_score_mult"`
	LowAmmoWarnThreshold   int     `toml:"low_ammo_warn_threshold"`
	Seed                   int64   `toml:"seed"` // 0 = time based
}

type WaveConfig struct {
	Missiles   int     `toml:"missiles"`
	Speed      float64 `toml:"speed"` // pixels per second
	Smartbombs int     `toml:"smartbombs"`
}

type FlyerConfig struct {
	MinHeight     float64 `toml:"min_height"`
	MaxHeight     float64 `toml:"max_height"`
	Cooldown      float64 `toml:"cooldown"`       // 0 disables flyers
	ShootCooldown float64 `toml:"shoot_cooldown"` // seconds
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console, json
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // gain in beep/effects.Volume steps, 0 = unchanged
}

type PathsConfig struct {
	HighscoreFile string `toml:"highscore_file"`
	DemoFile      string `toml:"demo_file"`
	LogDir        string `toml:"log_dir"`
}

// Load reads the TOML file at path over the defaults
// An empty path returns the validated defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the arcade configuration
func Default() *Config {
	cfg := &Config{
		Game: GameConfig{
			IncomingSlots:          parameter.DefaultIncomingSlots,
			SmartbombSlots:         parameter.DefaultSmartbombSlots,
			MaxLaunchesPerFrame:    parameter.DefaultMaxLaunchesPerFrame,
			IncomingRequiredHeight: parameter.DefaultIncomingRequiredHeight,
			ForkHeightMin:          parameter.DefaultForkHeightMin,
			ForkHeightMax:          parameter.DefaultForkHeightMax,
			BonusCityScore:         parameter.DefaultBonusCityScore,
			MaxScoreMult:           parameter.DefaultMaxScoreMult,
			LowAmmoWarnThreshold:   parameter.DefaultLowAmmoWarnThreshold,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Paths: PathsConfig{
			HighscoreFile: "missile-command-highscores.json",
			DemoFile:      "assets/demo.in",
			LogDir:        "logs",
		},
	}

	for _, w := range wave.DefaultWaves {
		cfg.Waves = append(cfg.Waves, WaveConfig{Missiles: w.Missiles, Speed: w.MissileSpeed, Smartbombs: w.Smartbombs})
	}
	for _, f := range wave.DefaultFlyers {
		cfg.Flyers = append(cfg.Flyers, FlyerConfig(f))
	}
	return cfg
}

// Validate rejects configurations the game cannot start with
func (c *Config) Validate() error {
	if len(c.Waves) == 0 {
		return ErrEmptyWaveTable
	}
	if len(c.Flyers) == 0 {
		return ErrEmptyFlyerTable
	}

	g := c.Game
	switch {
	case g.IncomingSlots <= 0:
		return fmt.Errorf("%w: incoming_slots must be positive, got %d", ErrInvalidValue, g.IncomingSlots)
	case g.SmartbombSlots < 0:
		return fmt.Errorf("%w: smartbomb_slots must not be negative, got %d", ErrInvalidValue, g.SmartbombSlots)
	case g.MaxLaunchesPerFrame <= 0:
		return fmt.Errorf("%w: max_launches_per_frame must be positive, got %d", ErrInvalidValue, g.MaxLaunchesPerFrame)
	case g.ForkHeightMin >= g.ForkHeightMax:
		return fmt.Errorf("%w: fork_height_min %.1f must be below fork_height_max %.1f", ErrInvalidValue, g.ForkHeightMin, g.ForkHeightMax)
	case g.MaxScoreMult <= 0:
		return fmt.Errorf("%w: max_score_mult must be positive, got %d", ErrInvalidValue, g.MaxScoreMult)
	}

	for i, w := range c.Waves {
		if w.Missiles < 0 || w.Smartbombs < 0 || w.Speed <= 0 {
			return fmt.Errorf("%w: wave %d has missiles=%d speed=%.2f smartbombs=%d", ErrInvalidValue, i, w.Missiles, w.Speed, w.Smartbombs)
		}
	}
	return nil
}

// WaveTable converts the wave rows for the iterator
func (c *Config) WaveTable() []wave.Row {
	rows := make([]wave.Row, len(c.Waves))
	for i, w := range c.Waves {
		rows[i] = wave.Row{Missiles: w.Missiles, MissileSpeed: w.Speed, Smartbombs: w.Smartbombs}
	}
	return rows
}

// FlyerTable converts the flyer rows for the iterator
func (c *Config) FlyerTable() []wave.FlyerRow {
	rows := make([]wave.FlyerRow, len(c.Flyers))
	for i, f := range c.Flyers {
		rows[i] = wave.FlyerRow(f)
	}
	return rows
}
