package wave

import "github.com/lixenwraith/missile-command/parameter"

// The arcade tables store frame delays; speeds here are 60/delay pixels per second
func speed(delay float64) float64 {
	return 60 / delay
}

// DefaultWaves is the arcade wave progression
var DefaultWaves = []Row{
	{12, speed(4.8125), 0},
	{15, speed(2.875), 0},
	{18, speed(1.75), 0},
	{12, speed(1.03), 0},
	{16, speed(0.625), 0},
	{14, speed(0.375), 1},
	{17, speed(0.25), 1},
	{10, speed(0.125), 2},
	{13, speed(0.0625), 3},
	{16, speed(0.04), 4},
	{19, speed(0.02), 4},
	{12, speed(0.016), 5},
	{14, speed(0.008), 5},
	{16, speed(0.004), 6},
	{18, 60, 6},
	{14, 60, 7},
	{17, 60, 7},
	{19, 60, 7},
	{22, 60, 7},
}

const h = parameter.ScreenHeight

// DefaultFlyers is the arcade flyer progression, cooldowns in seconds
var DefaultFlyers = []FlyerRow{
	{0, 0, 0, 0},
	{h - 148, h - 195, 240.0 / 60, 128.0 / 60},
	{h - 148, h - 195, 160.0 / 60, 96.0 / 60},
	{h - 132, h - 163, 128.0 / 60, 64.0 / 60},
	{h - 132, h - 163, 128.0 / 60, 48.0 / 60},
	{h - 100, h - 131, 96.0 / 60, 32.0 / 60},
	{h - 100, h - 131, 64.0 / 60, 32.0 / 60},
	{h - 100, h - 131, 32.0 / 60, 16.0 / 60},
}
