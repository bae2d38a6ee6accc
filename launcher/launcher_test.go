package launcher

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/vmath"
	"github.com/lixenwraith/missile-command/wave"
)

type countingSound struct {
	engine.NopSound
	played map[string]int
}

func (s *countingSound) Play(name string, loops int) component.SoundHandle {
	s.played[name]++
	return s.NopSound.Play(name, loops)
}

func newTestLauncher() (*Launcher, *countingSound) {
	snd := &countingSound{played: make(map[string]int)}
	return New(engine.NewWorld(), rand.New(rand.NewSource(1)), snd), snd
}

func TestBatteryCreatesSilos(t *testing.T) {
	l, _ := newTestLauncher()

	silos := l.Battery(1)
	if len(silos) != len(parameter.SiloOffsets) {
		t.Fatalf("Expected %d silos, got %d", len(parameter.SiloOffsets), len(silos))
	}
	for _, s := range silos {
		slot := l.World.Slot.MustGet(s)
		if slot.Battery != 1 {
			t.Errorf("Expected silo of battery 1, got %d", slot.Battery)
		}
	}
	if n := l.World.CountWith(component.IsBattery); n != 1 {
		t.Errorf("Expected 1 battery, got %d", n)
	}
}

func TestMissileMomentumAndTrail(t *testing.T) {
	l, _ := newTestLauncher()

	start, dest := vmath.V2(0, 0), vmath.V2(30, 40)
	m := l.Missile(start, dest, 10, true, nil)

	w := l.World
	if v := w.Momentum.MustGet(m).Velocity; v.Dist(vmath.V2(6, 8)) > 1e-9 {
		t.Errorf("Expected momentum (6,8), got %v", v)
	}
	if !w.HasProperty(m, component.IsIncoming) || w.HasProperty(m, component.IsDefense) {
		t.Error("Expected incoming missile tags")
	}
	tr := w.Trail.MustGet(m)
	if len(tr.Segments) != 1 || tr.Head() != start || tr.Tail() != start {
		t.Errorf("Expected trail seeded at start, got %v", tr.Segments)
	}
}

func TestMissileDegenerateAim(t *testing.T) {
	l, _ := newTestLauncher()

	p := vmath.V2(10, 10)
	m := l.Missile(p, p, 100, false, nil)
	if v := l.World.Momentum.MustGet(m).Velocity; !v.IsZero() {
		t.Errorf("Expected zero momentum, got %v", v)
	}
}

func TestExplosionPlaysSound(t *testing.T) {
	l, snd := newTestLauncher()

	e := l.Explosion(vmath.V2(5, 5))
	if s := l.World.PRSA.MustGet(e).Scale; s != parameter.ExplosionScaleMin {
		t.Errorf("Expected initial scale %v, got %v", parameter.ExplosionScaleMin, s)
	}
	if snd.played[engine.SoundExplosion] != 1 {
		t.Errorf("Expected explosion sound, got %v", snd.played)
	}
}

func TestFlyerIsUnique(t *testing.T) {
	l, snd := newTestLauncher()
	row := wave.FlyerRow{MinHeight: 92, MaxHeight: 45, Cooldown: 5, ShootCooldown: 1}

	f, err := l.Flyer(row)
	if err != nil {
		t.Fatalf("Flyer: %v", err)
	}
	y := l.World.PRSA.MustGet(f).Pos.Y
	if y < 45 || y > 92 {
		t.Errorf("Expected height in [45,92], got %v", y)
	}
	if snd.played[engine.SoundFlyer] != 1 {
		t.Error("Expected flyer sound loop")
	}

	if _, err := l.Flyer(row); !errors.Is(err, engine.ErrDuplicateEntity) {
		t.Errorf("Expected ErrDuplicateEntity, got %v", err)
	}
	t.Logf("✓ Only one flyer at a time")
}

func TestCityAndRuinShareSlot(t *testing.T) {
	l, _ := newTestLauncher()

	c := l.City(3)
	r := l.Ruin(3)
	w := l.World
	if w.Slot.MustGet(c).ID != w.Slot.MustGet(r).ID {
		t.Error("Expected same slot id")
	}
	if w.Hitbox.MustGet(r).Rect != parameter.HitboxCity(3) {
		t.Error("Expected ruin hitbox at the city slot")
	}
}
