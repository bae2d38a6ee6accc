package timer

import (
	"math"
	"testing"
)

func TestCooldownColdAfterDuration(t *testing.T) {
	cd := NewCooldown(0.5)
	if cd.Cold() {
		t.Fatal("Expected fresh cooldown to be hot")
	}

	cd.Tick(0.25)
	if cd.Cold() {
		t.Error("Expected cooldown to stay hot at half duration")
	}
	if math.Abs(cd.Remaining()-0.25) > 1e-12 {
		t.Errorf("Expected 0.25 remaining, got %f", cd.Remaining())
	}

	cd.Tick(0.25)
	if !cd.Cold() {
		t.Error("Expected cooldown to be cold at full duration")
	}

	cd.Reset()
	if cd.Cold() {
		t.Error("Expected reset cooldown to be hot")
	}

	cd.ResetTo(0)
	if !cd.Cold() {
		t.Error("Expected zero-duration cooldown to be cold")
	}
}

func TestLerpBounceStages(t *testing.T) {
	l := NewLerp(0.1, 1, 0.5, RepeatBounce, 2)

	var prev float64 = l.Value()
	if prev != 0.1 {
		t.Fatalf("Expected start value 0.1, got %f", prev)
	}

	// Growing stage: monotonic non-decreasing, loop 0
	for i := 0; i < 9; i++ {
		l.Tick(0.05)
		if l.Loop() != 0 {
			t.Fatalf("Expected loop 0 during growth, got %d", l.Loop())
		}
		v := l.Value()
		if v < prev {
			t.Errorf("Expected growth, got %f after %f", v, prev)
		}
		prev = v
	}

	// Shrinking stage: monotonic non-increasing, loop 1
	l.Tick(0.05)
	prev = l.Value()
	for i := 0; i < 9; i++ {
		l.Tick(0.05)
		if l.Loop() != 1 {
			t.Fatalf("Expected loop 1 during shrink, got %d", l.Loop())
		}
		v := l.Value()
		if v > prev {
			t.Errorf("Expected shrink, got %f after %f", v, prev)
		}
		prev = v
	}

	l.Tick(0.1)
	if !l.Finished() {
		t.Error("Expected curve to finish after two loops")
	}
	if math.Abs(l.Value()-0.1) > 1e-12 {
		t.Errorf("Expected finished bounce to rest at 0.1, got %f", l.Value())
	}
}

func TestLerpNoRepeat(t *testing.T) {
	l := NewLerp(0, 10, 1, RepeatNone, 0)
	l.Tick(0.5)
	if math.Abs(l.Value()-5) > 1e-12 {
		t.Errorf("Expected 5, got %f", l.Value())
	}
	l.Tick(1)
	if !l.Finished() || l.Value() != 10 {
		t.Errorf("Expected finished at 10, got %f", l.Value())
	}
}
