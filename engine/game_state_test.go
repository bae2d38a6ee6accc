package engine

import (
	"testing"

	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/event"
)

func TestAwardAppliesMultiplier(t *testing.T) {
	gs := NewGameState(6, 3, 10000, nil)
	gs.ScoreMult = 3

	if got := gs.Award(20); got != 60 {
		t.Errorf("Expected 60 points, got %d", got)
	}
	if gs.Score != 60 {
		t.Errorf("Expected score 60, got %d", gs.Score)
	}
}

func TestAddScoreGrantsBonusCities(t *testing.T) {
	q := event.NewQueue()
	gs := NewGameState(6, 3, 10000, q)
	gs.Score = 9950

	if granted := gs.AddScore(100); granted != 1 {
		t.Errorf("Expected 1 bonus city, got %d", granted)
	}
	if granted := gs.AddScore(100); granted != 0 {
		t.Errorf("Expected no bonus inside the same step, got %d", granted)
	}
	if granted := gs.AddScore(20000); granted != 2 {
		t.Errorf("Expected 2 bonus cities for a double crossing, got %d", granted)
	}
	if gs.BonusCities != 3 {
		t.Errorf("Expected 3 bonus cities total, got %d", gs.BonusCities)
	}

	events := q.Consume()
	if len(events) != 2 || events[0].Type != event.EventBonusCity {
		t.Errorf("Expected 2 bonus city events, got %d", len(events))
	}
}

func TestPopSilo(t *testing.T) {
	gs := NewGameState(6, 3, 10000, nil)
	gs.Batteries[1] = []core.Entity{10, 11, 12}

	e, ok := gs.PopSilo(1)
	if !ok || e != 12 {
		t.Errorf("Expected silo 12, got %d", e)
	}
	if gs.SilosLeft() != 2 {
		t.Errorf("Expected 2 silos left, got %d", gs.SilosLeft())
	}
	if _, ok := gs.PopSilo(0); ok {
		t.Error("Expected empty battery to refuse pop")
	}
}
