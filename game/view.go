package game

import "github.com/lixenwraith/missile-command/engine"

// View is the read-only snapshot a renderer draws each frame
type View struct {
	World *engine.World

	Phase  Phase
	Paused bool
	Demo   bool

	Score       int
	HighScore   int // Table leader, or the current score once it is beaten
	BonusCities int
	ScoreMult   int
	Level       int

	Debrief *Debriefing // nil outside the debriefing phase
}

// Renderer draws a View
type Renderer interface {
	Render(v View)
}

// View builds the snapshot for the current frame
func (g *Game) View() View {
	return View{
		World:       g.world,
		Phase:       g.phase,
		Paused:      g.paused,
		Demo:        g.demo != nil,
		Score:       g.state.Score,
		HighScore:   max(g.scores.Leader().Score, g.state.Score),
		BonusCities: g.state.BonusCities,
		ScoreMult:   g.state.ScoreMult,
		Level:       g.state.Level,
		Debrief:     g.debrief,
	}
}

// Draw hands the current View to r
func (g *Game) Draw(r Renderer) {
	r.Render(g.View())
}
