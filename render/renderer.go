// Package render draws the game onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/game"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/status"
	"github.com/lixenwraith/missile-command/vmath"
)

// Glyphs
const (
	glyphCity      = '▆'
	glyphRuin      = '▁'
	glyphSilo      = '▲'
	glyphGround    = '▀'
	glyphTrail     = '·'
	glyphHead      = '•'
	glyphPlane     = '≻'
	glyphSatellite = '◊'
	glyphSmartbomb = '◆'
	glyphTarget    = 'x'
	glyphCrosshair = '+'
	glyphBlast     = '█'
)

// Renderer implements game.Renderer on a tcell screen
type Renderer struct {
	screen tcell.Screen
	canvas Canvas
	status *status.Registry
	app    string
	frame  int
}

var _ game.Renderer = (*Renderer)(nil)

// NewRenderer sizes the canvas from the screen; reg may be nil
func NewRenderer(screen tcell.Screen, reg *status.Registry, app string) *Renderer {
	r := &Renderer{screen: screen, status: reg, app: app}
	r.canvas.Resize(screen.Size())
	return r
}

// Canvas exposes the coordinate mapping for input translation
func (r *Renderer) Canvas() *Canvas {
	return &r.canvas
}

// Render draws one frame
func (r *Renderer) Render(v game.View) {
	r.frame++
	r.screen.Clear()

	w := v.World
	r.drawGround()
	r.drawSettlements(w)
	r.drawTrails(w)
	r.drawExplosions(w)
	r.drawThreats(w)
	r.drawMarkers(w)

	r.drawHUD(v)
	r.drawOverlay(v)
	r.drawStatus()

	r.screen.Show()
}

func (r *Renderer) put(p vmath.Vec2, ch rune, c RGB) {
	if x, y, ok := r.canvas.Cell(p); ok {
		r.screen.SetContent(x, y, ch, nil, c.Style())
	}
}

// text writes s centered on logical row y
func (r *Renderer) text(y float64, s string, c RGB) {
	_, row, ok := r.canvas.Cell(vmath.V2(0, y))
	if !ok {
		return
	}
	col := (r.canvas.Cols - len([]rune(s))) / 2
	r.textAt(col, row, s, c)
}

func (r *Renderer) textAt(col, row int, s string, c RGB) {
	for i, ch := range []rune(s) {
		if x := col + i; x >= 0 && x < r.canvas.Cols {
			r.screen.SetContent(x, row, ch, nil, c.Style())
		}
	}
}

// fillRect paints every cell whose center lies inside rect
func (r *Renderer) fillRect(rect vmath.Rect, ch rune, c RGB) {
	x0, y0, _ := r.canvas.Cell(vmath.V2(rect.Left(), rect.Top()))
	x1, y1, _ := r.canvas.Cell(vmath.V2(rect.Right(), rect.Bottom()))
	painted := false
	for y := max(y0, 0); y <= min(y1, r.canvas.Rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.canvas.Cols-1); x++ {
			if rect.Contains(r.canvas.Logical(x, y)) {
				r.screen.SetContent(x, y, ch, nil, c.Style())
				painted = true
			}
		}
	}
	// Small shapes on a coarse grid still get one cell
	if !painted {
		r.put(rect.Center(), ch, c)
	}
}

func (r *Renderer) drawGround() {
	top := parameter.ScreenHeight - 8.0
	r.fillRect(vmath.Rect{X: 0, Y: top, W: parameter.ScreenWidth, H: 8}, glyphGround, RGBGround)
}

func (r *Renderer) drawSettlements(w *engine.World) {
	for _, e := range w.Query().With(w.Hitbox).Has(component.IsRuin).Execute() {
		r.fillRect(w.Hitbox.MustGet(e).Rect, glyphRuin, RGBRuin)
	}
	for _, e := range w.Query().With(w.Hitbox).Has(component.IsCity).Execute() {
		r.fillRect(w.Hitbox.MustGet(e).Rect, glyphCity, RGBCity)
	}
	for _, e := range w.Query().With(w.PRSA).Has(component.IsSilo).Execute() {
		c := RGBSilo
		if w.Lifetime.HasComponent(e) {
			c = RGBBlast
		}
		r.put(w.PRSA.MustGet(e).Pos, glyphSilo, c)
	}
}

// drawTrails walks every segment in steps of half a cell
func (r *Renderer) drawTrails(w *engine.World) {
	step := r.canvas.CellSize().Len() / 2
	for _, e := range w.Query().With(w.Trail).Has(component.IsTrail).Execute() {
		c := RGBIncoming
		if w.HasProperty(e, component.IsDefense) {
			c = RGBDefense
		}
		c = Scale(c, 0.6)

		for _, seg := range w.Trail.MustGet(e).Segments {
			d := seg.To.Sub(seg.From)
			n := int(math.Ceil(d.Len() / step))
			for i := 0; i <= n; i++ {
				t := 1.0
				if n > 0 {
					t = float64(i) / float64(n)
				}
				r.put(seg.From.Add(d.Scale(t)), glyphTrail, c)
			}
		}
	}
}

// drawExplosions fills the blast disc; color flickers between orange and white
func (r *Renderer) drawExplosions(w *engine.World) {
	for _, e := range w.Query().With(w.PRSA, w.Mask).Has(component.IsExplosion).Execute() {
		prsa := w.PRSA.MustGet(e)
		radius := w.Mask.MustGet(e).Radius(prsa.Scale)
		c := Lerp(RGBBlast, RGBWhite, float64((r.frame+int(e))%4)/3)

		box := vmath.RectAt(prsa.Pos, 2*radius, 2*radius)
		x0, y0, _ := r.canvas.Cell(vmath.V2(box.Left(), box.Top()))
		x1, y1, _ := r.canvas.Cell(vmath.V2(box.Right(), box.Bottom()))
		for y := max(y0, 0); y <= min(y1, r.canvas.Rows-1); y++ {
			for x := max(x0, 0); x <= min(x1, r.canvas.Cols-1); x++ {
				if r.canvas.Logical(x, y).Dist(prsa.Pos) <= radius {
					r.screen.SetContent(x, y, glyphBlast, nil, c.Style())
				}
			}
		}
		r.put(prsa.Pos, glyphBlast, c)
	}
}

func (r *Renderer) drawThreats(w *engine.World) {
	for _, e := range w.Query().With(w.PRSA).Has(component.IsMissile).Execute() {
		c := RGBIncoming
		if w.HasProperty(e, component.IsDefense) {
			c = RGBDefense
		}
		r.put(w.PRSA.MustGet(e).Pos, glyphHead, Blend(c, RGBWhite, 0.5))
	}
	for _, e := range w.Query().With(w.PRSA).Has(component.IsSmartbomb).Execute() {
		r.put(w.PRSA.MustGet(e).Pos, glyphSmartbomb, RGBSmartbomb)
	}
	for _, e := range w.Query().With(w.PRSA).Has(component.IsFlyer).Execute() {
		ch := glyphPlane
		if w.HasProperty(e, component.IsSatellite) {
			ch = glyphSatellite
		}
		c := RGBFlyer
		if w.HasProperty(e, component.IsLingering) {
			c = RGBBlast
		}
		r.put(w.PRSA.MustGet(e).Pos, ch, c)
	}
}

func (r *Renderer) drawMarkers(w *engine.World) {
	for _, e := range w.Query().With(w.PRSA).Has(component.IsTarget).Execute() {
		r.put(w.PRSA.MustGet(e).Pos, glyphTarget, RGBTarget)
	}
	if e, ok := w.Named(parameter.CrosshairName); ok {
		r.put(w.PRSA.MustGet(e).Pos, glyphCrosshair, RGBWhite)
	}
}

func (r *Renderer) drawHUD(v game.View) {
	r.textAt(1, 0, fmt.Sprintf("%d", v.Score), RGBHUD)
	hi := fmt.Sprintf("%d", v.HighScore)
	r.textAt((r.canvas.Cols-len(hi))/2, 0, hi, RGBHUD)
	if v.BonusCities > 0 {
		bonus := fmt.Sprintf("%c x %d", glyphCity, v.BonusCities)
		r.textAt(r.canvas.Cols-len([]rune(bonus))-1, 0, bonus, RGBCity)
	}
}

func (r *Renderer) drawOverlay(v game.View) {
	mid := parameter.ScreenHeight / 2.0

	switch v.Phase {
	case game.PhaseBriefing:
		r.text(mid-24, "PLAYER 1", RGBText)
		r.text(mid, "DEFEND CITIES", RGBText)
		r.text(mid+24, fmt.Sprintf("%d X POINTS", v.ScoreMult), RGBText)

	case game.PhaseDebriefing:
		if d := v.Debrief; d != nil {
			r.text(mid-32, "BONUS POINTS", RGBText)
			r.text(parameter.PosMissilesDebriefing.Y-12, fmt.Sprintf("%d", d.MissileScore), RGBHUD)
			r.text(parameter.PosCitiesDebriefing.Y-12, fmt.Sprintf("%d", d.CityScore), RGBHUD)
		}

	case game.PhaseGameOver:
		r.text(mid, "THE END", RGBIncoming)
	}

	if v.Paused {
		r.text(mid+48, "PAUSED", RGBWhite)
	}
	if v.Demo {
		r.text(parameter.ScreenHeight-24, "DEMO - PRESS ANY KEY", RGBWhite)
	}
}

func (r *Renderer) drawStatus() {
	title := r.app
	if r.status != nil {
		title = r.status.Title(r.app)
	}
	_, h := r.screen.Size()
	r.textAt(0, h-1, title, RGBStatus)
}
