package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/missile-command/game"
)

// Translate turns a terminal event into a game input
// Resize events update the canvas and yield nothing
func Translate(ev tcell.Event, c *Canvas) (game.InputEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return game.InputEvent{Kind: game.InputQuit}, true
		case tcell.KeyRune:
			return game.InputEvent{Kind: game.InputKey, Key: ev.Rune()}, true
		case tcell.KeyEnter:
			return game.InputEvent{Kind: game.InputKey, Key: '\n'}, true
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		return game.InputEvent{Kind: game.InputPointer, Pos: c.Logical(x, y)}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		c.Resize(w, h)
	}
	return game.InputEvent{}, false
}
