package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadDemoLine marks an unparsable line in a demo recording
var ErrBadDemoLine = errors.New("bad demo line")

// DemoCommand is one recorded player or spawner action
type DemoCommand uint8

const (
	DemoNop DemoCommand = iota
	DemoMouse
	DemoMissile
	DemoDefense
)

var demoCommands = map[string]struct {
	cmd  DemoCommand
	args int
}{
	"MOUSE":   {DemoMouse, 2},   // x y
	"MISSILE": {DemoMissile, 5}, // sx sy dx dy speed
	"DEFENSE": {DemoDefense, 1}, // pad
}

// DemoEvent is a command due At milliseconds after the demo started
type DemoEvent struct {
	At      float64
	Command DemoCommand
	Args    []float64
}

// DemoScript is a parsed recording, events in file order
type DemoScript struct {
	events []DemoEvent
}

// LoadDemo parses the recording at path
func LoadDemo(path string) (*DemoScript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open demo %s: %w", path, err)
	}
	defer f.Close()

	s, err := ParseDemo(f)
	if err != nil {
		return nil, fmt.Errorf("demo %s: %w", path, err)
	}
	return s, nil
}

// ParseDemo reads lines of "tick COMMAND args..." with tick in ms
// Blank lines and lines starting with # are skipped
func ParseDemo(r io.Reader) (*DemoScript, error) {
	s := &DemoScript{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := parseDemoLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		s.events = append(s.events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseDemoLine(line string) (DemoEvent, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return DemoEvent{}, fmt.Errorf("%w: %q", ErrBadDemoLine, line)
	}

	at, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return DemoEvent{}, fmt.Errorf("%w: tick %q", ErrBadDemoLine, fields[0])
	}

	cmd, ok := demoCommands[fields[1]]
	if !ok {
		return DemoEvent{}, fmt.Errorf("%w: unknown command %q", ErrBadDemoLine, fields[1])
	}
	if len(fields)-2 != cmd.args {
		return DemoEvent{}, fmt.Errorf("%w: %s takes %d args, got %d", ErrBadDemoLine, fields[1], cmd.args, len(fields)-2)
	}

	args := make([]float64, cmd.args)
	for i, f := range fields[2:] {
		if args[i], err = strconv.ParseFloat(f, 64); err != nil {
			return DemoEvent{}, fmt.Errorf("%w: arg %q", ErrBadDemoLine, f)
		}
	}
	if cmd.cmd == DemoDefense && (args[0] < 0 || args[0] > 2) {
		return DemoEvent{}, fmt.Errorf("%w: launch pad %v", ErrBadDemoLine, args[0])
	}
	return DemoEvent{At: at, Command: cmd.cmd, Args: args}, nil
}

// Len returns the number of recorded events
func (s *DemoScript) Len() int {
	return len(s.events)
}

// Walker starts a playback at time zero
func (s *DemoScript) Walker() *DemoWalker {
	return &DemoWalker{script: s}
}

// DemoWalker replays a script against accumulated dt
type DemoWalker struct {
	script *DemoScript
	idx    int
	clock  float64 // ms
}

// Advance moves the playback clock by dt seconds
func (w *DemoWalker) Advance(dt float64) {
	w.clock += dt * 1000
}

// Next returns the next due event, or DemoNop if it is not due yet
// ok is false once the script is exhausted
func (w *DemoWalker) Next() (ev DemoEvent, ok bool) {
	if w.Done() {
		return DemoEvent{}, false
	}
	next := w.script.events[w.idx]
	if w.clock <= next.At {
		return DemoEvent{Command: DemoNop}, true
	}
	w.idx++
	return next, true
}

// Done reports whether every event was replayed
func (w *DemoWalker) Done() bool {
	return w.idx >= len(w.script.events)
}
