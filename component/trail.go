package component

import "github.com/lixenwraith/missile-command/vmath"

// Segment is one recorded line of a trail
type Segment struct {
	From, To vmath.Vec2
}

// TrailComponent is the ordered flight path of a missile
// Seeded with a zero-length segment at launch so Tail is always defined
type TrailComponent struct {
	Segments []Segment
}

// NewTrail seeds a trail at start
func NewTrail(start vmath.Vec2) TrailComponent {
	return TrailComponent{Segments: []Segment{{From: start, To: start}}}
}

// Tail returns the last recorded point
func (t *TrailComponent) Tail() vmath.Vec2 {
	if len(t.Segments) == 0 {
		return vmath.Vec2{}
	}
	return t.Segments[len(t.Segments)-1].To
}

// Append records a segment from the current tail to p
func (t *TrailComponent) Append(p vmath.Vec2) {
	t.Segments = append(t.Segments, Segment{From: t.Tail(), To: p})
}

// Head returns the launch point
func (t *TrailComponent) Head() vmath.Vec2 {
	if len(t.Segments) == 0 {
		return vmath.Vec2{}
	}
	return t.Segments[0].From
}
