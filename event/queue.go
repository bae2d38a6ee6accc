package event

// Queue is a FIFO of game events drained once per tick
// Single-threaded: producers and the consumer run inside one Update
// Never drops events: every push is delivered exactly once
type Queue struct {
	events []GameEvent
	spare  []GameEvent
}

func NewQueue() *Queue {
	return &Queue{
		events: make([]GameEvent, 0, 32),
		spare:  make([]GameEvent, 0, 32),
	}
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is valid until the next Consume
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = q.spare[:0]
	q.spare = out
	return out
}

// Drain consumes repeatedly until handlers stop producing events
// Handlers may push follow-up events, which are delivered in the same call
func (q *Queue) Drain(fn func(ev GameEvent)) int {
	n := 0
	for {
		batch := q.Consume()
		if len(batch) == 0 {
			return n
		}
		for _, ev := range batch {
			fn(ev)
			n++
		}
	}
}

// Len returns pending event count
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear discards pending events
func (q *Queue) Clear() {
	q.events = q.events[:0]
}
