package bramble

// EventSink is the interface for optional interaction observers such as an
// ECS bridge. When set on a RunContext, every routed interaction is
// forwarded after the node's own callback.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent is a flat record of one routed interaction.
type InteractionEvent struct {
	Type      EventType
	NodeID    string
	X, Y      float64 // local to the receiving node
	TreeX     float64
	TreeY     float64
	Button    MouseButton
	Modifiers Modifiers
	// Wheel fields (valid for EventWheel)
	DeltaX float64
	DeltaY float64
	// Key fields (valid for EventKeyDown, EventKeyUp)
	Key Key
	// Text field (valid for EventText)
	Text string
}

func (c *RunContext) emit(ev InteractionEvent) {
	if c.sink == nil {
		return
	}
	c.sink.EmitEvent(ev)
}

// EventRecorder is an EventSink that keeps every event in memory. It is
// meant for tests and for debugging overlays.
type EventRecorder struct {
	Events []InteractionEvent
}

// EmitEvent appends ev.
func (r *EventRecorder) EmitEvent(ev InteractionEvent) {
	r.Events = append(r.Events, ev)
}

// Types returns the recorded event types in order.
func (r *EventRecorder) Types() []EventType {
	out := make([]EventType, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Type
	}
	return out
}

// Reset discards recorded events.
func (r *EventRecorder) Reset() {
	r.Events = r.Events[:0]
}
