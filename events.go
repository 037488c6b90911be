package rbtree

import "fmt"

// EventType classifies structural steps of a tree operation.
type EventType uint8

const (
	EventInsertNode    EventType = iota // a new node has been linked into the tree
	EventRecolor                        // a node changed its color
	EventRotateLeft                     // left rotation performed
	EventRotateRight                    // right rotation performed
	EventCase1UncleRed                  // insert fix-up: uncle is red
	EventCase2Triangle                  // insert fix-up: triangle configuration
	EventCase3Line                      // insert fix-up: line configuration
	EventSetRootBlack                   // root forced to black
	EventDeleteNode                     // node removed from the tree
	EventDeleteFixup                    // delete fix-up case entered, see Event.Case
)

var eventTypeNames = [...]string{
	"InsertNode", "Recolor", "RotateLeft", "RotateRight", "Case1UncleRed",
	"Case2Triangle", "Case3Line", "SetRootBlack", "DeleteNode", "DeleteFixup",
}

func (typ EventType) String() string {
	if int(typ) < len(eventTypeNames) {
		return eventTypeNames[typ]
	}
	return fmt.Sprintf("EventType(%d)", uint8(typ))
}

// Event records a single structural step of an insert or remove operation.
// Events are meant for animators re-playing what a tree did.
//
// Parent, Grandparent and Uncle are set only if they are meaningful for an
// event type and present in the tree.
type Event[K any] struct {
	Type        EventType
	Key         K  // key of the primary node
	Parent      *K // key of the parent, or of the pivot for rotations
	Grandparent *K
	Uncle       *K
	From, To    Color  // for recolor events
	Case        int    // fix-up case number (1…4) for EventDeleteFixup
	Explanation string // human readable description
}

func (ev Event[K]) String() string {
	return fmt.Sprintf("%s %v: %s", ev.Type, ev.Key, ev.Explanation)
}

// EventSink receives events from a tree, synchronously and in order.
type EventSink[K any] interface {
	Emit(Event[K])
}

// EnableEventRecording switches on buffering of structural events. Any
// previously buffered events are discarded.
func (t *Tree[K]) EnableEventRecording() {
	t.recording = true
	t.events = t.events[:0]
}

// DisableEventRecording switches off buffering of structural events.
// Already buffered events are kept until DrainEvents is called.
func (t *Tree[K]) DisableEventRecording() {
	t.recording = false
}

// IsRecordingEvents reports whether events are being buffered.
func (t *Tree[K]) IsRecordingEvents() bool {
	return t.recording
}

// DrainEvents returns all buffered events in order and clears the buffer.
func (t *Tree[K]) DrainEvents() []Event[K] {
	events := t.events
	t.events = nil
	return events
}

// SetEventSink installs a sink receiving every event as it happens,
// independently of event recording. A nil sink removes the current one.
func (t *Tree[K]) SetEventSink(sink EventSink[K]) {
	t.sink = sink
}

// tracking is true if anybody is interested in events. Callers check it before
// constructing an event, so an un-observed tree does not pay for events.
func (t *Tree[K]) tracking() bool {
	return t.recording || t.sink != nil
}

func (t *Tree[K]) event(typ EventType, n *Node[K], format string, args ...any) Event[K] {
	return Event[K]{
		Type:        typ,
		Key:         n.key,
		From:        n.color,
		To:          n.color,
		Explanation: fmt.Sprintf(format, args...),
	}
}

func (t *Tree[K]) emit(ev Event[K]) {
	if t.recording {
		t.events = append(t.events, ev)
	}
	if t.sink != nil {
		t.sink.Emit(ev)
	}
}

// paint sets the color of n, logging the change if anybody is listening.
func (t *Tree[K]) paint(n *Node[K], c Color) {
	if n.color == c {
		return
	}
	if t.tracking() {
		ev := t.event(EventRecolor, n, "recolor %v from %s to %s", n.key, n.color, c)
		ev.To = c
		t.emit(ev)
	}
	n.color = c
}

func keyOf[K any](n *Node[K]) *K {
	if n == nil {
		return nil
	}
	k := n.key
	return &k
}
