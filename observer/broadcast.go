package observer

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbtree"
)

// ErrClosed is returned when subscribing to a closed broadcaster.
var ErrClosed = errors.New("observer: broadcaster closed")

// Broadcaster publishes tree events to subscribers. It implements
// rbtree.EventSink.
//
// By default, Emit blocks while a subscriber's channel is full, which in turn
// blocks the tree operation emitting the event. A lossy broadcaster drops
// events for subscribers which do not keep up instead.
type Broadcaster[K any] struct {
	cast    *caster.Caster  // fan-out of events to subscribers
	lossy   bool
	done    <-chan struct{} // done channel of the creating context
	closed  chan struct{}
	closing sync.Once
}

// New creates a broadcaster. Cancelling ctx closes the broadcaster.
// ctx may be nil.
func New[K any](ctx context.Context) *Broadcaster[K] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Broadcaster[K]{
		cast:   caster.New(ctx),
		done:   ctx.Done(),
		closed: make(chan struct{}),
	}
}

// NewLossy creates a broadcaster which never blocks the emitting tree.
func NewLossy[K any](ctx context.Context) *Broadcaster[K] {
	b := New[K](ctx)
	b.lossy = true
	return b
}

// Attach creates a broadcaster and installs it as the event sink of tree.
func Attach[K any](ctx context.Context, tree *rbtree.Tree[K]) *Broadcaster[K] {
	b := New[K](ctx)
	tree.SetEventSink(b)
	return b
}

// Emit publishes an event to all current subscribers. Part of interface
// rbtree.EventSink.
func (b *Broadcaster[K]) Emit(ev rbtree.Event[K]) {
	var ok bool
	if b.lossy {
		ok = b.cast.TryPub(ev)
	} else {
		ok = b.cast.Pub(ev)
	}
	if !ok {
		tracer().Debugf("observer: event %v not published", ev)
	}
}

// Subscribe returns a channel receiving all events emitted from now on, in
// order. capacity is the buffer size of the channel. The subscription ends
// when ctx is done or the broadcaster is closed.
func (b *Broadcaster[K]) Subscribe(ctx context.Context, capacity uint) (<-chan rbtree.Event[K], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-b.closed:
		return nil, ErrClosed
	case <-b.done:
		return nil, ErrClosed
	case <-b.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, _ := b.cast.Sub(ctx, capacity)
	out := make(chan rbtree.Event[K], capacity)
	go func() {
		defer close(out)
		defer func() {
			// keep draining, so a pending Pub cannot block on us while unsubscribing
			go func() {
				for range sub {
				}
			}()
			b.cast.Unsub(sub)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.closed:
				return
			case msg, ok := <-sub:
				if !ok {
					return
				}
				ev, isEvent := msg.(rbtree.Event[K])
				if !isEvent {
					tracer().Errorf("observer: unexpected message of type %T", msg)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-b.closed:
					return
				}
			}
		}
	}()
	return out, nil
}

// Close ends all subscriptions. Events emitted after Close are dropped.
func (b *Broadcaster[K]) Close() {
	b.closing.Do(func() {
		close(b.closed)
		b.cast.Close()
	})
}
