/*
Package document hosts a rope for concurrent clients.

A rope restructures itself on every access, reads included. Document
therefore guards its rope with one exclusive lock, and broadcasts every
applied edit to subscribers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package document

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/ivanbgd/rope"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope.document'
func tracer() tracing.Trace {
	return tracing.Select("rope.document")
}

// ErrClosed is flagged for operations on a closed document.
var ErrClosed = errors.New("document: closed")

// Event is broadcast to subscribers for every applied move.
//
// Events of concurrent edits may be delivered out of order; Seq gives the
// order in which the edits have been applied.
type Event struct {
	Seq uint64      // 1-based sequence number of the edit
	Op  rope.MoveOp // the applied move
	Len int         // document length after the edit
}

// Document is a rope shared between goroutines.
type Document struct {
	mu   sync.Mutex
	text *rope.Rope
	seq  uint64
	cast *caster.Caster // broadcaster for change events
}

// New creates a document holding text. Cancelling ctx closes the document.
func New(ctx context.Context, text string) *Document {
	return &Document{
		text: rope.FromString(text),
		cast: caster.New(ctx),
	}
}

func (d *Document) closed() bool {
	select {
	case <-d.cast.Done():
		return true
	default:
		return false
	}
}

// Apply performs moves on the document, in order.
//
// All moves are validated before the first one is applied; if any of them is
// invalid, the document is unchanged. The batch is applied atomically with
// respect to other clients.
func (d *Document) Apply(ops ...rope.MoveOp) error {
	if d.closed() {
		return ErrClosed
	}
	d.mu.Lock()
	length := d.text.Len()
	for _, op := range ops {
		// moves never change the length, every op can be checked up front
		if err := op.Validate(length); err != nil {
			d.mu.Unlock()
			return err
		}
	}
	events := make([]Event, 0, len(ops))
	for _, op := range ops {
		err := op.Apply(d.text)
		if err != nil {
			panic("document: validated move failed: " + err.Error())
		}
		d.seq++
		events = append(events, Event{Seq: d.seq, Op: op, Len: length})
	}
	d.mu.Unlock()
	for _, ev := range events {
		if !d.cast.Pub(ev) {
			tracer().Infof("document closed while publishing edit #%d", ev.Seq)
			break
		}
	}
	return nil
}

// Text returns the current content of the document.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text.String()
}

// Len returns the length of the document in bytes.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text.Len()
}

// Seq returns the number of edits applied so far.
func (d *Document) Seq() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

// At returns the character at position i.
func (d *Document) At(i int) (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text.At(i)
}

// Report returns the substring [i, i+l).
func (d *Document) Report(i, l int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text.Report(i, l)
}

// Subscribe registers for change events. The channel is closed when ctx is
// done or the document is closed.
//
// Subscribers have to drain their channel: with a full buffer, publishing of
// further edits waits for them.
func (d *Document) Subscribe(ctx context.Context, capacity uint) (<-chan Event, error) {
	if d.closed() {
		return nil, ErrClosed
	}
	raw, ok := d.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan Event, capacity)
	go func() {
		defer close(out)
		for {
			select {
			case m, ok := <-raw:
				if !ok {
					return
				}
				ev, isEvent := m.(Event)
				if !isEvent {
					tracer().Errorf("document subscription: unexpected message type %T", m)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			case <-d.cast.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close closes the document. Subscriptions end, further edits fail with ErrClosed.
func (d *Document) Close() {
	d.cast.Close()
}
