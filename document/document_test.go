package document

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/ivanbgd/rope"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope.document")
	defer teardown()
	//
	doc := New(context.Background(), "abcdef")
	defer doc.Close()
	if err := doc.Apply(rope.MoveOp{I: 2, J: 3, K: 0}); err != nil {
		t.Fatal(err)
	}
	if doc.Text() != "cdabef" || doc.Seq() != 1 {
		t.Errorf("unexpected document state %q, seq=%d", doc.Text(), doc.Seq())
	}
	b, err := doc.At(0)
	if err != nil || b != 'c' {
		t.Errorf("expected 'c' at 0, have %c (%v)", b, err)
	}
	s, err := doc.Report(2, 2)
	if err != nil || s != "ab" {
		t.Errorf("expected 'ab' at [2,4), have %q (%v)", s, err)
	}
}

func TestApplyBatchIsAtomic(t *testing.T) {
	doc := New(context.Background(), "abcdef")
	defer doc.Close()
	err := doc.Apply(rope.MoveOp{I: 0, J: 1, K: 4}, rope.MoveOp{I: 3, J: 1, K: 0})
	if !errors.Is(err, rope.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if doc.Text() != "abcdef" || doc.Seq() != 0 {
		t.Errorf("failed batch modified the document: %q, seq=%d", doc.Text(), doc.Seq())
	}
}

func TestSubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope.document")
	defer teardown()
	//
	doc := New(context.Background(), "abcdef")
	defer doc.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := doc.Subscribe(ctx, 8)
	if err != nil {
		t.Fatal(err)
	}
	ops := []rope.MoveOp{{I: 2, J: 3, K: 0}, {I: 0, J: 0, K: 5}, {I: 1, J: 2, K: 1}}
	if err = doc.Apply(ops...); err != nil {
		t.Fatal(err)
	}
	for i, op := range ops {
		select {
		case ev := <-events:
			if ev.Seq != uint64(i+1) || ev.Op != op || ev.Len != 6 {
				t.Errorf("unexpected event %+v for op %v", ev, op)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for event #%d", i+1)
		}
	}
}

func TestClose(t *testing.T) {
	doc := New(context.Background(), "abc")
	events, err := doc.Subscribe(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	doc.Close()
	if err = doc.Apply(rope.MoveOp{I: 0, J: 0, K: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	select {
	case _, ok := <-events:
		if ok {
			t.Errorf("expected no events after close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("subscription not closed after document close")
	}
	if _, err = doc.Subscribe(context.Background(), 1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed for subscribing to closed document, got %v", err)
	}
}

func TestCancelContextClosesDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope.document")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	doc := New(ctx, "abc")
	events, err := doc.Subscribe(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	select {
	case _, ok := <-events:
		if ok {
			t.Errorf("expected no events after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("subscription not closed after cancellation")
	}
	select {
	case <-doc.cast.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("document not closed after cancellation")
	}
	if err = doc.Apply(rope.MoveOp{I: 0, J: 0, K: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if doc.Text() != "abc" {
		t.Errorf("expected text unchanged, have %q", doc.Text())
	}
	if _, err = doc.Subscribe(context.Background(), 1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed for subscribing after cancellation, got %v", err)
	}
}

func TestConcurrentEdits(t *testing.T) {
	const text = "thequickbrownfoxjumpsoverthelazydog"
	doc := New(context.Background(), text)
	defer doc.Close()
	const workers, edits = 8, 200
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range edits {
				i := (w*7 + e) % len(text)
				j := min(i+e%3, len(text)-1)
				k := (w + e) % (len(text) - (j - i))
				if err := doc.Apply(rope.MoveOp{I: i, J: j, K: k}); err != nil {
					t.Errorf("worker %d: %v", w, err)
					return
				}
				_, _ = doc.At(e % len(text))
			}
		}()
	}
	wg.Wait()
	if doc.Seq() != workers*edits {
		t.Errorf("expected %d edits, have %d", workers*edits, doc.Seq())
	}
	got, want := []byte(doc.Text()), []byte(text)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("edits lost or duplicated characters: %q", doc.Text())
	}
	if doc.Len() != len(text) {
		t.Errorf("document length changed to %d", doc.Len())
	}
}
