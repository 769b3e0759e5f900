package uiutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

func TestMouseMoveFilterLoop(t *testing.T) {
	move := func(y float64) interface{} {
		return &event.WindowInput{Point: mathutil.PF(0, y), Event: &event.MouseMove{}}
	}
	up := &event.WindowInput{Event: &event.MouseUp{}}

	in := make(chan interface{}, 16)
	out := make(chan interface{}, 16)
	for y := 1.0; y <= 5; y++ {
		in <- move(y)
	}
	in <- up
	close(in)

	MouseMoveFilterLoop(context.Background(), in, out, 1) // long frame, moves are kept
	close(out)

	evs := []interface{}{}
	for ev := range out {
		evs = append(evs, ev)
	}
	// first move is sent immediately, last move is flushed before the release
	if len(evs) != 3 {
		t.Fatalf("%v", len(evs))
	}
	if evs[0].(*event.WindowInput).Point.Y != 1 {
		t.Fatal(evs[0])
	}
	if evs[1].(*event.WindowInput).Point.Y != 5 {
		t.Fatal(evs[1])
	}
	if evs[2] != up {
		t.Fatal(evs[2])
	}
}

func TestMouseMoveFilterLoopCancel(t *testing.T) {
	in := make(chan interface{}, 1)
	out := make(chan interface{}) // nobody reads
	in <- &event.WindowInput{Event: &event.MouseUp{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		MouseMoveFilterLoop(ctx, in, out, 60)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("filter loop blocked on a full output")
	}
}
