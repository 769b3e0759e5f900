package uiutil

import (
	"context"
	"time"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Coalesces mouse move inputs to at most one per frame. Other events are forwarded in order, preceded by the pending move if any. Returns when in is closed or the context is done.
func MouseMoveFilterLoop(ctx context.Context, in <-chan interface{}, out chan<- interface{}, fps int) {
	frameDur := time.Second / time.Duration(fps)

	var pending interface{}
	var timer *time.Timer
	var timeToSend <-chan time.Time
	var lastSent time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	send := func(ev interface{}) bool {
		lastSent = time.Now()
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	flush := func() bool {
		if timer != nil {
			timer.Stop()
			timer, timeToSend = nil, nil
		}
		if pending != nil {
			ev := pending
			pending = nil
			return send(ev)
		}
		return true
	}
	keep := func(ev interface{}) bool {
		if timer != nil {
			pending = ev // discard the older move
			return true
		}
		d := time.Since(lastSent)
		if d >= frameDur {
			return send(ev)
		}
		pending = ev
		timer = time.NewTimer(frameDur - d)
		timeToSend = timer.C
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				flush()
				return
			}
			if isMouseMove(ev) {
				if !keep(ev) {
					return
				}
			} else {
				if !flush() || !send(ev) {
					return
				}
			}
		case <-timeToSend:
			timer, timeToSend = nil, nil
			if !flush() {
				return
			}
		}
	}
}

func isMouseMove(ev interface{}) bool {
	wi, ok := ev.(*event.WindowInput)
	if !ok {
		return false
	}
	_, ok = wi.Event.(*event.MouseMove)
	return ok
}
