package uiutil

import (
	"context"
	"image"
	"image/draw"
	"io"
	"log/slog"
	"time"

	"github.com/jmigpin/scrollview/util/uiutil/asset"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

// Headless window: paints the tree into an in-memory image and applies input from the events channel.
type BasicUI struct {
	DrawFrameRate int // frame per second
	RootNode      widget.Node
	Logger        *slog.Logger

	img        *image.RGBA
	textures   asset.Provider
	texErrs    map[string]bool // already reported
	ae         *widget.ApplyEvent
	events     chan interface{}
	lastPaint  time.Time
	paintCount int
}

func NewBasicUI(size image.Point, textures asset.Provider, logger *slog.Logger) *BasicUI {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if textures == nil {
		textures = asset.NewMemory()
	}
	ui := &BasicUI{
		DrawFrameRate: 37,
		Logger:        logger,
		img:           image.NewRGBA(image.Rectangle{Max: size}),
		textures:      textures,
		texErrs:       map[string]bool{},
		events:        make(chan interface{}, 16),
	}
	ui.ae = widget.NewApplyEvent(ui)
	return ui
}

//----------

func (ui *BasicUI) Events() chan<- interface{} {
	return ui.events
}

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowExpose:
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowInput:
		ui.ae.ApplyInput(ui.RootNode, t)
	case *UIRunFuncEvent:
		t.Func()
	case struct{}:
		// no op
	default:
		ui.Logger.Warn("unhandled event", "ev", ev)
	}
}

// Handles events until the context is done or a window close event arrives.
func (ui *BasicUI) EventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-ui.events:
			switch t := ev.(type) {
			case *event.WindowClose:
				ui.PaintIfNeeded()
				return
			case error:
				ui.Logger.Error("event", "err", t)
			default:
				ui.HandleEvent(ev)
				ui.PaintIfTime()
			}
		}
	}
}

// The events are sent in order through the mouse move filter, followed by a window close.
func (ui *BasicUI) Replay(ctx context.Context, evs []interface{}) {
	in := make(chan interface{})
	go func() {
		defer close(in)
		for _, ev := range evs {
			select {
			case in <- ev:
			case <-ctx.Done():
				return
			}
		}
		select {
		case in <- &event.WindowClose{}:
		case <-ctx.Done():
		}
	}()
	go MouseMoveFilterLoop(ctx, in, ui.events, ui.DrawFrameRate)
	ui.EventLoop(ctx)
}

//----------

// This function should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	canPaint := d > (time.Second / time.Duration(ui.DrawFrameRate))
	if canPaint {
		if _, painted := ui.PaintIfNeeded(); painted {
			ui.lastPaint = now
		}
	} else {
		if len(ui.events) == 0 {
			// Didn't paint to avoid high fps. Ensure the loop iterates again later.
			ui.EnqueueNoOpEvent()
		}
	}
}

// Runs the layout and paints the marked nodes. Returns the painted area.
func (ui *BasicUI) PaintIfNeeded() (image.Rectangle, bool) {
	en := ui.RootNode.Embed()
	if en.TreeNeedsLayout() {
		ui.RootNode.LayoutMarked()
	}
	if !en.TreeNeedsPaint() {
		return image.Rectangle{}, false
	}
	r := ui.RootNode.PaintMarked(ui.img.Bounds())
	ui.paintCount++
	return r, true
}

func (ui *BasicUI) PaintCount() int {
	return ui.paintCount
}

func (ui *BasicUI) EnqueueNoOpEvent() {
	select {
	case ui.events <- struct{}{}:
	default:
		// queue is full, the loop will iterate anyway
	}
}

func (ui *BasicUI) RunOnUIThread(f func()) {
	ui.events <- &UIRunFuncEvent{f}
}

type UIRunFuncEvent struct {
	Func func()
}

//----------

// Implements widget.ImageContext
func (ui *BasicUI) Image() draw.Image {
	return ui.img
}

// Implements widget.TextureContext. Missing textures are logged once.
func (ui *BasicUI) Texture(name string) (image.Image, error) {
	img, err := ui.textures.Texture(name)
	if err != nil && !ui.texErrs[name] {
		ui.texErrs[name] = true
		ui.Logger.Warn("texture", "name", name, "err", err)
	}
	return img, err
}

// Implements widget.ScreenContext
func (ui *BasicUI) ScreenHeight() float64 {
	return float64(ui.img.Bounds().Dy())
}
