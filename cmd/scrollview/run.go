package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil"
	"github.com/jmigpin/scrollview/util/uiutil/asset"
	"github.com/jmigpin/scrollview/util/uiutil/inputscript"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
	"github.com/natefinch/atomic"
)

var rowColors = []int{0x8fbcbb, 0x88c0d0, 0x81a1c1, 0x5e81ac, 0xbf616a, 0xd08770, 0xebcb8b, 0xa3be8c}

func run(ctx context.Context, opts *options, stdout io.Writer, logger *slog.Logger) error {
	if err := opts.validate(); err != nil {
		return err
	}
	sopt, err := scrollOptions(opts)
	if err != nil {
		return err
	}
	textures, err := textureProvider(opts, sopt, logger)
	if err != nil {
		return err
	}

	ui := uiutil.NewBasicUI(image.Pt(opts.width, opts.height), textures, logger)
	sc := buildDemo(ui, opts, sopt)
	sc.AddScrollListener(func(sc *widget.ScrollContainer) {
		logger.Debug("scroll", "offset", sc.ScrollOffset(), "thumb", sc.ThumbPos())
	})
	logger.Debug("demo built",
		"contentHeight", sc.ContentHeight(),
		"scrollable", sc.Scrollable(),
		"multiplier", sc.Multiplier())

	evs, err := readScript(opts.script)
	if err != nil {
		return err
	}
	ui.Replay(ctx, evs)
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("replayed", "events", len(evs), "paints", ui.PaintCount())

	if err := writePng(opts.out, ui.Image()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "scrollable=%v offset=%g thumb=%g/%g\n",
		sc.Scrollable(), sc.ScrollOffset(), sc.ThumbPos(), sc.ThumbHeight())
	return nil
}

//----------

func scrollOptions(opts *options) (*widget.ScrollOptions, error) {
	sopt := widget.DefaultScrollOptions()
	if opts.config != "" {
		u, err := widget.ReadScrollOptionsFile(opts.config)
		if err != nil {
			return nil, err
		}
		sopt = *u
	}
	if opts.wheelDivisor != 0 {
		sopt.WheelDivisor = opts.wheelDivisor
	}
	if opts.thumbWidth != 0 {
		sopt.ThumbWidth = opts.thumbWidth
	}
	if err := sopt.Validate(); err != nil {
		return nil, err
	}
	return &sopt, nil
}

func textureProvider(opts *options, sopt *widget.ScrollOptions, logger *slog.Logger) (asset.Provider, error) {
	mem := asset.NewMemory()
	mem.Set(sopt.ThumbTexture, thumbTexture())
	if opts.assets == "" {
		return mem, nil
	}
	d, err := asset.NewDir(opts.assets, 32, logger)
	if err != nil {
		return nil, err
	}
	return asset.Chain{d, mem}, nil
}

// Default thumb texture: a vertical bar lighter at the center.
func thumbTexture() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 60, 15))
	base := imageutil.RgbaFromInt(0x4c566a)
	for x := 0; x < 60; x++ {
		v := float64(30-abs(x-30)) / 30 * 0.5
		r := image.Rect(x, 0, x+1, 15)
		imageutil.FillRectangle(img, r, imageutil.Tint(base, v))
	}
	return img
}

func buildDemo(ui *uiutil.BasicUI, opts *options, sopt *widget.ScrollOptions) *widget.ScrollContainer {
	w, h := float64(opts.width), float64(opts.height)

	root := widget.NewContainer()
	root.SetWrapperForRoot(root)
	root.Size = mathutil.PF(w, h)
	root.Append(widget.NewStyle(ui, color.RGBA{0x2e, 0x34, 0x40, 0xff}))

	// centered, with a margin of a tenth of the window
	mx, my := w/10, h/10
	sc := widget.NewScrollContainer(ui, mathutil.PF(w-2*mx, h-2*my), sopt)
	sc.Pos = mathutil.PF(mx, my)
	rowWidth := sc.Size.X - sopt.ThumbWidth
	rows := []widget.Node{}
	for i := 0; i < opts.rows; i++ {
		c := imageutil.RgbaFromInt(rowColors[i%len(rowColors)])
		pos := mathutil.PF(0, float64(i)*opts.rowHeight)
		rows = append(rows, widget.NewRectangle2(ui, pos, mathutil.PF(rowWidth, opts.rowHeight), c))
	}
	sc.Append(rows...)
	root.Append(sc)

	ui.RootNode = root
	return sc
}

func readScript(filename string) ([]interface{}, error) {
	if filename == "" {
		return nil, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return inputscript.Parse(f)
}

func writePng(filename string, img image.Image) error {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := atomic.WriteFile(filename, buf); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
