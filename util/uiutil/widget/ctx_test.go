package widget

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"github.com/jmigpin/scrollview/util/mathutil"
)

type testCtx struct {
	img      *image.RGBA
	textures map[string]image.Image
}

func newTestCtx(w, h int) *testCtx {
	return &testCtx{
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
		textures: map[string]image.Image{},
	}
}

func (ctx *testCtx) Image() draw.Image {
	return ctx.img
}
func (ctx *testCtx) Texture(name string) (image.Image, error) {
	if img, ok := ctx.textures[name]; ok {
		return img, nil
	}
	return nil, errors.New("texture not found: " + name)
}
func (ctx *testCtx) ScreenHeight() float64 {
	return float64(ctx.img.Bounds().Dy())
}

//----------

func newRect(y, h float64) *Rectangle {
	return NewRectangle2(nil, mathutil.PF(0, y), mathutil.PF(10, h), nil)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
