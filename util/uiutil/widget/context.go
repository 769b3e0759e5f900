package widget

import (
	"image"
	"image/draw"
)

type ImageContext interface {
	Image() draw.Image
}

// Textures by name, ex: "engine:gui_menu".
type TextureContext interface {
	Texture(name string) (image.Image, error)
}

// Height of the screen, used to convert driver points (origin at the bottom) into toolkit points.
type ScreenContext interface {
	ScreenHeight() float64
}

type Context interface {
	ImageContext
	TextureContext
}
