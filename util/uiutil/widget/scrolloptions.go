package widget

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ScrollOptions struct {
	// Wheel units per pixel of thumb movement (integer division).
	WheelDivisor int `toml:"wheel_divisor"`
	// Thumb height floor, limited to half the viewport height.
	MinThumbHeight float64 `toml:"min_thumb_height"`

	ThumbWidth         float64    `toml:"thumb_width"`
	ThumbTexture       string     `toml:"thumb_texture"`
	ThumbTextureOrigin [2]float64 `toml:"thumb_texture_origin"`
	ThumbTextureSize   [2]float64 `toml:"thumb_texture_size"`
}

func DefaultScrollOptions() ScrollOptions {
	return ScrollOptions{
		WheelDivisor:       10,
		MinThumbHeight:     10,
		ThumbWidth:         15,
		ThumbTexture:       "engine:gui_menu",
		ThumbTextureOrigin: [2]float64{0, 0},
		ThumbTextureSize:   [2]float64{60, 15},
	}
}

func (opt *ScrollOptions) Validate() error {
	if opt.WheelDivisor <= 0 {
		return fmt.Errorf("wheel_divisor must be positive: %v", opt.WheelDivisor)
	}
	if opt.MinThumbHeight < 0 {
		return fmt.Errorf("min_thumb_height must not be negative: %v", opt.MinThumbHeight)
	}
	if opt.ThumbWidth <= 0 {
		return fmt.Errorf("thumb_width must be positive: %v", opt.ThumbWidth)
	}
	return nil
}

//----------

// Reads options in toml format. Missing keys keep their default value, unknown keys are an error.
func LoadScrollOptions(r io.Reader) (*ScrollOptions, error) {
	opt := DefaultScrollOptions()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&opt); err != nil {
		return nil, fmt.Errorf("scroll options: %w", err)
	}
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("scroll options: %w", err)
	}
	return &opt, nil
}

func ReadScrollOptionsFile(filename string) (*ScrollOptions, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScrollOptions(f)
}
