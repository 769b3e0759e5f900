// Texture providers. Textures are named "namespace:path".
package asset

import (
	"image"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("texture not found")

type Provider interface {
	Texture(name string) (image.Image, error)
}

// Splits "namespace:path". A name without a namespace has an empty namespace.
func SplitName(name string) (ns, path string, err error) {
	i := strings.Index(name, ":")
	if i < 0 {
		return "", name, nil
	}
	ns, path = name[:i], name[i+1:]
	if path == "" {
		return "", "", errors.Errorf("bad texture name: %q", name)
	}
	return ns, path, nil
}

//----------

// Map backed provider.
type Memory struct {
	m map[string]image.Image
}

func NewMemory() *Memory {
	return &Memory{m: map[string]image.Image{}}
}

func (mem *Memory) Set(name string, img image.Image) {
	mem.m[name] = img
}

func (mem *Memory) Texture(name string) (image.Image, error) {
	img, ok := mem.m[name]
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	return img, nil
}

//----------

// Tries each provider in order, returns the first texture found.
type Chain []Provider

func (c Chain) Texture(name string) (image.Image, error) {
	for _, p := range c {
		img, err := p.Texture(name)
		if err == nil {
			return img, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, errors.Wrap(ErrNotFound, name)
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
