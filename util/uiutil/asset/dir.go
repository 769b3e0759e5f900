package asset

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// Textures from a directory: "ns:path" is read from root/ns/path with one of the known image extensions. Decoded images are cached.
type Dir struct {
	Root   string
	Logger *slog.Logger

	cache *lru.Cache[string, image.Image]
	mu    sync.Mutex
	files map[string]string // filename -> texture name
}

func NewDir(root string, cacheSize int, logger *slog.Logger) (*Dir, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &Dir{Root: root, Logger: logger, files: map[string]string{}}
	c, err := lru.NewWithEvict[string, image.Image](cacheSize, d.onEvict)
	if err != nil {
		return nil, errors.Wrap(err, "asset dir")
	}
	d.cache = c
	return d, nil
}

// Called by the cache on capacity evictions and removals.
func (d *Dir) onEvict(name string, _ image.Image) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for filename, n := range d.files {
		if n == name {
			delete(d.files, filename)
		}
	}
}

func (d *Dir) Texture(name string) (image.Image, error) {
	if img, ok := d.cache.Get(name); ok {
		return img, nil
	}
	filename, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	img, err := decodeFile(filename)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.files[filename] = name
	d.mu.Unlock()

	d.cache.Add(name, img) // can evict an older name
	return img, nil
}

func (d *Dir) resolve(name string) (string, error) {
	ns, path, err := SplitName(name)
	if err != nil {
		return "", err
	}
	base := filepath.Join(d.Root, ns, filepath.FromSlash(path))
	for _, ext := range imageExts {
		filename := base + ext
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
	}
	return "", errors.Wrap(ErrNotFound, name)
}

func decodeFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode: %v", filename)
	}
	return img, nil
}

// Cached texture names, for debugging.
func (d *Dir) CachedNames() []string {
	return d.cache.Keys()
}

//----------

// Evicts textures from the cache when their files change. Blocks until the context is done.
func (d *Dir) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "asset watch")
	}
	defer w.Close() // will close watcher chans (Events/Errors)

	if err := d.addWatchDirs(w); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			d.onWatchEvent(w, ev)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			d.Logger.Error("asset watch", "err", err)
		}
	}
}

func (d *Dir) addWatchDirs(w *fsnotify.Watcher) error {
	return filepath.WalkDir(d.Root, func(path string, de os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !de.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return errors.Wrapf(err, "asset watch: %v", path)
		}
		return nil
	})
}

func (d *Dir) onWatchEvent(w *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		// new namespace dirs need to be watched
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if err := w.Add(ev.Name); err != nil {
				d.Logger.Error("asset watch", "err", err)
			}
		}
	}
	if d.evictFile(ev.Name) {
		d.Logger.Debug("texture evicted", "file", ev.Name, "op", ev.Op.String())
	}
}

func (d *Dir) evictFile(filename string) bool {
	d.mu.Lock()
	name, ok := d.files[filename]
	if ok {
		delete(d.files, filename)
	}
	d.mu.Unlock()

	// a created file can shadow a cached name with another extension
	if !ok {
		name, ok = d.nameOfFile(filename)
	}
	if ok {
		d.cache.Remove(name)
	}
	return ok
}

func (d *Dir) nameOfFile(filename string) (string, bool) {
	rel, err := filepath.Rel(d.Root, filename)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	ext := filepath.Ext(rel)
	rel = rel[:len(rel)-len(ext)]
	for _, k := range d.cache.Keys() {
		ns, path, err := SplitName(k)
		if err != nil {
			continue
		}
		if ns+"/"+path == rel || (ns == "" && path == rel) {
			return k, true
		}
	}
	return "", false
}
