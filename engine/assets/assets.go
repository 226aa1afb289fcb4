package assets

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/spaghettifunk/reaper/engine/assets/loaders"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/platform"
)

// Image is a handle to a decoded image uploaded to a surface. Its identity
// survives hot reloads; only the texture behind it is swapped.
type Image struct {
	ID         uuid.UUID
	Path       string
	Width      int32
	Height     int32
	LastLoaded time.Time

	texture platform.Texture
	manager *AssetManager
}

// Texture returns the uploaded texture, nil once the image is released.
func (i *Image) Texture() platform.Texture {
	return i.texture
}

// Released reports whether Release was already called.
func (i *Image) Released() bool {
	return i.texture == nil
}

// Release destroys the texture. Releasing twice is a no-op.
func (i *Image) Release() {
	if i.manager != nil {
		i.manager.Release(i)
		return
	}
	if i.texture != nil {
		i.texture.Destroy()
		i.texture = nil
	}
}

type AssetManager struct {
	surface     platform.Surface
	imageLoader *loaders.ImageLoader
	fontLoader  *loaders.BitmapFontLoader

	// Live handles by cleaned absolute path.
	images map[string][]*Image

	fsnotify *fsnotify.Watcher
	// Watched directories and how many handles need each of them.
	watched map[string]int
}

// NewAssetManager builds a manager uploading to surface. With hotReload set,
// files of acquired images are watched and Refresh re-uploads them on change.
func NewAssetManager(surface platform.Surface, hotReload bool) (*AssetManager, error) {
	am := &AssetManager{
		surface:     surface,
		imageLoader: &loaders.ImageLoader{},
		fontLoader:  &loaders.BitmapFontLoader{},
		images:      make(map[string][]*Image),
		watched:     make(map[string]int),
	}
	if hotReload {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("%w: asset watcher: %s", core.ErrInit, err)
		}
		am.fsnotify = w
	}
	return am, nil
}

// LoadImage decodes the file at path into RGBA pixels without uploading it.
func (am *AssetManager) LoadImage(path string) (*image.RGBA, error) {
	return am.imageLoader.Load(path)
}

// LoadBitmapFont reads a BMFont descriptor.
func (am *AssetManager) LoadBitmapFont(path string) (*loaders.BitmapFontData, error) {
	return am.fontLoader.Load(path)
}

// Acquire decodes the file at path and uploads it to the surface. The
// returned handle is owned by the caller until released.
func (am *AssetManager) Acquire(path string) (*Image, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrAsset, err)
	}

	pixels, err := am.LoadImage(abs)
	if err != nil {
		return nil, err
	}
	tex, err := am.surface.CreateTexture(pixels)
	if err != nil {
		return nil, err
	}

	img := &Image{
		ID:         uuid.New(),
		Path:       abs,
		LastLoaded: time.Now(),
		texture:    tex,
		manager:    am,
	}
	img.Width, img.Height = tex.Size()

	if err := am.watch(abs); err != nil {
		core.LogWarn("hot reload disabled for %s: %s", abs, err)
	}
	am.images[abs] = append(am.images[abs], img)

	core.LogDebug("acquired image %s (%s) %dx%d", img.ID, abs, img.Width, img.Height)
	return img, nil
}

func (am *AssetManager) Release(img *Image) {
	if img == nil || img.texture == nil {
		return
	}
	img.texture.Destroy()
	img.texture = nil

	handles := am.images[img.Path]
	for i, h := range handles {
		if h == img {
			handles = append(handles[:i], handles[i+1:]...)
			break
		}
	}
	if len(handles) == 0 {
		delete(am.images, img.Path)
	} else {
		am.images[img.Path] = handles
	}
	am.unwatch(img.Path)

	core.LogDebug("released image %s (%s)", img.ID, img.Path)
}

// Live returns the number of acquired, unreleased images.
func (am *AssetManager) Live() int {
	n := 0
	for _, handles := range am.images {
		n += len(handles)
	}
	return n
}

// Refresh drains pending file notifications without blocking and re-uploads
// every changed image in place. It returns how many handles were reloaded.
// A failed reload keeps the previous texture.
func (am *AssetManager) Refresh() int {
	if am.fsnotify == nil {
		return 0
	}

	changed := make(map[string]struct{})
drain:
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				break drain
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name := filepath.Clean(e.Name)
			if _, live := am.images[name]; live {
				changed[name] = struct{}{}
			}
		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				break drain
			}
			core.LogError("asset watcher: %s", err)
		default:
			break drain
		}
	}

	reloaded := 0
	for path := range changed {
		reloaded += am.reload(path)
	}
	return reloaded
}

func (am *AssetManager) reload(path string) int {
	pixels, err := am.LoadImage(path)
	if err != nil {
		core.LogWarn("keeping previous texture for %s: %s", path, err)
		return 0
	}

	reloaded := 0
	for _, img := range am.images[path] {
		tex, err := am.surface.CreateTexture(pixels)
		if err != nil {
			core.LogWarn("keeping previous texture for %s: %s", path, err)
			continue
		}
		img.texture.Destroy()
		img.texture = tex
		img.Width, img.Height = tex.Size()
		img.LastLoaded = time.Now()
		reloaded++
		core.LogInfo("reloaded image %s (%s)", img.ID, path)
	}
	return reloaded
}

// Files are watched through their directory so editors that replace the
// file on save keep being noticed.
func (am *AssetManager) watch(path string) error {
	if am.fsnotify == nil {
		return nil
	}
	dir := filepath.Dir(path)
	if am.watched[dir] == 0 {
		if err := am.fsnotify.Add(dir); err != nil {
			return err
		}
	}
	am.watched[dir]++
	return nil
}

func (am *AssetManager) unwatch(path string) {
	if am.fsnotify == nil {
		return
	}
	dir := filepath.Dir(path)
	if am.watched[dir] == 0 {
		return
	}
	am.watched[dir]--
	if am.watched[dir] == 0 {
		delete(am.watched, dir)
		if err := am.fsnotify.Remove(dir); err != nil {
			core.LogDebug("unwatch %s: %s", dir, err)
		}
	}
}

// Shutdown releases every live image and stops watching files.
func (am *AssetManager) Shutdown() error {
	for _, handles := range am.images {
		for _, img := range append([]*Image(nil), handles...) {
			am.Release(img)
		}
	}
	if am.fsnotify != nil {
		err := am.fsnotify.Close()
		am.fsnotify = nil
		return err
	}
	return nil
}
