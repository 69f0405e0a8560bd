package client

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"starfield/resources"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	dir = "assets"
)

//go:embed assets/img/*
var assets embed.FS

//go:embed assets/version.txt
var Version string

// AssetFS returns the filesystem sprites are loaded from: the embedded images
// unless an on-disk directory is configured.
func AssetFS(override string) (fs.FS, error) {
	if override != "" {
		return os.DirFS(override), nil
	}
	return fs.Sub(assets, dir)
}

type Assets struct {
	loader *resources.Loader
	names  []string

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

// LoadAssets starts loading names in the background.
func LoadAssets(fsys fs.FS, names ...string) *Assets {
	a := &Assets{
		loader: resources.NewLoader(fsys),
		names:  names,
		images: make(map[string]*ebiten.Image),
	}
	a.loader.Load(names...)
	return a
}

func (a *Assets) OnReady(callback func()) {
	a.loader.OnReady(callback)
}

func (a *Assets) Ready() bool {
	return a.loader.IsReady()
}

// Failures lists the sprites that could not be decoded, one per line.
func (a *Assets) Failures() string {
	var lines []string
	for _, name := range a.names {
		if err := a.loader.Err(name); err != nil {
			lines = append(lines, fmt.Sprintf("%s: %v", name, err))
		}
	}
	return strings.Join(lines, "\n")
}

// Image converts the decoded sprite on first use.
func (a *Assets) Image(name string) *ebiten.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if image, ok := a.images[name]; ok {
		return image
	}
	decoded, ok := a.loader.Get(name)
	if !ok {
		log.Fatalf("invalid image name: %s", name)
	}
	image := ebiten.NewImageFromImage(decoded)
	a.images[name] = image
	return image
}
