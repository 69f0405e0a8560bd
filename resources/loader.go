// Package resources loads image assets in the background and reports when
// the whole requested set is available.
package resources

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"
)

type entry struct {
	image image.Image
	ready bool
	err   error
}

type Loader struct {
	fsys fs.FS

	mu        sync.Mutex
	cache     map[string]*entry
	callbacks []func()
	fired     bool
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*entry),
	}
}

// Load starts loading every identifier not requested before. It does not
// block.
func (l *Loader) Load(ids ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range ids {
		if _, ok := l.cache[id]; ok {
			continue
		}
		l.cache[id] = &entry{}
		go l.load(id)
	}
}

func (l *Loader) load(id string) {
	img, err := l.decode(id)

	l.mu.Lock()
	e := l.cache[id]
	if err != nil {
		// A failed resource stays unavailable, so the set never becomes ready.
		e.err = err
		l.mu.Unlock()
		log.Printf("loading %s: %v", id, err)
		return
	}
	e.image = img
	e.ready = true

	var callbacks []func()
	if !l.fired && l.isReady() {
		l.fired = true
		callbacks = l.callbacks
		l.callbacks = nil
	}
	l.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}

func (l *Loader) decode(id string) (image.Image, error) {
	file, err := l.fsys.Open(id)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Get returns the image for id once it has loaded.
func (l *Loader) Get(id string) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.cache[id]
	if !ok || !e.ready {
		return nil, false
	}
	return e.image, true
}

// Err returns the load failure for id, if any.
func (l *Loader) Err(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.cache[id]; ok {
		return e.err
	}
	return nil
}

func (l *Loader) IsReady() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isReady()
}

func (l *Loader) isReady() bool {
	for _, e := range l.cache {
		if !e.ready {
			return false
		}
	}
	return true
}

// OnReady registers callback to run once, the first time every requested
// resource has loaded. It runs on the goroutine that finished the last load,
// or immediately if that moment has already passed.
func (l *Loader) OnReady(callback func()) {
	l.mu.Lock()
	if !l.fired {
		l.callbacks = append(l.callbacks, callback)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	callback()
}
