package resources

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"img/bullet.png":    {Data: encodePNG(t, 10, 38)},
		"img/enemy.png":     {Data: encodePNG(t, 66, 74)},
		"img/ship.png":      {Data: encodePNG(t, 102, 83)},
		"img/starfield.png": {Data: encodePNG(t, 32, 32)},
		"img/broken.png":    {Data: []byte("not a png")},
	}
}

var ids = []string{"img/bullet.png", "img/enemy.png", "img/ship.png", "img/starfield.png"}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoaderReady(t *testing.T) {
	l := NewLoader(testFS(t))
	var calls int32
	done := make(chan struct{})
	l.OnReady(func() {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(done)
		}
	})
	l.Load(ids...)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ready callback never ran")
	}
	if !l.IsReady() {
		t.Fatal("IsReady() = false after callback")
	}
	img, ok := l.Get("img/ship.png")
	if !ok {
		t.Fatal("Get(ship) not available")
	}
	if b := img.Bounds(); b.Dx() != 102 || b.Dy() != 83 {
		t.Fatalf("ship bounds = %v", b)
	}

	// Requesting the same set again reuses the entries.
	l.Load(ids...)
	if !l.IsReady() {
		t.Fatal("reloading known ids made the loader not ready")
	}
	time.Sleep(10 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("ready callback ran %d times, want 1", n)
	}

	late := make(chan struct{})
	l.OnReady(func() { close(late) })
	select {
	case <-late:
	default:
		t.Fatal("callback registered after readiness did not run immediately")
	}
}

func TestLoaderFailureNeverReady(t *testing.T) {
	l := NewLoader(testFS(t))
	var calls int32
	l.OnReady(func() { atomic.AddInt32(&calls, 1) })
	l.Load("img/ship.png", "img/broken.png", "img/missing.png")

	waitFor(t, "broken image error", func() bool { return l.Err("img/broken.png") != nil })
	waitFor(t, "missing image error", func() bool { return l.Err("img/missing.png") != nil })
	waitFor(t, "ship image", func() bool {
		_, ok := l.Get("img/ship.png")
		return ok
	})

	if l.IsReady() {
		t.Fatal("IsReady() = true with failed resources")
	}
	if _, ok := l.Get("img/broken.png"); ok {
		t.Fatal("Get(broken) returned an image")
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("ready callback ran %d times, want 0", n)
	}
}

func TestGetUnknown(t *testing.T) {
	l := NewLoader(testFS(t))
	if _, ok := l.Get("img/ship.png"); ok {
		t.Fatal("Get before Load returned an image")
	}
	if err := l.Err("img/ship.png"); err != nil {
		t.Fatalf("Err before Load = %v", err)
	}
}
