package proxy

import (
	"fmt"
	"io"
)

// Image is the capability shared by the real image and its proxy.
type Image interface {
	Display() string
}

// realImage is the expensive object: constructing one stands in for a disk
// load.
type realImage struct {
	filename string
}

func loadFromDisk(filename string) *realImage {
	return &realImage{filename: filename}
}

func (r *realImage) Display() string {
	return "displaying " + r.filename
}

// Proxy implements Image without loading anything until first use.
type Proxy struct {
	filename string
	real     *realImage
	loads    int
}

// NewProxy returns a stand-in for filename. No loading happens here.
func NewProxy(filename string) *Proxy {
	return &Proxy{filename: filename}
}

// Display loads the real image on first call, then delegates to the cached
// instance on every call.
func (p *Proxy) Display() string {
	if p.real == nil {
		p.real = loadFromDisk(p.filename)
		p.loads++
	}
	return p.real.Display()
}

// Loads reports how many times the real image was loaded from disk.
func (p *Proxy) Loads() int { return p.loads }

// Demo writes the unit's usage transcript: two displays, one disk load.
func Demo(w io.Writer) {
	img := NewProxy("photo.png")

	fmt.Fprintln(w, img.Display())
	fmt.Fprintln(w, img.Display())
	fmt.Fprintln(w, "disk loads:", img.Loads())
}
