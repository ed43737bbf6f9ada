package core

import (
	"strings"
	"sync"
)

// Framebuffer is an in-memory Display. It decouples the compositor from the
// physical output: front ends copy a Snapshot and present it however they
// like (terminal half-blocks, a window texture, an SSH session).
//
// Writers bracket a paint pass with Lock/Unlock. Readers use Snapshot, At or
// String, which take the read lock.
type Framebuffer struct {
	mu     sync.RWMutex
	width  int
	height int
	pix    []Color

	window Region // declared region, unclipped
	cursor Vec2
	open   bool
}

// NewFramebuffer creates a framebuffer with the given dimensions, cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Bounds returns the whole framebuffer as a Region.
func (f *Framebuffer) Bounds() Region {
	return NewRegion(0, 0, f.width-1, f.height-1)
}

// Lock acquires the write lock for a paint pass.
func (f *Framebuffer) Lock() {
	f.mu.Lock()
}

// Unlock releases the write lock.
func (f *Framebuffer) Unlock() {
	f.mu.Unlock()
}

// DeclareRegion sets the target rectangle for subsequent WritePixel calls.
// The region may extend beyond the screen; off-screen pixels still consume a
// slot in the stream but are not stored.
func (f *Framebuffer) DeclareRegion(r Region) {
	f.window = r
	f.cursor = r.TopLeft
	f.open = !r.Empty()
}

// WritePixel stores c at the cursor and advances it row-major. After the last
// pixel of the region the cursor wraps to its first pixel, as the LCD
// controller does.
func (f *Framebuffer) WritePixel(c Color) {
	if !f.open {
		return
	}
	x, y := f.cursor.X, f.cursor.Y
	if x >= 0 && x < f.width && y >= 0 && y < f.height {
		f.pix[y*f.width+x] = c
	}

	f.cursor.X++
	if f.cursor.X > f.window.BotRight.X {
		f.cursor.X = f.window.TopLeft.X
		f.cursor.Y++
		if f.cursor.Y > f.window.BotRight.Y {
			f.cursor.Y = f.window.TopLeft.Y
		}
	}
}

// Clear fills the entire framebuffer with c and resets the declared region.
func (f *Framebuffer) Clear(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
	f.open = false
}

// At returns the pixel at (x, y). Out-of-bounds coordinates return black.
func (f *Framebuffer) At(x, y int) Color {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorBlack
	}
	return f.pix[y*f.width+x]
}

// Snapshot copies the pixels into dst, growing it if needed, and returns it.
func (f *Framebuffer) Snapshot(dst []Color) []Color {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if cap(dst) < len(f.pix) {
		dst = make([]Color, len(f.pix))
	}
	dst = dst[:len(f.pix)]
	copy(dst, f.pix)
	return dst
}

// asciiRamp maps brightness to a character, dark to light.
const asciiRamp = " .:-=+*#%@"

// String renders the framebuffer as text, one rune per pixel, chosen by
// brightness. Rows are joined with newlines.
func (f *Framebuffer) String() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height) // Pre-allocate for efficiency

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			luma := f.pix[y*f.width+x].Luma()
			sb.WriteByte(asciiRamp[luma*(len(asciiRamp)-1)/255])
		}
	}
	return sb.String()
}
