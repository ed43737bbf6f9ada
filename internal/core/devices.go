package core

// Display is the pixel sink the compositor streams into. A caller declares a
// target rectangle and then writes exactly one color per pixel of that
// rectangle in row-major order.
type Display interface {
	DeclareRegion(r Region)
	WritePixel(c Color)
	Clear(c Color)
}

// SwitchReader polls the board buttons. Readings are active-low.
type SwitchReader interface {
	ReadSwitchMask() SwitchMask
}

// ToneOutput drives the speaker with a square wave of the given timer period.
// A period of zero silences the output.
type ToneOutput interface {
	SetTone(period int)
}

// TextRenderer rasterizes a label into a display. (x, y) is the top-left
// corner of the first glyph cell.
type TextRenderer interface {
	DrawText(d Display, x, y int, text string, fg, bg Color)
	// Measure returns the pixel size of the rendered text.
	Measure(text string) Vec2
}

// Devices bundles the collaborators a game needs at construction time.
type Devices struct {
	Display Display
	Input   SwitchReader
	Tone    ToneOutput
	Text    TextRenderer
}

// SwitchFunc adapts a function to SwitchReader.
type SwitchFunc func() SwitchMask

// ReadSwitchMask calls f.
func (f SwitchFunc) ReadSwitchMask() SwitchMask {
	return f()
}

// NopTone discards tone requests.
type NopTone struct{}

// SetTone does nothing.
func (NopTone) SetTone(int) {}
