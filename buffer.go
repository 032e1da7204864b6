package oxide

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one BGRX pixel.
const BytesPerPixel = 4

// OffscreenBuffer is a top-down 32-bit pixel buffer. Each pixel is stored as
// B, G, R, X bytes, so reading it as a little-endian uint32 yields 0xXXRRGGBB.
// Rows are Pitch bytes apart. The platform owns the memory; the engine only
// borrows it for the duration of a frame.
type OffscreenBuffer struct {
	Memory []byte
	Width  int
	Height int
	Pitch  int
}

// NewOffscreenBuffer allocates a zeroed buffer with a tightly packed pitch.
func NewOffscreenBuffer(width, height int) *OffscreenBuffer {
	width = max(width, 0)
	height = max(height, 0)
	pitch := width * BytesPerPixel
	return &OffscreenBuffer{
		Memory: make([]byte, pitch*height),
		Width:  width,
		Height: height,
		Pitch:  pitch,
	}
}

var errNilBuffer = errors.New("nil buffer")

// Validate checks the layout contract: non-negative dimensions, a pitch of at
// least Width*4 bytes and Height*Pitch bytes of memory.
func (b *OffscreenBuffer) Validate() error {
	if b == nil {
		return errNilBuffer
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("invalid buffer size %dx%d", b.Width, b.Height)
	}
	if b.Pitch < b.Width*BytesPerPixel {
		return fmt.Errorf("buffer pitch %d is less than width*%d (%d)", b.Pitch, BytesPerPixel, b.Width*BytesPerPixel)
	}
	if len(b.Memory) < b.Pitch*b.Height {
		return fmt.Errorf("buffer memory %d bytes, need %d", len(b.Memory), b.Pitch*b.Height)
	}
	return nil
}

// offset returns the byte offset of pixel (x, y).
func (b *OffscreenBuffer) offset(x, y uint32) int {
	return int(y)*b.Pitch + int(x)*BytesPerPixel
}

// Pixel returns the raw 0xXXRRGGBB value at (x, y). Coordinates must be in
// bounds.
func (b *OffscreenBuffer) Pixel(x, y uint32) uint32 {
	return binary.LittleEndian.Uint32(b.Memory[b.offset(x, y):])
}

func (b *OffscreenBuffer) setPixel(x, y uint32, v uint32) {
	binary.LittleEndian.PutUint32(b.Memory[b.offset(x, y):], v)
}

// ColorModel implements image.Image.
func (b *OffscreenBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *OffscreenBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image. The padding byte is ignored; pixels are opaque.
func (b *OffscreenBuffer) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	v := b.Pixel(uint32(x), uint32(y))
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// Set implements draw.Image so standard image code (font drawing in
// particular) can target the buffer. Out-of-bounds writes are ignored.
func (b *OffscreenBuffer) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	b.setPixel(uint32(x), uint32(y), 0xFF000000|uint32(rgba.R)<<16|uint32(rgba.G)<<8|uint32(rgba.B))
}

// argbColor converts a 0xAARRGGBB value to a premultiplied color.RGBA.
func argbColor(v uint32) color.RGBA {
	a := v >> 24
	pre := func(c uint32) uint8 { return uint8(c * a / 0xFF) }
	return color.RGBA{R: pre(v >> 16 & 0xFF), G: pre(v >> 8 & 0xFF), B: pre(v & 0xFF), A: uint8(a)}
}

// CopyRGBA writes the buffer into dst as tightly packed, opaque RGBA bytes.
// dst must hold at least Width*Height*4 bytes.
func (b *OffscreenBuffer) CopyRGBA(dst []byte) {
	i := 0
	for y := 0; y < b.Height; y++ {
		row := b.Memory[y*b.Pitch : y*b.Pitch+b.Width*BytesPerPixel]
		for x := 0; x < len(row); x += BytesPerPixel {
			dst[i] = row[x+2]
			dst[i+1] = row[x+1]
			dst[i+2] = row[x]
			dst[i+3] = 0xFF
			i += BytesPerPixel
		}
	}
}

// RGBA returns a copy of the buffer as an opaque *image.RGBA.
func (b *OffscreenBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	b.CopyRGBA(img.Pix)
	return img
}
