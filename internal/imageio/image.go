// Package imageio provides the image codec boundary: decoding source
// images into memory-resident RGBA buffers and encoding result buffers
// to disk. Projection code depends only on these operations, not on
// any particular codec.
package imageio

import (
	"image"
)

// Image is a decoded rectangular texel grid. It exclusively owns its
// pixel buffer: 4 bytes per texel (R, G, B, A), row-major. Created
// once at decode time and treated as immutable afterward.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FromImage converts any decoded image.Image into an owned RGBA buffer.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	m := NewImage(bounds.Dx(), bounds.Dy())

	// Fast path when the decoder already produced RGBA with a tight stride.
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == m.Width*4 {
		copy(m.Pix, rgba.Pix)
		return m
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := src.At(x, y).RGBA()
			m.Pix[i] = byte(r16 >> 8)
			m.Pix[i+1] = byte(g16 >> 8)
			m.Pix[i+2] = byte(b16 >> 8)
			m.Pix[i+3] = byte(a16 >> 8)
			i += 4
		}
	}
	return m
}

// Texel returns the packed color at (x, y). Channels occupy the packed
// value low to high as R, G, B, A, matching the buffer byte order.
func (m *Image) Texel(x, y int) uint32 {
	i := (y*m.Width + x) * 4
	return uint32(m.Pix[i]) |
		uint32(m.Pix[i+1])<<8 |
		uint32(m.Pix[i+2])<<16 |
		uint32(m.Pix[i+3])<<24
}

// SetTexel stores a packed color at (x, y).
func (m *Image) SetTexel(x, y int, c uint32) {
	i := (y*m.Width + x) * 4
	m.Pix[i] = byte(c)
	m.Pix[i+1] = byte(c >> 8)
	m.Pix[i+2] = byte(c >> 16)
	m.Pix[i+3] = byte(c >> 24)
}

// PackRGBA packs four channel bytes into a texel value.
func PackRGBA(r, g, b, a byte) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// UnpackRGBA splits a packed texel value into channel bytes.
func UnpackRGBA(c uint32) (r, g, b, a byte) {
	return byte(c), byte(c >> 8), byte(c >> 16), byte(c >> 24)
}

// RGBA returns a stdlib view of the buffer for encoding. The returned
// image shares the pixel buffer; callers must not mutate it.
func (m *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
