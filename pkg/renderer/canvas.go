package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
)

// ErrPixelOutOfBounds is returned when a canvas coordinate lies outside
// the canvas.
var ErrPixelOutOfBounds = errors.New("pixel coordinates out of canvas bounds")

// ppmMaxLineLength is the conventional ceiling for a line in a PPM file.
const ppmMaxLineLength = 70

// Canvas is a 2D pixel buffer of colors, row-major, initialized to black.
// Colors are stored unclamped; clamping to a displayable range happens
// only when the canvas is serialized.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel stores a color at (x, y). Out-of-range coordinates return
// ErrPixelOutOfBounds rather than being silently dropped.
func (c *Canvas) WritePixel(x, y int, col core.Color) error {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrPixelOutOfBounds, x, y, c.Width, c.Height)
	}
	c.pixels[y*c.Width+x] = col
	return nil
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) (core.Color, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return core.Color{}, fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrPixelOutOfBounds, x, y, c.Width, c.Height)
	}
	return c.pixels[y*c.Width+x], nil
}

// ToImage converts the canvas to an RGBA image, clamping each channel
// to [0, 1] and scaling to 8 bits.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.pixels[y*c.Width+x]
			img.Set(x, y, color.RGBA{
				R: channelTo8Bit(px.R),
				G: channelTo8Bit(px.G),
				B: channelTo8Bit(px.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM serializes the canvas in the plain PPM (P3) format: a text
// header with dimensions and the maximum channel value, then whitespace
// separated channel values with lines kept at or under 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	var line strings.Builder
	for y := 0; y < c.Height; y++ {
		line.Reset()
		for x := 0; x < c.Width; x++ {
			px := c.pixels[y*c.Width+x]
			for _, channel := range []float64{px.R, px.G, px.B} {
				value := fmt.Sprintf("%d", channelTo8Bit(channel))
				if line.Len() > 0 && line.Len()+1+len(value) > ppmMaxLineLength {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return err
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(value)
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// channelTo8Bit clamps a channel to [0, 1] and scales it to 0-255
func channelTo8Bit(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
