package renderer

import (
	"math"
	"runtime"
	"sync"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/world"
)

// Camera maps pixel coordinates onto world-space rays. The view transform
// positions and orients the eye; hsize/vsize and the field of view fix the
// size of a pixel on the canvas one unit in front of the eye.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}
	c.derivePixelGeometry()
	return c
}

// derivePixelGeometry computes the half extents of the canvas one unit in
// front of the eye and the world-space size of a single pixel.
func (c *Camera) derivePixelGeometry() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.HSize)
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform assigns the view transform, caching its inverse. Returns
// core.ErrSingularMatrix for a non-invertible matrix.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// PixelSize returns the world-space edge length of one pixel
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the pixel
// at (px, py).
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates; +x is to the left because the
	// camera looks toward -z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces one ray through every pixel and collects the colors into
// a canvas. Rows are partitioned across workers; the scene is read-only
// during the render and every worker writes disjoint canvas rows, so no
// locking is needed.
func (c *Camera) Render(w *world.World) *Canvas {
	return c.RenderWithWorkers(w, runtime.NumCPU())
}

// RenderWithWorkers renders with an explicit worker count. A count below 1
// falls back to one worker per CPU.
func (c *Camera) RenderWithWorkers(w *world.World, numWorkers int) *Canvas {
	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}

	canvas := NewCanvas(c.HSize, c.VSize)
	rows := make(chan int, c.VSize)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				c.renderRow(w, canvas, y)
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return canvas
}

// renderRow traces every pixel of one canvas row
func (c *Camera) renderRow(w *world.World, canvas *Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.pixels[y*canvas.Width+x] = w.ColorAt(ray)
	}
}
