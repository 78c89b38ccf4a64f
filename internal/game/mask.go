package game

import "math"

// Mask is a boolean silhouette grid used for pixel-accurate collision.
// Coordinates are local to the mask's top-left corner.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// NewSolidMask creates a fully opaque rectangular mask. Obstacle segments
// are solid rectangles; only the avatar has a non-trivial silhouette.
func NewSolidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks the pixel at (x, y) as opaque. Out-of-bounds is ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = true
}

// At reports whether the pixel at (x, y) is opaque. Out-of-bounds is
// transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any opaque pixel of m coincides with an opaque
// pixel of other, where (dx, dy) is the position of other's origin relative
// to m's origin. Iteration is restricted to the intersection of the two
// bounding boxes.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}

// Rotate returns the mask rotated counterclockwise by deg degrees, in an
// expanded bounding box, using nearest-neighbour inverse sampling. A zero
// angle returns the receiver unchanged.
func (m *Mask) Rotate(deg float64) *Mask {
	if deg == 0 {
		return m
	}

	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)

	w := float64(m.w)
	h := float64(m.h)
	rw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin)))
	rh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos)))

	out := NewMask(rw, rh)
	cx, cy := w/2, h/2
	rcx, rcy := float64(rw)/2, float64(rh)/2

	for y := 0; y < rh; y++ {
		for x := 0; x < rw; x++ {
			// Pixel center relative to the rotated image center.
			dx := float64(x) + 0.5 - rcx
			dy := float64(y) + 0.5 - rcy
			// Inverse rotation back into source coordinates (y-down space).
			sx := dx*cos + dy*sin + cx
			sy := -dx*sin + dy*cos + cy
			if m.At(int(math.Floor(sx)), int(math.Floor(sy))) {
				out.bits[y*rw+x] = true
			}
		}
	}
	return out
}

// birdFrameMask builds one wing-animation frame of the avatar silhouette:
// an elliptical body with a triangular wing rotated by wingDeg around the
// sprite center.
func birdFrameMask(w, h int, wingDeg float64) *Mask {
	m := NewMask(w, h)

	fw := float64(w)
	fh := float64(h)
	cx, cy := fw/2, fh/2
	rx, ry := fw/2, fh/2

	// Wing triangle in sprite coordinates, before rotation.
	ax, ay := 0.1*fw, 0.5*fh
	bx, by := 0.5*fw, 0.5*fh
	tx, ty := 0.3*fw, 0.9*fh

	rad := wingDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rot := func(px, py float64) (float64, float64) {
		dx, dy := px-cx, py-cy
		return dx*cos + dy*sin + cx, -dx*sin + dy*cos + cy
	}
	ax, ay = rot(ax, ay)
	bx, by = rot(bx, by)
	tx, ty = rot(tx, ty)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5

			ex := (px - cx) / rx
			ey := (py - cy) / ry
			if ex*ex+ey*ey <= 1 {
				m.bits[y*w+x] = true
				continue
			}
			if pointInTriangle(px, py, ax, ay, bx, by, tx, ty) {
				m.bits[y*w+x] = true
			}
		}
	}
	return m
}

// pointInTriangle tests (px, py) against the triangle (ax,ay)-(bx,by)-(cx,cy)
// using signed edge cross products.
func pointInTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := edgeSign(px, py, ax, ay, bx, by)
	d2 := edgeSign(px, py, bx, by, cx, cy)
	d3 := edgeSign(px, py, cx, cy, ax, ay)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}
