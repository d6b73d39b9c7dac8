package layout

// Rect is an axis aligned rectangle
type Rect struct {
	X, Y, W, H float32
}

// XMax returns the right edge
func (r Rect) XMax() float32 {
	return r.X + r.W
}

// YMax returns the bottom edge
func (r Rect) YMax() float32 {
	return r.Y + r.H
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// UseEnd carves a rectangle of width w off the right end of r, shrinking r.
// The returned rectangle starts where the shrunk r now ends, so it may lie
// partly outside the original when w exceeds r.W.
func (r *Rect) UseEnd(w float32) Rect {
	ret := *r
	r.W -= w
	ret.X = r.X + r.W
	ret.W = w
	return ret
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
