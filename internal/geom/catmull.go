package geom

// CatmullRom is a uniform Catmull-Rom spline through a set of control points.
type CatmullRom struct {
	Points []Vec3
	Closed bool
}

// Sample returns n points spread evenly in parameter space along the spline.
// Open splines include both end points; closed ones stop one step short of
// wrapping back to the start.
func (c CatmullRom) Sample(n int) []Vec3 {
	switch {
	case n <= 0 || len(c.Points) == 0:
		return nil
	case len(c.Points) == 1:
		out := make([]Vec3, n)
		for i := range out {
			out[i] = c.Points[0]
		}
		return out
	}

	segments := len(c.Points) - 1
	if c.Closed {
		segments = len(c.Points)
	}

	out := make([]Vec3, n)
	for i := range out {
		var u float64
		if c.Closed {
			u = float64(i) / float64(n) * float64(segments)
		} else if n > 1 {
			u = float64(i) / float64(n-1) * float64(segments)
		}

		seg := int(u)
		if seg >= segments {
			seg = segments - 1
		}
		out[i] = c.segment(seg, u-float64(seg))
	}
	return out
}

func (c CatmullRom) segment(seg int, t float64) Vec3 {
	p0, p1, p2, p3 := c.point(seg-1), c.point(seg), c.point(seg+1), c.point(seg+2)

	t2 := t * t
	t3 := t2 * t
	return p0.Scale(-0.5*t3 + t2 - 0.5*t).
		Add(p1.Scale(1.5*t3 - 2.5*t2 + 1)).
		Add(p2.Scale(-1.5*t3 + 2*t2 + 0.5*t)).
		Add(p3.Scale(0.5*t3 - 0.5*t2))
}

// point indexes the control points, wrapping for closed splines and clamping
// (duplicating the end points) for open ones.
func (c CatmullRom) point(i int) Vec3 {
	n := len(c.Points)
	if c.Closed {
		return c.Points[((i%n)+n)%n]
	}
	if i < 0 {
		return c.Points[0]
	}
	if i >= n {
		return c.Points[n-1]
	}
	return c.Points[i]
}
