package pb

// MoveTo moves the pen to absolute (x, y) without drawing.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	return b.push(MoveToAbs, x, y)
}

// MoveToRel moves the pen by (dx, dy) without drawing.
func (b *PathBuilder) MoveToRel(dx, dy float64) *PathBuilder {
	return b.push(MoveToRel, dx, dy)
}

// LineTo draws a line to absolute (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	return b.push(LineToAbs, x, y)
}

// LineToRel draws a line by (dx, dy).
func (b *PathBuilder) LineToRel(dx, dy float64) *PathBuilder {
	return b.push(LineToRel, dx, dy)
}

// HorizontalTo draws a horizontal line to absolute x.
func (b *PathBuilder) HorizontalTo(x float64) *PathBuilder {
	return b.push(HorizontalToAbs, x)
}

// HorizontalToRel draws a horizontal line by dx.
func (b *PathBuilder) HorizontalToRel(dx float64) *PathBuilder {
	return b.push(HorizontalToRel, dx)
}

// VerticalTo draws a vertical line to absolute y.
func (b *PathBuilder) VerticalTo(y float64) *PathBuilder {
	return b.push(VerticalToAbs, y)
}

// VerticalToRel draws a vertical line by dy.
func (b *PathBuilder) VerticalToRel(dy float64) *PathBuilder {
	return b.push(VerticalToRel, dy)
}

// CubicTo draws a cubic bezier curve to (x, y).
// (x1, y1) is the control point of the start, (x2, y2) the control point of the end.
func (b *PathBuilder) CubicTo(x1, y1, x2, y2, x, y float64) *PathBuilder {
	return b.push(CubicToAbs, x1, y1, x2, y2, x, y)
}

// CubicToRel is CubicTo with every point relative to the current pen position.
func (b *PathBuilder) CubicToRel(dx1, dy1, dx2, dy2, dx, dy float64) *PathBuilder {
	return b.push(CubicToRel, dx1, dy1, dx2, dy2, dx, dy)
}

// SmoothTo draws a smooth cubic bezier curve to (x, y).
// The first control point is the reflection of the previous curve's second one;
// the consumer of the path computes it, not the builder.
func (b *PathBuilder) SmoothTo(x2, y2, x, y float64) *PathBuilder {
	return b.push(SmoothToAbs, x2, y2, x, y)
}

// SmoothToRel is SmoothTo with relative points.
func (b *PathBuilder) SmoothToRel(dx2, dy2, dx, dy float64) *PathBuilder {
	return b.push(SmoothToRel, dx2, dy2, dx, dy)
}

// QuadTo draws a quadratic bezier curve to (x, y) with control point (x1, y1).
func (b *PathBuilder) QuadTo(x1, y1, x, y float64) *PathBuilder {
	return b.push(QuadToAbs, x1, y1, x, y)
}

// QuadToRel is QuadTo with relative points.
func (b *PathBuilder) QuadToRel(dx1, dy1, dx, dy float64) *PathBuilder {
	return b.push(QuadToRel, dx1, dy1, dx, dy)
}

// SmoothQuadTo continues a string of quadratic curves to (x, y).
func (b *PathBuilder) SmoothQuadTo(x, y float64) *PathBuilder {
	return b.push(SmoothQuadToAbs, x, y)
}

// SmoothQuadToRel is SmoothQuadTo with a relative end point.
func (b *PathBuilder) SmoothQuadToRel(dx, dy float64) *PathBuilder {
	return b.push(SmoothQuadToRel, dx, dy)
}

// ArcTo draws an elliptical arc to (x, y).
// rx, ry are radii, xAxisRotation is in degrees. largeArc and sweep
// are written as 1 or 0.
func (b *PathBuilder) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) *PathBuilder {
	return b.push(ArcToAbs, rx, ry, xAxisRotation, flagValue(largeArc), flagValue(sweep), x, y)
}

// ArcToRel is ArcTo with a relative end point.
func (b *PathBuilder) ArcToRel(rx, ry, xAxisRotation float64, largeArc, sweep bool, dx, dy float64) *PathBuilder {
	return b.push(ArcToRel, rx, ry, xAxisRotation, flagValue(largeArc), flagValue(sweep), dx, dy)
}
