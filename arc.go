package curve

import (
	"iter"
	"math"
	"slices"
)

type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var _ ClosedShape = Arc{}
var _ ParametricCurve = Arc{}
var _ Arclener = Arc{}

// Contains implements ClosedShape.
func (a Arc) Contains(pt Point) bool {
	return a.Winding(pt) != 0
}

func (a Arc) Path(tolerance float64) BezPath { return slices.Collect(a.PathElements(tolerance)) }

func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 = sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// / Take the ellipse radii, how the radii are rotated, and the sweep angle, and return a
// / point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// derivative of sampleEllipse with respect to angle.
func sampleEllipseDerivative(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := -radii.X * sin
	v := radii.Y * cos
	return rotatePt(Vec2{u, v}, xRotation)
}

// / Rotate `pt` about the origin by `angle` radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

func (a Arc) Area() float64 {
	return math.Pi * a.Radii.X * a.Radii.Y
}

// Eval evaluates the arc at parameter t, mapping [0, 1] onto
// [StartAngle, StartAngle+SweepAngle].
func (a Arc) Eval(t float64) Point {
	angle := a.StartAngle + t*a.SweepAngle
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, angle))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// TangentAt returns the (non-normalized) tangent vector at t.
func (a Arc) TangentAt(t float64) Vec2 {
	angle := a.StartAngle + t*a.SweepAngle
	return sampleEllipseDerivative(a.Radii, a.XRotation, angle).Mul(a.SweepAngle)
}

func (a Arc) Subsegment(t0, t1 float64) Arc {
	return Arc{
		Center:     a.Center,
		Radii:      a.Radii,
		StartAngle: a.StartAngle + t0*a.SweepAngle,
		SweepAngle: (t1 - t0) * a.SweepAngle,
		XRotation:  a.XRotation,
	}
}

func (a Arc) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return a.Subsegment(t0, t1)
}

func (a Arc) Subdivide() (Arc, Arc) {
	return a.Subsegment(0.0, 0.5), a.Subsegment(0.5, 1.0)
}

func (a Arc) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return a.Subdivide()
}

// Reversed returns an arc tracing the same points in the opposite direction.
func (a Arc) Reversed() Arc {
	return Arc{
		Center:     a.Center,
		Radii:      a.Radii,
		StartAngle: a.StartAngle + a.SweepAngle,
		SweepAngle: -a.SweepAngle,
		XRotation:  a.XRotation,
	}
}

// angleParam reports the parameter t in [0, 1] at which the arc crosses
// angle, if any. Since |SweepAngle| is assumed to be at most a handful of
// full turns, it tries a small number of 2π-shifted candidates.
func (a Arc) angleParam(angle float64) (float64, bool) {
	if a.SweepAngle == 0 {
		return 0, false
	}
	diff := angle - a.StartAngle
	for range 4 {
		t := diff / a.SweepAngle
		if t >= 0.0 && t <= 1.0 {
			return t, true
		}
		if t < 0.0 {
			diff += math.Copysign(2.0*math.Pi, a.SweepAngle)
		} else {
			diff -= math.Copysign(2.0*math.Pi, a.SweepAngle)
		}
	}
	return 0, false
}

// BoundingBox implements Shape. It finds the extremal angles of the
// underlying ellipse (where the tangent is vertical or horizontal) that fall
// within the arc's sweep, in addition to the endpoints.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.Start(), a.End())
	sin, cos := math.Sincos(a.XRotation)

	angleX := math.Atan2(-a.Radii.Y*sin, a.Radii.X*cos)
	angleY := math.Atan2(a.Radii.Y*cos, a.Radii.X*sin)
	for _, base := range [4]float64{angleX, angleX + math.Pi, angleY, angleY + math.Pi} {
		if t, ok := a.angleParam(base); ok {
			bbox = bbox.UnionPoint(a.Eval(t))
		}
	}
	return bbox
}

// Perimeter returns the arc length, computed via Gauss-Legendre quadrature of
// the ellipse's speed function.
//
// [wikipedia]: https://en.wikipedia.org/wiki/Ellipse#Circumference
func (a Arc) Perimeter(accuracy float64) float64 {
	return a.Arclen(accuracy)
}

func (a Arc) Arclen(accuracy float64) float64 {
	if a.Radii.X == a.Radii.Y {
		// Circular arc: exact.
		return math.Abs(a.SweepAngle) * a.Radii.X
	}
	half := 0.5 * a.SweepAngle
	mid := a.StartAngle + half
	var sum float64
	for _, c := range gaussLegendreCoeffs16Half {
		w, x := c[0], c[1]
		speed := sampleEllipseDerivative(a.Radii, a.XRotation, mid+x*half).Hypot() +
			sampleEllipseDerivative(a.Radii, a.XRotation, mid-x*half).Hypot()
		sum += w * speed
	}
	return sum * math.Abs(half)
}

// Winding implements ClosedShape by summing the winding contributions of the
// arc's cubic Bézier approximation.
func (a Arc) Winding(pt Point) int {
	var w int
	for seg := range Segments(a.PathElements(1e-4)) {
		w += seg.Winding(pt)
	}
	return w
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) Transform(aff Affine) Arc {
	// Only translation and uniform scale/rotation are represented exactly;
	// for general affine maps the radii are scaled by the singular values of
	// aff and the angles are offset by its rotation, which approximates the
	// transformed arc.
	scale, rot := aff.svd()
	return Arc{
		Center:     a.Center.Transform(aff),
		Radii:      Vec2{X: a.Radii.X * scale.X, Y: a.Radii.Y * scale.Y},
		StartAngle: a.StartAngle + rot,
		SweepAngle: a.SweepAngle,
		XRotation:  a.XRotation + rot,
	}
}
