// SPDX-License-Identifier: MIT

package geometry

import "math"

// Constraint is the half-plane A·x + B·y ≤ C. All constraints are
// "less than or equal"; flip signs to express ≥.
type Constraint struct {
	Line
	C float64
}

// The implicit non-negativity constraints.
var (
	// AxisX is x ≥ 0, written −1·x + 0·y ≤ 0.
	AxisX = Constraint{Line: Line{A: -1, B: 0}, C: 0}

	// AxisY is y ≥ 0, written 0·x − 1·y ≤ 0.
	AxisY = Constraint{Line: Line{A: 0, B: -1}, C: 0}
)

// NewConstraint builds a·x + b·y ≤ c.
//
// Errors:
//   - ErrNonFinite      if any coefficient is NaN or ±Inf.
//   - ErrDegenerateLine if a = b = 0.
func NewConstraint(a, b, c float64) (Constraint, error) {
	k := Constraint{Line: Line{A: a, B: b}, C: c}
	if err := k.Validate(); err != nil {
		return Constraint{}, err
	}

	return k, nil
}

// Validate checks a constraint built as a literal.
func (k Constraint) Validate() error {
	if err := k.Line.valid(); err != nil {
		return err
	}
	if isNonFinite(k.C) {
		return ErrNonFinite
	}

	return nil
}

// XSide classifies the constraint against the x axis.
func (k Constraint) XSide() Side { return sideOf(k.A) }

// YSide classifies the constraint against the y axis.
func (k Constraint) YSide() Side { return sideOf(k.B) }

// Sides returns (XSide, YSide). It depends only on the coefficient signs.
func (k Constraint) Sides() (Side, Side) {
	return k.XSide(), k.YSide()
}

// AtX returns the y of the boundary point with the given x. Undefined for
// vertical boundaries (B = 0).
func (k Constraint) AtX(x float64) float64 {
	return (k.C - k.A*x) / k.B
}

// AtY returns the x of the boundary point with the given y. Undefined for
// horizontal boundaries (A = 0).
func (k Constraint) AtY(y float64) float64 {
	return (k.C - k.B*y) / k.A
}

// Contains reports whether p satisfies the constraint. Points on the
// boundary satisfy it.
func (k Constraint) Contains(p Point) bool {
	return k.A*p.X+k.B*p.Y <= k.C
}

// Admits is Contains with a relative slack of tol, scaled by the magnitude
// of the terms involved. The solvers use it so that a vertex computed from
// two boundaries is not rejected by a third boundary passing through it.
func (k Constraint) Admits(p Point, tol float64) bool {
	ax, by := k.A*p.X, k.B*p.Y
	scale := math.Max(1, math.Abs(ax)+math.Abs(by)+math.Abs(k.C))

	return ax+by <= k.C+tol*scale
}

// Slack returns C − (A·x + B·y); negative when p violates the constraint.
func (k Constraint) Slack(p Point) float64 {
	return k.C - (k.A*p.X + k.B*p.Y)
}

// Foot returns the point of the boundary nearest the origin.
func (k Constraint) Foot() Point {
	return foot(k)
}

// Intersect intersects the boundaries of k and o. See the package-level Intersect.
func (k Constraint) Intersect(o Constraint) Intersection {
	return Intersect(k, o)
}

// String renders "Ax + By <= C".
func (k Constraint) String() string {
	return k.Line.String() + " <= " + formatFloat(k.C)
}
