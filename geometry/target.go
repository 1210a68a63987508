// SPDX-License-Identifier: MIT

package geometry

// Target is the objective A·x + B·y to maximize.
type Target struct {
	Line
}

// NewTarget builds the objective a·x + b·y.
//
// Errors:
//   - ErrNonFinite     if a or b is NaN or ±Inf.
//   - ErrZeroObjective if a = b = 0.
func NewTarget(a, b float64) (Target, error) {
	t := Target{Line: Line{A: a, B: b}}
	if err := t.Validate(); err != nil {
		return Target{}, err
	}

	return t, nil
}

// Validate checks a target built as a literal.
func (t Target) Validate() error {
	if isNonFinite(t.A) || isNonFinite(t.B) {
		return ErrNonFinite
	}
	if t.A == 0 && t.B == 0 {
		return ErrZeroObjective
	}

	return nil
}

// F evaluates the objective at p.
func (t Target) F(p Point) float64 {
	return t.A*p.X + t.B*p.Y
}

// Value evaluates the objective at an optional point. A nil point has no
// value; the second result is false.
func (t Target) Value(p *Point) (float64, bool) {
	if p == nil {
		return 0, false
	}

	return t.F(*p), true
}

// String renders "maximize Ax + By".
func (t Target) String() string {
	return "maximize " + t.Line.String()
}
