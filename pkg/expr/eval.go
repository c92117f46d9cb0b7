package expr

import "math"

// Evaluation never checks numeric domains: ln of a non-positive value,
// division by zero and friends produce IEEE-754 NaN/Inf, which propagate
// through enclosing nodes by ordinary arithmetic.

// Eval for VarNode: f(x) = x, f'(x) = 1.
func (v *VarNode) Eval(x float64) (float64, float64) {
	return x, 1
}

// Eval for ConstNode: f(x) = k, f'(x) = 0.
func (c *ConstNode) Eval(x float64) (float64, float64) {
	return c.Val, 0
}

// Eval for UnaryNode dispatches on op, scaling the local derivative by the
// child's derivative (chain rule).
func (u *UnaryNode) Eval(x float64) (float64, float64) {
	y, dy := u.Child.Eval(x)

	switch u.Op {
	case OpNeg:
		return -y, -dy

	case OpExp:
		e := math.Exp(y)
		return e, dy * e

	case OpLn:
		return math.Log(y), dy / y

	case OpSin:
		s, c := math.Sincos(y)
		return s, dy * c

	case OpCos:
		s, c := math.Sincos(y)
		return c, dy * -s

	case OpAtan:
		return math.Atan(y), dy / (1 + y*y)

	default:
		return math.NaN(), math.NaN()
	}
}

// Eval for BinaryNode evaluates both children at the same input, then
// combines by the standard differentiation rules.
func (b *BinaryNode) Eval(x float64) (float64, float64) {
	u, du := b.Left.Eval(x)
	v, dv := b.Right.Eval(x)

	switch b.Op {
	case OpAdd:
		return u + v, du + dv

	case OpSub:
		return u - v, du - dv

	case OpMul:
		// product rule
		return u * v, u*dv + v*du

	case OpDiv:
		// quotient rule
		return u / v, (du*v - dv*u) / (v * v)

	default:
		return math.NaN(), math.NaN()
	}
}

// Eval for PowNode: f(x) = u^n, f'(x) = u' * n * u^(n-1).
func (p *PowNode) Eval(x float64) (float64, float64) {
	y, dy := p.Child.Eval(x)
	return math.Pow(y, p.Exponent), dy * p.Exponent * math.Pow(y, p.Exponent-1)
}

// Eval for ComposeNode: (f∘g)(x) = f(g(x)), derivative g'(x) * f'(g(x)).
// The only node whose children see different inputs: Inner runs at x,
// Outer runs at Inner's value, so the order is inner-then-outer.
func (n *ComposeNode) Eval(x float64) (float64, float64) {
	h, dh := n.Inner.Eval(x)
	g, dg := n.Outer.Eval(h)
	return g, dh * dg
}
