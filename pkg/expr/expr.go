package expr

// Expr is the public handle for building differentiable expressions. It
// wraps a node tree and forwards Eval to it. Every constructor and method
// returns a fresh Expr and never mutates its operands, so expressions are
// immutable values that can be reused inside any number of larger trees.
type Expr struct {
	node Node
}

// X is the free variable: the identity expression f(x) = x that every
// function of one variable is built from.
var X = Expr{node: &VarNode{}}

// C lifts a scalar to a constant expression.
func C(v float64) Expr {
	return Expr{node: &ConstNode{Val: v}}
}

// Operand is anything accepted on either side of a binary constructor: an
// expression, or a raw scalar which is lifted to a constant.
type Operand interface {
	float64 | int | Expr
}

func lift[T Operand](v T) Node {
	switch t := any(v).(type) {
	case Expr:
		return t.node
	case float64:
		return &ConstNode{Val: t}
	case int:
		return &ConstNode{Val: float64(t)}
	}
	return nil // unreachable: Operand admits no other types
}

// Add returns lhs + rhs.
func Add[L, R Operand](lhs L, rhs R) Expr {
	return Expr{node: &BinaryNode{Op: OpAdd, Left: lift(lhs), Right: lift(rhs)}}
}

// Sub returns lhs - rhs.
func Sub[L, R Operand](lhs L, rhs R) Expr {
	return Expr{node: &BinaryNode{Op: OpSub, Left: lift(lhs), Right: lift(rhs)}}
}

// Mul returns lhs * rhs.
func Mul[L, R Operand](lhs L, rhs R) Expr {
	return Expr{node: &BinaryNode{Op: OpMul, Left: lift(lhs), Right: lift(rhs)}}
}

// Div returns lhs / rhs. Division by zero is not special-cased; it yields
// Inf or NaN at evaluation time.
func Div[L, R Operand](lhs L, rhs R) Expr {
	return Expr{node: &BinaryNode{Op: OpDiv, Left: lift(lhs), Right: lift(rhs)}}
}

// Fluent method forms of the binary constructors.

func (e Expr) Add(rhs Expr) Expr { return Add(e, rhs) }
func (e Expr) Sub(rhs Expr) Expr { return Sub(e, rhs) }
func (e Expr) Mul(rhs Expr) Expr { return Mul(e, rhs) }
func (e Expr) Div(rhs Expr) Expr { return Div(e, rhs) }

// Neg returns -e.
func (e Expr) Neg() Expr {
	return Expr{node: &UnaryNode{Op: OpNeg, Child: e.node}}
}

// Pow raises e to a fixed real exponent.
func (e Expr) Pow(n float64) Expr {
	return Expr{node: &PowNode{Child: e.node, Exponent: n}}
}

// Sqrt is Pow(0.5).
func (e Expr) Sqrt() Expr {
	return e.Pow(0.5)
}

// Exp returns e^u for u = e.
func (e Expr) Exp() Expr {
	return Expr{node: &UnaryNode{Op: OpExp, Child: e.node}}
}

// Ln returns the natural logarithm of e.
func (e Expr) Ln() Expr {
	return Expr{node: &UnaryNode{Op: OpLn, Child: e.node}}
}

// Sin returns sin(e).
func (e Expr) Sin() Expr {
	return Expr{node: &UnaryNode{Op: OpSin, Child: e.node}}
}

// Cos returns cos(e).
func (e Expr) Cos() Expr {
	return Expr{node: &UnaryNode{Op: OpCos, Child: e.node}}
}

// Atan returns arctan(e).
func (e Expr) Atan() Expr {
	return Expr{node: &UnaryNode{Op: OpAtan, Child: e.node}}
}

// Compose returns e ∘ inner: e evaluated at inner's result.
func (e Expr) Compose(inner Expr) Expr {
	return Expr{node: &ComposeNode{Outer: e.node, Inner: inner.node}}
}

// Eval returns the value and first derivative of the expression at x.
func (e Expr) Eval(x float64) (value, derivative float64) {
	return e.node.Eval(x)
}

// Clone returns a deep copy of the expression tree.
func (e Expr) Clone() Expr {
	return Expr{node: e.node.Clone()}
}

func (e Expr) String() string { return e.node.String() }
func (e Expr) LaTeX() string  { return e.node.LaTeX() }
func (e Expr) NodeCount() int { return e.node.NodeCount() }
func (e Expr) Depth() int     { return e.node.Depth() }
