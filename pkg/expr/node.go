package expr

// Node is the interface for all differentiable expression tree nodes.
// Eval returns the value and the first derivative of the subtree at x,
// computed in one pass (forward-mode AD).
type Node interface {
	Eval(x float64) (value, derivative float64)
	String() string
	LaTeX() string
	Clone() Node
	NodeCount() int
	Depth() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpExp
	OpLn
	OpSin
	OpCos
	OpAtan
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// VarNode represents the free variable x.
type VarNode struct{}

// ConstNode represents a real constant.
type ConstNode struct {
	Val float64
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

// PowNode raises a child expression to a fixed real exponent. The exponent
// is a parameter, not a differentiable operand.
type PowNode struct {
	Child    Node
	Exponent float64
}

// ComposeNode applies Outer to the result of Inner: f(g(x)).
type ComposeNode struct {
	Outer, Inner Node
}
