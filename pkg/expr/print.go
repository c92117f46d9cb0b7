package expr

import (
	"fmt"
	"strconv"
)

var unaryOpNames = map[UnaryOp]string{
	OpNeg:  "-",
	OpExp:  "exp",
	OpLn:   "ln",
	OpSin:  "sin",
	OpCos:  "cos",
	OpAtan: "atan",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func formatConst(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String methods

func (v *VarNode) String() string {
	return "x"
}

func (c *ConstNode) String() string {
	return formatConst(c.Val)
}

func (u *UnaryNode) String() string {
	child := u.Child.String()
	if u.Op == OpNeg {
		return fmt.Sprintf("(-%s)", child)
	}
	return fmt.Sprintf("%s(%s)", unaryOpNames[u.Op], child)
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), binaryOpSymbols[b.Op], b.Right.String())
}

func (p *PowNode) String() string {
	return fmt.Sprintf("(%s)^%s", p.Child.String(), formatConst(p.Exponent))
}

func (n *ComposeNode) String() string {
	return fmt.Sprintf("compose(%s, %s)", n.Outer.String(), n.Inner.String())
}

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return "x"
}

func (c *ConstNode) LaTeX() string {
	return formatConst(c.Val)
}

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpNeg:
		return fmt.Sprintf("-{%s}", child)
	case OpExp:
		return fmt.Sprintf("e^{%s}", child)
	case OpLn:
		return fmt.Sprintf("\\ln{(%s)}", child)
	case OpSin:
		return fmt.Sprintf("\\sin{(%s)}", child)
	case OpCos:
		return fmt.Sprintf("\\cos{(%s)}", child)
	case OpAtan:
		return fmt.Sprintf("\\arctan{(%s)}", child)
	default:
		return child
	}
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case OpMul:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	default:
		return ""
	}
}

func (p *PowNode) LaTeX() string {
	return fmt.Sprintf("{(%s)}^{%s}", p.Child.LaTeX(), formatConst(p.Exponent))
}

func (n *ComposeNode) LaTeX() string {
	return fmt.Sprintf("{%s} \\circ {%s}", n.Outer.LaTeX(), n.Inner.LaTeX())
}
