package expr

func (v *VarNode) Clone() Node {
	return &VarNode{}
}

func (c *ConstNode) Clone() Node {
	return &ConstNode{Val: c.Val}
}

func (u *UnaryNode) Clone() Node {
	return &UnaryNode{
		Op:    u.Op,
		Child: u.Child.Clone(),
	}
}

func (b *BinaryNode) Clone() Node {
	return &BinaryNode{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}

func (p *PowNode) Clone() Node {
	return &PowNode{
		Child:    p.Child.Clone(),
		Exponent: p.Exponent,
	}
}

func (n *ComposeNode) Clone() Node {
	return &ComposeNode{
		Outer: n.Outer.Clone(),
		Inner: n.Inner.Clone(),
	}
}
