package expr

func (v *VarNode) NodeCount() int { return 1 }
func (c *ConstNode) NodeCount() int { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (p *PowNode) NodeCount() int { return 1 + p.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}
func (n *ComposeNode) NodeCount() int {
	return 1 + n.Outer.NodeCount() + n.Inner.NodeCount()
}

// Depth bounds recursion during Eval: the tree shape is fixed at
// construction time, so evaluation cost is known before any Eval call.
func (v *VarNode) Depth() int { return 1 }
func (c *ConstNode) Depth() int { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (p *PowNode) Depth() int { return 1 + p.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}
func (n *ComposeNode) Depth() int {
	od := n.Outer.Depth()
	id := n.Inner.Depth()
	if od > id {
		return 1 + od
	}
	return 1 + id
}
