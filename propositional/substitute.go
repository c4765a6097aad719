package propositional

// Substitute returns a new formula in which every subtree
// structurally equal to what is replaced by with. The replacement is
// not re-applied inside the subtree just substituted in (one pass,
// leaves-up); a match at an outer node pre-empts any match that would
// otherwise have been found among its descendants.
func Substitute(f, what, with Formula) Formula {
	if Equal(f, what) {
		return with
	}
	switch f := f.(type) {
	case falseConst, trueConst, atomNode:
		return f
	case notNode:
		return notNode{sub: Substitute(f.sub, what, with)}
	case binaryNode:
		return binaryNode{
			op:    f.op,
			left:  Substitute(f.left, what, with),
			right: Substitute(f.right, what, with),
		}
	default:
		panic("propositional: unknown formula node")
	}
}
