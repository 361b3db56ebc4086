package polish

import "strconv"

// Eval evaluates the tree bottom-up over int64.
func (t *Tree) Eval() (int64, error) {
	if t.root == nil {
		return 0, errEmptyTree
	}
	return eval(t.root)
}

func eval(node *Node) (int64, error) {
	if node.t == NodeOperand {
		i, err := strconv.ParseInt(node.key, 10, 64)
		if err != nil {
			return 0, &OperandError{Token: node.key, Err: err}
		}
		return i, nil
	}
	left, right, err := children(node)
	if err != nil {
		return 0, err
	}
	lhs, err := eval(left)
	if err != nil {
		return 0, err
	}
	rhs, err := eval(right)
	if err != nil {
		return 0, err
	}
	return node.op.Apply(lhs, rhs)
}
