package polish

import (
	"bytes"
	"fmt"
)

type NodeType int

const (
	NodeOperand NodeType = iota
	NodeOperator
)

func (t NodeType) String() string {
	if t == NodeOperator {
		return "operator"
	}
	return "operand"
}

// Node is an expression tree node. Only operator nodes have children.
type Node struct {
	t     NodeType
	op    Op
	key   string
	left  *Node
	right *Node
}

func newNode(key string) *Node {
	if op, ok := LookupOp(key); ok {
		return &Node{
			t:   NodeOperator,
			op:  op,
			key: key,
		}
	}
	return &Node{
		t:   NodeOperand,
		key: key,
	}
}

func (n *Node) Type() NodeType {
	return n.t
}

func (n *Node) Key() string {
	return n.key
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf reports whether n is an operand.
func (n *Node) IsLeaf() bool {
	return n.t == NodeOperand
}

// String returns the subtree as an s-expression, with nil in place of
// missing children.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	if n.t == NodeOperand {
		return n.key
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%s %v %v)", n.key, n.left, n.right)
	return buf.String()
}
