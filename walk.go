package polish

import (
	"bytes"
	"fmt"
)

var errEmptyTree = fmt.Errorf("%w: empty tree", ErrIncomplete)

// Prefix renders the tree in prefix notation.
func (t *Tree) Prefix() (string, error) {
	return t.render(writePrefix)
}

// Postfix renders the tree in postfix notation.
func (t *Tree) Postfix() (string, error) {
	return t.render(writePostfix)
}

// Infix renders the tree in infix notation, parenthesizing a subtree
// only when its operator binds looser than its parent's. Grouping of
// equal precedence operators is not tracked.
func (t *Tree) Infix() (string, error) {
	return t.render(func(buf *bytes.Buffer, node *Node) error {
		return writeInfix(buf, node, NoPrecedence)
	})
}

func (t *Tree) render(write func(*bytes.Buffer, *Node) error) (string, error) {
	if t.root == nil {
		return "", errEmptyTree
	}
	var buf bytes.Buffer
	if err := write(&buf, t.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func children(node *Node) (*Node, *Node, error) {
	if node.left == nil {
		return nil, nil, &IncompleteError{Key: node.key, Side: SideLeft}
	}
	if node.right == nil {
		return nil, nil, &IncompleteError{Key: node.key, Side: SideRight}
	}
	return node.left, node.right, nil
}

func writePrefix(buf *bytes.Buffer, node *Node) error {
	if node.t == NodeOperand {
		buf.WriteString(node.key)
		return nil
	}
	left, right, err := children(node)
	if err != nil {
		return err
	}
	buf.WriteString(node.key)
	buf.WriteByte(' ')
	if err := writePrefix(buf, left); err != nil {
		return err
	}
	buf.WriteByte(' ')
	return writePrefix(buf, right)
}

func writePostfix(buf *bytes.Buffer, node *Node) error {
	if node.t == NodeOperand {
		buf.WriteString(node.key)
		return nil
	}
	left, right, err := children(node)
	if err != nil {
		return err
	}
	if err := writePostfix(buf, left); err != nil {
		return err
	}
	buf.WriteByte(' ')
	if err := writePostfix(buf, right); err != nil {
		return err
	}
	buf.WriteByte(' ')
	buf.WriteString(node.key)
	return nil
}

func writeInfix(buf *bytes.Buffer, node *Node, parent int) error {
	if node.t == NodeOperand {
		buf.WriteString(node.key)
		return nil
	}
	left, right, err := children(node)
	if err != nil {
		return err
	}
	prec := node.op.Precedence()
	paren := prec < parent
	if paren {
		buf.WriteByte('(')
	}
	if err := writeInfix(buf, left, prec); err != nil {
		return err
	}
	buf.WriteByte(' ')
	buf.WriteString(node.key)
	buf.WriteByte(' ')
	if err := writeInfix(buf, right, prec); err != nil {
		return err
	}
	if paren {
		buf.WriteByte(')')
	}
	return nil
}
