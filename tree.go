package polish

import "fmt"

// Tree is a binary expression tree. It is built by a sequence of AddLeft
// or AddRight calls and is read-only afterwards.
type Tree struct {
	root *Node
}

func NewTree() *Tree {
	return &Tree{}
}

// FromPrefix builds a tree from prefix-ordered keys, inserting each one
// at the leftmost open slot. Empty keys are skipped.
func FromPrefix(keys []string) (*Tree, error) {
	tree := NewTree()
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := tree.AddLeft(key); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// FromPostfix builds a tree from postfix-ordered keys, walking them from
// last to first and inserting each one at the rightmost open slot.
func FromPostfix(keys []string) (*Tree, error) {
	tree := NewTree()
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] == "" {
			continue
		}
		if err := tree.AddRight(keys[i]); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) String() string {
	return t.root.String()
}

type insertion int

const (
	notFound insertion = iota
	inserted
)

// AddLeft adds key at the leftmost open slot.
func (t *Tree) AddLeft(key string) error {
	return t.add(key, insertLeft)
}

// AddRight adds key at the rightmost open slot.
func (t *Tree) AddRight(key string) error {
	return t.add(key, insertRight)
}

func (t *Tree) add(key string, insert func(*Node, string) insertion) error {
	if t.root == nil {
		t.root = newNode(key)
		return nil
	}
	if insert(t.root, key) == notFound {
		return fmt.Errorf("%w: %q", ErrExtraToken, key)
	}
	return nil
}

func insertLeft(node *Node, key string) insertion {
	if node.t != NodeOperator {
		return notFound
	}
	if node.left == nil {
		node.left = newNode(key)
		return inserted
	}
	if insertLeft(node.left, key) == inserted {
		return inserted
	}
	if node.right == nil {
		node.right = newNode(key)
		return inserted
	}
	return insertLeft(node.right, key)
}

func insertRight(node *Node, key string) insertion {
	if node.t != NodeOperator {
		return notFound
	}
	if node.right == nil {
		node.right = newNode(key)
		return inserted
	}
	if insertRight(node.right, key) == inserted {
		return inserted
	}
	if node.left == nil {
		node.left = newNode(key)
		return inserted
	}
	return insertRight(node.left, key)
}

// Complete reports whether the tree is non-empty and every operator has
// both children.
func (t *Tree) Complete() bool {
	return t.Check() == nil
}

// Check returns the error a walker would report on first reaching a
// missing child, or nil if the tree is complete.
func (t *Tree) Check() error {
	if t.root == nil {
		return errEmptyTree
	}
	return check(t.root)
}

func check(node *Node) error {
	if node.t != NodeOperator {
		return nil
	}
	left, right, err := children(node)
	if err != nil {
		return err
	}
	if err := check(left); err != nil {
		return err
	}
	return check(right)
}
