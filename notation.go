package polish

import (
	"fmt"
	"strings"
)

type Notation int

const (
	NotationPrefix Notation = iota
	NotationPostfix
)

func (n Notation) String() string {
	switch n {
	case NotationPrefix:
		return "prefix"
	case NotationPostfix:
		return "postfix"
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

func (n Notation) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Tokenize splits line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Detect decides the notation of tokens from its first and last token.
// An operator followed eventually by an operand is prefix, the reverse is
// postfix and anything else is rejected.
func Detect(tokens []string) (Notation, error) {
	if len(tokens) == 0 {
		return 0, ErrEmpty
	}
	first := IsOperator(tokens[0])
	last := IsOperator(tokens[len(tokens)-1])
	switch {
	case first && !last:
		return NotationPrefix, nil
	case !first && last:
		return NotationPostfix, nil
	}
	return 0, fmt.Errorf("%w: %q ... %q", ErrUnsupportedNotation, tokens[0], tokens[len(tokens)-1])
}

// Build detects the notation of tokens and builds the tree for it. No
// tree is built when detection fails.
func Build(tokens []string) (*Tree, Notation, error) {
	notation, err := Detect(tokens)
	if err != nil {
		return nil, 0, err
	}
	var tree *Tree
	if notation == NotationPrefix {
		tree, err = FromPrefix(tokens)
	} else {
		tree, err = FromPostfix(tokens)
	}
	if err != nil {
		return nil, 0, err
	}
	return tree, notation, nil
}
