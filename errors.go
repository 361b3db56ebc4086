package polish

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedNotation = errors.New("notation not supported")
	ErrEmpty               = fmt.Errorf("empty expression: %w", ErrUnsupportedNotation)
	ErrExtraToken          = errors.New("no open slot for token")
	ErrIncomplete          = errors.New("incomplete tree")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnknownOp           = errors.New("unknown operator")
)

// Side names a child slot of an operator node.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// IncompleteError is returned when a walker or the evaluator reaches an
// operator node with a missing child.
type IncompleteError struct {
	Key  string
	Side Side
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete tree: operator %q has no %v operand", e.Key, e.Side)
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// OperandError is returned when an operand is not a valid int64 literal.
type OperandError struct {
	Token string
	Err   error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("invalid operand %q: %v", e.Token, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}
