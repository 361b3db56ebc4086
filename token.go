package polish

// Op is one of the four binary arithmetic operators.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// NoPrecedence is lower than the precedence of any operator.
const NoPrecedence = -1

var ops = map[string]Op{
	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"/": OpDiv,
}

// LookupOp returns the operator spelled by key.
func LookupOp(key string) (Op, bool) {
	op, ok := ops[key]
	return op, ok
}

// IsOperator reports whether key is exactly one of + - * /.
func IsOperator(key string) bool {
	_, ok := ops[key]
	return ok
}

// Precedence returns the precedence of key, or NoPrecedence if key is
// not an operator.
func Precedence(key string) int {
	op, ok := ops[key]
	if !ok {
		return NoPrecedence
	}
	return op.Precedence()
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Precedence implements MDAS: * and / bind tighter than + and -.
func (op Op) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	}
	return NoPrecedence
}

// Apply computes lhs op rhs with native int64 semantics. Division
// truncates toward zero and a zero divisor returns ErrDivisionByZero.
func (op Op) Apply(lhs, rhs int64) (int64, error) {
	switch op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSub:
		return lhs - rhs, nil
	case OpMul:
		return lhs * rhs, nil
	case OpDiv:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs / rhs, nil
	}
	return 0, ErrUnknownOp
}
