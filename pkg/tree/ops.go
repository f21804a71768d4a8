package tree

import "fmt"

// String returns a human-readable operator name, used in error messages
// and test failure messages.
func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Mod:
		return "mod"
	case Eq:
		return "eq"
	case Neq:
		return "neq"
	case Lt:
		return "lt"
	case Gt:
		return "gt"
	case Lte:
		return "lte"
	case Gte:
		return "gte"
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// String returns a human-readable operator name.
func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "not"
	default:
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
}
