// Package eval implements the tree-walking interpreter: recursive descent
// directly over the tree, with no intermediate lowering step. It exists as
// the baseline that the closure and bytecode backends are benchmarked
// against.
package eval

import (
	"fmt"
	"math"

	"github.com/chazu/numvm/pkg/machine"
	"github.com/chazu/numvm/pkg/tree"
)

// Evaluate walks root directly, reading and writing ctx as it goes, and
// returns the double the tree evaluates to. No errors are raised by
// arithmetic (division/modulo by zero flow through as IEEE-754 ±Inf/NaN);
// an error can only originate from a strict Context's out-of-range memory
// access or from a node type Evaluate does not recognize.
func Evaluate(root tree.Node, ctx *machine.Context) (float64, error) {
	switch n := root.(type) {
	case *tree.Constant:
		return n.Value, nil

	case *tree.Sequence:
		var result float64
		for _, child := range n.Children {
			v, err := Evaluate(child, ctx)
			if err != nil {
				return 0, err
			}
			result = v
		}
		return result, nil

	case *tree.If:
		cond, err := Evaluate(n.Cond, ctx)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return Evaluate(n.Then, ctx)
		}
		return Evaluate(n.Else, ctx)

	case *tree.While:
		for {
			cond, err := Evaluate(n.Cond, ctx)
			if err != nil {
				return 0, err
			}
			if cond == 0 {
				return 0, nil
			}
			if _, err := Evaluate(n.Body, ctx); err != nil {
				return 0, err
			}
		}

	case *tree.Load:
		idx, err := Evaluate(n.Index, ctx)
		if err != nil {
			return 0, err
		}
		return ctx.Load(machine.TruncIndex(idx))

	case *tree.Store:
		idx, err := Evaluate(n.Index, ctx)
		if err != nil {
			return 0, err
		}
		val, err := Evaluate(n.Value, ctx)
		if err != nil {
			return 0, err
		}
		return ctx.Store(machine.TruncIndex(idx), val)

	case *tree.Binary:
		l, err := Evaluate(n.Left, ctx)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right, ctx)
		if err != nil {
			return 0, err
		}
		return applyBinary(n.Op, l, r), nil

	case *tree.Unary:
		x, err := Evaluate(n.X, ctx)
		if err != nil {
			return 0, err
		}
		return applyUnary(n.Op, x), nil

	default:
		return 0, fmt.Errorf("eval: unknown node type %T", root)
	}
}

func applyBinary(op tree.BinaryOp, l, r float64) float64 {
	switch op {
	case tree.Add:
		return l + r
	case tree.Sub:
		return l - r
	case tree.Mul:
		return l * r
	case tree.Div:
		return l / r
	case tree.Mod:
		return math.Mod(l, r)
	case tree.Eq:
		return boolF(l == r)
	case tree.Neq:
		return boolF(l != r)
	case tree.Lt:
		return boolF(l < r)
	case tree.Gt:
		return boolF(l > r)
	case tree.Lte:
		return boolF(l <= r)
	case tree.Gte:
		return boolF(l >= r)
	case tree.And:
		return boolF(l != 0 && r != 0)
	case tree.Or:
		return boolF(l != 0 || r != 0)
	default:
		panic(fmt.Sprintf("eval: unknown binary op %v", op))
	}
}

func applyUnary(op tree.UnaryOp, x float64) float64 {
	switch op {
	case tree.Not:
		return boolF(x == 0)
	default:
		panic(fmt.Sprintf("eval: unknown unary op %v", op))
	}
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
