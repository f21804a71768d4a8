// Package closure lowers a tree to a composed, pre-resolved callable: each
// variant's child callables are looked up once at lowering time, so the
// per-invocation path does no tree traversal, only calls. This isolates the
// cost of variant dispatch from the cost of recursion itself.
package closure

import (
	"fmt"
	"math"

	"github.com/chazu/numvm/pkg/machine"
	"github.com/chazu/numvm/pkg/tree"
)

// Closure is an opaque callable bound at lowering time to the sub-callables
// of its children. Mutated state lives only in the Context passed in.
type Closure func(ctx *machine.Context) (float64, error)

// Lower performs a one-time recursive pass over root, returning a Closure
// that, when invoked, produces the same result as eval.Evaluate on the same
// Context.
func Lower(root tree.Node) (Closure, error) {
	switch n := root.(type) {
	case *tree.Constant:
		v := n.Value
		return func(*machine.Context) (float64, error) {
			return v, nil
		}, nil

	case *tree.Sequence:
		children := make([]Closure, len(n.Children))
		for i, child := range n.Children {
			c, err := Lower(child)
			if err != nil {
				return nil, err
			}
			children[i] = c
		}
		return func(ctx *machine.Context) (float64, error) {
			var result float64
			for _, c := range children {
				v, err := c(ctx)
				if err != nil {
					return 0, err
				}
				result = v
			}
			return result, nil
		}, nil

	case *tree.If:
		cond, err := Lower(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := Lower(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := Lower(n.Else)
		if err != nil {
			return nil, err
		}
		return func(ctx *machine.Context) (float64, error) {
			c, err := cond(ctx)
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return then(ctx)
			}
			return els(ctx)
		}, nil

	case *tree.While:
		cond, err := Lower(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := Lower(n.Body)
		if err != nil {
			return nil, err
		}
		return func(ctx *machine.Context) (float64, error) {
			for {
				c, err := cond(ctx)
				if err != nil {
					return 0, err
				}
				if c == 0 {
					return 0, nil
				}
				if _, err := body(ctx); err != nil {
					return 0, err
				}
			}
		}, nil

	case *tree.Load:
		index, err := Lower(n.Index)
		if err != nil {
			return nil, err
		}
		return func(ctx *machine.Context) (float64, error) {
			i, err := index(ctx)
			if err != nil {
				return 0, err
			}
			return ctx.Load(machine.TruncIndex(i))
		}, nil

	case *tree.Store:
		index, err := Lower(n.Index)
		if err != nil {
			return nil, err
		}
		value, err := Lower(n.Value)
		if err != nil {
			return nil, err
		}
		return func(ctx *machine.Context) (float64, error) {
			i, err := index(ctx)
			if err != nil {
				return 0, err
			}
			v, err := value(ctx)
			if err != nil {
				return 0, err
			}
			return ctx.Store(machine.TruncIndex(i), v)
		}, nil

	case *tree.Binary:
		left, err := Lower(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Lower(n.Right)
		if err != nil {
			return nil, err
		}
		op, err := binaryOp(n.Op)
		if err != nil {
			return nil, err
		}
		return func(ctx *machine.Context) (float64, error) {
			l, err := left(ctx)
			if err != nil {
				return 0, err
			}
			r, err := right(ctx)
			if err != nil {
				return 0, err
			}
			return op(l, r), nil
		}, nil

	case *tree.Unary:
		x, err := Lower(n.X)
		if err != nil {
			return nil, err
		}
		return func(ctx *machine.Context) (float64, error) {
			v, err := x(ctx)
			if err != nil {
				return 0, err
			}
			return boolF(v == 0), nil
		}, nil

	default:
		return nil, fmt.Errorf("closure: unknown node type %T", root)
	}
}

// binaryOp resolves a BinaryOp to its implementing function once, at
// lowering time, so the invocation path never re-dispatches on n.Op.
func binaryOp(op tree.BinaryOp) (func(l, r float64) float64, error) {
	switch op {
	case tree.Add:
		return func(l, r float64) float64 { return l + r }, nil
	case tree.Sub:
		return func(l, r float64) float64 { return l - r }, nil
	case tree.Mul:
		return func(l, r float64) float64 { return l * r }, nil
	case tree.Div:
		return func(l, r float64) float64 { return l / r }, nil
	case tree.Mod:
		return math.Mod, nil
	case tree.Eq:
		return func(l, r float64) float64 { return boolF(l == r) }, nil
	case tree.Neq:
		return func(l, r float64) float64 { return boolF(l != r) }, nil
	case tree.Lt:
		return func(l, r float64) float64 { return boolF(l < r) }, nil
	case tree.Gt:
		return func(l, r float64) float64 { return boolF(l > r) }, nil
	case tree.Lte:
		return func(l, r float64) float64 { return boolF(l <= r) }, nil
	case tree.Gte:
		return func(l, r float64) float64 { return boolF(l >= r) }, nil
	case tree.And:
		return func(l, r float64) float64 { return boolF(l != 0 && r != 0) }, nil
	case tree.Or:
		return func(l, r float64) float64 { return boolF(l != 0 || r != 0) }, nil
	default:
		return nil, fmt.Errorf("closure: unknown binary op %v", op)
	}
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
