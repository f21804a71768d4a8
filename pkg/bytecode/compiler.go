package bytecode

import (
	"fmt"

	"github.com/chazu/numvm/pkg/tree"
)

// Compile lowers root into a Program such that Run(prog, ctx) yields the
// same result as eval.Evaluate(root, ctx) for the same Context, with one
// documented exception: a Store compiled in non-Sequence, useValue=true
// position never leaves its stored value on the operand stack, diverging
// from the tree evaluator's "Store yields its value" contract (see
// DESIGN.md). Every program built by pkg/sample keeps Store in statement
// position, where the two backends agree.
func Compile(root tree.Node) (*Program, error) {
	b := newBuilder()
	if err := compileNode(b, root, true); err != nil {
		return nil, err
	}
	return b.prog, nil
}

// compileNode compiles n. When useValue is true, the emitted code must
// leave exactly one more value on the operand stack than it found, except
// for a Store, which leaves none (see Compile); when false, it must leave
// the stack exactly as it found it.
func compileNode(b *builder, n tree.Node, useValue bool) error {
	switch node := n.(type) {
	case *tree.Constant:
		if useValue {
			b.emit(push(node.Value))
		}
		return nil

	case *tree.Sequence:
		if len(node.Children) == 0 {
			if useValue {
				b.emit(push(0))
			}
			return nil
		}
		for _, child := range node.Children[:len(node.Children)-1] {
			if err := compileNode(b, child, false); err != nil {
				return err
			}
		}
		return compileNode(b, node.Children[len(node.Children)-1], useValue)

	case *tree.If:
		if err := compileNode(b, node.Cond, true); err != nil {
			return err
		}
		falseJump := b.emitJump(OpPopJmpIfFalse)
		if err := compileNode(b, node.Then, useValue); err != nil {
			return err
		}
		endJump := b.emitJump(OpJmp)
		b.patchJump(falseJump, b.here())
		if err := compileNode(b, node.Else, useValue); err != nil {
			return err
		}
		b.patchJump(endJump, b.here())
		return nil

	case *tree.While:
		loopHead := b.here()
		if err := compileNode(b, node.Cond, true); err != nil {
			return err
		}
		exitJump := b.emitJump(OpPopJmpIfFalse)
		if err := compileNode(b, node.Body, false); err != nil {
			return err
		}
		b.emit(withInt(OpJmp, int32(loopHead)))
		b.patchJump(exitJump, b.here())
		// While always yields 0. In statement position (useValue=false,
		// the common case) no trailing value is needed; only push one when
		// the caller actually wants the result.
		if useValue {
			b.emit(push(0))
		}
		return nil

	case *tree.Load:
		if !useValue {
			return nil // pure expression with no side effect; drop it
		}
		if c, ok := node.Index.(*tree.Constant); ok {
			b.emit(withInt(OpGet, int32(int(c.Value))))
			return nil
		}
		if err := compileNode(b, node.Index, true); err != nil {
			return err
		}
		b.emit(plain(OpGetIndirect))
		return nil

	case *tree.Store:
		// Always has a side effect, so it is compiled regardless of
		// useValue; the stored value is never left on the stack (see the
		// doc comment on Compile).
		if c, ok := node.Index.(*tree.Constant); ok {
			if err := compileNode(b, node.Value, true); err != nil {
				return err
			}
			b.emit(withInt(OpSet, int32(int(c.Value))))
			return nil
		}
		if err := compileNode(b, node.Index, true); err != nil {
			return err
		}
		if err := compileNode(b, node.Value, true); err != nil {
			return err
		}
		b.emit(plain(OpSetIndirect))
		return nil

	case *tree.Binary:
		op, err := binaryOpcode(node.Op)
		if err != nil {
			return err
		}
		if !useValue {
			if err := compileNode(b, node.Left, false); err != nil {
				return err
			}
			return compileNode(b, node.Right, false)
		}
		if err := compileNode(b, node.Left, true); err != nil {
			return err
		}
		if err := compileNode(b, node.Right, true); err != nil {
			return err
		}
		b.emit(plain(op))
		return nil

	case *tree.Unary:
		if !useValue {
			return compileNode(b, node.X, false)
		}
		if err := compileNode(b, node.X, true); err != nil {
			return err
		}
		b.emit(plain(OpNot))
		return nil

	default:
		return fmt.Errorf("bytecode: unknown node type %T", n)
	}
}

func binaryOpcode(op tree.BinaryOp) (Opcode, error) {
	switch op {
	case tree.Add:
		return OpAdd, nil
	case tree.Sub:
		return OpSub, nil
	case tree.Mul:
		return OpMul, nil
	case tree.Div:
		return OpDiv, nil
	case tree.Mod:
		return OpMod, nil
	case tree.Eq:
		return OpEq, nil
	case tree.Neq:
		return OpNeq, nil
	case tree.Lt:
		return OpLt, nil
	case tree.Gt:
		return OpGt, nil
	case tree.Lte:
		return OpLte, nil
	case tree.Gte:
		return OpGte, nil
	case tree.And:
		return OpAnd, nil
	case tree.Or:
		return OpOr, nil
	default:
		return 0, fmt.Errorf("bytecode: unknown binary op %v", op)
	}
}
