package bytecode

import (
	"fmt"
	"math"

	"github.com/chazu/numvm/pkg/machine"
)

// Run executes prog against ctx and returns the value left on top of the
// operand stack when execution terminates, or 0 if the stack is empty.
// No allocations occur during dispatch once the stack array below is sized.
func Run(prog *Program, ctx *machine.Context) (float64, error) {
	if err := Validate(prog); err != nil {
		return 0, err
	}

	var stack [StackCapacity]float64
	sp := 0
	ip := 0
	code := prog.Instructions
	n := len(code)

	for ip < n {
		ins := code[ip]

		switch ins.Op {
		case OpNoop:
			ip++

		case OpPush:
			if err := checkPush(sp); err != nil {
				return 0, err
			}
			stack[sp] = ins.Num
			sp++
			ip++

		case OpPop:
			if err := checkPop(sp, 1); err != nil {
				return 0, err
			}
			sp--
			ip++

		case OpJmp:
			ip = int(ins.Int)

		case OpPopJmpIfFalse:
			if err := checkPop(sp, 1); err != nil {
				return 0, err
			}
			sp--
			if stack[sp] == 0 {
				ip = int(ins.Int)
			} else {
				ip++
			}

		case OpPopJmpIfTrue:
			if err := checkPop(sp, 1); err != nil {
				return 0, err
			}
			sp--
			if stack[sp] != 0 {
				ip = int(ins.Int)
			} else {
				ip++
			}

		case OpGet:
			if err := checkPush(sp); err != nil {
				return 0, err
			}
			v, err := ctx.Load(int(ins.Int))
			if err != nil {
				return 0, err
			}
			stack[sp] = v
			sp++
			ip++

		case OpSet:
			if err := checkPop(sp, 1); err != nil {
				return 0, err
			}
			sp--
			if _, err := ctx.Store(int(ins.Int), stack[sp]); err != nil {
				return 0, err
			}
			ip++

		case OpGetIndirect:
			if err := checkPop(sp, 1); err != nil {
				return 0, err
			}
			a := machine.TruncIndex(stack[sp-1])
			v, err := ctx.Load(a)
			if err != nil {
				return 0, err
			}
			stack[sp-1] = v
			ip++

		case OpSetIndirect:
			if err := checkPop(sp, 2); err != nil {
				return 0, err
			}
			v := stack[sp-1]
			a := machine.TruncIndex(stack[sp-2])
			sp -= 2
			if _, err := ctx.Store(a, v); err != nil {
				return 0, err
			}
			ip++

		case OpAdd:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return l + r }); err != nil {
				return 0, err
			}
			ip++

		case OpSub:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return l - r }); err != nil {
				return 0, err
			}
			ip++

		case OpMul:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return l * r }); err != nil {
				return 0, err
			}
			ip++

		case OpDiv:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return l / r }); err != nil {
				return 0, err
			}
			ip++

		case OpMod:
			if err := binOp(&sp, stack[:], math.Mod); err != nil {
				return 0, err
			}
			ip++

		case OpEq:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l == r) }); err != nil {
				return 0, err
			}
			ip++

		case OpNeq:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l != r) }); err != nil {
				return 0, err
			}
			ip++

		case OpLt:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l < r) }); err != nil {
				return 0, err
			}
			ip++

		case OpGt:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l > r) }); err != nil {
				return 0, err
			}
			ip++

		case OpLte:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l <= r) }); err != nil {
				return 0, err
			}
			ip++

		case OpGte:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l >= r) }); err != nil {
				return 0, err
			}
			ip++

		case OpAnd:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l != 0 && r != 0) }); err != nil {
				return 0, err
			}
			ip++

		case OpOr:
			if err := binOp(&sp, stack[:], func(l, r float64) float64 { return boolF(l != 0 || r != 0) }); err != nil {
				return 0, err
			}
			ip++

		case OpNot:
			if err := checkPop(sp, 1); err != nil {
				return 0, err
			}
			stack[sp-1] = boolF(stack[sp-1] == 0)
			ip++

		default:
			return 0, fmt.Errorf("%w: unhandled opcode %s at ip %d", ErrInvalidProgram, ins.Op, ip)
		}
	}

	if sp > 0 {
		return stack[sp-1], nil
	}
	return 0, nil
}

// binOp pops two operands, applies f, and pushes the result in place.
func binOp(sp *int, stack []float64, f func(l, r float64) float64) error {
	if err := checkPop(*sp, 2); err != nil {
		return err
	}
	*sp--
	stack[*sp-1] = f(stack[*sp-1], stack[*sp])
	return nil
}

func checkPush(sp int) error {
	if DebugAssertStack && sp >= StackCapacity {
		return fmt.Errorf("%w: push at capacity %d", ErrStackCorruption, StackCapacity)
	}
	return nil
}

func checkPop(sp, need int) error {
	if DebugAssertStack && sp < need {
		return fmt.Errorf("%w: pop %d with sp=%d", ErrStackCorruption, need, sp)
	}
	return nil
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
