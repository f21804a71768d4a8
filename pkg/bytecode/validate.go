package bytecode

import "fmt"

// Validate checks that every opcode in p is recognized and every jump
// target lies within [0, len(p.Instructions)]. Run calls this once before
// dispatch begins so the hot loop itself never has to branch on it.
func Validate(p *Program) error {
	n := len(p.Instructions)
	for i, ins := range p.Instructions {
		if !ins.Op.valid() {
			return fmt.Errorf("%w: instruction %d has unknown opcode %d", ErrInvalidProgram, i, ins.Op)
		}
		if ins.Op.IsJump() {
			target := int(ins.Int)
			if target < 0 || target > n {
				return fmt.Errorf("%w: instruction %d jumps to out-of-range target %d (len %d)", ErrInvalidProgram, i, target, n)
			}
		}
	}
	return nil
}
