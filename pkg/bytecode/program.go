package bytecode

// Program is a compiled instruction array: a fixed-length ordered sequence
// of Instructions, indexed 0..N-1, with absolute jump targets into the same
// array.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.Instructions)
}

// builder accumulates a Program during compilation using an
// emit-placeholder-then-patch discipline: a jump is emitted with a
// placeholder target and patched once the real target is known.
type builder struct {
	prog *Program
}

func newBuilder() *builder {
	return &builder{prog: &Program{Instructions: make([]Instruction, 0, 16)}}
}

// emit appends ins and returns its index.
func (b *builder) emit(ins Instruction) int {
	idx := len(b.prog.Instructions)
	b.prog.Instructions = append(b.prog.Instructions, ins)
	return idx
}

// emitJump appends a placeholder jump instruction (target -1) and returns
// its index so it can be patched once the real target is known.
func (b *builder) emitJump(op Opcode) int {
	return b.emit(Instruction{Op: op, Int: -1})
}

// patchJump rewrites the jump at idx to target the given instruction index.
func (b *builder) patchJump(idx int, target int) {
	b.prog.Instructions[idx].Int = int32(target)
}

// here returns the index the next emitted instruction will occupy.
func (b *builder) here() int {
	return len(b.prog.Instructions)
}
