// Package bytecode is the third execution strategy: a compiler that
// linearizes a tree.Node into a flat instruction array, and a stack-based
// virtual machine that executes that array against a machine.Context.
//
// # Architecture
//
//   - Opcode (opcodes.go): the fixed instruction set, one case per stack
//     machine operation.
//   - Instruction (instruction.go): a tagged 16-byte record — one opcode
//     plus a payload word that is read as either a float64 or an int32
//     depending on the opcode.
//   - Program (program.go): an ordered, fixed-length sequence of
//     Instructions with absolute jump targets, plus the emit/patch
//     machinery used during compilation.
//   - Compile (compiler.go): lowers a tree.Node to a Program, threading a
//     useValue flag through every sub-node so operations compiled for their
//     side effects alone never push anything onto the operand stack.
//   - Run (vm.go): the dispatch loop. No allocations after the initial
//     stack is sized; this is the backend that exists specifically to
//     escape per-node variant dispatch.
//
// Jump offsets are absolute instruction indices rather than relative byte
// deltas, and every instruction is a fixed-size struct rather than a
// variable-length byte run, so an emit-placeholder/patch-later discipline
// applies to an []Instruction instead of a []byte.
package bytecode
