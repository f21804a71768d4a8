package bytecode

import "fmt"

// ErrInvalidProgram is returned by Run when an instruction decodes with an
// unknown opcode or a jump targets an index outside the program.
var ErrInvalidProgram = fmt.Errorf("bytecode: invalid program")

// ErrStackCorruption is returned when DebugAssertStack is enabled and the
// operand stack underflows or overflows. A well-formed compiled program
// cannot trigger this; it exists to catch compiler bugs during development.
var ErrStackCorruption = fmt.Errorf("bytecode: stack corruption")

// DebugAssertStack enables the stack bounds checks described above. It is
// off by default, so each push or pop in the dispatch loop costs only a
// test of this flag; flip it on in tests.
var DebugAssertStack = false

// StackCapacity is the fixed operand stack size. 1024 is adequate for the
// reference programs.
const StackCapacity = 1024
