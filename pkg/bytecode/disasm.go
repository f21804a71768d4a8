package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable instruction listing, one line per
// index. It is a pure debug/inspection surface; it never influences
// execution.
func (p *Program) Disassemble() string {
	var sb strings.Builder
	for i, ins := range p.Instructions {
		fmt.Fprintf(&sb, "%4d  %-18s", i, ins.Op)
		switch ins.Op {
		case OpPush:
			fmt.Fprintf(&sb, "%v", ins.Num)
		case OpJmp, OpPopJmpIfFalse, OpPopJmpIfTrue, OpGet, OpSet:
			fmt.Fprintf(&sb, "%d", ins.Int)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
