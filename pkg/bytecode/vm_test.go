package bytecode

import (
	"errors"
	"testing"

	"github.com/chazu/numvm/pkg/machine"
	"github.com/chazu/numvm/pkg/tree"
)

func TestRunArithmetic(t *testing.T) {
	root := tree.AddN(tree.MulN(tree.Int(2), tree.Int(3)), tree.Int(1))
	prog, err := Compile(root)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := Run(prog, machine.NewContext(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 7 {
		t.Errorf("got %v, want 7", got)
	}
}

func TestRunEmptyProgramReturnsZero(t *testing.T) {
	got, err := Run(&Program{}, machine.NewContext(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestRunInvalidOpcode(t *testing.T) {
	prog := &Program{Instructions: []Instruction{{Op: Opcode(200)}}}
	_, err := Run(prog, machine.NewContext(1))
	if !errors.Is(err, ErrInvalidProgram) {
		t.Errorf("err = %v, want ErrInvalidProgram", err)
	}
}

func TestRunOutOfRangeJump(t *testing.T) {
	prog := &Program{Instructions: []Instruction{{Op: OpJmp, Int: 99}}}
	_, err := Run(prog, machine.NewContext(1))
	if !errors.Is(err, ErrInvalidProgram) {
		t.Errorf("err = %v, want ErrInvalidProgram", err)
	}
}

func TestStackDisciplineDebugAsserted(t *testing.T) {
	old := DebugAssertStack
	DebugAssertStack = true
	defer func() { DebugAssertStack = old }()

	// POP with nothing pushed underflows the stack.
	prog := &Program{Instructions: []Instruction{{Op: OpPop}}}
	_, err := Run(prog, machine.NewContext(1))
	if !errors.Is(err, ErrStackCorruption) {
		t.Errorf("err = %v, want ErrStackCorruption", err)
	}
}

func TestStackEndsAtZeroOrOne(t *testing.T) {
	programs := []tree.Node{
		tree.Seq(tree.StoreAt(0, tree.Int(1)), tree.StoreAt(1, tree.Int(2))),
		tree.Int(5),
		tree.Seq(),
		tree.IfNode(tree.Int(1), tree.Int(1), tree.Int(0)),
	}
	for _, root := range programs {
		prog, err := Compile(root)
		if err != nil {
			t.Fatalf("Compile: %v", err)
		}
		// A program compiled at top level leaves at most one value (a
		// top-level Store, as in the first program, leaves none). Run does
		// not expose its final sp, so this loop exercises Run's own sp
		// accounting by checking it doesn't error under debug assertions.
		old := DebugAssertStack
		DebugAssertStack = true
		_, err = Run(prog, machine.NewContext(4))
		DebugAssertStack = old
		if err != nil {
			t.Errorf("Run(%v): %v", root, err)
		}
	}
}
