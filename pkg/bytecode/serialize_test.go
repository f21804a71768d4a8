package bytecode

import (
	"testing"

	"github.com/chazu/numvm/pkg/machine"
	"github.com/chazu/numvm/pkg/tree"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	root := tree.Seq(
		tree.StoreAt(0, tree.Int(3)),
		tree.WhileNode(
			tree.NeqN(tree.LoadAt(0), tree.Int(0)),
			tree.StoreAt(0, tree.SubN(tree.LoadAt(0), tree.Int(1))),
		),
		tree.Int(7),
	)
	prog, err := Compile(root)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	data, err := prog.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := UnmarshalProgram(data)
	if err != nil {
		t.Fatalf("UnmarshalProgram: %v", err)
	}
	if decoded.Len() != prog.Len() {
		t.Fatalf("decoded length = %d, want %d", decoded.Len(), prog.Len())
	}
	for i := range prog.Instructions {
		if prog.Instructions[i] != decoded.Instructions[i] {
			t.Errorf("instruction %d: got %+v, want %+v", i, decoded.Instructions[i], prog.Instructions[i])
		}
	}

	got, err := Run(decoded, machine.NewContext(4))
	if err != nil {
		t.Fatalf("Run decoded: %v", err)
	}
	if got != 7 {
		t.Errorf("Run(decoded) = %v, want 7", got)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	prog, err := Compile(tree.AddN(tree.Int(1), tree.Int(2)))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	a, err := prog.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, err := prog.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Error("Marshal is not deterministic across calls")
	}
}
