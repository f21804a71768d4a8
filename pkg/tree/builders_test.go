package tree

import "testing"

func TestLoadAtWrapsConstantIndex(t *testing.T) {
	n := LoadAt(5).(*Load)
	c, ok := n.Index.(*Constant)
	if !ok {
		t.Fatalf("Index type = %T, want *Constant", n.Index)
	}
	if c.Value != 5 {
		t.Errorf("Index value = %v, want 5", c.Value)
	}
}

func TestStoreIndirectKeepsIndexAsNode(t *testing.T) {
	idx := LoadAt(0)
	n := StoreIndirect(idx, Int(1)).(*Store)
	if n.Index != idx {
		t.Error("StoreIndirect did not preserve the given index node")
	}
}

func TestBinaryBuildersSetOp(t *testing.T) {
	tests := []struct {
		build func(l, r Node) Node
		want  BinaryOp
	}{
		{AddN, Add},
		{SubN, Sub},
		{MulN, Mul},
		{DivN, Div},
		{ModN, Mod},
		{EqN, Eq},
		{NeqN, Neq},
		{LtN, Lt},
		{GtN, Gt},
		{LteN, Lte},
		{GteN, Gte},
		{AndN, And},
		{OrN, Or},
	}
	for _, tt := range tests {
		n := tt.build(Int(1), Int(2)).(*Binary)
		if n.Op != tt.want {
			t.Errorf("op = %v, want %v", n.Op, tt.want)
		}
	}
}

func TestEmptySequenceHasNoChildren(t *testing.T) {
	n := Seq().(*Sequence)
	if len(n.Children) != 0 {
		t.Errorf("len(Children) = %d, want 0", len(n.Children))
	}
}
