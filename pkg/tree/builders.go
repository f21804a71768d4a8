package tree

// The functions in this file are sugar: their only contract is producing
// valid trees. They exist so sample programs read naturally; none of them
// is exercised by the three execution backends directly.

// Const wraps a literal double in a Constant node.
func Const(v float64) Node {
	return &Constant{Value: v}
}

// Int wraps an integer literal in a Constant node.
func Int(v int) Node {
	return &Constant{Value: float64(v)}
}

// Seq builds a Sequence from the given children, in order.
func Seq(children ...Node) Node {
	return &Sequence{Children: children}
}

// IfNode builds a three-way conditional.
func IfNode(cond, then, els Node) Node {
	return &If{Cond: cond, Then: then, Else: els}
}

// WhileNode builds a while loop.
func WhileNode(cond, body Node) Node {
	return &While{Cond: cond, Body: body}
}

// LoadAt builds a Load from a constant memory index.
func LoadAt(index int) Node {
	return &Load{Index: Int(index)}
}

// LoadIndirect builds a Load whose index is itself computed at runtime.
func LoadIndirect(index Node) Node {
	return &Load{Index: index}
}

// StoreAt builds a Store to a constant memory index.
func StoreAt(index int, value Node) Node {
	return &Store{Index: Int(index), Value: value}
}

// StoreIndirect builds a Store whose index is itself computed at runtime.
func StoreIndirect(index, value Node) Node {
	return &Store{Index: index, Value: value}
}

func bin(op BinaryOp, l, r Node) Node { return &Binary{Op: op, Left: l, Right: r} }

func AddN(l, r Node) Node { return bin(Add, l, r) }
func SubN(l, r Node) Node { return bin(Sub, l, r) }
func MulN(l, r Node) Node { return bin(Mul, l, r) }
func DivN(l, r Node) Node { return bin(Div, l, r) }
func ModN(l, r Node) Node { return bin(Mod, l, r) }
func EqN(l, r Node) Node  { return bin(Eq, l, r) }
func NeqN(l, r Node) Node { return bin(Neq, l, r) }
func LtN(l, r Node) Node  { return bin(Lt, l, r) }
func GtN(l, r Node) Node  { return bin(Gt, l, r) }
func LteN(l, r Node) Node { return bin(Lte, l, r) }
func GteN(l, r Node) Node { return bin(Gte, l, r) }
func AndN(l, r Node) Node { return bin(And, l, r) }
func OrN(l, r Node) Node  { return bin(Or, l, r) }

// NotN builds a logical negation.
func NotN(x Node) Node {
	return &Unary{Op: Not, X: x}
}
