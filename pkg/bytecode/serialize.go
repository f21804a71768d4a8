package bytecode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical encoding so the same Program always serializes
// to the same bytes, letting two compilations of the same tree be compared
// for equality by comparing their encoded bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR encode mode: %v", err))
	}
	cborEncMode = em
}

// wireInstruction is the CBOR wire shape for Instruction; Program itself
// just wraps a slice of these. A dedicated wire type keeps Instruction free
// of cbor struct tags so its in-memory layout stays exactly the 16-byte
// record described in instruction.go.
type wireInstruction struct {
	Op  uint8   `cbor:"1,keyasint"`
	Int int32   `cbor:"2,keyasint"`
	Num float64 `cbor:"3,keyasint"`
}

// Marshal serializes p to canonical CBOR bytes.
func (p *Program) Marshal() ([]byte, error) {
	wire := make([]wireInstruction, len(p.Instructions))
	for i, ins := range p.Instructions {
		wire[i] = wireInstruction{Op: uint8(ins.Op), Int: ins.Int, Num: ins.Num}
	}
	data, err := cborEncMode.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("bytecode: marshal program: %w", err)
	}
	return data, nil
}

// UnmarshalProgram deserializes a Program previously produced by Marshal.
func UnmarshalProgram(data []byte) (*Program, error) {
	var wire []wireInstruction
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal program: %w", err)
	}
	instructions := make([]Instruction, len(wire))
	for i, w := range wire {
		instructions[i] = Instruction{Op: Opcode(w.Op), Int: w.Int, Num: w.Num}
	}
	return &Program{Instructions: instructions}, nil
}
