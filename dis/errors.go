package dis

import (
	"fmt"

	"github.com/pydasm-io/pydasm/op"
)

// UnknownOpcodeError indicates an instruction byte that is not defined in
// the selected revision's opcode table. It usually means the container was
// compiled for a different revision than its header claims, so decoding
// aborts rather than guessing.
type UnknownOpcodeError struct {
	Offset   int
	Opcode   byte
	CodeName string
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %d at offset %d in %q", e.Opcode, e.Offset, e.CodeName)
}

// TruncatedInstructionError indicates that the instruction stream ends in
// the middle of an operand. Corrupt input, never silently dropped.
type TruncatedInstructionError struct {
	Offset   int
	Opcode   byte
	Needed   int
	Remaining int
	CodeName string
}

func (e *TruncatedInstructionError) Error() string {
	return fmt.Sprintf("truncated instruction at offset %d in %q: opcode %d needs %d operand bytes, %d remain",
		e.Offset, e.CodeName, e.Opcode, e.Needed, e.Remaining)
}

// OperandResolutionError indicates an operand index that falls outside the
// table it addresses: the constant pool, the name table, or one of the
// variable-name tables.
type OperandResolutionError struct {
	Offset   int
	Opcode   byte
	Kind     op.Kind
	Index    int
	Size     int
	CodeName string
}

func (e *OperandResolutionError) Error() string {
	return fmt.Sprintf("%s index %d out of range (table size %d) at offset %d in %q",
		e.Kind, e.Index, e.Size, e.Offset, e.CodeName)
}
