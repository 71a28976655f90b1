// Package dis decodes raw instruction streams into structured listings.
//
// The same decoding algorithm serves every supported revision; all
// revision-specific behavior lives in the op.Table handed in by the
// caller. Decoding resolves operands against the owning code object's
// tables but never interprets instruction semantics beyond that.
package dis

import (
	"github.com/pydasm-io/pydasm/bytecode"
	"github.com/pydasm-io/pydasm/op"
)

// Instruction is one decoded instruction. Arg is meaningful only when
// HasArg is set. Exactly one of Const, Sym, and Target carries the
// resolved operand, selected by Kind; a KindRawInt operand has no
// resolved form beyond Arg itself.
type Instruction struct {
	Offset int
	Opcode byte
	Name   string
	HasArg bool
	Arg    int
	Kind   op.Kind

	Const  bytecode.Constant // resolved constant (Kind == op.KindConst)
	Sym    string            // resolved name/local/free variable (KindName, KindLocal, KindFree)
	Target int               // resolved jump target (KindRelJump, KindAbsJump)
}

// Disassemble decodes the code object's instruction stream using the given
// table. On error the instructions decoded so far are returned along with
// the error describing the offending offset.
func Disassemble(table *op.Table, code *bytecode.Code) ([]Instruction, error) {
	var instructions []Instruction
	size := code.InstructionCount()

	// Extended-argument prefixes accumulate high-order bits for the next
	// argument-taking instruction. The accumulator is discarded by any
	// following opcode, whether or not it takes an argument.
	ext := 0
	extPending := false

	for offset := 0; offset < size; {
		opcode := code.InstructionAt(offset)
		def, ok := table.Lookup(opcode)
		if !ok {
			return instructions, &UnknownOpcodeError{
				Offset:   offset,
				Opcode:   opcode,
				CodeName: code.Name(),
			}
		}

		instr := Instruction{
			Offset: offset,
			Opcode: opcode,
			Name:   def.Name,
			Kind:   def.Kind,
		}

		if !def.HasArg {
			ext, extPending = 0, false
			instructions = append(instructions, instr)
			offset++
			continue
		}

		remaining := size - offset - 1
		if remaining < table.ArgWidth {
			return instructions, &TruncatedInstructionError{
				Offset:    offset,
				Opcode:    opcode,
				Needed:    table.ArgWidth,
				Remaining: remaining,
				CodeName:  code.Name(),
			}
		}

		arg := 0
		for i := 0; i < table.ArgWidth; i++ {
			arg |= int(code.InstructionAt(offset+1+i)) << (8 * i)
		}
		if extPending {
			arg |= ext << table.ExtArgShift
		}
		instr.HasArg = true
		instr.Arg = arg

		next := offset + 1 + table.ArgWidth

		if int(opcode) == table.ExtendedArg {
			ext, extPending = arg, true
		} else {
			ext, extPending = 0, false
			if err := resolveOperand(&instr, table, code, next); err != nil {
				return instructions, err
			}
		}

		instructions = append(instructions, instr)
		offset = next
	}
	return instructions, nil
}

// resolveOperand fills in the resolved form of instr's raw argument. next
// is the offset of the instruction that follows, which relative jumps are
// measured from.
func resolveOperand(instr *Instruction, table *op.Table, code *bytecode.Code, next int) error {
	switch instr.Kind {
	case op.KindConst:
		if instr.Arg >= code.ConstantCount() {
			return resolutionError(instr, code, code.ConstantCount())
		}
		instr.Const = code.ConstantAt(instr.Arg)
	case op.KindName:
		if instr.Arg >= code.NameCount() {
			return resolutionError(instr, code, code.NameCount())
		}
		instr.Sym = code.NameAt(instr.Arg)
	case op.KindLocal:
		if instr.Arg >= code.LocalCount() {
			return resolutionError(instr, code, code.LocalCount())
		}
		instr.Sym = code.LocalNameAt(instr.Arg)
	case op.KindFree:
		if instr.Arg >= code.FreeCount() {
			return resolutionError(instr, code, code.FreeCount())
		}
		instr.Sym = code.FreeNameAt(instr.Arg)
	case op.KindRelJump:
		instr.Target = next + instr.Arg
	case op.KindAbsJump:
		instr.Target = instr.Arg
	case op.KindRawInt:
		// Displayed as the raw integer; nothing to resolve.
	}
	return nil
}

func resolutionError(instr *Instruction, code *bytecode.Code, tableSize int) error {
	return &OperandResolutionError{
		Offset:   instr.Offset,
		Opcode:   instr.Opcode,
		Kind:     instr.Kind,
		Index:    instr.Arg,
		Size:     tableSize,
		CodeName: code.Name(),
	}
}
