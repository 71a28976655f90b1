package dis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pydasm-io/pydasm/bytecode"
	"github.com/pydasm-io/pydasm/op"
)

func mustTable(t *testing.T, rev op.Revision) *op.Table {
	t.Helper()
	table, err := op.LookupTable(rev)
	require.NoError(t, err)
	return table
}

// Opcode values for the 2.7 table, used throughout these tests.
const (
	opPopTop      = 1
	opReturnValue = 83
	opLoadConst   = 100
	opLoadName    = 101
	opCompareOp   = 107
	opJumpForward = 110
	opJumpAbs     = 113
	opLoadGlobal  = 116
	opSetupLoop   = 120
	opLoadFast    = 124
	opLoadDeref   = 136
	opExtendedArg = 145
)

func TestDisassembleEmptyBuffer(t *testing.T) {
	table := mustTable(t, op.V(2, 7))
	code := bytecode.NewCode(bytecode.CodeParams{Name: "empty"})

	instructions, err := Disassemble(table, code)
	require.NoError(t, err)
	require.Empty(t, instructions)
}

func TestDisassembleNoArgOpcodes(t *testing.T) {
	table := mustTable(t, op.V(2, 7))
	code := bytecode.NewCode(bytecode.CodeParams{
		Name: "f",
		Code: []byte{opPopTop, opReturnValue},
	})

	instructions, err := Disassemble(table, code)
	require.NoError(t, err)
	require.Len(t, instructions, 2)

	require.Equal(t, 0, instructions[0].Offset)
	require.Equal(t, "POP_TOP", instructions[0].Name)
	require.False(t, instructions[0].HasArg)

	// A no-argument opcode advances exactly one byte.
	require.Equal(t, 1, instructions[1].Offset)
	require.Equal(t, "RETURN_VALUE", instructions[1].Name)
}

func TestDisassembleResolvesOperands(t *testing.T) {
	table := mustTable(t, op.V(2, 7))
	code := bytecode.NewCode(bytecode.CodeParams{
		Name: "f",
		Code: []byte{
			opLoadConst, 1, 0,
			opLoadName, 0, 0,
			opLoadFast, 0, 0,
			opLoadDeref, 1, 0,
			opCompareOp, 4, 0,
			opReturnValue,
		},
		Constants:  []bytecode.Constant{bytecode.None(), bytecode.Int(42)},
		Names:      []string{"print"},
		LocalNames: []string{"x"},
		FreeNames:  []string{"cell0", "free0"},
	})

	instructions, err := Disassemble(table, code)
	require.NoError(t, err)
	require.Len(t, instructions, 6)

	require.Equal(t, "LOAD_CONST", instructions[0].Name)
	require.Equal(t, 1, instructions[0].Arg)
	require.Equal(t, int64(42), instructions[0].Const.IntValue())

	require.Equal(t, "print", instructions[1].Sym)
	require.Equal(t, "x", instructions[2].Sym)
	require.Equal(t, "free0", instructions[3].Sym)

	// COMPARE_OP takes a raw integer operand: no resolved form.
	require.Equal(t, op.KindRawInt, instructions[4].Kind)
	require.Equal(t, 4, instructions[4].Arg)
	require.Empty(t, instructions[4].Sym)

	// Two-byte little-endian operands advance three bytes per instruction.
	require.Equal(t, 3, instructions[1].Offset)
	require.Equal(t, 15, instructions[5].Offset)
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	table := mustTable(t, op.V(2, 7))
	code := bytecode.NewCode(bytecode.CodeParams{
		Name: "broken",
		Code: []byte{opPopTop, 7},
	})

	instructions, err := Disassemble(table, code)
	require.Error(t, err)

	var unknown *UnknownOpcodeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, 1, unknown.Offset)
	require.Equal(t, byte(7), unknown.Opcode)
	require.Equal(t, "broken", unknown.CodeName)

	// Instructions before the failure are still returned.
	require.Len(t, instructions, 1)
	require.Equal(t, "POP_TOP", instructions[0].Name)
}

func TestDisassembleTruncatedOperand(t *testing.T) {
	table := mustTable(t, op.V(2, 7))

	for _, raw := range [][]byte{
		{opLoadConst},    // operand missing entirely
		{opLoadConst, 0}, // one of two operand bytes
	} {
		code := bytecode.NewCode(bytecode.CodeParams{Name: "trunc", Code: raw})
		instructions, err := Disassemble(table, code)
		require.Error(t, err)

		var truncated *TruncatedInstructionError
		require.True(t, errors.As(err, &truncated))
		require.Equal(t, 0, truncated.Offset)
		require.Equal(t, byte(opLoadConst), truncated.Opcode)
		require.Equal(t, 2, truncated.Needed)
		require.Equal(t, len(raw)-1, truncated.Remaining)

		// No instruction is emitted for the partial opcode.
		require.Empty(t, instructions)
	}
}

func TestDisassembleOperandOutOfRange(t *testing.T) {
	table := mustTable(t, op.V(2, 7))

	tests := []struct {
		name string
		raw  []byte
		kind op.Kind
	}{
		{"constant", []byte{opLoadConst, 5, 0}, op.KindConst},
		{"name", []byte{opLoadGlobal, 1, 0}, op.KindName},
		{"local", []byte{opLoadFast, 2, 0}, op.KindLocal},
		{"free", []byte{opLoadDeref, 9, 0}, op.KindFree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := bytecode.NewCode(bytecode.CodeParams{
				Name:       "f",
				Code:       tt.raw,
				Constants:  []bytecode.Constant{bytecode.None()},
				Names:      []string{"a"},
				LocalNames: []string{"x", "y"},
				FreeNames:  []string{"c"},
			})
			_, err := Disassemble(table, code)
			require.Error(t, err)

			var resolution *OperandResolutionError
			require.True(t, errors.As(err, &resolution))
			require.Equal(t, tt.kind, resolution.Kind)
			require.Equal(t, 0, resolution.Offset)
			require.Equal(t, "f", resolution.CodeName)
		})
	}
}

func TestRelativeJumpResolution(t *testing.T) {
	table := mustTable(t, op.V(2, 7))

	// Pad with no-arg opcodes so the jump sits at offset 10. The encoded
	// instruction is 3 bytes, so the following instruction starts at 13
	// and the delta operand is measured from there.
	raw := make([]byte, 0, 16)
	for i := 0; i < 10; i++ {
		raw = append(raw, opPopTop)
	}
	raw = append(raw, opJumpForward, 0, 0) // delta 0: lands at 13
	raw = append(raw, opSetupLoop, 5, 0)   // offset 13, delta 5: lands at 21

	code := bytecode.NewCode(bytecode.CodeParams{Name: "jumps", Code: raw})
	instructions, err := Disassemble(table, code)
	require.NoError(t, err)

	jump := instructions[10]
	require.Equal(t, 10, jump.Offset)
	require.Equal(t, op.KindRelJump, jump.Kind)
	require.Equal(t, 13, jump.Target)

	loop := instructions[11]
	require.Equal(t, 13, loop.Offset)
	require.Equal(t, 5, loop.Arg)
	require.Equal(t, 21, loop.Target)
}

func TestAbsoluteJumpResolution(t *testing.T) {
	table := mustTable(t, op.V(2, 7))
	code := bytecode.NewCode(bytecode.CodeParams{
		Name: "f",
		Code: []byte{opPopTop, opJumpAbs, 44, 1}, // 0x012c = 300
	})

	instructions, err := Disassemble(table, code)
	require.NoError(t, err)
	require.Equal(t, op.KindAbsJump, instructions[1].Kind)
	require.Equal(t, 300, instructions[1].Arg)
	require.Equal(t, 300, instructions[1].Target)
}

func TestExtendedArgAccumulation(t *testing.T) {
	table := mustTable(t, op.V(2, 7))

	// Two extended-argument prefixes then an absolute jump. The payloads
	// combine as (ext1 << 32) | (ext2 << 16) | final.
	code := bytecode.NewCode(bytecode.CodeParams{
		Name: "wide",
		Code: []byte{
			opExtendedArg, 1, 0,
			opExtendedArg, 2, 0,
			opJumpAbs, 3, 0,
			opJumpAbs, 7, 0,
		},
	})

	instructions, err := Disassemble(table, code)
	require.NoError(t, err)
	require.Len(t, instructions, 4)

	require.Equal(t, "EXTENDED_ARG", instructions[0].Name)
	require.Equal(t, 1, instructions[0].Arg)
	require.Equal(t, (1<<16)|2, instructions[1].Arg)

	want := (1 << 32) | (2 << 16) | 3
	require.Equal(t, want, instructions[2].Arg)
	require.Equal(t, want, instructions[2].Target)

	// The accumulator is zero again after being consumed.
	require.Equal(t, 7, instructions[3].Arg)
}

func TestExtendedArgDiscardedByNoArgOpcode(t *testing.T) {
	table := mustTable(t, op.V(2, 7))
	code := bytecode.NewCode(bytecode.CodeParams{
		Name: "discard",
		Code: []byte{
			opExtendedArg, 1, 0,
			opPopTop,
			opJumpAbs, 3, 0,
		},
	})

	instructions, err := Disassemble(table, code)
	require.NoError(t, err)
	require.Equal(t, 3, instructions[2].Arg)
}

func TestDisassembleHonorsTableArgWidth(t *testing.T) {
	// A synthetic single-byte-operand revision is not registered, so build
	// the expectation around the field rather than a registry entry.
	table := mustTable(t, op.V(3, 5))
	require.Equal(t, 2, table.ArgWidth)
	require.Equal(t, uint(16), table.ExtArgShift)
	require.Equal(t, 144, table.ExtendedArg)
}
