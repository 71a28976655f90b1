package op

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRevisionString(t *testing.T) {
	require.Equal(t, "2.7", V(2, 7).String())
	require.Equal(t, "pypy-2.6", PyPyV(2, 6).String())
}

func TestRevisionOrdering(t *testing.T) {
	require.True(t, V(2, 7).Less(V(3, 0)))
	require.True(t, V(3, 0).Less(V(3, 5)))
	require.True(t, V(2, 6).Less(PyPyV(2, 6)))
	require.False(t, PyPyV(2, 6).Less(V(2, 6)))
	require.False(t, V(2, 7).Less(V(2, 7)))
}

func TestLookupTableExactMatchOnly(t *testing.T) {
	table, err := LookupTable(V(2, 7))
	require.NoError(t, err)
	require.Equal(t, V(2, 7), table.Revision)

	// No fallback to a nearby revision.
	_, err = LookupTable(V(9, 9))
	require.Error(t, err)
	var unsupported *UnsupportedRevisionError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, V(9, 9), unsupported.Revision)
	require.Contains(t, err.Error(), "9.9")

	// The alternate runtime flag is part of the key.
	_, err = LookupTable(PyPyV(3, 4))
	require.Error(t, err)
}

func TestSupportedRevisions(t *testing.T) {
	revs := Revisions()
	require.Len(t, revs, 13)
	expected := []Revision{
		V(2, 3), V(2, 4), V(2, 5), V(2, 6), PyPyV(2, 6), V(2, 7), PyPyV(2, 7),
		V(3, 0), V(3, 1), V(3, 2), V(3, 3), V(3, 4), V(3, 5),
	}
	require.Equal(t, expected, revs)
}

func TestEveryTableValidates(t *testing.T) {
	require.NoError(t, ValidateTables())

	for _, rev := range Revisions() {
		table, err := LookupTable(rev)
		require.NoError(t, err)
		for code := 0; code < 256; code++ {
			def, ok := table.Lookup(byte(code))
			if !ok {
				continue
			}
			require.NotEmpty(t, def.Name, "%s opcode %d", rev, code)
			require.LessOrEqual(t, def.Kind, KindRawInt, "%s opcode %d", rev, code)
		}
	}
}

func TestValidateRejectsBrokenTable(t *testing.T) {
	b := newTable(V(9, 8))
	b.add(1, "", KindNone)
	b.add(2, "BAD_FLAG", KindRawInt)
	broken := b.build()
	broken.defs[2].HasArg = false

	err := broken.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "no mnemonic")
	require.Contains(t, err.Error(), "argument flag disagrees")
}

func TestTableRevisionDifferences(t *testing.T) {
	t26, err := LookupTable(V(2, 6))
	require.NoError(t, err)
	t27, err := LookupTable(V(2, 7))
	require.NoError(t, err)

	// Conditional jumps changed encoding between 2.6 and 2.7.
	def, ok := t26.Lookup(111)
	require.True(t, ok)
	require.Equal(t, "JUMP_IF_FALSE", def.Name)
	require.Equal(t, KindRelJump, def.Kind)

	def, ok = t27.Lookup(111)
	require.True(t, ok)
	require.Equal(t, "JUMP_IF_FALSE_OR_POP", def.Name)
	require.Equal(t, KindAbsJump, def.Kind)

	// The extended-argument prefix moved.
	require.Equal(t, 143, t26.ExtendedArg)
	require.Equal(t, 145, t27.ExtendedArg)

	// LIST_APPEND gained an operand in 2.7.
	def, ok = t26.Lookup(18)
	require.True(t, ok)
	require.False(t, def.HasArg)
	_, ok = t27.Lookup(18)
	require.False(t, ok)
	def, ok = t27.Lookup(94)
	require.True(t, ok)
	require.Equal(t, "LIST_APPEND", def.Name)
	require.True(t, def.HasArg)
}

func TestAlternateRuntimeOpcodes(t *testing.T) {
	pypy, err := LookupTable(PyPyV(2, 7))
	require.NoError(t, err)
	cpython, err := LookupTable(V(2, 7))
	require.NoError(t, err)

	def, ok := pypy.Lookup(201)
	require.True(t, ok)
	require.Equal(t, "LOOKUP_METHOD", def.Name)
	require.Equal(t, KindName, def.Kind)

	_, ok = cpython.Lookup(201)
	require.False(t, ok)

	// The shared range matches the standard runtime.
	def, ok = pypy.Lookup(100)
	require.True(t, ok)
	require.Equal(t, "LOAD_CONST", def.Name)
}

func TestInstructionSize(t *testing.T) {
	table, err := LookupTable(V(3, 4))
	require.NoError(t, err)
	require.Equal(t, 1, table.InstructionSize(1))    // POP_TOP
	require.Equal(t, 3, table.InstructionSize(100))  // LOAD_CONST
	require.Equal(t, 1, table.InstructionSize(7))    // undefined
	require.Equal(t, "<invalid>", table.Name(7))
	require.Equal(t, "LOAD_CONST", table.Name(100))
}
