// Package op defines the per-revision opcode tables used by the disassembler.
//
// Each supported bytecode revision gets one immutable Table mapping opcode
// byte values to definitions. The decoding algorithm is the same for every
// revision; only the table contents, the operand width, and the
// extended-argument shift differ.
package op

import "fmt"

// Kind classifies how an instruction's operand is interpreted.
type Kind uint8

const (
	// KindNone means the opcode takes no operand.
	KindNone Kind = iota
	// KindConst operands index the constant pool.
	KindConst
	// KindName operands index the name table.
	KindName
	// KindLocal operands index the local variable name table.
	KindLocal
	// KindFree operands index the cell and free variable name table.
	KindFree
	// KindRelJump operands are byte deltas from the end of the instruction.
	KindRelJump
	// KindAbsJump operands are absolute byte offsets.
	KindAbsJump
	// KindRawInt operands are plain integers (counts, flags, comparison ids).
	KindRawInt
)

// String returns the string representation of the operand kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConst:
		return "const"
	case KindName:
		return "name"
	case KindLocal:
		return "local"
	case KindFree:
		return "free"
	case KindRelJump:
		return "reljump"
	case KindAbsJump:
		return "absjump"
	case KindRawInt:
		return "int"
	default:
		return "invalid"
	}
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool {
	return k <= KindRawInt
}

// Def describes one opcode within a single revision's table.
type Def struct {
	Name   string
	HasArg bool
	Kind   Kind
}

// Revision identifies one encoding revision of the virtual machine.
// Two runtimes may share a Major.Minor pair but use different opcode
// numbering; the PyPy flag keeps them distinct in the registry.
type Revision struct {
	Major int
	Minor int
	PyPy  bool
}

// V returns the CPython revision with the given major and minor numbers.
func V(major, minor int) Revision {
	return Revision{Major: major, Minor: minor}
}

// PyPyV returns the PyPy revision with the given major and minor numbers.
func PyPyV(major, minor int) Revision {
	return Revision{Major: major, Minor: minor, PyPy: true}
}

// String returns "2.7" for CPython revisions and "pypy-2.7" for PyPy ones.
func (r Revision) String() string {
	if r.PyPy {
		return fmt.Sprintf("pypy-%d.%d", r.Major, r.Minor)
	}
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Less orders revisions by (Major, Minor), with the alternate runtime
// sorting after the standard one.
func (r Revision) Less(other Revision) bool {
	if r.Major != other.Major {
		return r.Major < other.Major
	}
	if r.Minor != other.Minor {
		return r.Minor < other.Minor
	}
	return !r.PyPy && other.PyPy
}
