package op

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Table holds the opcode definitions for one revision. Tables are built
// once during package initialization and never mutated afterwards, so a
// single instance is safe to share across concurrent decoding sessions.
type Table struct {
	Revision Revision

	// ArgWidth is the operand size in bytes for argument-taking opcodes.
	ArgWidth int

	// ExtArgShift is the number of bits each extended-argument prefix
	// contributes to the following instruction's operand.
	ExtArgShift uint

	// ExtendedArg is the opcode value of the extended-argument prefix,
	// or -1 when the revision has none.
	ExtendedArg int

	defs    [256]Def
	defined [256]bool
}

// Lookup returns the definition for the given opcode byte and whether the
// opcode exists in this revision.
func (t *Table) Lookup(opcode byte) (Def, bool) {
	return t.defs[opcode], t.defined[opcode]
}

// Name returns the mnemonic for the given opcode, or "<invalid>" when the
// opcode is not defined in this revision.
func (t *Table) Name(opcode byte) string {
	if !t.defined[opcode] {
		return "<invalid>"
	}
	return t.defs[opcode].Name
}

// InstructionSize returns the encoded size in bytes of an instruction with
// the given opcode byte: one byte for the opcode plus ArgWidth bytes when
// the opcode takes an argument.
func (t *Table) InstructionSize(opcode byte) int {
	if t.defined[opcode] && t.defs[opcode].HasArg {
		return 1 + t.ArgWidth
	}
	return 1
}

// Validate checks the structural invariants of the table: every defined
// opcode has a non-empty mnemonic and a declared operand kind consistent
// with its HasArg flag. Problems are aggregated so a broken table reports
// everything wrong with it at once.
func (t *Table) Validate() error {
	var result error
	if t.ArgWidth != 1 && t.ArgWidth != 2 {
		result = multierror.Append(result, fmt.Errorf("%s: invalid operand width %d", t.Revision, t.ArgWidth))
	}
	for code := 0; code < 256; code++ {
		if !t.defined[code] {
			continue
		}
		def := t.defs[code]
		if def.Name == "" {
			result = multierror.Append(result, fmt.Errorf("%s: opcode %d has no mnemonic", t.Revision, code))
		}
		if !def.Kind.valid() {
			result = multierror.Append(result, fmt.Errorf("%s: opcode %d (%s) has invalid operand kind", t.Revision, code, def.Name))
		}
		if def.HasArg != (def.Kind != KindNone) {
			result = multierror.Append(result, fmt.Errorf("%s: opcode %d (%s) argument flag disagrees with kind %s", t.Revision, code, def.Name, def.Kind))
		}
	}
	if t.ExtendedArg >= 0 && !t.defined[t.ExtendedArg] {
		result = multierror.Append(result, fmt.Errorf("%s: extended-arg opcode %d is not defined", t.Revision, t.ExtendedArg))
	}
	return result
}

// builder accumulates opcode definitions for one revision. The historical
// encodings evolved by small deltas, so most tables are built by cloning
// the previous revision and applying adds, removes, and renames.
type builder struct {
	t *Table
}

func newTable(rev Revision) *builder {
	return &builder{t: &Table{
		Revision:    rev,
		ArgWidth:    2,
		ExtArgShift: 16,
		ExtendedArg: -1,
	}}
}

// clone copies the table built so far under a new revision identifier.
func (b *builder) clone(rev Revision) *builder {
	t := *b.t
	t.Revision = rev
	return &builder{t: &t}
}

func (b *builder) add(code int, name string, kind Kind) {
	b.t.defs[code] = Def{Name: name, HasArg: kind != KindNone, Kind: kind}
	b.t.defined[code] = true
}

// op defines an opcode that takes no operand.
func (b *builder) op(code int, name string) { b.add(code, name, KindNone) }

// constOp defines an opcode whose operand indexes the constant pool.
func (b *builder) constOp(code int, name string) { b.add(code, name, KindConst) }

// nameOp defines an opcode whose operand indexes the name table.
func (b *builder) nameOp(code int, name string) { b.add(code, name, KindName) }

// localOp defines an opcode whose operand indexes the local variable table.
func (b *builder) localOp(code int, name string) { b.add(code, name, KindLocal) }

// freeOp defines an opcode whose operand indexes the cell/free variable table.
func (b *builder) freeOp(code int, name string) { b.add(code, name, KindFree) }

// jrel defines an opcode whose operand is a relative jump delta.
func (b *builder) jrel(code int, name string) { b.add(code, name, KindRelJump) }

// jabs defines an opcode whose operand is an absolute jump target.
func (b *builder) jabs(code int, name string) { b.add(code, name, KindAbsJump) }

// intOp defines an opcode whose operand is a plain integer.
func (b *builder) intOp(code int, name string) { b.add(code, name, KindRawInt) }

// extArg defines the extended-argument prefix opcode.
func (b *builder) extArg(code int) {
	b.add(code, "EXTENDED_ARG", KindRawInt)
	b.t.ExtendedArg = code
}

// drop removes an opcode that the revision no longer defines.
func (b *builder) drop(codes ...int) {
	for _, code := range codes {
		b.t.defs[code] = Def{}
		b.t.defined[code] = false
		if b.t.ExtendedArg == code {
			b.t.ExtendedArg = -1
		}
	}
}

func (b *builder) build() *Table {
	return b.t
}
