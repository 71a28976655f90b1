package dis

import (
	"github.com/pydasm-io/pydasm/bytecode"
	"github.com/pydasm-io/pydasm/op"
)

// Traverse decodes root and every code object reachable from it through
// resolved constant operands, breadth-first, calling visit once per
// decoded object in visitation order.
//
// Nested objects are enqueued in the order their loading instructions
// appear in the stream, not in constant-pool declaration order. A code
// object loaded at two call sites is visited twice: each occurrence is an
// independent listing, and because every enqueue consumes exactly one
// constant occurrence the walk terminates even when objects are shared.
//
// An error from decoding or from visit aborts the walk; objects already
// visited have already been handed to visit by then.
func Traverse(table *op.Table, root *bytecode.Code, visit func(*bytecode.Code, []Instruction) error) error {
	queue := []*bytecode.Code{root}
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]

		instructions, err := Disassemble(table, code)
		if err != nil {
			return err
		}
		if err := visit(code, instructions); err != nil {
			return err
		}
		for _, instr := range instructions {
			if instr.Kind == op.KindConst && instr.Const.IsCode() {
				queue = append(queue, instr.Const.Code())
			}
		}
	}
	return nil
}
