package dis

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/pydasm-io/pydasm/bytecode"
	"github.com/pydasm-io/pydasm/op"
)

// Program disassembles every code object reachable from the program's root
// and writes the complete listing to out.
//
// The opcode table is resolved before anything is written, so an
// unsupported revision produces no output at all. A failure later in the
// traversal leaves the listings already rendered in out and returns the
// error, which distinguishes a partial listing from a clean completion.
func Program(program *bytecode.Program, out io.Writer) error {
	table, err := op.LookupTable(program.Revision)
	if err != nil {
		return err
	}
	if err := writeProgramHeader(out, program.Revision, program.Timestamp, runtime.Version()); err != nil {
		return err
	}

	isRoot := true
	return Traverse(table, program.Root, func(code *bytecode.Code, instructions []Instruction) error {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		err := Render(out, code, instructions, isRoot)
		isRoot = false
		return err
	})
}

func writeProgramHeader(w io.Writer, rev op.Revision, timestamp int64, host string) error {
	if _, err := fmt.Fprintf(w, "# bytecode revision %s (disassembled with %s)\n", rev, host); err != nil {
		return err
	}
	if timestamp > 0 {
		when := time.Unix(timestamp, 0).UTC().Format("2006-01-02 15:04:05")
		if _, err := fmt.Fprintf(w, "# timestamp in code: %s\n", when); err != nil {
			return err
		}
	}
	return nil
}
