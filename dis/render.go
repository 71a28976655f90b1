package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pydasm-io/pydasm/bytecode"
	"github.com/pydasm-io/pydasm/op"
)

var (
	constColor  = color.New(color.FgYellow)
	symbolColor = color.New(color.FgCyan)
	jumpColor   = color.New(color.FgMagenta)
)

// Render writes the header and instruction listing for one decoded code
// object. The root object's header is suppressed when it has no filename,
// matching how module-level objects are listed. Pure formatting; all
// decoding has already happened.
func Render(w io.Writer, code *bytecode.Code, instructions []Instruction, isRoot bool) error {
	if !isRoot || code.Filename() != "" {
		if err := writeCodeHeader(w, code); err != nil {
			return err
		}
	}
	for _, instr := range instructions {
		if _, err := fmt.Fprintln(w, formatInstruction(instr)); err != nil {
			return err
		}
	}
	return nil
}

func writeCodeHeader(w io.Writer, code *bytecode.Code) error {
	if code.Filename() != "" {
		_, err := fmt.Fprintf(w, "# code object %s (%s:%d)\n", code.Name(), code.Filename(), code.FirstLine())
		return err
	}
	_, err := fmt.Fprintf(w, "# code object %s\n", code.Name())
	return err
}

func formatInstruction(instr Instruction) string {
	line := fmt.Sprintf("%6d  %-24s", instr.Offset, instr.Name)
	if instr.HasArg {
		line += fmt.Sprintf(" %5d", instr.Arg)
		if text, c := resolvedOperand(instr); text != "" {
			line += " (" + c.Sprint(text) + ")"
		}
	}
	return strings.TrimRight(line, " ")
}

// resolvedOperand returns the display form of the resolved operand and the
// color it is shown in. Raw integer operands have no resolved form.
func resolvedOperand(instr Instruction) (string, *color.Color) {
	switch instr.Kind {
	case op.KindConst:
		return instr.Const.String(), constColor
	case op.KindName, op.KindLocal, op.KindFree:
		return instr.Sym, symbolColor
	case op.KindRelJump, op.KindAbsJump:
		return fmt.Sprintf("to %d", instr.Target), jumpColor
	default:
		return "", nil
	}
}
