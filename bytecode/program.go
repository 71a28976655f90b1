package bytecode

import "github.com/pydasm-io/pydasm/op"

// Program is a fully loaded bytecode container: the revision it was
// compiled for, the compilation timestamp from the container header
// (zero when the container carries none), and the root code object.
type Program struct {
	Revision  op.Revision
	Timestamp int64
	Root      *Code
}
