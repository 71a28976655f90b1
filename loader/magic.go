package loader

import (
	"fmt"

	"github.com/pydasm-io/pydasm/op"
)

// UnknownMagicError indicates a container whose magic number matches no
// supported revision.
type UnknownMagicError struct {
	Magic uint16
}

func (e *UnknownMagicError) Error() string {
	return fmt.Sprintf("unknown container magic %d", e.Magic)
}

// magics maps container magic numbers to the revision that produced them.
// A revision may have shipped more than one magic (3.5 changed its number
// mid-series), so this is many-to-one.
var magics = map[uint16]op.Revision{
	62011: op.V(2, 3),
	62061: op.V(2, 4),
	62131: op.V(2, 5),
	62161: op.V(2, 6),
	62211: op.V(2, 7),
	3131:  op.V(3, 0),
	3151:  op.V(3, 1),
	3180:  op.V(3, 2),
	3230:  op.V(3, 3),
	3310:  op.V(3, 4),
	3350:  op.V(3, 5),
	3351:  op.V(3, 5),
}

// RevisionForMagic resolves a container magic number to its revision. The
// alternate runtime reuses the standard numbering, so callers that know
// the container came from it set the PyPy flag on the result themselves.
func RevisionForMagic(magic uint16) (op.Revision, error) {
	rev, ok := magics[magic]
	if !ok {
		return op.Revision{}, &UnknownMagicError{Magic: magic}
	}
	return rev, nil
}
