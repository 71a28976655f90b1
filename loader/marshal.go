package loader

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/pydasm-io/pydasm/bytecode"
	"github.com/pydasm-io/pydasm/op"
)

// MarshalError indicates corrupt or unsupported data in the serialized
// object graph that follows the container header.
type MarshalError struct {
	Offset int
	Type   byte
	Reason string
}

func (e *MarshalError) Error() string {
	if e.Type != 0 {
		return fmt.Sprintf("marshal error at offset %d (type %q): %s", e.Offset, e.Type, e.Reason)
	}
	return fmt.Sprintf("marshal error at offset %d: %s", e.Offset, e.Reason)
}

// flagRef marks an object that later values reference by index. Newer 3.x
// revisions set it on the type byte; older revisions intern strings with
// a dedicated type code instead. Both feed the same reference list.
const flagRef = 0x80

type marshalReader struct {
	data []byte
	pos  int
	rev  op.Revision
	refs []bytecode.Constant
}

// readCodeObject deserializes the root code object from the container body.
func readCodeObject(body []byte, rev op.Revision) (*bytecode.Code, error) {
	r := &marshalReader{data: body, rev: rev}
	c, err := r.readConstant()
	if err != nil {
		return nil, err
	}
	if !c.IsCode() {
		return nil, &MarshalError{Reason: "root object is not a code object"}
	}
	return c.Code(), nil
}

func (r *marshalReader) errf(offset int, typ byte, format string, args ...interface{}) error {
	return &MarshalError{Offset: offset, Type: typ, Reason: fmt.Sprintf(format, args...)}
}

func (r *marshalReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.errf(r.pos, 0, "unexpected end of data")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *marshalReader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, r.errf(r.pos, 0, "unexpected end of data reading %d bytes", n)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *marshalReader) readInt32() (int32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (r *marshalReader) readInt64() (int64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (r *marshalReader) readFloat64() (float64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (r *marshalReader) readConstant() (bytecode.Constant, error) {
	start := r.pos
	raw, err := r.readByte()
	if err != nil {
		return bytecode.Constant{}, err
	}
	typ := raw &^ byte(flagRef)

	// Reserve the reference slot before reading children so indices match
	// the writer's numbering.
	refIdx := -1
	if raw&flagRef != 0 {
		r.refs = append(r.refs, bytecode.None())
		refIdx = len(r.refs) - 1
	}

	c, err := r.readTyped(typ, start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	if refIdx >= 0 {
		r.refs[refIdx] = c
	}
	return c, nil
}

func (r *marshalReader) readTyped(typ byte, start int) (bytecode.Constant, error) {
	switch typ {
	case 'N':
		return bytecode.None(), nil
	case '.':
		return bytecode.Ellipsis(), nil
	case 'T':
		return bytecode.Bool(true), nil
	case 'F':
		return bytecode.Bool(false), nil

	case 'i':
		v, err := r.readInt32()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.Int(int64(v)), nil
	case 'I':
		v, err := r.readInt64()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.Int(v), nil
	case 'l':
		return r.readLong(start)

	case 'g':
		v, err := r.readFloat64()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.Float(v), nil
	case 'f':
		v, err := r.readASCIIFloat(start)
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.Float(v), nil
	case 'y':
		re, err := r.readFloat64()
		if err != nil {
			return bytecode.Constant{}, err
		}
		im, err := r.readFloat64()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.Complex(complex(re, im)), nil

	case 's':
		b, err := r.readSized()
		if err != nil {
			return bytecode.Constant{}, err
		}
		// The 2.x line stores text and raw bytes with the same type code;
		// 3.x reserves it for raw bytes.
		if r.rev.Major == 2 {
			return bytecode.String(string(b)), nil
		}
		return bytecode.Bytes(b), nil
	case 't':
		b, err := r.readSized()
		if err != nil {
			return bytecode.Constant{}, err
		}
		c := bytecode.String(string(b))
		r.refs = append(r.refs, c)
		return c, nil
	case 'u', 'a', 'A':
		b, err := r.readSized()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.String(string(b)), nil
	case 'z', 'Z':
		n, err := r.readByte()
		if err != nil {
			return bytecode.Constant{}, err
		}
		b, err := r.readBytes(int(n))
		if err != nil {
			return bytecode.Constant{}, err
		}
		return bytecode.String(string(b)), nil

	case 'R', 'r':
		idx, err := r.readInt32()
		if err != nil {
			return bytecode.Constant{}, err
		}
		if idx < 0 || int(idx) >= len(r.refs) {
			return bytecode.Constant{}, r.errf(start, typ, "reference %d out of range (%d interned)", idx, len(r.refs))
		}
		return r.refs[idx], nil

	case '(', '[':
		n, err := r.readInt32()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return r.readTupleBody(start, typ, int(n))
	case ')':
		n, err := r.readByte()
		if err != nil {
			return bytecode.Constant{}, err
		}
		return r.readTupleBody(start, typ, int(n))

	case 'c':
		return r.readCode(start)

	default:
		return bytecode.Constant{}, r.errf(start, typ, "unsupported type code")
	}
}

func (r *marshalReader) readSized() ([]byte, error) {
	n, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	return r.readBytes(int(n))
}

func (r *marshalReader) readASCIIFloat(start int) (float64, error) {
	n, err := r.readByte()
	if err != nil {
		return 0, err
	}
	b, err := r.readBytes(int(n))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, r.errf(start, 'f', "bad float literal %q", b)
	}
	return v, nil
}

// readLong decodes the variable-length integer form: a signed digit count
// followed by 15-bit digits, least significant first.
func (r *marshalReader) readLong(start int) (bytecode.Constant, error) {
	n, err := r.readInt32()
	if err != nil {
		return bytecode.Constant{}, err
	}
	negative := n < 0
	if negative {
		n = -n
	}
	if n > 4 {
		return bytecode.Constant{}, r.errf(start, 'l', "long with %d digits exceeds 64 bits", n)
	}
	var v int64
	for i := int32(0); i < n; i++ {
		b, err := r.readBytes(2)
		if err != nil {
			return bytecode.Constant{}, err
		}
		v |= int64(binary.LittleEndian.Uint16(b)) << (15 * uint(i))
	}
	if negative {
		v = -v
	}
	return bytecode.Int(v), nil
}

func (r *marshalReader) readTupleBody(start int, typ byte, n int) (bytecode.Constant, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return bytecode.Constant{}, r.errf(start, typ, "implausible element count %d", n)
	}
	elems := make([]bytecode.Constant, 0, n)
	for i := 0; i < n; i++ {
		c, err := r.readConstant()
		if err != nil {
			return bytecode.Constant{}, err
		}
		elems = append(elems, c)
	}
	return bytecode.Tuple(elems), nil
}

// readCode deserializes one code object. The field order varies between
// the major lines: 3.x inserts the keyword-only argument count.
func (r *marshalReader) readCode(start int) (bytecode.Constant, error) {
	argCount, err := r.readInt32()
	if err != nil {
		return bytecode.Constant{}, err
	}
	if r.rev.Major >= 3 {
		if _, err := r.readInt32(); err != nil { // kw-only argument count
			return bytecode.Constant{}, err
		}
	}
	if _, err := r.readInt32(); err != nil { // local slot count
		return bytecode.Constant{}, err
	}
	stackSize, err := r.readInt32()
	if err != nil {
		return bytecode.Constant{}, err
	}
	flags, err := r.readInt32()
	if err != nil {
		return bytecode.Constant{}, err
	}

	rawCode, err := r.readText(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	constants, err := r.readConstantTuple(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	names, err := r.readNameTuple(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	varNames, err := r.readNameTuple(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	freeVars, err := r.readNameTuple(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	cellVars, err := r.readNameTuple(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	filename, err := r.readText(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	name, err := r.readText(start)
	if err != nil {
		return bytecode.Constant{}, err
	}
	firstLine, err := r.readInt32()
	if err != nil {
		return bytecode.Constant{}, err
	}
	if _, err := r.readConstant(); err != nil { // line number table, unused
		return bytecode.Constant{}, err
	}

	// Free-variable operands index cell names first, then free names.
	freeNames := append(cellVars, freeVars...)

	code := bytecode.NewCode(bytecode.CodeParams{
		Name:       name,
		Filename:   filename,
		FirstLine:  int(firstLine),
		ArgCount:   int(argCount),
		StackSize:  int(stackSize),
		Flags:      uint32(flags),
		Code:       []byte(rawCode),
		Constants:  constants,
		Names:      names,
		LocalNames: varNames,
		FreeNames:  freeNames,
	})
	return bytecode.CodeConst(code), nil
}

// readText reads a constant that must be a string or bytes value.
func (r *marshalReader) readText(start int) (string, error) {
	c, err := r.readConstant()
	if err != nil {
		return "", err
	}
	if c.Kind() != bytecode.KindString && c.Kind() != bytecode.KindBytes {
		return "", r.errf(start, 'c', "expected string field, got %s", c)
	}
	return c.Text(), nil
}

func (r *marshalReader) readConstantTuple(start int) ([]bytecode.Constant, error) {
	c, err := r.readConstant()
	if err != nil {
		return nil, err
	}
	if c.Kind() != bytecode.KindTuple {
		return nil, r.errf(start, 'c', "expected tuple field, got %s", c)
	}
	elems := make([]bytecode.Constant, c.TupleLen())
	for i := range elems {
		elems[i] = c.TupleAt(i)
	}
	return elems, nil
}

func (r *marshalReader) readNameTuple(start int) ([]string, error) {
	elems, err := r.readConstantTuple(start)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(elems))
	for i, c := range elems {
		if c.Kind() != bytecode.KindString && c.Kind() != bytecode.KindBytes {
			return nil, r.errf(start, 'c', "expected string in name tuple, got %s", c)
		}
		names[i] = c.Text()
	}
	return names, nil
}
