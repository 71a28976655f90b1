package bytecode

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstKind tags the variant held by a Constant.
type ConstKind uint8

const (
	KindNone ConstKind = iota
	KindBool
	KindInt
	KindFloat
	KindComplex
	KindString
	KindBytes
	KindTuple
	KindCode
	KindEllipsis
)

// Constant is a tagged union over the value types that can appear in a
// code object's constant pool. The zero value is the None constant.
type Constant struct {
	kind ConstKind
	b    bool
	i    int64
	f    float64
	c    complex128
	s    string // string and bytes payloads
	tup  []Constant
	code *Code
}

// None returns the None constant.
func None() Constant { return Constant{kind: KindNone} }

// Ellipsis returns the ellipsis constant.
func Ellipsis() Constant { return Constant{kind: KindEllipsis} }

// Bool returns a boolean constant.
func Bool(v bool) Constant { return Constant{kind: KindBool, b: v} }

// Int returns an integer constant.
func Int(v int64) Constant { return Constant{kind: KindInt, i: v} }

// Float returns a floating-point constant.
func Float(v float64) Constant { return Constant{kind: KindFloat, f: v} }

// Complex returns a complex-number constant.
func Complex(v complex128) Constant { return Constant{kind: KindComplex, c: v} }

// String returns a text constant.
func String(v string) Constant { return Constant{kind: KindString, s: v} }

// Bytes returns a raw byte-string constant. The bytes are copied.
func Bytes(v []byte) Constant { return Constant{kind: KindBytes, s: string(v)} }

// Tuple returns a tuple constant. The element slice is copied.
func Tuple(elems []Constant) Constant {
	cp := make([]Constant, len(elems))
	copy(cp, elems)
	return Constant{kind: KindTuple, tup: cp}
}

// CodeConst returns a constant wrapping a nested code object.
func CodeConst(code *Code) Constant { return Constant{kind: KindCode, code: code} }

// Kind returns the variant tag.
func (c Constant) Kind() ConstKind { return c.kind }

// IsCode reports whether the constant holds a nested code object.
func (c Constant) IsCode() bool { return c.kind == KindCode }

// Code returns the nested code object, or nil for non-code constants.
func (c Constant) Code() *Code {
	if c.kind != KindCode {
		return nil
	}
	return c.code
}

// BoolValue returns the boolean payload.
func (c Constant) BoolValue() bool { return c.b }

// IntValue returns the integer payload.
func (c Constant) IntValue() int64 { return c.i }

// FloatValue returns the float payload.
func (c Constant) FloatValue() float64 { return c.f }

// ComplexValue returns the complex payload.
func (c Constant) ComplexValue() complex128 { return c.c }

// Text returns the string payload of a string or bytes constant.
func (c Constant) Text() string { return c.s }

// TupleLen returns the number of elements in a tuple constant.
func (c Constant) TupleLen() int { return len(c.tup) }

// TupleAt returns the tuple element at the given index.
func (c Constant) TupleAt(i int) Constant { return c.tup[i] }

// String renders the constant the way the source runtime's repr would,
// which is what readers of a listing expect to see.
func (c Constant) String() string {
	switch c.kind {
	case KindNone:
		return "None"
	case KindEllipsis:
		return "Ellipsis"
	case KindBool:
		if c.b {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	case KindComplex:
		return fmt.Sprintf("(%g+%gj)", real(c.c), imag(c.c))
	case KindString:
		return quote(c.s)
	case KindBytes:
		return "b" + quote(c.s)
	case KindTuple:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, elem := range c.tup {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(elem.String())
		}
		if len(c.tup) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
		return sb.String()
	case KindCode:
		return fmt.Sprintf("<code object %s>", c.code.Name())
	default:
		return "<invalid constant>"
	}
}

// quote renders s in single quotes with the escapes a repr would use.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
