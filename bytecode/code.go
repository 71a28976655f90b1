package bytecode

// Code represents one loaded code object: a raw instruction byte stream
// plus the tables its operands index. It is immutable after creation and
// safe for concurrent use.
type Code struct {
	name      string
	filename  string
	firstLine int
	argCount  int
	stackSize int
	flags     uint32

	code       []byte
	constants  []Constant
	names      []string
	localNames []string
	freeNames  []string
}

// CodeParams contains parameters for creating a new Code.
type CodeParams struct {
	Name      string
	Filename  string
	FirstLine int
	ArgCount  int
	StackSize int
	Flags     uint32

	Code       []byte
	Constants  []Constant
	Names      []string
	LocalNames []string

	// FreeNames holds cell variable names followed by free variable names,
	// the combined table that free-variable operands index.
	FreeNames []string
}

// NewCode creates an immutable Code from the given parameters. Input
// slices are copied so later mutation by the caller cannot be observed.
func NewCode(params CodeParams) *Code {
	return &Code{
		name:       params.Name,
		filename:   params.Filename,
		firstLine:  params.FirstLine,
		argCount:   params.ArgCount,
		stackSize:  params.StackSize,
		flags:      params.Flags,
		code:       copyBytes(params.Code),
		constants:  copyConstants(params.Constants),
		names:      copyStrings(params.Names),
		localNames: copyStrings(params.LocalNames),
		freeNames:  copyStrings(params.FreeNames),
	}
}

// Name returns the code object's name.
func (c *Code) Name() string { return c.name }

// Filename returns the source filename, which may be empty.
func (c *Code) Filename() string { return c.filename }

// FirstLine returns the source line the object starts on.
func (c *Code) FirstLine() int { return c.firstLine }

// ArgCount returns the number of declared arguments.
func (c *Code) ArgCount() int { return c.argCount }

// StackSize returns the declared evaluation stack size.
func (c *Code) StackSize() int { return c.stackSize }

// Flags returns the raw code object flags.
func (c *Code) Flags() uint32 { return c.flags }

// InstructionCount returns the length of the raw instruction stream.
func (c *Code) InstructionCount() int { return len(c.code) }

// InstructionAt returns the instruction byte at the given offset.
func (c *Code) InstructionAt(offset int) byte { return c.code[offset] }

// ConstantCount returns the size of the constant pool.
func (c *Code) ConstantCount() int { return len(c.constants) }

// ConstantAt returns the constant at the given pool index.
func (c *Code) ConstantAt(index int) Constant { return c.constants[index] }

// NameCount returns the size of the name table.
func (c *Code) NameCount() int { return len(c.names) }

// NameAt returns the name at the given table index.
func (c *Code) NameAt(index int) string { return c.names[index] }

// LocalCount returns the size of the local variable name table.
func (c *Code) LocalCount() int { return len(c.localNames) }

// LocalNameAt returns the local variable name at the given index.
func (c *Code) LocalNameAt(index int) string { return c.localNames[index] }

// FreeCount returns the size of the combined cell/free variable table.
func (c *Code) FreeCount() int { return len(c.freeNames) }

// FreeNameAt returns the cell or free variable name at the given index.
func (c *Code) FreeNameAt(index int) string { return c.freeNames[index] }

func copyBytes(in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyConstants(in []Constant) []Constant {
	if len(in) == 0 {
		return nil
	}
	out := make([]Constant, len(in))
	copy(out, in)
	return out
}
