// Package bytecode provides immutable in-memory representations of loaded
// code objects.
//
// A code object is the unit of disassembly: a raw instruction byte stream
// plus the constant pool, name table, and variable-name tables needed to
// resolve operands. Constants are heterogeneous (a constant may itself be
// a nested code object), so they are modeled as a tagged Constant union
// that callers inspect explicitly.
//
// All types in this package are immutable after construction:
//
//   - No mutation methods exist on any type
//   - All fields are unexported
//   - Constructors copy input slices to prevent caller mutation
//   - Collections are exposed through index-based accessors only
//
// This makes a *Code safe to share by reference across concurrent
// disassembly sessions.
package bytecode
