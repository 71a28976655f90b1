package op

// The alternate runtime shares the CPython numbering for its major.minor
// and layers its own method-call opcodes into the unused high range.

func registerPyPy26(base *builder) {
	b := base.clone(PyPyV(2, 6))
	b.nameOp(201, "LOOKUP_METHOD")
	b.intOp(202, "CALL_METHOD")
	register(b.build())
}

func registerPyPy27(base *builder) {
	b := base.clone(PyPyV(2, 7))
	b.nameOp(201, "LOOKUP_METHOD")
	b.intOp(202, "CALL_METHOD")
	b.op(203, "BUILD_LIST_FROM_ARG")
	b.jrel(204, "JUMP_IF_NOT_DEBUG")
	register(b.build())
}
