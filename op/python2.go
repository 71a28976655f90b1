package op

// Opcode tables for the 2.x line. Each revision is the previous one plus a
// small delta, which is how the encodings actually evolved. The 2.3 table
// is written out in full and everything through 2.7 derives from it.

func init() {
	b23 := newTable(V(2, 3))

	b23.op(0, "STOP_CODE")
	b23.op(1, "POP_TOP")
	b23.op(2, "ROT_TWO")
	b23.op(3, "ROT_THREE")
	b23.op(4, "DUP_TOP")
	b23.op(5, "ROT_FOUR")
	b23.op(10, "UNARY_POSITIVE")
	b23.op(11, "UNARY_NEGATIVE")
	b23.op(12, "UNARY_NOT")
	b23.op(13, "UNARY_CONVERT")
	b23.op(15, "UNARY_INVERT")
	b23.op(18, "LIST_APPEND")
	b23.op(19, "BINARY_POWER")
	b23.op(20, "BINARY_MULTIPLY")
	b23.op(21, "BINARY_DIVIDE")
	b23.op(22, "BINARY_MODULO")
	b23.op(23, "BINARY_ADD")
	b23.op(24, "BINARY_SUBTRACT")
	b23.op(25, "BINARY_SUBSCR")
	b23.op(26, "BINARY_FLOOR_DIVIDE")
	b23.op(27, "BINARY_TRUE_DIVIDE")
	b23.op(28, "INPLACE_FLOOR_DIVIDE")
	b23.op(29, "INPLACE_TRUE_DIVIDE")
	b23.op(30, "SLICE+0")
	b23.op(31, "SLICE+1")
	b23.op(32, "SLICE+2")
	b23.op(33, "SLICE+3")
	b23.op(40, "STORE_SLICE+0")
	b23.op(41, "STORE_SLICE+1")
	b23.op(42, "STORE_SLICE+2")
	b23.op(43, "STORE_SLICE+3")
	b23.op(50, "DELETE_SLICE+0")
	b23.op(51, "DELETE_SLICE+1")
	b23.op(52, "DELETE_SLICE+2")
	b23.op(53, "DELETE_SLICE+3")
	b23.op(55, "INPLACE_ADD")
	b23.op(56, "INPLACE_SUBTRACT")
	b23.op(57, "INPLACE_MULTIPLY")
	b23.op(58, "INPLACE_DIVIDE")
	b23.op(59, "INPLACE_MODULO")
	b23.op(60, "STORE_SUBSCR")
	b23.op(61, "DELETE_SUBSCR")
	b23.op(62, "BINARY_LSHIFT")
	b23.op(63, "BINARY_RSHIFT")
	b23.op(64, "BINARY_AND")
	b23.op(65, "BINARY_XOR")
	b23.op(66, "BINARY_OR")
	b23.op(67, "INPLACE_POWER")
	b23.op(68, "GET_ITER")
	b23.op(70, "PRINT_EXPR")
	b23.op(71, "PRINT_ITEM")
	b23.op(72, "PRINT_NEWLINE")
	b23.op(73, "PRINT_ITEM_TO")
	b23.op(74, "PRINT_NEWLINE_TO")
	b23.op(75, "INPLACE_LSHIFT")
	b23.op(76, "INPLACE_RSHIFT")
	b23.op(77, "INPLACE_AND")
	b23.op(78, "INPLACE_XOR")
	b23.op(79, "INPLACE_OR")
	b23.op(80, "BREAK_LOOP")
	b23.op(82, "LOAD_LOCALS")
	b23.op(83, "RETURN_VALUE")
	b23.op(84, "IMPORT_STAR")
	b23.op(85, "EXEC_STMT")
	b23.op(86, "YIELD_VALUE")
	b23.op(87, "POP_BLOCK")
	b23.op(88, "END_FINALLY")
	b23.op(89, "BUILD_CLASS")

	// Everything from here on takes a two-byte operand.
	b23.nameOp(90, "STORE_NAME")
	b23.nameOp(91, "DELETE_NAME")
	b23.intOp(92, "UNPACK_SEQUENCE")
	b23.jrel(93, "FOR_ITER")
	b23.nameOp(95, "STORE_ATTR")
	b23.nameOp(96, "DELETE_ATTR")
	b23.nameOp(97, "STORE_GLOBAL")
	b23.nameOp(98, "DELETE_GLOBAL")
	b23.intOp(99, "DUP_TOPX")
	b23.constOp(100, "LOAD_CONST")
	b23.nameOp(101, "LOAD_NAME")
	b23.intOp(102, "BUILD_TUPLE")
	b23.intOp(103, "BUILD_LIST")
	b23.intOp(104, "BUILD_MAP")
	b23.nameOp(105, "LOAD_ATTR")
	b23.intOp(106, "COMPARE_OP")
	b23.nameOp(107, "IMPORT_NAME")
	b23.nameOp(108, "IMPORT_FROM")
	b23.jrel(110, "JUMP_FORWARD")
	b23.jrel(111, "JUMP_IF_FALSE")
	b23.jrel(112, "JUMP_IF_TRUE")
	b23.jabs(113, "JUMP_ABSOLUTE")
	b23.nameOp(116, "LOAD_GLOBAL")
	b23.jabs(119, "CONTINUE_LOOP")
	b23.jrel(120, "SETUP_LOOP")
	b23.jrel(121, "SETUP_EXCEPT")
	b23.jrel(122, "SETUP_FINALLY")
	b23.localOp(124, "LOAD_FAST")
	b23.localOp(125, "STORE_FAST")
	b23.localOp(126, "DELETE_FAST")
	b23.intOp(130, "RAISE_VARARGS")
	b23.intOp(131, "CALL_FUNCTION")
	b23.intOp(132, "MAKE_FUNCTION")
	b23.intOp(133, "BUILD_SLICE")
	b23.intOp(134, "MAKE_CLOSURE")
	b23.freeOp(135, "LOAD_CLOSURE")
	b23.freeOp(136, "LOAD_DEREF")
	b23.freeOp(137, "STORE_DEREF")
	b23.intOp(140, "CALL_FUNCTION_VAR")
	b23.intOp(141, "CALL_FUNCTION_KW")
	b23.intOp(142, "CALL_FUNCTION_VAR_KW")
	b23.extArg(143)
	register(b23.build())

	b24 := b23.clone(V(2, 4))
	b24.op(9, "NOP")
	register(b24.build())

	b25 := b24.clone(V(2, 5))
	b25.op(81, "WITH_CLEANUP")
	register(b25.build())

	b26 := b25.clone(V(2, 6))
	b26.op(54, "STORE_MAP")
	register(b26.build())
	registerPyPy26(b26)

	// 2.7 restructured the middle of the table: BUILD_SET was wedged in at
	// 104 (shifting the five opcodes above it), LIST_APPEND moved above the
	// argument threshold, and the two-way conditional jumps were replaced
	// with the four pop/or-pop absolute variants.
	b27 := b26.clone(V(2, 7))
	b27.drop(18)
	b27.intOp(94, "LIST_APPEND")
	b27.intOp(104, "BUILD_SET")
	b27.intOp(105, "BUILD_MAP")
	b27.nameOp(106, "LOAD_ATTR")
	b27.intOp(107, "COMPARE_OP")
	b27.nameOp(108, "IMPORT_NAME")
	b27.nameOp(109, "IMPORT_FROM")
	b27.jabs(111, "JUMP_IF_FALSE_OR_POP")
	b27.jabs(112, "JUMP_IF_TRUE_OR_POP")
	b27.jabs(114, "POP_JUMP_IF_FALSE")
	b27.jabs(115, "POP_JUMP_IF_TRUE")
	b27.jrel(143, "SETUP_WITH")
	b27.extArg(145)
	b27.intOp(146, "SET_ADD")
	b27.intOp(147, "MAP_ADD")
	register(b27.build())
	registerPyPy27(b27)
}
