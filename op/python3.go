package op

// Opcode tables for the 3.x line. The 3.0 encoding restructured enough of
// the numbering (slice opcodes gone, print statements gone, UNPACK_EX in
// the old LIST_APPEND neighborhood) that it gets its own full base table
// rather than deriving from 2.6.

func init() {
	b30 := newTable(V(3, 0))

	b30.op(0, "STOP_CODE")
	b30.op(1, "POP_TOP")
	b30.op(2, "ROT_TWO")
	b30.op(3, "ROT_THREE")
	b30.op(4, "DUP_TOP")
	b30.op(5, "ROT_FOUR")
	b30.op(9, "NOP")
	b30.op(10, "UNARY_POSITIVE")
	b30.op(11, "UNARY_NEGATIVE")
	b30.op(12, "UNARY_NOT")
	b30.op(15, "UNARY_INVERT")
	b30.op(17, "SET_ADD")
	b30.op(18, "LIST_APPEND")
	b30.op(19, "BINARY_POWER")
	b30.op(20, "BINARY_MULTIPLY")
	b30.op(22, "BINARY_MODULO")
	b30.op(23, "BINARY_ADD")
	b30.op(24, "BINARY_SUBTRACT")
	b30.op(25, "BINARY_SUBSCR")
	b30.op(26, "BINARY_FLOOR_DIVIDE")
	b30.op(27, "BINARY_TRUE_DIVIDE")
	b30.op(28, "INPLACE_FLOOR_DIVIDE")
	b30.op(29, "INPLACE_TRUE_DIVIDE")
	b30.op(54, "STORE_MAP")
	b30.op(55, "INPLACE_ADD")
	b30.op(56, "INPLACE_SUBTRACT")
	b30.op(57, "INPLACE_MULTIPLY")
	b30.op(59, "INPLACE_MODULO")
	b30.op(60, "STORE_SUBSCR")
	b30.op(61, "DELETE_SUBSCR")
	b30.op(62, "BINARY_LSHIFT")
	b30.op(63, "BINARY_RSHIFT")
	b30.op(64, "BINARY_AND")
	b30.op(65, "BINARY_XOR")
	b30.op(66, "BINARY_OR")
	b30.op(67, "INPLACE_POWER")
	b30.op(68, "GET_ITER")
	b30.op(69, "STORE_LOCALS")
	b30.op(70, "PRINT_EXPR")
	b30.op(71, "LOAD_BUILD_CLASS")
	b30.op(75, "INPLACE_LSHIFT")
	b30.op(76, "INPLACE_RSHIFT")
	b30.op(77, "INPLACE_AND")
	b30.op(78, "INPLACE_XOR")
	b30.op(79, "INPLACE_OR")
	b30.op(80, "BREAK_LOOP")
	b30.op(81, "WITH_CLEANUP")
	b30.op(83, "RETURN_VALUE")
	b30.op(84, "IMPORT_STAR")
	b30.op(86, "YIELD_VALUE")
	b30.op(87, "POP_BLOCK")
	b30.op(88, "END_FINALLY")

	b30.nameOp(90, "STORE_NAME")
	b30.nameOp(91, "DELETE_NAME")
	b30.intOp(92, "UNPACK_SEQUENCE")
	b30.jrel(93, "FOR_ITER")
	b30.intOp(94, "UNPACK_EX")
	b30.nameOp(95, "STORE_ATTR")
	b30.nameOp(96, "DELETE_ATTR")
	b30.nameOp(97, "STORE_GLOBAL")
	b30.nameOp(98, "DELETE_GLOBAL")
	b30.intOp(99, "DUP_TOPX")
	b30.constOp(100, "LOAD_CONST")
	b30.nameOp(101, "LOAD_NAME")
	b30.intOp(102, "BUILD_TUPLE")
	b30.intOp(103, "BUILD_LIST")
	b30.intOp(104, "BUILD_SET")
	b30.intOp(105, "BUILD_MAP")
	b30.nameOp(106, "LOAD_ATTR")
	b30.intOp(107, "COMPARE_OP")
	b30.nameOp(108, "IMPORT_NAME")
	b30.nameOp(109, "IMPORT_FROM")
	b30.jrel(110, "JUMP_FORWARD")
	b30.jrel(111, "JUMP_IF_FALSE")
	b30.jrel(112, "JUMP_IF_TRUE")
	b30.jabs(113, "JUMP_ABSOLUTE")
	b30.nameOp(116, "LOAD_GLOBAL")
	b30.jabs(119, "CONTINUE_LOOP")
	b30.jrel(120, "SETUP_LOOP")
	b30.jrel(121, "SETUP_EXCEPT")
	b30.jrel(122, "SETUP_FINALLY")
	b30.localOp(124, "LOAD_FAST")
	b30.localOp(125, "STORE_FAST")
	b30.localOp(126, "DELETE_FAST")
	b30.intOp(130, "RAISE_VARARGS")
	b30.intOp(131, "CALL_FUNCTION")
	b30.intOp(132, "MAKE_FUNCTION")
	b30.intOp(133, "BUILD_SLICE")
	b30.intOp(134, "MAKE_CLOSURE")
	b30.freeOp(135, "LOAD_CLOSURE")
	b30.freeOp(136, "LOAD_DEREF")
	b30.freeOp(137, "STORE_DEREF")
	b30.intOp(140, "CALL_FUNCTION_VAR")
	b30.intOp(141, "CALL_FUNCTION_KW")
	b30.intOp(142, "CALL_FUNCTION_VAR_KW")
	b30.extArg(143)
	register(b30.build())

	// 3.1 adopted the pop/or-pop conditional jumps and moved the container
	// append opcodes above the argument threshold.
	b31 := b30.clone(V(3, 1))
	b31.drop(17, 18)
	b31.op(89, "POP_EXCEPT")
	b31.jabs(111, "JUMP_IF_FALSE_OR_POP")
	b31.jabs(112, "JUMP_IF_TRUE_OR_POP")
	b31.jabs(114, "POP_JUMP_IF_FALSE")
	b31.jabs(115, "POP_JUMP_IF_TRUE")
	b31.intOp(145, "LIST_APPEND")
	b31.intOp(146, "SET_ADD")
	b31.intOp(147, "MAP_ADD")
	register(b31.build())

	b32 := b31.clone(V(3, 2))
	b32.drop(99, 143)
	b32.op(5, "DUP_TOP_TWO")
	b32.freeOp(138, "DELETE_DEREF")
	b32.jrel(143, "SETUP_WITH")
	b32.extArg(144)
	register(b32.build())

	b33 := b32.clone(V(3, 3))
	b33.op(72, "YIELD_FROM")
	register(b33.build())

	b34 := b33.clone(V(3, 4))
	b34.drop(69)
	b34.freeOp(148, "LOAD_CLASSDEREF")
	register(b34.build())

	b35 := b34.clone(V(3, 5))
	b35.drop(54)
	b35.op(16, "BINARY_MATRIX_MULTIPLY")
	b35.op(17, "INPLACE_MATRIX_MULTIPLY")
	b35.op(50, "GET_AITER")
	b35.op(51, "GET_ANEXT")
	b35.op(52, "BEFORE_ASYNC_WITH")
	b35.op(69, "GET_YIELD_FROM_ITER")
	b35.op(73, "GET_AWAITABLE")
	b35.op(81, "WITH_CLEANUP_START")
	b35.op(82, "WITH_CLEANUP_FINISH")
	b35.intOp(149, "BUILD_LIST_UNPACK")
	b35.intOp(150, "BUILD_MAP_UNPACK")
	b35.intOp(151, "BUILD_MAP_UNPACK_WITH_CALL")
	b35.intOp(152, "BUILD_TUPLE_UNPACK")
	b35.intOp(153, "BUILD_SET_UNPACK")
	b35.jrel(154, "SETUP_ASYNC_WITH")
	register(b35.build())
}
