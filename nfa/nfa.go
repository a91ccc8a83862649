package nfa

// opcode names the handful of Thompson-construction instructions this
// package emits. There is deliberately no counted-repetition or
// capture-group opcode: every pattern this package is asked to compile
// comes from a canonical regex renderer that never produces either.
type opcode uint8

const (
	opChar opcode = iota
	opAny
	opSplit
	opJmp
	opBOL
	opEOL
	opMatch
)

// inst is one instruction in a Program. x and y are destination program
// counters: both are used by opSplit, only x by the rest. c holds the
// rune an opChar instruction requires.
type inst struct {
	op   opcode
	c    rune
	x, y uint32
}

// Program is a compiled pattern ready for PikeVM to execute. It addresses
// instructions by index rather than pointer so Program is trivially
// copyable and safe to share across goroutines once built.
type Program struct {
	insts []inst
	start uint32
}
