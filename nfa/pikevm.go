package nfa

// PikeVM executes a Program by simulating all live threads of the
// Thompson construction in lockstep, one input rune at a time (the
// classic approach: https://swtch.com/~rsc/regexp/regexp2.html). Unlike a
// backtracking matcher it explores every path in a single left-to-right
// pass, so it cannot exhibit catastrophic backtracking on the
// alternation-heavy patterns this package compiles.
type PikeVM struct {
	prog *Program
}

// NewPikeVM returns a PikeVM ready to run prog.
func NewPikeVM(prog *Program) *PikeVM {
	return &PikeVM{prog: prog}
}

// Search reports whether s matches the compiled pattern in its entirety.
// Anchoring is the caller's responsibility (oracle wraps every pattern in
// "^(?:...)$" before compiling it), so this is a full-string test, not a
// substring search.
func (vm *PikeVM) Search(s string) bool {
	runes := []rune(s)
	n := len(runes)

	clist := newThreadSet(len(vm.prog.insts))
	nlist := newThreadSet(len(vm.prog.insts))
	clist.addThread(vm.prog, vm.prog.start, 0, n)

	for pos := 0; ; pos++ {
		if clist.len() == 0 {
			return false
		}
		for _, pc := range clist.order {
			if vm.prog.insts[pc].op == opMatch && pos == n {
				return true
			}
		}
		if pos == n {
			return false
		}
		r := runes[pos]
		nlist.reset()
		for _, pc := range clist.order {
			in := vm.prog.insts[pc]
			switch in.op {
			case opChar:
				if in.c == r {
					nlist.addThread(vm.prog, in.x, pos+1, n)
				}
			case opAny:
				nlist.addThread(vm.prog, in.x, pos+1, n)
			}
		}
		clist, nlist = nlist, clist
	}
}

// threadSet is a sparse set of live program counters, keyed by a
// generation stamp so resetting between steps is O(1) instead of O(len).
// order additionally records the leaf instructions (opChar, opAny,
// opMatch) reachable in this generation, in the order discovered, which
// is exactly what Search needs to step.
type threadSet struct {
	gen   []uint32
	stamp uint32
	order []uint32
}

func newThreadSet(n int) *threadSet {
	t := &threadSet{gen: make([]uint32, n)}
	t.reset()
	return t
}

func (t *threadSet) reset() {
	t.stamp++
	t.order = t.order[:0]
}

func (t *threadSet) len() int { return len(t.order) }

// addThread follows jmp/split/anchor instructions (the epsilon closure)
// from pc, recording each leaf instruction it reaches exactly once per
// generation.
func (t *threadSet) addThread(prog *Program, pc uint32, pos, length int) {
	if t.gen[pc] == t.stamp {
		return
	}
	t.gen[pc] = t.stamp

	in := prog.insts[pc]
	switch in.op {
	case opJmp:
		t.addThread(prog, in.x, pos, length)
	case opSplit:
		t.addThread(prog, in.x, pos, length)
		t.addThread(prog, in.y, pos, length)
	case opBOL:
		if pos == 0 {
			t.addThread(prog, in.x, pos, length)
		}
	case opEOL:
		if pos == length {
			t.addThread(prog, in.x, pos, length)
		}
	default: // opChar, opAny, opMatch
		t.order = append(t.order, pc)
	}
}
