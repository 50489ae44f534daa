package regex

// tagSpan is a capture group's recorded {start, end} byte offsets. An
// unset endpoint keeps the sentinel value -1.
type tagSpan struct {
	start int
	end   int
}

const unsetOffset = -1

func newTags(n int) []tagSpan {
	tags := make([]tagSpan, n)
	for i := range tags {
		tags[i] = tagSpan{start: unsetOffset, end: unsetOffset}
	}
	return tags
}

// thread is one simulated path through the NFA: the state it is sitting
// at, the trail of split choices that got it there, and its captures.
type thread struct {
	state        *state
	splitChoices []byte
	tags         []tagSpan
}

func (t thread) clone() thread {
	sc := make([]byte, len(t.splitChoices))
	copy(sc, t.splitChoices)
	tg := make([]tagSpan, len(t.tags))
	copy(tg, t.tags)
	return thread{state: t.state, splitChoices: sc, tags: tg}
}

// trailGreater reports whether a is the lexicographically greater split
// trail, 1 > 0. Equal-so-far (including one trail being a prefix of the
// other) is not greater: the thread already installed keeps its slot.
func trailGreater(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// generation is one step's worth of thread state: a presence bitmap and
// the thread table it gates, both sized to the program's state count.
type generation struct {
	visited []bool
	table   []thread
	order   []int
}

func newGeneration(n int) *generation {
	return &generation{visited: make([]bool, n), table: make([]thread, n), order: make([]int, 0, n)}
}

func (g *generation) clear() {
	for _, id := range g.order {
		g.visited[id] = false
	}
	g.order = g.order[:0]
}

// closure installs th into g, recursing through Split and Tag states per
// the tagged ε-closure rule: Split forks into both branches recording a
// split choice bit, Tag stamps a capture offset, Literal and Match stop.
func (g *generation) closure(th thread, pos int) {
	id := th.state.id
	if g.visited[id] {
		if !trailGreater(th.splitChoices, g.table[id].splitChoices) {
			return
		}
		g.table[id] = th
	} else {
		g.visited[id] = true
		g.order = append(g.order, id)
		g.table[id] = th
	}

	switch th.state.kind {
	case kindSplit:
		t1 := th.clone()
		t1.state = th.state.out1
		t1.splitChoices = append(t1.splitChoices, 1)
		g.closure(t1, pos)

		t2 := th.clone()
		t2.state = th.state.out2
		t2.splitChoices = append(t2.splitChoices, 0)
		g.closure(t2, pos)

	case kindTag:
		t := th.clone()
		t.state = th.state.out1
		if th.state.tagStart {
			t.tags[th.state.tagID].start = pos
		} else {
			t.tags[th.state.tagID].end = pos
		}
		g.closure(t, pos)

	case kindLiteral, kindMatch:
		return
	}
}

// run simulates the program against input, returning whether it matched
// and, if so, the captures recorded by the surviving thread at Match.
func (p *program) run(input []byte) (bool, []tagSpan) {
	cur := newGeneration(len(p.states))
	next := newGeneration(len(p.states))

	start := thread{state: p.start, tags: newTags(p.numTags)}
	cur.closure(start, 0)

	for pos := 0; pos < len(input); pos++ {
		b := input[pos]
		next.clear()
		for _, id := range cur.order {
			th := cur.table[id]
			if th.state.kind == kindLiteral && th.state.lit == b {
				nt := th.clone()
				nt.state = th.state.out1
				next.closure(nt, pos+1)
			}
		}
		cur, next = next, cur
	}

	if cur.visited[p.match.id] {
		return true, cur.table[p.match.id].tags
	}
	return false, nil
}
