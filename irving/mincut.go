package irving

// flowNet is a dense, integer-indexed maximum-flow network used by the
// egalitarian search to solve the project-selection minimum cut over the
// rotation poset. It is a compact rendition of Dinic's algorithm (level
// graph via BFS, blocking flow via iterator DFS, lazy residual arcs);
// rotation networks are tiny, so arcs live in one arena slice and vertices
// are plain ints.
type flowNet struct {
	arcs  []arc
	heads [][]int // heads[u] = indices into arcs of u's outgoing arcs
	level []int   // BFS level per vertex, -1 = unreached
	iter  []int   // per-vertex DFS arc cursor for the blocking flow
}

// arc is one directed residual arc; rev indexes its paired reverse arc.
type arc struct {
	to  int
	cap int64
	rev int
}

// newFlowNet returns an empty network over n vertices.
func newFlowNet(n int) *flowNet {
	return &flowNet{
		heads: make([][]int, n),
		level: make([]int, n),
		iter:  make([]int, n),
	}
}

// addArc adds a forward arc u→v with capacity c and its zero-capacity
// reverse companion.
func (f *flowNet) addArc(u, v int, c int64) {
	f.heads[u] = append(f.heads[u], len(f.arcs))
	f.arcs = append(f.arcs, arc{to: v, cap: c, rev: len(f.arcs) + 1})
	f.heads[v] = append(f.heads[v], len(f.arcs))
	f.arcs = append(f.arcs, arc{to: u, cap: 0, rev: len(f.arcs) - 1})
}

// maxflow pushes the maximum s→t flow and returns its value.
func (f *flowNet) maxflow(s, t int) int64 {
	var total int64
	for f.bfs(s, t) {
		for u := range f.iter {
			f.iter[u] = 0
		}
		for {
			pushed := f.push(s, t, int64(1)<<62)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return total
}

// bfs rebuilds the level graph; reports whether t is still reachable.
func (f *flowNet) bfs(s, t int) bool {
	for u := range f.level {
		f.level[u] = -1
	}
	f.level[s] = 0
	queue := []int{s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, ai := range f.heads[u] {
			if a := f.arcs[ai]; a.cap > 0 && f.level[a.to] < 0 {
				f.level[a.to] = f.level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return f.level[t] >= 0
}

// push sends one blocking-flow augmentation along the level graph,
// advancing per-vertex cursors so exhausted arcs are never rescanned.
func (f *flowNet) push(u, t int, limit int64) int64 {
	if u == t {
		return limit
	}
	for ; f.iter[u] < len(f.heads[u]); f.iter[u]++ {
		ai := f.heads[u][f.iter[u]]
		a := f.arcs[ai]
		if a.cap <= 0 || f.level[a.to] != f.level[u]+1 {
			continue
		}
		sent := f.push(a.to, t, min64(limit, a.cap))
		if sent == 0 {
			continue
		}
		f.arcs[ai].cap -= sent
		f.arcs[a.rev].cap += sent

		return sent
	}

	return 0
}

// sourceSide returns the vertices reachable from s in the residual network
// after maxflow — the source side of the minimum cut. For project
// selection this is the unique minimal optimal closed subset.
func (f *flowNet) sourceSide(s int) []bool {
	reach := make([]bool, len(f.heads))
	reach[s] = true
	queue := []int{s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, ai := range f.heads[u] {
			if a := f.arcs[ai]; a.cap > 0 && !reach[a.to] {
				reach[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return reach
}

// min64 returns the smaller of two int64 values.
func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
