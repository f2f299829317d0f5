package wfc

// Adjacency is the compatibility table, component B. Table[p][d] is a
// bitset over q: bit q set iff compat(p, q, d) holds, i.e. placing q at the
// cell offset by d from a cell holding p produces no pixel conflict on
// their overlap. Stored as bitsets per spec §3 ("bitsets are preferred for
// propagation throughput").
type Adjacency struct {
	P     int
	Table [][4]bitset
}

// BuildAdjacency computes compat(p, q, d) for every ordered pair and every
// direction, per spec §4.B.
func BuildAdjacency(patterns []Pattern) *Adjacency {
	p := len(patterns)
	table := make([][4]bitset, p)
	for i := range table {
		for d := range table[i] {
			table[i][d] = newBitset(p)
		}
	}

	for i, p1 := range patterns {
		for j, p2 := range patterns {
			for _, d := range AllDirs {
				dx, dy := d.Delta()
				if patternsAgree(p1, p2, dx, dy) {
					table[i][d].set(j)
				}
			}
		}
	}

	return &Adjacency{P: p, Table: table}
}

// Compatible reports compat(p, q, d).
func (a *Adjacency) Compatible(p, q int, d Dir) bool {
	return a.Table[p][d].get(q)
}

// patternsAgree tests whether p1 shifted by (dx, dy) overlaps p2 without
// conflict. For d = +x (dx=1, dy=0): columns 1..N-1 of p1 equal columns
// 0..N-2 of p2, matching spec §4.B's concrete example; the general form
// here covers all four directions identically and is grounded on
// original_source/src/wfc.rs's patterns_agree.
func patternsAgree(p1, p2 Pattern, dx, dy int) bool {
	n := p1.N
	xmin, xmax := max(dx, 0), n+min(dx, 0)
	ymin, ymax := max(dy, 0), n+min(dy, 0)

	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			x2, y2 := x-dx, y-dy
			if p1.At(x, y) != p2.At(x2, y2) {
				return false
			}
		}
	}
	return true
}
