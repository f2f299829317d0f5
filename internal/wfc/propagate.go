package wfc

// Propagator drains a Wave's pending-removal queue to a fixed point (or a
// contradiction), component D. It holds no state of its own beyond a
// pointer to the wave it's currently draining — the Wave and Propagator are
// borrowed mutably in strict sequence by the Driver (spec §5).
type Propagator struct {
	wave *Wave
}

// NewPropagator returns a Propagator bound to wave.
func NewPropagator(wave *Wave) *Propagator {
	return &Propagator{wave: wave}
}

// Propagate drains the wave's removal queue to a fixed point, or until a
// contradiction is produced, and reports which happened.
//
// support[c][q][d] counts patterns present in neighbor(c, d) compatible
// with q on side d (spec §3). Popping a removed (c, q): c is the neighbor
// of cPrime := neighbor(c, dir) in direction Opposite(dir), for every dir.
// Every pattern `other` with compat(q, other, dir) — found by scanning bit
// `other` set in adj.Table[q][dir] — had q as one of its supporters at
// cPrime from direction Opposite(dir); removing q costs `other` one unit
// of support[cPrime][other][Opposite(dir)]. If that reaches zero while
// `other` is still in cPrime's domain, `other` must be removed there too,
// which re-enqueues a new removal and keeps the loop going.
func (prop *Propagator) Propagate() bool {
	wave := prop.wave
	p := wave.P

	for {
		r, ok := wave.queue.pop()
		if !ok {
			return wave.AnyContradiction()
		}
		c, q := r.cell, r.pattern

		for _, dir := range AllDirs {
			cPrime, exists := wave.neighbor(c, dir)
			if !exists {
				continue
			}
			opp := dir.Opposite()

			// q was removed from c = neighbor(cPrime, opp). For every
			// pattern `other` compatible with q in direction dir
			// (compat(q, other, dir), i.e. bit `other` set in
			// Table[q][dir]), q was one of the patterns supporting
			// `other`'s presence at cPrime from direction opp. Losing q
			// costs `other` one unit of support[cPrime][other][opp].
			wave.adj.Table[q][dir].forEach(func(other int) {
				idx := (cPrime*p+other)*4 + int(opp)
				if wave.support[idx] == infiniteSupport {
					return
				}
				wave.support[idx]--
				if wave.support[idx] <= 0 && wave.possible(cPrime, other) {
					wave.remove(cPrime, other)
				}
			})

			if wave.contradicted[cPrime] {
				return true
			}
		}

		if wave.contradicted[c] {
			return true
		}
	}
}
