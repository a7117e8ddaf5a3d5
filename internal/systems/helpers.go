package systems

// ratioOverSlice is a compiter.Sequence that lazily computes num[i]/denom(w[i])
// on each visit, shared by every system's region-fraction hooks: the
// precalculated-numerator and from-scratch variants differ only in how num
// was produced, not in how the ratio sequence is walked.
type ratioOverSlice struct {
	num   []float64
	w     []float64
	denom func(w float64) float64
}

func (r *ratioOverSlice) Len() int { return len(r.w) }

func (r *ratioOverSlice) Each(fn func(i int, x float64) bool) {
	for i, w := range r.w {
		if !fn(i, r.num[i]/r.denom(w)) {
			return
		}
	}
}
