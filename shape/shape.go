package shape

// Numel returns the total number of elements addressable through dims.
// It is 0 when dims is empty or any entry is zero or negative; such shapes
// are degenerate, not errors.
//
// The product is not guarded against overflow; results are undefined for
// shapes whose element count exceeds the int64 range.
func Numel(dims []int64) int64 {
	if len(dims) == 0 {
		return 0
	}
	n := int64(1)
	for _, d := range dims {
		if d <= 0 {
			return 0
		}
		n *= d
	}
	return n
}

// Strides computes canonical row-major strides for dims:
// strides[last] = 1 and strides[i] = strides[i+1] * dims[i+1].
func Strides(dims []int64) []int64 {
	if len(dims) == 0 {
		return nil
	}
	strides := make([]int64, len(dims))
	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}
	return strides
}

// StridesForIntervals computes the strides of a sub-array carved out of a
// parent shape by an interval set. Each supplied interval scales the parent
// stride by its step; axes beyond the supplied intervals fall back to
// canonical strides computed from the parent dims suffix.
func StridesForIntervals(prevDims, prevStrides []int64, intervals []Interval) []int64 {
	if len(prevStrides) == 0 {
		return nil
	}
	strides := make([]int64, len(prevStrides))
	n := min(len(intervals), len(strides))
	for i := 0; i < n; i++ {
		strides[i] = prevStrides[i] * intervals[i].Forward().Step
	}
	if len(intervals) < len(prevDims) && len(strides) >= len(prevDims) {
		strides[len(prevDims)-1] = 1
		for i := len(prevDims) - 2; i >= len(intervals); i-- {
			strides[i] = strides[i+1] * prevDims[i+1]
		}
	}
	return strides
}

// DimsForIntervals computes the dims of a sub-array carved out of a parent
// shape by an interval set. Each interval is wrap-normalized against the
// matching parent dim before its length is taken; axes beyond the supplied
// intervals keep the parent dims. A malformed interval (start past stop, or
// a non-positive step, after normalization) makes the whole result nil.
func DimsForIntervals(prevDims []int64, intervals []Interval) []int64 {
	if len(prevDims) == 0 {
		return nil
	}
	dims := make([]int64, len(prevDims))
	n := min(len(intervals), len(dims))
	for i := 0; i < n; i++ {
		iv := intervals[i].Modulo(prevDims[i]).Forward()
		if iv.Start > iv.Stop || iv.Step <= 0 {
			return nil
		}
		dims[i] = (iv.Stop - iv.Start + iv.Step) / iv.Step
	}
	for i := n; i < len(dims); i++ {
		dims[i] = prevDims[i]
	}
	return dims
}

// OffsetForIntervals computes the backing-buffer offset of a sub-array:
// the parent offset plus the dot product of the parent strides with the
// wrap-normalized interval starts.
func OffsetForIntervals(prevDims []int64, prevOffset int64, prevStrides []int64, intervals []Interval) int64 {
	offset := prevOffset
	n := min(len(prevDims), len(prevStrides), len(intervals))
	for i := 0; i < n; i++ {
		offset += prevStrides[i] * intervals[i].Modulo(prevDims[i]).Forward().Start
	}
	return offset
}

// SubsToIndex resolves a subscript tuple to a linear index into the flat
// backing buffer: offset plus the dot product of strides with the wrapped
// subscripts. A subscript tuple shorter than the rank addresses the
// least-significant (trailing) axes; a longer one is truncated to its
// leading entries.
func SubsToIndex(offset int64, strides, dims, subs []int64) int64 {
	ind := offset
	if len(strides) == 0 || len(dims) == 0 || len(subs) == 0 {
		return ind
	}
	used := min(len(strides), len(dims), len(subs))
	ignored := len(strides) - used
	for i := ignored; i < len(strides); i++ {
		ind += strides[i] * Modulo(subs[i-ignored], dims[i])
	}
	return ind
}

// Modulo is the floor modulo used for wrap-around addressing; the result is
// always in [0, d) for d > 0.
func Modulo(v, d int64) int64 {
	return ((v % d) + d) % d
}

// ContainedIn reports whether subDims fits inside dims when right-aligned
// against its trailing axes.
func ContainedIn(subDims, dims []int64) bool {
	if len(subDims) > len(dims) {
		return false
	}
	off := len(dims) - len(subDims)
	for i := off; i < len(dims); i++ {
		if subDims[i-off] > dims[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two dims vectors are identical.
func Equal(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of dims. A nil or empty input yields nil.
func Clone(dims []int64) []int64 {
	if len(dims) == 0 {
		return nil
	}
	out := make([]int64, len(dims))
	copy(out, dims)
	return out
}
