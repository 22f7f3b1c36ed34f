package shape

import "testing"

func assertInt64s(t *testing.T, expected, actual []int64, msg string) {
	t.Helper()
	if !Equal(expected, actual) {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestNumel(t *testing.T) {
	tests := []struct {
		dims     []int64
		expected int64
	}{
		{nil, 0},
		{[]int64{}, 0},
		{[]int64{5}, 5},
		{[]int64{3, 4}, 12},
		{[]int64{3, 1, 2}, 6},
		{[]int64{2, 2, 2, 2, 3}, 48},
		{[]int64{3, 0, 2}, 0},
		{[]int64{3, -1, 2}, 0},
	}

	for _, tt := range tests {
		if got := Numel(tt.dims); got != tt.expected {
			t.Errorf("Numel(%v) = %d, want %d", tt.dims, got, tt.expected)
		}
	}
}

func TestStrides(t *testing.T) {
	tests := []struct {
		dims     []int64
		expected []int64
	}{
		{nil, nil},
		{[]int64{5}, []int64{1}},
		{[]int64{3, 1, 2}, []int64{2, 2, 1}},
		{[]int64{2, 2, 2, 2, 3}, []int64{24, 12, 6, 3, 1}},
	}

	for _, tt := range tests {
		assertInt64s(t, tt.expected, Strides(tt.dims), "Strides")
	}
}

// Row-major stride law: strides[last] = 1, strides[i] = strides[i+1]*dims[i+1].
func TestStridesLaw(t *testing.T) {
	shapes := [][]int64{{7}, {2, 5}, {3, 1, 2}, {4, 2, 3, 2}, {2, 2, 2, 2, 3}}
	for _, dims := range shapes {
		strides := Strides(dims)
		if strides[len(strides)-1] != 1 {
			t.Errorf("Strides(%v): last stride = %d, want 1", dims, strides[len(strides)-1])
		}
		for i := 0; i < len(dims)-1; i++ {
			if strides[i] != strides[i+1]*dims[i+1] {
				t.Errorf("Strides(%v): strides[%d] = %d, want %d", dims, i, strides[i], strides[i+1]*dims[i+1])
			}
		}
	}
}

func TestDimsForIntervals(t *testing.T) {
	tests := []struct {
		prevDims  []int64
		intervals []Interval
		expected  []int64
	}{
		// slicing {{0,2,2},{0},{0}} on a {3,1,2} array yields dims {2,1,1}
		{[]int64{3, 1, 2}, []Interval{Span(0, 2, 2), At(0), At(0)}, []int64{2, 1, 1}},
		// partial interval sets keep trailing dims
		{[]int64{3, 1, 2}, []Interval{Between(1, 2)}, []int64{2, 1, 2}},
		// empty interval set keeps every dim
		{[]int64{3, 1, 2}, nil, []int64{3, 1, 2}},
		// negative indices wrap: {-1} means the last index
		{[]int64{3, 1, 2}, []Interval{At(-1)}, []int64{1, 1, 2}},
		// the worked 5-D example: R = {{1,1,1},{0,1,2},{0,0,1},{0,1,1},{1,2,2}}
		{[]int64{2, 2, 2, 2, 3}, []Interval{At(1), Span(0, 1, 2), At(0), Between(0, 1), Span(1, 2, 2)}, []int64{1, 1, 1, 2, 1}},
		// malformed after normalization: start past stop
		{[]int64{3, 1, 2}, []Interval{Between(2, 1)}, nil},
		// zero step
		{[]int64{3, 1, 2}, []Interval{Span(0, 2, 0)}, nil},
	}

	for _, tt := range tests {
		assertInt64s(t, tt.expected, DimsForIntervals(tt.prevDims, tt.intervals), "DimsForIntervals")
	}
}

func TestStridesForIntervals(t *testing.T) {
	prevDims := []int64{2, 2, 2, 2, 3}
	prevStrides := Strides(prevDims)
	// the worked 5-D example: R = {{1,1,1},{0,1,2},{0,0,1},{0,1,1},{1,2,2}}
	intervals := []Interval{At(1), Span(0, 1, 2), At(0), Between(0, 1), Span(1, 2, 2)}
	assertInt64s(t, []int64{24, 24, 6, 3, 2}, StridesForIntervals(prevDims, prevStrides, intervals), "StridesForIntervals")

	// partial interval sets recompute the trailing strides canonically
	assertInt64s(t, []int64{4, 2, 1}, StridesForIntervals([]int64{3, 1, 2}, []int64{2, 2, 1}, []Interval{Span(0, 2, 2)}), "StridesForIntervals partial")

	// descending intervals are normalized before their step is applied
	assertInt64s(t, []int64{4, 2, 1}, StridesForIntervals([]int64{3, 1, 2}, []int64{2, 2, 1}, []Interval{Span(2, 0, -2)}), "StridesForIntervals descending")
}

func TestOffsetForIntervals(t *testing.T) {
	prevDims := []int64{2, 2, 2, 2, 3}
	prevStrides := Strides(prevDims)
	intervals := []Interval{At(1), Span(0, 1, 2), At(0), Between(0, 1), Span(1, 2, 2)}
	if got := OffsetForIntervals(prevDims, 0, prevStrides, intervals); got != 25 {
		t.Errorf("OffsetForIntervals = %d, want 25", got)
	}

	// negative starts wrap before the dot product
	if got := OffsetForIntervals([]int64{3, 1, 2}, 0, []int64{2, 2, 1}, []Interval{At(-1)}); got != 4 {
		t.Errorf("OffsetForIntervals wrapped = %d, want 4", got)
	}
}

func TestSubsToIndex(t *testing.T) {
	dims := []int64{3, 1, 2}
	strides := Strides(dims)

	tests := []struct {
		subs     []int64
		expected int64
	}{
		{[]int64{0, 0, 0}, 0},
		{[]int64{2, 0, 1}, 5},
		// negative subscripts wrap per floor modulo
		{[]int64{-1, -1, -1}, 5},
		// a short tuple addresses the trailing axes
		{[]int64{1}, 1},
		{[]int64{0, 1}, 1},
		// a long tuple is truncated to its leading entries
		{[]int64{2, 0, 1, 9}, 5},
	}

	for _, tt := range tests {
		if got := SubsToIndex(0, strides, dims, tt.subs); got != tt.expected {
			t.Errorf("SubsToIndex(%v) = %d, want %d", tt.subs, got, tt.expected)
		}
	}

	if got := SubsToIndex(7, strides, dims, nil); got != 7 {
		t.Errorf("SubsToIndex with no subs = %d, want the offset 7", got)
	}
}

// Wrap-around addressing: subscript k is equivalent to Modulo(k, d).
func TestModulo(t *testing.T) {
	tests := []struct {
		v, d, expected int64
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-26, 5, 4},
		{26, 5, 1},
	}

	for _, tt := range tests {
		if got := Modulo(tt.v, tt.d); got != tt.expected {
			t.Errorf("Modulo(%d, %d) = %d, want %d", tt.v, tt.d, got, tt.expected)
		}
	}
}

func TestContainedIn(t *testing.T) {
	tests := []struct {
		subDims  []int64
		dims     []int64
		expected bool
	}{
		{[]int64{3, 1, 2}, []int64{3, 1, 2}, true},
		{[]int64{1, 2}, []int64{3, 1, 2}, true},
		{[]int64{2}, []int64{3, 1, 2}, true},
		{[]int64{1, 3}, []int64{3, 1, 2}, false},
		{[]int64{3, 1, 2, 1}, []int64{3, 1, 2}, false},
		{nil, []int64{3, 1, 2}, true},
	}

	for _, tt := range tests {
		if got := ContainedIn(tt.subDims, tt.dims); got != tt.expected {
			t.Errorf("ContainedIn(%v, %v) = %v, want %v", tt.subDims, tt.dims, got, tt.expected)
		}
	}
}

func TestEqualAndClone(t *testing.T) {
	dims := []int64{3, 1, 2}
	clone := Clone(dims)
	if !Equal(dims, clone) {
		t.Errorf("Clone(%v) = %v, want equal", dims, clone)
	}
	clone[0] = 9
	if dims[0] != 3 {
		t.Error("mutating a clone changed the original")
	}
	if Equal([]int64{3, 1}, []int64{3, 1, 2}) {
		t.Error("Equal over different ranks should be false")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
