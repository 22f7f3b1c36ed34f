package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/shape"
)

func TestAddSubMulDiv(t *testing.T) {
	lhs := fromSlice(t, []int64{2, 2}, []int{10, 20, 30, 40})
	rhs := fromSlice(t, []int64{2, 2}, []int{1, 2, 3, 4})

	r, err := Add(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 22, 33, 44}, r.Data())

	r, err = Sub(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 18, 27, 36}, r.Data())

	r, err = Mul(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 40, 90, 160}, r.Data())

	r, err = Div(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 10, 10}, r.Data())

	_, err = Add(lhs, fromSlice(t, []int64{4}, []int{1, 2, 3, 4}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestScalarArithmetic(t *testing.T) {
	a := fromSlice(t, []int64{3}, []int{1, 2, 3})

	assert.Equal(t, []int{11, 12, 13}, AddScalar(a, 10).Data())
	assert.Equal(t, []int{-9, -8, -7}, SubScalar(a, 10).Data())
	assert.Equal(t, []int{9, 8, 7}, ScalarSub(10, a).Data())
	assert.Equal(t, []int{2, 4, 6}, MulScalar(a, 2).Data())
	assert.Equal(t, []int{6, 3, 2}, ScalarDiv(6, a).Data())
	assert.Equal(t, []int{0, 1, 1}, DivScalar(a, 2).Data())
	assert.Equal(t, []int{1, 0, 1}, ModScalar(a, 2).Data())
	assert.Equal(t, []int{0, 1, 1}, ScalarMod(7, a).Data())
}

func TestMod(t *testing.T) {
	lhs := fromSlice(t, []int64{3}, []int{7, 8, 9})
	rhs := fromSlice(t, []int64{3}, []int{2, 3, 5})

	r, err := Mod(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, r.Data())
}

func TestNeg(t *testing.T) {
	a := fromSlice(t, []int64{2}, []int{3, -4})
	assert.Equal(t, []int{-3, 4}, Neg(a).Data())
}

func TestBitwise(t *testing.T) {
	lhs := fromSlice(t, []int64{2}, []int{0b1100, 0b1010})
	rhs := fromSlice(t, []int64{2}, []int{0b1010, 0b0110})

	r, err := And(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{0b1000, 0b0010}, r.Data())

	r, err = Or(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{0b1110, 0b1110}, r.Data())

	r, err = Xor(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []int{0b0110, 0b1100}, r.Data())

	assert.Equal(t, []int{0b0100, 0b0010}, AndScalar(lhs, 0b0110).Data())
	assert.Equal(t, []int{-0b1101, -0b1011}, Not(lhs).Data())
}

func TestShifts(t *testing.T) {
	a := fromSlice(t, []int64{3}, []int{1, 2, 3})

	assert.Equal(t, []int{4, 8, 12}, ShlScalar(a, 2).Data())
	assert.Equal(t, []int{2, 4, 6}, ShrScalar(ShlScalar(a, 2), 1).Data())

	r, err := Shl(a, fromSlice(t, []int64{3}, []int{0, 1, 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 12}, r.Data())

	r, err = Shr(r, fromSlice(t, []int64{3}, []int{0, 1, 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, r.Data())
}

func TestLogical(t *testing.T) {
	lhs := fromSlice(t, []int64{4}, []int{0, 1, 0, 2})
	rhs := fromSlice(t, []int64{4}, []float64{0, 0, 3, 4})

	r, err := LogicalAnd(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true}, r.Data())

	r, err = LogicalOr(lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, true}, r.Data())

	assert.Equal(t, []bool{true, false, true, false}, LogicalNot(lhs).Data())
	assert.Equal(t, []bool{false, true, false, true}, LogicalAndScalar(lhs, true).Data())
	assert.Equal(t, []bool{true, true, true, true}, LogicalOrScalar(lhs, 1).Data())
}

// Compound assignment: operate on a view, then write the result back through
// the shared storage.
func TestCompoundAssignThroughView(t *testing.T) {
	a := fromSlice(t, []int64{3, 1, 2}, []int{1, 2, 3, 4, 5, 6})
	v := a.Slice(shape.Span(0, 2, 2), shape.At(0), shape.At(0)) // values 1 and 5

	v.Assign(AddScalar(v, 10))
	assert.Equal(t, []int{11, 2, 3, 4, 15, 6}, a.Data())
}
