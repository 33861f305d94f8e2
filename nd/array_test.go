package nd

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New[float32](3, 4)

	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, 12, a.Len())
	assert.Equal(t, []int{3, 4}, a.Shape())
	assert.Equal(t, []int{4, 1}, a.Strides())
	assert.True(t, a.Axes().Equal(NewBox(Index{0, 0}, Index{2, 3})))
}

func TestNew_ZeroDimensions(t *testing.T) {
	a := New[int](0, 5)
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.Axes().Empty())

	b := New[int](-1, 5)
	assert.Equal(t, 0, b.Len())
}

func TestArray_AtSet(t *testing.T) {
	a := NewIn[int16](NewBox(Index{-1, 2}, Index{1, 4}))

	a.Set(Index{-1, 2}, 7)
	a.Set(Index{1, 4}, 9)
	a.Set(Index{0, 3}, 5)

	assert.Equal(t, int16(7), a.At(Index{-1, 2}))
	assert.Equal(t, int16(9), a.At(Index{1, 4}))
	assert.Equal(t, int16(5), a.Data()[4], "center of a 3x3 array")
	assert.Equal(t, 0, a.Offset(Index{-1, 2}))
	assert.Equal(t, 8, a.Offset(Index{1, 4}))

	assert.Panics(t, func() { a.At(Index{2, 2}) })
	assert.Panics(t, func() { a.Set(Index{0, 1}, 1) })
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	a, err := FromSlice(data, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, a.At(Index{1, 2}))
	assert.Equal(t, 4.0, a.At(Index{1, 0}))

	// No copy: writes are visible through the slice.
	a.Set(Index{0, 0}, 10)
	assert.Equal(t, 10.0, data[0])

	_, err = FromSlice(data, 4, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	var sme *ShapeMismatchError
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, 8, sme.Expected)
	assert.Equal(t, 6, sme.Actual)
}

func TestArray_Clone(t *testing.T) {
	a := New[int32](2, 2)
	a.Fill(3)
	c := a.Clone()
	c.Set(Index{0, 0}, 4)

	assert.Equal(t, int32(3), a.At(Index{0, 0}))
	assert.Equal(t, int32(4), c.At(Index{0, 0}))
	assert.True(t, SameAxes(a, c))
	assert.False(t, Overlap(a, c))
}

func TestSameAndOverlap(t *testing.T) {
	buf := make([]float32, 10)
	a, err := FromSlice(buf, 10)
	require.NoError(t, err)
	b, err := FromSlice(buf, 2, 5)
	require.NoError(t, err)
	c, err := FromSlice(buf[5:], 5)
	require.NoError(t, err)
	d, err := FromSlice(buf[:5], 5)
	require.NoError(t, err)

	assert.True(t, Same(a, a))
	assert.True(t, Same(a, b), "same storage, different shapes")
	assert.False(t, Same(a, c))
	assert.True(t, Overlap(a, c))
	assert.False(t, Overlap(c, d))
	assert.False(t, Overlap(New[float32](0), a))
}

func TestLikeAndMap(t *testing.T) {
	a, err := FromSlice([]uint8{1, 2, 3}, 3)
	require.NoError(t, err)

	f := Like[float64](a)
	assert.True(t, SameAxes(a, f))

	neg := Map(a, func(v uint8) int { return -int(v) })
	assert.Equal(t, []int{-1, -2, -3}, neg.Data())
}

func TestCheckAxes(t *testing.T) {
	a := New[float32](3, 3)
	b := New[float64](3, 3)
	c := New[float32](3, 4)

	require.NoError(t, CheckAxes("dst", a, b))
	err := CheckAxes("dst", a, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "dst")
}

func TestTraits(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), MaxValue[int8]())
	assert.Equal(t, int8(math.MinInt8), MinValue[int8]())
	assert.Equal(t, uint8(255), MaxValue[uint8]())
	assert.Equal(t, uint8(0), MinValue[uint8]())
	assert.Equal(t, int32(math.MaxInt32), MaxValue[int32]())
	assert.Equal(t, int64(math.MinInt64), MinValue[int64]())
	assert.Equal(t, uint64(math.MaxUint64), MaxValue[uint64]())
	assert.Equal(t, math.MaxInt, MaxValue[int]())
	assert.True(t, math.IsInf(float64(MaxValue[float32]()), 1))
	assert.True(t, math.IsInf(MinValue[float64](), -1))

	type celsius float32
	assert.True(t, IsFloat[celsius]())
	assert.True(t, math.IsInf(float64(MinValue[celsius]()), -1))
	assert.False(t, IsFloat[int16]())
	assert.True(t, IsSigned[int16]())
	assert.False(t, IsSigned[uint16]())
}

func TestWidens(t *testing.T) {
	assert.True(t, Widens[float64, float32]())
	assert.True(t, Widens[float64, int64]())
	assert.True(t, Widens[float32, uint8]())
	assert.True(t, Widens[int, int]())
	assert.True(t, Widens[int16, uint8]())
	assert.True(t, Widens[uint32, uint16]())

	assert.False(t, Widens[int, float64]())
	assert.False(t, Widens[float32, float64]())
	assert.False(t, Widens[uint8, int]())
	assert.False(t, Widens[uint64, int8]())
	assert.False(t, Widens[int8, uint8]())
	assert.False(t, Widens[int16, int32]())

	type celsius float32
	assert.True(t, Widens[float64, celsius]())
	assert.False(t, Widens[int64, celsius]())
}

func TestHost(t *testing.T) {
	h := Host()
	assert.NotEmpty(t, h.GOOS)
	assert.Positive(t, h.NumCPU)
	assert.Contains(t, h.String(), h.GOARCH)
}
