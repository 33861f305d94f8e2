package neighborhood

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-localfilters/nd"
)

func TestCentered(t *testing.T) {
	b := Centered(1, 2)
	assert.Equal(t, 2, b.Rank())
	assert.Equal(t, KindCenteredBox, b.Kind())
	assert.True(t, b.Bounds().Equal(nd.NewBox(nd.Index{-1, -2}, nd.Index{1, 2})))
	assert.Equal(t, nd.Index{1, 2}, b.Half())

	r := Radius(3, 1)
	assert.Equal(t, 27, r.Bounds().Len())

	assert.Panics(t, func() { Centered(1, -1) })
}

func TestCartesian(t *testing.T) {
	b, err := Cartesian(nd.Index{-1, 0}, nd.Index{2, 0})
	require.NoError(t, err)
	assert.Equal(t, KindCartesianBox, b.Kind())
	assert.Equal(t, []int{4, 1}, b.Bounds().Sizes())

	_, err = Cartesian(nd.Index{1}, nd.Index{0})
	assert.ErrorIs(t, err, nd.ErrInvalidNeighborhood)

	_, err = Cartesian(nd.Index{0}, nd.Index{0, 1})
	assert.ErrorIs(t, err, nd.ErrShapeMismatch)
}

func TestNewKernel_Anchor(t *testing.T) {
	tests := []struct {
		name   string
		dims   []int
		anchor nd.Index
		first  nd.Index
		last   nd.Index
	}{
		{"odd", []int{3}, nd.Index{1}, nd.Index{-1}, nd.Index{1}},
		{"even", []int{4}, nd.Index{2}, nd.Index{-2}, nd.Index{1}},
		{"2d", []int{3, 5}, nd.Index{1, 2}, nd.Index{-1, -2}, nd.Index{1, 2}},
		{"single", []int{1, 1}, nd.Index{0, 0}, nd.Index{0, 0}, nd.Index{0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := NewKernel(nd.New[float32](tc.dims...))
			assert.Equal(t, tc.anchor, k.Anchor())
			assert.Equal(t, tc.first, k.Bounds().Min)
			assert.Equal(t, tc.last, k.Bounds().Max)
			assert.Equal(t, KindWeights, k.Kind())
		})
	}
}

func TestKernel_Coefficients(t *testing.T) {
	a, err := nd.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	k := NewKernel(a)
	// Anchor (1, 1): offsets [-1:0, -1:1].
	assert.Equal(t, 1, k.Coefficient(nd.Index{-1, -1}))
	assert.Equal(t, 5, k.Coefficient(nd.Index{0, 0}))
	assert.Equal(t, 6, k.Coefficient(nd.Index{0, 1}))

	// Kernels copy their coefficients.
	a.Set(nd.Index{1, 1}, 50)
	assert.Equal(t, 5, k.Coefficient(nd.Index{0, 0}))

	at, err := NewKernelAt(a, nd.Index{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, at.Coefficient(nd.Index{0, 0}))
	assert.Equal(t, nd.Index{1, 2}, at.Bounds().Max)

	_, err = NewKernelAt(a, nd.Index{0})
	assert.ErrorIs(t, err, nd.ErrShapeMismatch)

	off, err := nd.Wrap([]bool{true, false, true}, nd.NewBox(nd.Index{-3}, nd.Index{-1}))
	require.NoError(t, err)
	ok := OffsetKernel(off)
	assert.Equal(t, KindMask, ok.Kind())
	assert.True(t, ok.Coefficient(nd.Index{-3}))
	assert.False(t, ok.Coefficient(nd.Index{-2}))
}

func TestKernel_Reflect(t *testing.T) {
	a, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	k, err := NewKernelAt(a, nd.Index{0, 0})
	require.NoError(t, err)

	r := k.Reflect()
	assert.True(t, r.Bounds().Equal(nd.NewBox(nd.Index{-1, -2}, nd.Index{0, 0})))
	k.Bounds().Each(func(o nd.Index) bool {
		assert.Equal(t, k.Coefficient(o), r.Coefficient(o.Neg()), "offset %v", o)
		return true
	})
}

func TestBallAndDiamond(t *testing.T) {
	ball := Ball(2, 2)
	mask, ok := MaskOf(ball)
	require.True(t, ok)
	assert.Len(t, mask, 25)
	assert.True(t, ball.Coefficient(nd.Index{1, 1}))
	assert.False(t, ball.Coefficient(nd.Index{2, 2}))
	assert.True(t, ball.Coefficient(nd.Index{0, 2}))

	diamond := Diamond(2, 1)
	count := 0
	for _, v := range diamond.Coefs().Data() {
		if v {
			count++
		}
	}
	assert.Equal(t, 5, count)
	assert.False(t, diamond.Coefficient(nd.Index{1, 1}))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(Radius(2, 1), nd.Index{0, 0}))

	off, err := Cartesian(nd.Index{1}, nd.Index{2})
	require.NoError(t, err)
	assert.False(t, Contains(off, nd.Index{0}))

	m, err := nd.FromSlice([]bool{true, false, true}, 3)
	require.NoError(t, err)
	assert.False(t, Contains(NewKernel(m), nd.Index{0}))
	assert.True(t, Contains(NewKernel(m), nd.Index{1}))
}

func TestMaskAndWeightsOf(t *testing.T) {
	w, err := nd.FromSlice([]int16{1, -2, 3}, 3)
	require.NoError(t, err)
	k := NewKernel(w)

	got, ok := WeightsOf[float64](k)
	require.True(t, ok)
	assert.Equal(t, []float64{1, -2, 3}, got)

	_, ok = MaskOf(k)
	assert.False(t, ok)

	_, ok = WeightsOf[float64](Radius(1, 1))
	assert.False(t, ok)

	m, err := nd.FromSlice([]bool{true, true}, 2)
	require.NoError(t, err)
	_, ok = WeightsOf[float32](NewKernel(m))
	assert.False(t, ok)

	assert.Equal(t, reflect.TypeFor[int16](), CoefficientType(k))
	assert.Equal(t, reflect.TypeFor[bool](), CoefficientType(NewKernel(m)))
	assert.Nil(t, CoefficientType(Radius(1, 1)))
}

func TestNormalize(t *testing.T) {
	w, err := nd.FromSlice([]float32{1, 1, 1}, 3)
	require.NoError(t, err)
	box, err := Cartesian(nd.Index{0}, nd.Index{2})
	require.NoError(t, err)

	tests := []struct {
		name   string
		rank   int
		spec   any
		kind   Kind
		bounds nd.Box
	}{
		{"default", 2, nil, KindCenteredBox, nd.NewBox(nd.Index{-1, -1}, nd.Index{1, 1})},
		{"radius", 1, 3, KindCenteredBox, nd.NewBox(nd.Index{-3}, nd.Index{3})},
		{"radius0", 1, 0, KindCenteredBox, nd.NewBox(nd.Index{0}, nd.Index{0})},
		{"odd sizes", 2, Sizes{3, 5}, KindCenteredBox, nd.NewBox(nd.Index{-1, -2}, nd.Index{1, 2})},
		{"even sizes", 2, []int{4, 3}, KindCartesianBox, nd.NewBox(nd.Index{-2, -1}, nd.Index{1, 1})},
		{"box", 1, nd.NewBox(nd.Index{-2}, nd.Index{0}), KindCartesianBox, nd.NewBox(nd.Index{-2}, nd.Index{0})},
		{"pair", 1, [2]nd.Index{{1}, {4}}, KindCartesianBox, nd.NewBox(nd.Index{1}, nd.Index{4})},
		{"array", 1, w, KindWeights, nd.NewBox(nd.Index{-1}, nd.Index{1})},
		{"neighborhood", 1, box, KindCartesianBox, nd.NewBox(nd.Index{0}, nd.Index{2})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Normalize(tc.rank, tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, n.Kind())
			assert.True(t, n.Bounds().Equal(tc.bounds), "got %v, want %v", n.Bounds(), tc.bounds)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	w := nd.New[float64](3, 3)

	tests := []struct {
		name string
		rank int
		spec any
		want error
	}{
		{"negative radius", 2, -1, nd.ErrInvalidNeighborhood},
		{"zero size", 2, Sizes{3, 0}, nd.ErrInvalidNeighborhood},
		{"size rank", 3, Sizes{3, 3}, nd.ErrShapeMismatch},
		{"kernel rank", 1, w, nd.ErrShapeMismatch},
		{"box rank", 1, nd.NewBox(nd.Index{0, 0}, nd.Index{1, 1}), nd.ErrShapeMismatch},
		{"inverted box", 1, nd.NewBox(nd.Index{1}, nd.Index{0}), nd.ErrInvalidNeighborhood},
		{"unknown type", 1, "3x3", nd.ErrInvalidNeighborhood},
		{"unsupported kernel element", 1, nd.New[complex64](3), nd.ErrInvalidNeighborhood},
		{"nil kernel", 1, (*Kernel[float64])(nil), nd.ErrInvalidNeighborhood},
		{"zero kernel", 1, &Kernel[bool]{}, nd.ErrInvalidNeighborhood},
		{"nil array", 1, (*nd.Array[int])(nil), nd.ErrInvalidNeighborhood},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.rank, tc.spec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "centered-box", KindCenteredBox.String())
	assert.Equal(t, "mask", KindMask.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.True(t, KindWeights.HasCoefficients())
	assert.False(t, KindCartesianBox.HasCoefficients())
}
