package reference

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/localfilter"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

func randomAxes(rng *rand.Rand, rank, maxSize int) nd.Box {
	axes := nd.MakeBox(rank)
	for d := range rank {
		axes.Min[d] = rng.IntN(7) - 3
		axes.Max[d] = axes.Min[d] + rng.IntN(maxSize)
	}
	return axes
}

func randomArray(rng *rand.Rand, axes nd.Box) *nd.Array[float64] {
	a := nd.NewIn[float64](axes)
	for n := range a.Data() {
		a.Data()[n] = rng.Float64()*20 - 10
	}
	return a
}

func randomNeighborhoods(t *testing.T, rng *rand.Rand, rank int) map[string]neighborhood.Neighborhood {
	kbox := randomAxes(rng, rank, 4)
	cart, err := neighborhood.Cartesian(kbox.Min, kbox.Max)
	require.NoError(t, err)
	return map[string]neighborhood.Neighborhood{
		"centered":  neighborhood.Radius(rank, 1+rng.IntN(2)),
		"cartesian": cart,
		"mask":      neighborhood.OffsetKernel(nd.Map(randomArray(rng, kbox), func(v float64) bool { return v > -5 })),
		"weights":   neighborhood.OffsetKernel(randomArray(rng, kbox)),
	}
}

// equalFloats treats two NaNs as equal; infinities must match exactly.
var equalFloats = cmpopts.EquateNaNs()

func TestCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewPCG(100, 200))
	for trial := range 60 {
		rank := 1 + trial%3
		A := randomArray(rng, randomAxes(rng, rank, 7))
		for name, B := range randomNeighborhoods(t, rng, rank) {
			for _, r := range region.All() {
				// Odd trials fold boxes one element at a time.
				opts := []localfilter.Option{localfilter.WithResolver(r), localfilter.WithRowFolds(trial%2 == 0)}
				ref := nd.Like[float64](A)

				got, err := localfilter.Erode(A, B, opts...)
				require.NoError(t, err)
				require.NoError(t, Erode(ref, A, B, r))
				if diff := cmp.Diff(ref.Data(), got.Data(), equalFloats); diff != "" {
					t.Fatalf("erode trial %d %s %s (-want +got):\n%s", trial, name, r.Name(), diff)
				}

				got, err = localfilter.Dilate(A, B, opts...)
				require.NoError(t, err)
				require.NoError(t, Dilate(ref, A, B, r))
				if diff := cmp.Diff(ref.Data(), got.Data(), equalFloats); diff != "" {
					t.Fatalf("dilate trial %d %s %s (-want +got):\n%s", trial, name, r.Name(), diff)
				}

				got, err = localfilter.Opening(A, B, opts...)
				require.NoError(t, err)
				require.NoError(t, Opening(ref, A, B, r))
				if diff := cmp.Diff(ref.Data(), got.Data(), equalFloats); diff != "" {
					t.Fatalf("opening trial %d %s %s (-want +got):\n%s", trial, name, r.Name(), diff)
				}

				got, err = localfilter.Closing(A, B, opts...)
				require.NoError(t, err)
				require.NoError(t, Closing(ref, A, B, r))
				if diff := cmp.Diff(ref.Data(), got.Data(), equalFloats); diff != "" {
					t.Fatalf("closing trial %d %s %s (-want +got):\n%s", trial, name, r.Name(), diff)
				}

				if name == "weights" {
					got, err = localfilter.Convolve[float64](A, B, opts...)
					require.NoError(t, err)
					require.NoError(t, Convolve(ref, A, B, r))
					if diff := cmp.Diff(ref.Data(), got.Data()); diff != "" {
						t.Fatalf("convolve trial %d %s (-want +got):\n%s", trial, r.Name(), diff)
					}
				}
			}
		}
	}
}

func TestCrossCheck_Mean(t *testing.T) {
	rng := rand.New(rand.NewPCG(300, 400))
	for trial := range 40 {
		rank := 1 + trial%3
		A := randomArray(rng, randomAxes(rng, rank, 7))
		// Positive weights and origin-containing boxes never divide by zero.
		kbox := nd.Box{Min: nd.Fill(rank, -1), Max: nd.Fill(rank, 1)}
		positive := nd.Map(randomArray(rng, kbox), func(v float64) float64 { return v + 11 })
		for name, B := range map[string]neighborhood.Neighborhood{
			"centered": neighborhood.Radius(rank, 2),
			"ball":     neighborhood.Ball(rank, 1),
			"weights":  neighborhood.NewKernel(positive),
		} {
			for _, r := range region.All() {
				got, err := localfilter.LocalMean[float64](A, B,
					localfilter.WithResolver(r), localfilter.WithRowFolds(trial%2 == 0))
				require.NoError(t, err)
				ref := nd.Like[float64](A)
				require.NoError(t, LocalMean(ref, A, B, r))
				if diff := cmp.Diff(ref.Data(), got.Data()); diff != "" {
					t.Fatalf("mean trial %d %s %s (-want +got):\n%s", trial, name, r.Name(), diff)
				}
			}
		}
	}
}

func TestCrossCheck_Hats(t *testing.T) {
	rng := rand.New(rand.NewPCG(500, 600))
	A := randomArray(rng, nd.NewBox(nd.Index{-4, 2}, nd.Index{6, 9}))
	b, s := neighborhood.Ball(2, 2), neighborhood.Radius(2, 1)

	for _, r := range region.All() {
		opt := localfilter.WithResolver(r)
		ref := nd.Like[float64](A)

		got, err := localfilter.TopHat(A, b, opt)
		require.NoError(t, err)
		require.NoError(t, TopHat(ref, A, b, nil, r))
		assert.Empty(t, cmp.Diff(ref.Data(), got.Data()), "tophat %s", r.Name())

		got, err = localfilter.TopHat(A, b, opt, localfilter.WithSmoothing(s))
		require.NoError(t, err)
		require.NoError(t, TopHat(ref, A, b, s, r))
		assert.Empty(t, cmp.Diff(ref.Data(), got.Data()), "smoothed tophat %s", r.Name())

		got, err = localfilter.BottomHat(A, b, opt)
		require.NoError(t, err)
		require.NoError(t, BottomHat(ref, A, b, nil, r))
		assert.Empty(t, cmp.Diff(ref.Data(), got.Data()), "bottomhat %s", r.Name())

		got, err = localfilter.BottomHat(A, b, opt, localfilter.WithSmoothing(s))
		require.NoError(t, err)
		require.NoError(t, BottomHat(ref, A, b, s, r))
		assert.Empty(t, cmp.Diff(ref.Data(), got.Data()), "smoothed bottomhat %s", r.Name())
	}
}

func TestCrossCheck_Integers(t *testing.T) {
	rng := rand.New(rand.NewPCG(700, 800))
	for trial := range 30 {
		rank := 1 + trial%3
		A := nd.Map(randomArray(rng, randomAxes(rng, rank, 7)), func(v float64) int16 { return int16(v * 100) })
		kbox := randomAxes(rng, rank, 4)
		w := neighborhood.OffsetKernel(nd.Map(randomArray(rng, kbox), func(v float64) int8 { return int8(v) }))
		for _, r := range region.All() {
			got, err := localfilter.Convolve[int64](A, w, localfilter.WithResolver(r))
			require.NoError(t, err)
			ref := nd.Like[int64](A)
			require.NoError(t, Convolve(ref, A, w, r))
			assert.Equal(t, ref.Data(), got.Data(), "convolve trial %d %s", trial, r.Name())

			for _, rows := range []bool{true, false} {
				amin, amax, err := localfilter.LocalExtrema(A, neighborhood.Radius(rank, 1),
					localfilter.WithResolver(r), localfilter.WithRowFolds(rows))
				require.NoError(t, err)
				lo, hi := nd.Like[int16](A), nd.Like[int16](A)
				require.NoError(t, LocalExtrema(lo, hi, A, neighborhood.Radius(rank, 1), r))
				assert.Equal(t, lo.Data(), amin.Data(), "erosion trial %d %s rows=%v", trial, r.Name(), rows)
				assert.Equal(t, hi.Data(), amax.Data(), "dilation trial %d %s rows=%v", trial, r.Name(), rows)
			}
		}
	}
}

func TestLocalExtrema(t *testing.T) {
	A, err := nd.FromSlice([]int16{5, 1, 1, 5, 5, 1, 5}, 7)
	require.NoError(t, err)
	amin, amax := nd.Like[int16](A), nd.Like[int16](A)
	require.NoError(t, LocalExtrema(amin, amax, A, neighborhood.Radius(1, 1), region.Tuple{}))
	assert.Equal(t, []int16{1, 1, 1, 1, 1, 1, 1}, amin.Data())
	assert.Equal(t, []int16{5, 5, 5, 5, 5, 5, 5}, amax.Data())
}

func TestErrors(t *testing.T) {
	A := nd.New[int](4)
	w := neighborhood.NewKernel(nd.New[int](3))

	assert.ErrorIs(t, Erode(A, A, w, region.Tuple{}), nd.ErrUnsupportedKernel)
	assert.ErrorIs(t, Convolve(nd.Like[int](A), A, neighborhood.Radius(1, 1), region.Tuple{}), nd.ErrUnsupportedKernel)
	assert.ErrorIs(t, Dilate(nd.New[int](5), A, neighborhood.Radius(1, 1), region.Tuple{}), nd.ErrShapeMismatch)
	assert.ErrorIs(t, Erode(A, A, neighborhood.Radius(2, 1), region.Tuple{}), nd.ErrShapeMismatch)

	assert.ErrorIs(t, Convolve(nd.New[int](4), nd.New[float32](4), w, region.Tuple{}), nd.ErrUnrepresentable)
	fw := neighborhood.NewKernel(nd.New[float64](3))
	assert.ErrorIs(t, Convolve(nd.New[float32](4), nd.New[int](4), fw, region.Tuple{}), nd.ErrUnrepresentable)
	u := nd.New[uint8](4)
	assert.ErrorIs(t, TopHat(u, u, neighborhood.Radius(1, 1), neighborhood.Radius(1, 1), region.Tuple{}), nd.ErrUnrepresentable)
	assert.ErrorIs(t, BottomHat(u, u, neighborhood.Radius(1, 1), neighborhood.Radius(1, 1), region.Tuple{}), nd.ErrUnrepresentable)

	// Zero weights.
	err := LocalMean(nd.Like[float64](A), A, w, region.Tuple{})
	var ie *nd.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, nd.Index{0}, ie.At)
	assert.ErrorIs(t, err, nd.ErrDivisionByZero)
}
