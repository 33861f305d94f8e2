package localfilter

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

// symmetricNeighborhoods returns structuring elements equal to their own
// reflection and containing the origin.
func symmetricNeighborhoods(rank int) []neighborhood.Neighborhood {
	return []neighborhood.Neighborhood{
		neighborhood.Radius(rank, 1),
		neighborhood.Radius(rank, 2),
		neighborhood.Ball(rank, 2),
		neighborhood.Diamond(rank, 1),
	}
}

func forEachCase(t *testing.T, seed uint64, fn func(t *testing.T, A *nd.Array[float64], B neighborhood.Neighborhood)) {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	for trial := range 30 {
		rank := 1 + trial%3
		A := randomArray(rng, randomAxes(rng, rank))
		for n, B := range symmetricNeighborhoods(rank) {
			t.Run(fmt.Sprintf("trial%d/rank%d/B%d", trial, rank, n), func(t *testing.T) {
				fn(t, A, B)
			})
		}
	}
}

func TestProperty_ErodeDilateBracket(t *testing.T) {
	forEachCase(t, 10, func(t *testing.T, A *nd.Array[float64], B neighborhood.Neighborhood) {
		lo, err := Erode(A, B)
		require.NoError(t, err)
		hi, err := Dilate(A, B)
		require.NoError(t, err)
		for n, a := range A.Data() {
			require.LessOrEqual(t, lo.Data()[n], a)
			require.GreaterOrEqual(t, hi.Data()[n], a)
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	forEachCase(t, 20, func(t *testing.T, A *nd.Array[float64], B neighborhood.Neighborhood) {
		open, err := Opening(A, B)
		require.NoError(t, err)
		again, err := Opening(open, B)
		require.NoError(t, err)
		assert.Equal(t, open.Data(), again.Data(), "opening")

		closed, err := Closing(A, B)
		require.NoError(t, err)
		again, err = Closing(closed, B)
		require.NoError(t, err)
		assert.Equal(t, closed.Data(), again.Data(), "closing")

		for n, a := range A.Data() {
			require.LessOrEqual(t, open.Data()[n], a)
			require.GreaterOrEqual(t, closed.Data()[n], a)
		}
	})
}

func TestProperty_Duality(t *testing.T) {
	shifted, err := neighborhood.Cartesian(nd.Index{1, -2}, nd.Index{3, 0})
	require.NoError(t, err)

	forEachCase(t, 30, func(t *testing.T, A *nd.Array[float64], B neighborhood.Neighborhood) {
		neg := nd.Map(A, func(v float64) float64 { return -v })
		bs := []neighborhood.Neighborhood{B}
		if A.Rank() == 2 {
			bs = append(bs, shifted)
		}
		for _, B := range bs {
			lo, err := Erode(neg, B)
			require.NoError(t, err)
			hi, err := Dilate(A, B)
			require.NoError(t, err)
			for n := range lo.Data() {
				require.Equal(t, -hi.Data()[n], lo.Data()[n], "%s at %d", B.Kind(), n)
			}
		}
	})
}

func TestProperty_MeanBounds(t *testing.T) {
	forEachCase(t, 40, func(t *testing.T, A *nd.Array[float64], B neighborhood.Neighborhood) {
		mean, err := LocalMean[float64](A, B)
		require.NoError(t, err)
		lo, hi, err := LocalExtrema(A, B)
		require.NoError(t, err)
		for n, m := range mean.Data() {
			require.GreaterOrEqual(t, m, lo.Data()[n]-1e-12)
			require.LessOrEqual(t, m, hi.Data()[n]+1e-12)
		}
	})
}

func TestProperty_Hats(t *testing.T) {
	forEachCase(t, 50, func(t *testing.T, A *nd.Array[float64], B neighborhood.Neighborhood) {
		top, err := TopHat(A, B)
		require.NoError(t, err)
		open, err := Opening(A, B)
		require.NoError(t, err)
		for n, a := range A.Data() {
			require.Equal(t, a-open.Data()[n], top.Data()[n])
		}

		bottom, err := BottomHat(A, B)
		require.NoError(t, err)
		closed, err := Closing(A, B)
		require.NoError(t, err)
		for n, a := range A.Data() {
			require.Equal(t, closed.Data()[n]-a, bottom.Data()[n])
		}
	})
}

func TestHats_Smoothing(t *testing.T) {
	rng := rand.New(rand.NewPCG(60, 61))
	A := randomArray(rng, nd.Shape(9, 11))

	top, err := TopHat(A, 2, WithSmoothing(1))
	require.NoError(t, err)
	smooth, err := Closing(A, 1)
	require.NoError(t, err)
	open, err := Opening(smooth, 2)
	require.NoError(t, err)
	for n, a := range A.Data() {
		require.Equal(t, a-open.Data()[n], top.Data()[n])
	}

	bottom, err := BottomHat(A, 2, WithSmoothing(1))
	require.NoError(t, err)
	smooth, err = Opening(A, 1)
	require.NoError(t, err)
	closed, err := Closing(smooth, 2)
	require.NoError(t, err)
	for n, a := range A.Data() {
		require.Equal(t, closed.Data()[n]-a, bottom.Data()[n])
	}
}

func TestProperty_ResolversAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(70, 71))
	for trial := range 40 {
		rank := 1 + trial%4
		A := randomArray(rng, randomAxes(rng, rank))
		kbox := randomAxes(rng, rank)
		weights := neighborhood.OffsetKernel(randomArray(rng, kbox))
		mask := neighborhood.OffsetKernel(nd.Map(randomArray(rng, kbox), func(v float64) bool { return v > 0 }))
		cart, err := neighborhood.Cartesian(kbox.Min, kbox.Max)
		require.NoError(t, err)

		type result struct{ erode, dilate, conv, mean []float64 }
		run := func(r region.Resolver) result {
			var res result
			for _, B := range []neighborhood.Neighborhood{neighborhood.Radius(rank, 1), cart, mask, weights} {
				lo, err := Erode(A, B, WithResolver(r))
				require.NoError(t, err)
				hi, err := Dilate(A, B, WithResolver(r))
				require.NoError(t, err)
				res.erode = append(res.erode, lo.Data()...)
				res.dilate = append(res.dilate, hi.Data()...)
			}
			conv, err := Convolve[float64](A, weights, WithResolver(r))
			require.NoError(t, err)
			res.conv = conv.Data()
			mean, err := LocalMean[float64](A, neighborhood.Radius(rank, 2), WithResolver(r))
			require.NoError(t, err)
			res.mean = mean.Data()
			return res
		}

		want := run(region.Tuple{})
		for _, r := range region.All() {
			assert.Equal(t, want, run(r), "trial %d resolver %s", trial, r.Name())
		}
	}
}

func TestProperty_RowFoldsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(80, 81))
	for trial := range 40 {
		rank := 1 + trial%4
		A := randomArray(rng, randomAxes(rng, rank))
		kbox := randomAxes(rng, rank)
		kbox.Min[0], kbox.Max[0] = -1, 1
		cart, err := neighborhood.Cartesian(kbox.Min, kbox.Max)
		require.NoError(t, err)

		type result struct{ erode, dilate, lo, hi, mean, open []float64 }
		run := func(r region.Resolver, rows bool) result {
			var res result
			opts := []Option{WithResolver(r), WithRowFolds(rows)}
			for _, B := range []neighborhood.Neighborhood{neighborhood.Radius(rank, 1), cart} {
				lo, err := Erode(A, B, opts...)
				require.NoError(t, err)
				hi, err := Dilate(A, B, opts...)
				require.NoError(t, err)
				amin, amax, err := LocalExtrema(A, B, opts...)
				require.NoError(t, err)
				res.erode = append(res.erode, lo.Data()...)
				res.dilate = append(res.dilate, hi.Data()...)
				res.lo = append(res.lo, amin.Data()...)
				res.hi = append(res.hi, amax.Data()...)
			}
			mean, err := LocalMean[float64](A, neighborhood.Radius(rank, 2), opts...)
			require.NoError(t, err)
			res.mean = mean.Data()
			open, err := Opening(A, cart, opts...)
			require.NoError(t, err)
			res.open = open.Data()
			return res
		}

		for _, r := range region.All() {
			assert.Equal(t, run(r, false), run(r, true), "trial %d resolver %s", trial, r.Name())
		}
	}
}
