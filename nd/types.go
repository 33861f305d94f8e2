// Package nd provides dense N-dimensional arrays, Cartesian indices and boxes,
// and the numeric traits shared by the local filters in nd/contrib.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-localfilters/nd"
//
//	a := nd.New[float32](480, 640)
//	a.Set(nd.Index{10, 20}, 1)
//	for i := range a.Axes().All() {
//	    _ = a.At(i)
//	}
package nd

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for all element types the local filters accept.
// Every Number has well defined minimum and maximum sentinels (±Inf for
// floating-point types).
type Number interface {
	Floats | Integers
}
