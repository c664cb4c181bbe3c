// Package genni finds every pair (x, y) whose true product equals the
// "genni product": the decimal concatenation of x's leading digit followed by
// the two-digit products of x's remaining digits with y's digits.
//
// x has 8 digits and y has 7. Both are split at the thousands boundary into a
// left half (xl, yl) and a right half (xr, yr), and the search meets in the
// middle: right halves are indexed by a linear key, left halves probe it.
package genni

// Digit widths of the four half magnitudes.
const (
	WidthXR = 3
	WidthYR = 3
	WidthXL = 5
	WidthYL = 4
)

// Status tells whether a derived value exists and, if not, why.
type Status uint8

const (
	// Valid means every digit-pair product had exactly two digits.
	Valid Status = iota
	// InvalidProduct means some digit-pair product was below 10.
	InvalidProduct
	// OutOfRange means an operand had more digits than its fixed width, so
	// the concatenation would not reparse into the expected digit count.
	OutOfRange
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case InvalidProduct:
		return "invalid-product"
	case OutOfRange:
		return "out-of-range"
	default:
		return "unknown"
	}
}

// Derived is the result of RightDerived or LeftDerived. Value is meaningful
// only when Status is Valid.
type Derived struct {
	Value  int64
	Status Status
}

// Ok reports whether the derived value exists.
func (d Derived) Ok() bool { return d.Status == Valid }

var pow10 = [...]int64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000,
	100_000_000, 1_000_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000,
	10_000_000_000_000, 100_000_000_000_000, 1_000_000_000_000_000}

// Digits returns the low width decimal digits of n, most-significant first.
// Positions beyond n's length are zero.
// Preconditions: n >= 0 and width <= 18. Digits above width are dropped.
func Digits(n int64, width int) []int {
	ds := make([]int, width)
	for i := width - 1; i >= 0; i-- {
		ds[i] = int(n % 10)
		n /= 10
	}
	return ds
}

// Undigits rebuilds an integer from a most-significant-first digit sequence.
func Undigits(ds []int) int64 {
	var n int64
	for _, d := range ds {
		n = n*10 + int64(d)
	}
	return n
}

// fits reports whether 0 <= n < 10^width.
//
//go:inline
func fits(n int64, width int) bool {
	return n >= 0 && n < pow10[width]
}

// RightDerived computes dr for a pair of right halves.
// Core:
//   - xr and yr are read as 3 digits each, a and b.
//   - Each product a[i]*b[i] must lie in [10,99].
//   - The three products are concatenated as decimal groups: 6 digits.
//
// Because every group has exactly two digits, concatenation is a base-100
// shift and never needs a string round trip.
func RightDerived(xr, yr int64) Derived {
	if !fits(xr, WidthXR) || !fits(yr, WidthYR) {
		return Derived{Status: OutOfRange}
	}

	var a, b [WidthXR]int64
	for i := WidthXR - 1; i >= 0; i-- {
		a[i] = xr % 10
		b[i] = yr % 10
		xr /= 10
		yr /= 10
	}

	var v int64
	for i := 0; i < WidthXR; i++ {
		p := a[i] * b[i]
		if p < 10 {
			return Derived{Status: InvalidProduct}
		}
		v = v*100 + p
	}
	return Derived{Value: v}
}

// LeftDerived computes dl for a pair of left halves.
// Core:
//   - xl is read as 5 digits a, yl as 4 digits b.
//   - a[0] is copied verbatim; a[i+1]*b[i] must lie in [10,99] for i in 0..3.
//   - The result is a[0] followed by the four products: 9 digits.
func LeftDerived(xl, yl int64) Derived {
	if !fits(xl, WidthXL) || !fits(yl, WidthYL) {
		return Derived{Status: OutOfRange}
	}

	var a [WidthXL]int64
	var b [WidthYL]int64
	for i := WidthXL - 1; i >= 0; i-- {
		a[i] = xl % 10
		xl /= 10
	}
	for i := WidthYL - 1; i >= 0; i-- {
		b[i] = yl % 10
		yl /= 10
	}

	v := a[0]
	for i := 0; i < WidthYL; i++ {
		p := a[i+1] * b[i]
		if p < 10 {
			return Derived{Status: InvalidProduct}
		}
		v = v*100 + p
	}
	return Derived{Value: v}
}

// GenniProduct computes D(x, y) from scratch for a full 8-digit x and 7-digit
// y: x's leading digit followed by the seven products x[i]*y[i-1].
// It does not go through the half decomposition and serves as the reference
// the search is checked against.
func GenniProduct(x, y int64) Derived {
	const wx, wy = WidthXL + WidthXR, WidthYL + WidthYR
	if !fits(x, wx) || !fits(y, wy) {
		return Derived{Status: OutOfRange}
	}
	a, b := Digits(x, wx), Digits(y, wy)
	v := int64(a[0])
	for i := 1; i < wx; i++ {
		p := int64(a[i] * b[i-1])
		if p < 10 {
			return Derived{Status: InvalidProduct}
		}
		v = v*100 + p
	}
	return Derived{Value: v}
}

// Check reports whether x*y equals the genni product of x and y.
func Check(x, y int64) bool {
	d := GenniProduct(x, y)
	return d.Ok() && x*y == d.Value
}
