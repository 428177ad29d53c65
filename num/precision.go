package num

import "math"

// scale multiplies number by 10^precision[0].
// ok is false when the power or the product overflows, in which case
// callers return number untouched.
func scale(number float64, precision []int) (scaled, factor float64, ok bool) {
	p := 0
	if len(precision) > 0 {
		p = precision[0]
	}
	factor = math.Pow10(p)
	if factor == 0 || math.IsInf(factor, 0) {
		return 0, 0, false
	}
	scaled = number * factor
	if math.IsInf(scaled, 0) && !math.IsInf(number, 0) {
		return 0, 0, false
	}
	return scaled, factor, true
}

// onGrid reports whether number already sits on the 10^-precision grid,
// either because scaled is integral or because number is the float64
// nearest to the grid point round(scaled)/factor. The second case catches
// values such as 0.29, whose scaled form is 28.999999999999996, and makes
// all three functions idempotent.
func onGrid(number, scaled, factor float64) bool {
	return scaled == math.Floor(scaled) || math.Round(scaled)/factor == number
}

// Floor computes number rounded down to precision[0] decimal places
// (default 0). Negative precision rounds to tens, hundreds, ...
func Floor(number float64, precision ...int) float64 {
	scaled, factor, ok := scale(number, precision)
	if !ok {
		return number
	}
	if onGrid(number, scaled, factor) {
		return number
	}
	return math.Floor(scaled) / factor
}

// Ceil computes number rounded up to precision[0] decimal places
// (default 0).
//
// Numbers already on the precision grid are returned as is; every other
// number moves to floor(scaled+1), the next grid point above.
func Ceil(number float64, precision ...int) float64 {
	scaled, factor, ok := scale(number, precision)
	if !ok {
		return number
	}
	if onGrid(number, scaled, factor) {
		return number
	}
	return math.Floor(scaled+1) / factor
}

// Round computes number rounded half up to precision[0] decimal places
// (default 0). The half-way test runs on the scaled value, so it inherits
// the binary representation error of number*10^precision.
func Round(number float64, precision ...int) float64 {
	scaled, factor, ok := scale(number, precision)
	if !ok {
		return number
	}
	if onGrid(number, scaled, factor) {
		return number
	}
	whole := math.Floor(scaled)
	if scaled-whole >= 0.5 {
		return math.Floor(scaled+1) / factor
	}
	return whole / factor
}
