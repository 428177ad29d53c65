// Package num provides arithmetic, aggregation and precision rounding
// helpers modelled on lodash's Math category.
//
// # Arithmetic
//
// [Add], [Subtract] and [Multiply] are generic over [Number]. [Divide]
// always returns float64 so that dividing by zero yields ±Inf or NaN
// instead of an integer-division panic.
//
// # Rounding to a precision
//
// [Floor], [Ceil] and [Round] take an optional precision (default 0) and
// use scaled-truncate arithmetic: the number is multiplied by 10^precision,
// truncated with [math.Floor], then divided back.
//
//	num.Floor(4.006, 2)  // → 4
//	num.Ceil(4.006, 2)   // → 4.01
//	num.Round(4060, -2)  // → 4100
//
// The results carry ordinary binary floating-point artefacts and are not
// decimal-exact. For example 1.005*100 is 100.49999999999999, so
// Round(1.005, 2) returns 1 rather than 1.01.
//
// A number that is already the nearest float64 to a point on the
// 10^-precision grid is returned unchanged, so Floor(0.29, 2) is 0.29 even
// though 0.29*100 is 28.999999999999996. This makes every function
// idempotent: applying it twice with the same precision gives the same
// result as applying it once.
//
// When |precision| is so large that 10^precision overflows or underflows,
// or the scaled number overflows, the input is returned unchanged.
// NaN and ±Inf propagate.
package num
