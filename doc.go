// Package bigconv provides infallible widening conversions from Go's
// fixed-width and platform-native integer types to arbitrary-precision
// math/big integers.
//
// Every value of every type admitted by the Integer and Unsigned constraints
// is exactly representable as a big integer, so ToBigInt and ToBigUint
// cannot fail and return the converted value directly:
//
//	n := bigconv.ToBigInt(int32(-153830))
//	u := bigconv.ToBigUint(uint64(153830))
//
// # Supported Types
//
// The constraints are closed sets. ToBigInt accepts the signed and unsigned
// fixed-width types (int8 through int64, uint8 through uint64), the
// platform-native int and uint, and the 128-bit num.I128 and num.U128 types
// from github.com/shabbyrobe/go-num. ToBigUint accepts the unsigned subset
// and guarantees a non-negative result.
//
// Floating-point types are excluded by design, not by omission: non-finite
// or fractional values have no exact big integer representation, and
// admitting them would break the no-failure guarantee.
//
// # Generic Use
//
// Code that should accept any convertible value can constrain on the
// capability set directly:
//
//	func digits[T bigconv.Integer](v T) int {
//		return len(bigconv.ToBigInt(v).Text(10))
//	}
//
// # Dynamic Values
//
// For dynamically typed values (e.g. decoded into an any), use AnyToBigInt
// and AnyToBigUint instead. They report unsupported or negative inputs as
// errors rather than panicking.
package bigconv
