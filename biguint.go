package bigconv

import (
	"fmt"
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

// Unsigned is the closed set of unsigned integer types that convert to a
// non-negative *big.Int without loss. Unsigned sources need no sign check,
// so the conversion never fails.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | uint | num.U128
}

// ToBigUint converts v to a newly allocated *big.Int with the same numeric
// value. The result is always non-negative. It never fails and never panics
// for any value of any type in Unsigned.
func ToBigUint[T Unsigned](v T) *big.Int {
	b, err := AnyToBigUint(v)
	if err != nil {
		// Unreachable for the types admitted by Unsigned.
		panic(fmt.Sprintf("bigconv: ToBigUint failed for %T: %v; this should not happen and is most likely a programming error", v, err))
	}
	return b
}

// AnyToBigUint converts a dynamically typed integer value to a non-negative
// *big.Int. In addition to the Unsigned types it accepts the signed types
// from Integer, returning *ErrNegativeValue when the value is negative.
// All other types, including floating-point, return *ErrUnsupportedType.
func AnyToBigUint(v any) (*big.Int, error) {
	switch x := v.(type) {
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case num.U128:
		return x.AsBigInt(), nil
	case int8:
		if x < 0 {
			return nil, &ErrNegativeValue{Value: x}
		}
		return big.NewInt(int64(x)), nil
	case int16:
		if x < 0 {
			return nil, &ErrNegativeValue{Value: x}
		}
		return big.NewInt(int64(x)), nil
	case int32:
		if x < 0 {
			return nil, &ErrNegativeValue{Value: x}
		}
		return big.NewInt(int64(x)), nil
	case int64:
		if x < 0 {
			return nil, &ErrNegativeValue{Value: x}
		}
		return big.NewInt(x), nil
	case int:
		if x < 0 {
			return nil, &ErrNegativeValue{Value: x}
		}
		return big.NewInt(int64(x)), nil
	case num.I128:
		if x.Sign() < 0 {
			return nil, &ErrNegativeValue{Value: x}
		}
		return x.AsBigInt(), nil
	default:
		return nil, &ErrUnsupportedType{Value: v}
	}
}
