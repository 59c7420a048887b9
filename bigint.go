package bigconv

import (
	"fmt"
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

// Integer is the closed set of integer types that convert to a *big.Int
// without loss. Big integers cover the full range of every member, so the
// conversion never fails. Floating-point types are excluded permanently:
// non-finite or fractional values have no exact big integer representation.
type Integer interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		num.I128 | num.U128
}

// ToBigInt converts v to a newly allocated *big.Int with the same numeric
// value. It never fails and never panics for any value of any type in
// Integer.
func ToBigInt[T Integer](v T) *big.Int {
	b, err := AnyToBigInt(v)
	if err != nil {
		// Unreachable for the types admitted by Integer.
		panic(fmt.Sprintf("bigconv: ToBigInt failed for %T: %v; this should not happen and is most likely a programming error", v, err))
	}
	return b
}

// AnyToBigInt converts a dynamically typed integer value to a *big.Int. It
// accepts exactly the types listed in Integer and returns
// *ErrUnsupportedType for anything else, including all floating-point
// types.
func AnyToBigInt(v any) (*big.Int, error) {
	switch x := v.(type) {
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case int:
		return big.NewInt(int64(x)), nil
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
	case num.I128:
		return x.AsBigInt(), nil
	case num.U128:
		return x.AsBigInt(), nil
	default:
		return nil, &ErrUnsupportedType{Value: v}
	}
}
