package bigconv

import "fmt"

// ErrUnsupportedType indicates a value outside the supported integer types
// was passed to one of the fallible conversions.
type ErrUnsupportedType struct {
	Value any
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type %T", e.Value)
}

// ErrNegativeValue indicates a negative value that cannot be represented as
// an unsigned big integer.
type ErrNegativeValue struct {
	Value any
}

func (e *ErrNegativeValue) Error() string {
	return fmt.Sprintf("negative value %v cannot be converted to an unsigned big integer", e.Value)
}
