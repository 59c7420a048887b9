package bigconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUnsupportedType(t *testing.T) {
	err := &ErrUnsupportedType{Value: float64(1.5)}
	assert.Equal(t, "unsupported type float64", err.Error())

	wrapped := fmt.Errorf("decoding field: %w", err)
	var ut *ErrUnsupportedType
	assert.ErrorAs(t, wrapped, &ut)
	assert.Equal(t, float64(1.5), ut.Value)
}

func TestErrNegativeValue(t *testing.T) {
	err := &ErrNegativeValue{Value: int64(-42)}
	assert.Equal(t, "negative value -42 cannot be converted to an unsigned big integer", err.Error())

	wrapped := fmt.Errorf("decoding field: %w", err)
	var nv *ErrNegativeValue
	assert.ErrorAs(t, wrapped, &nv)
	assert.Equal(t, int64(-42), nv.Value)
}
