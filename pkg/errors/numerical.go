package errors

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// NumericalInstabilityError は統計値にNaNやInfが含まれる場合のエラーです。
type NumericalInstabilityError struct {
	Operation string
	Column    string
	Values    []float64
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("pimastat: numerical instability detected in %s for column '%s'. Values: [%s]",
		e.Operation, e.Column, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation, column string, values []float64) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Column:    column,
		Values:    values,
	})
}

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation, column string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, column, values)
		}
	}
	return nil
}
