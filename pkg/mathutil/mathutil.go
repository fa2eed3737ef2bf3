// Package mathutil provides small arithmetic helpers.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

var ErrOverflow = errors.New("integer overflow")

// Number is satisfied by every built-in integer and floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AddNumbers returns a + b. Integer overflow wraps as it does for the + operator.
func AddNumbers[T Number](a, b T) T {
	return a + b
}

// MultiplyNumbers returns a * b. Integer overflow wraps as it does for the * operator.
func MultiplyNumbers[T Number](a, b T) T {
	return a * b
}

// CheckedAdd returns a + b, or ErrOverflow if the sum does not fit in an int64.
func CheckedAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("add %d and %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// CheckedMultiply returns a * b, or ErrOverflow if the product does not fit in an int64.
func CheckedMultiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("multiply %d and %d: %w", a, b, ErrOverflow)
	}
	product := a * b
	if product/b != a {
		return 0, fmt.Errorf("multiply %d and %d: %w", a, b, ErrOverflow)
	}
	return product, nil
}
