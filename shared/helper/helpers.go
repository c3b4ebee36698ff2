package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOr asserts the result of a getter to T, returning fallback when the getter
// fails or the value has another type.
func GetTypedValueOr[T any](getFn func() (any, error), fallback T) T {
	if val, err := GetTypedValueOf[T](getFn); err == nil {
		return val
	}
	return fallback
}
