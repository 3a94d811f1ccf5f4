// Package codec provides a minimal, panic-based binary encoding layer. Marshaler and Unmarshaler implementations
// read and write fixed layouts via Target and Source. The top-level Marshal(...) and Unmarshal(...) functions recover
// panics raised during encoding or decoding and return them as errors.
package codec

import (
	"errors"
	"fmt"
)

// ErrTrailingBytes is returned by Unmarshal(...) if the input was not fully consumed.
var ErrTrailingBytes = errors.New("unmarshaling did not consume all bytes")

type Marshaler interface {
	MarshalTo(target Target)
}

type Unmarshaler[T any] interface {
	UnmarshalFrom(source Source) T
}

type Target = *target
type Source = *source

// Marshal encodes the given (non-nil) object into a new byte slice.
func Marshal(object Marshaler) ([]byte, error) {
	t := &target{}
	if err := t.Marshal(object); err != nil {
		return nil, err
	}
	return t.buffer, nil
}

// Unmarshal decodes data using the given unmarshaler. All input bytes must be consumed.
func Unmarshal[T any](data []byte, unmarshaler Unmarshaler[T]) (T, error) {
	return UnmarshalUsing(data, unmarshaler.UnmarshalFrom)
}

// UnmarshalUsing decodes data using the given function. All input bytes must be consumed. If the function panics with
// an error value, the returned error wraps it.
func UnmarshalUsing[T any](data []byte, unmarshalFunc func(Source) T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, err = zero, recovered("unmarshaling", r)
		}
	}()

	src := &source{data}
	result = unmarshalFunc(src)
	if src.Available() > 0 {
		var zero T
		return zero, fmt.Errorf("%w, %d bytes remaining", ErrTrailingBytes, src.Available())
	}
	return result, nil
}

func recovered(op string, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic while %s: %w", op, err)
	}
	return fmt.Errorf("recovered panic while %s: %v", op, r)
}
