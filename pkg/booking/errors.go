package booking

import "errors"

var (
	// ErrFieldMissing reports a registry without a field the booking needs.
	ErrFieldMissing = errors.New("booking: required field missing from registry")
	// ErrUnknownAsyncValidator reports an asyncValidators entry with no
	// implementation.
	ErrUnknownAsyncValidator = errors.New("booking: unknown async validator")
	// ErrUnknownPath reports a path that does not address a control.
	ErrUnknownPath = errors.New("booking: unknown field path")
	// ErrClosed reports use of a closed form.
	ErrClosed = errors.New("booking: form closed")
)
