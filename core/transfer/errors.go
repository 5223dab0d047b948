package transfer

import (
	"errors"
	"fmt"
)

// ErrProtocolViolation is matched by every *ProtocolViolationError.
var ErrProtocolViolation = errors.New("storage protocol violation")

// ProtocolViolationError reports a destination whose real insert accepted less
// than its simulated insert promised, where the refused remainder could not be
// returned to the source either.
type ProtocolViolationError struct {
	// Destination identifies the storage that broke its promise.
	Destination string
	// Lost is the instance that could be placed in neither storage.
	Lost any
	// LostQuantity is the quantity of Lost.
	LostQuantity int64
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("%s: destination %s inserted less than simulated, lost %v (quantity %d)",
		ErrProtocolViolation, e.Destination, e.Lost, e.LostQuantity)
}

func (e *ProtocolViolationError) Unwrap() error {
	return ErrProtocolViolation
}

func describe(storage any) string {
	if s, ok := storage.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", storage)
}
