package projector

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates a projector or operator matrix was passed
// with a shape incompatible with the requested operation.
var ErrShapeMismatch = errors.New("projector: matrix shape mismatch")

func projectorErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("projector: %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
