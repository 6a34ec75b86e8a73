package gvs

import (
	"errors"
	"fmt"
)

// ErrNotBuilt indicates a basis was requested before build_basis produced
// one, and the caller did not opt into the skip-if-missing behavior.
var ErrNotBuilt = errors.New("gvs: basis not built")

// ErrFormat indicates a basis file's header does not match its body;
// reading a basis file must yield the same list it was written with.
var ErrFormat = errors.New("gvs: malformed basis file")

func gvsErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("gvs: %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
