package differential

import (
	"errors"
	"fmt"
)

// ErrNegativeCohomology indicates dim V - rank(d_out) - rank(d_in) came out
// negative, an invariant violation rather than a value to report.
var ErrNegativeCohomology = errors.New("differential: computed cohomology dimension is negative")

func differentialErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("differential: %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
