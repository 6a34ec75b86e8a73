package operator

import (
	"errors"
	"fmt"
)

// ErrNoBasis indicates BuildMatrix could not load a domain or target basis
// and skip_if_no_basis was not requested.
var ErrNoBasis = errors.New("operator: domain or target basis not built")

// ErrShapeMismatch indicates a loaded matrix file's header disagrees with
// the current domain/target dimensions.
var ErrShapeMismatch = errors.New("operator: matrix header disagrees with vector space dimensions")

// ErrFormat indicates a matrix file is malformed: bad header, missing
// terminator, or an out-of-range index.
var ErrFormat = errors.New("operator: matrix file format error")

func operatorErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("operator: %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
