package rank

import (
	"errors"
	"fmt"
)

// ErrInconclusive indicates the matrix file was missing, so no rank could
// be computed and none was cached.
var ErrInconclusive = errors.New("rank: matrix not built, rank inconclusive")

// ErrFormat indicates a rank file could not be parsed.
var ErrFormat = errors.New("rank: malformed rank file")

func rankErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("rank: %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
