package sumvs

import (
	"errors"
	"fmt"
)

// ErrWrongMemberCount indicates a DegreeSlice was constructed with a member
// count other than degree+1.
var ErrWrongMemberCount = errors.New("sumvs: degree slice member count mismatch")

// ErrSliceNotBuilt indicates EnsureBuilt found a valid member without a
// basis in the store.
var ErrSliceNotBuilt = errors.New("sumvs: degree slice has unbuilt member")

func sumvsErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("sumvs: %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
