package sumvs

import (
	"fmt"

	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/store"
)

// DegreeSlice is a Sum tagged with a homological degree, constrained to
// exactly Degree+1 members. EnsureBuilt checks explicitly that every valid
// member has a built basis before a consumer reads the slice;
// operator.BuildMatrix and gc.Complex do not take a DegreeSlice and do not
// call EnsureBuilt.
type DegreeSlice struct {
	*Sum
	Degree int
}

// NewDegreeSlice returns a DegreeSlice over members, failing with
// ErrWrongMemberCount if len(members) != degree+1.
func NewDegreeSlice(degree int, members ...gvs.VectorSpace) (*DegreeSlice, error) {
	if len(members) != degree+1 {
		return nil, sumvsErrorf("NewDegreeSlice", ErrWrongMemberCount,
			"degree %d requires %d members, got %d", degree, degree+1, len(members))
	}
	return &DegreeSlice{Sum: New(members...), Degree: degree}, nil
}

// EnsureBuilt checks that every valid member of the slice has a basis
// already present in st. This violation is fatal: callers that
// read a degree slice before it is fully built must stop rather than
// silently treat the missing member as dimension 0.
func (d *DegreeSlice) EnsureBuilt(st store.Store) error {
	for _, m := range d.members {
		if !m.Valid() {
			continue
		}
		if !st.Exists(m.Key() + ".basis") {
			return sumvsErrorf("EnsureBuilt", ErrSliceNotBuilt, "degree %d, member %s", d.Degree, m.Key())
		}
	}
	return nil
}

// String renders the slice for logging, e.g. "degree 3 (4 members)".
func (d *DegreeSlice) String() string {
	return fmt.Sprintf("degree %d (%d members)", d.Degree, len(d.members))
}
