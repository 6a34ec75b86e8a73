package differential

import "github.com/grafhom/gh/operator"

// Collection is an ordered set of operator.Map values sharing a role
// (e.g. "all contraction operators for this family"), together with the
// predicate that decides which pairs are composable.
type Collection struct {
	Maps    []operator.Map
	Matches func(a, b operator.Map) bool
}

// Pairs yields every (a, b) in the collection for which Matches(a, b)
// holds.
func (c Collection) Pairs(yield func(a, b operator.Map) bool) {
	for _, a := range c.Maps {
		for _, b := range c.Maps {
			if c.Matches(a, b) && !yield(a, b) {
				return
			}
		}
	}
}

// Differential is a Collection whose Matches is fixed to
// b.Domain() == a.Target(), i.e. b can be applied right after a.
type Differential struct {
	Collection
}

// NewDifferential builds a Differential over maps, wiring Matches to the
// fixed domain/target chaining rule.
func NewDifferential(maps []operator.Map) Differential {
	d := Differential{}
	d.Maps = maps
	d.Matches = func(a, b operator.Map) bool {
		return b.Domain().Key() == a.Target().Key()
	}
	return d
}
