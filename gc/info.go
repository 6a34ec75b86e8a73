package gc

import (
	"bytes"
	"fmt"

	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
)

// WriteInfo renders a human-oriented dump of the complex's vector spaces,
// operators, and cohomology dimensions, and stores it under key. The file
// is never read back by the core; it exists for people (and external
// frontends) browsing the data directory.
func (c *Complex) WriteInfo(s store.Store, key string, mode rank.Mode) error {
	var buf bytes.Buffer

	buf.WriteString("Vector spaces:\n")
	for _, v := range c.VS.Members() {
		if !v.Valid() {
			fmt.Fprintf(&buf, "  %s  invalid\n", v)
			continue
		}
		dim, err := gvs.Dim(s, v)
		if err != nil {
			fmt.Fprintf(&buf, "  %s  dim not built\n", v)
			continue
		}
		fmt.Fprintf(&buf, "  %s  dim %d\n", v, dim)
	}

	for i, d := range c.Differentials {
		fmt.Fprintf(&buf, "Differential %d:\n", i)
		for _, m := range d.Maps {
			fmt.Fprintf(&buf, "  %s -> %s\n", m.Domain().Key(), m.Target().Key())
		}
		entries, err := c.Cohomology(s, d, mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "Cohomology (differential %d):\n", i)
		for _, e := range entries {
			if e.Known {
				fmt.Fprintf(&buf, "  %s  dim H = %d\n", e.Key, e.Dim)
			} else {
				fmt.Fprintf(&buf, "  %s  dim H = ?\n", e.Key)
			}
		}
	}

	return s.Put(key, buf.Bytes())
}
