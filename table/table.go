package table

import (
	"sync"

	"github.com/sarchlab/armtab/engine"
)

var (
	buildOnce sync.Once
	registry  *engine.Registry
)

// Registry returns the process-wide registry built from the shipped
// records. The build runs once, on first use; concurrent callers share
// the same immutable registry. A compile failure here is a defect in
// the shipped table and panics rather than handing out a partial
// instruction set.
func Registry() *engine.Registry {
	buildOnce.Do(func() {
		r, err := engine.Build(records)
		if err != nil {
			panic("armtab: shipped table is broken: " + err.Error())
		}
		registry = r
	})
	return registry
}
