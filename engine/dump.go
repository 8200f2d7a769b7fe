package engine

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}

// DumpUncurated writes a full dump of every encoding whose version
// metadata is still an unresolved placeholder. The output is for table
// curators, not for machines.
func (r *Registry) DumpUncurated(w io.Writer) {
	uncurated := r.Uncurated()
	fmt.Fprintf(w, "%d encodings with unresolved version metadata\n", len(uncurated))
	for _, e := range uncurated {
		dumpConfig.Fdump(w, e)
	}
}
