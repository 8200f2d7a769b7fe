package engine

import (
	"fmt"

	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

// Registry is the immutable collection of compiled encodings, indexed
// for the encode path (by mnemonic) and the decode path (by layout).
// Build it once; share it freely.
type Registry struct {
	byMnemonic map[string][]*encoding.Encoding
	byLayout   map[isa.Layout][]*encoding.Encoding
	all        []*encoding.Encoding
}

// Build compiles every record of the table into a Registry. The first
// malformed record aborts the build: compile errors are table bugs,
// and skipping records would silently change the instruction set.
//
// Alias encodings (records carrying an alias relation) are indexed for
// encoding under their own mnemonic but excluded from the decode
// index, so a bit pattern is only ever owned by its canonical
// encoding.
func Build(variants []encoding.Variant) (*Registry, error) {
	r := &Registry{
		byMnemonic: make(map[string][]*encoding.Encoding),
		byLayout:   make(map[isa.Layout][]*encoding.Encoding),
	}

	for i, v := range variants {
		e, err := encoding.Compile(v)
		if err != nil {
			return nil, fmt.Errorf("table record %d: %w", i, err)
		}
		r.all = append(r.all, e)
		r.byMnemonic[e.Mnemonic] = append(r.byMnemonic[e.Mnemonic], e)
		if e.AliasOf == "" {
			// Table order is preserved: it is the decode precedence
			// between structurally overlapping encodings.
			r.byLayout[e.Layout] = append(r.byLayout[e.Layout], e)
		}
	}

	for _, e := range r.all {
		if e.AliasOf != "" && len(r.byMnemonic[e.AliasOf]) == 0 {
			return nil, fmt.Errorf("alias %s targets unknown mnemonic %s",
				e.Mnemonic, e.AliasOf)
		}
	}
	return r, nil
}

// Encodings returns every compiled encoding in table order.
func (r *Registry) Encodings() []*encoding.Encoding {
	return r.all
}

// Variants returns the encodings registered for a mnemonic, in table
// order.
func (r *Registry) Variants(mnemonic string) []*encoding.Encoding {
	return r.byMnemonic[mnemonic]
}

// Uncurated returns the encodings whose version metadata is an
// unresolved placeholder. They carry no version restriction at
// runtime; this list exists so table curators can find them.
func (r *Registry) Uncurated() []*encoding.Encoding {
	var out []*encoding.Encoding
	for _, e := range r.all {
		if e.VersionUnknown {
			out = append(out, e)
		}
	}
	return out
}
