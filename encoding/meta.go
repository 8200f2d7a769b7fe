package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/armtab/isa"
)

// The metadata mini-language. Metadata is a space-separated token
// list:
//
//	v5+          available from ARMv5
//	v8-          deprecated: removed in ARMv8
//	v?           version not yet curated; no restriction applied
//	+dsp         requires the DSP extension
//	+mp@v7       requires the MP extension on v7 and later targets
//	it:never     conditional-execution behavior
//	flags=NZCV   condition flags the instruction writes
//	alias=MOV    notational alias of another mnemonic
//	prio=1       decode precedence over overlapping encodings
//
// Unrecognized tokens are preserved opaquely so newer tables keep
// loading on older engines.

// parseMeta applies a record's metadata tokens to the encoding.
func parseMeta(meta string, e *Encoding) error {
	for _, tok := range strings.Fields(meta) {
		if err := parseMetaToken(tok, e); err != nil {
			return err
		}
	}
	return nil
}

func parseMetaToken(tok string, e *Encoding) error {
	switch {
	case tok == "v?":
		// Unresolved placeholder: no restriction, flagged for
		// curation instead of guessing a version.
		e.VersionUnknown = true
		return nil

	case len(tok) > 2 && tok[0] == 'v' && strings.HasSuffix(tok, "+"):
		v, err := isa.ParseVersion(tok[1 : len(tok)-1])
		if err != nil {
			return err
		}
		e.MinVersion = v
		return nil

	case len(tok) > 2 && tok[0] == 'v' && strings.HasSuffix(tok, "-"):
		v, err := isa.ParseVersion(tok[1 : len(tok)-1])
		if err != nil {
			return err
		}
		e.MaxVersion = v
		return nil

	case strings.HasPrefix(tok, "+"):
		name, gate, gated := strings.Cut(tok[1:], "@")
		if name == "" {
			return fmt.Errorf("empty feature requirement %q", tok)
		}
		req := FeatureReq{Name: isa.Feature(name)}
		if gated {
			v, err := isa.ParseVersion(gate)
			if err != nil {
				return err
			}
			req.Since = v
		}
		e.Features = append(e.Features, req)
		return nil

	case strings.HasPrefix(tok, "it:"):
		switch tok[3:] {
		case "any":
			e.ITMode = ITAny
		case "never":
			e.ITMode = ITNever
		case "only":
			e.ITMode = ITOnly
		default:
			return fmt.Errorf("unknown conditional-execution mode %q", tok)
		}
		return nil

	case strings.HasPrefix(tok, "flags="):
		flags := tok[len("flags="):]
		for _, c := range flags {
			if !strings.ContainsRune("NZCVQ", c) {
				return fmt.Errorf("unknown condition flag %q in %q", string(c), tok)
			}
		}
		e.FlagEffects = flags
		return nil

	case strings.HasPrefix(tok, "alias="):
		e.AliasOf = tok[len("alias="):]
		if e.AliasOf == "" {
			return fmt.Errorf("empty alias target in %q", tok)
		}
		return nil

	case strings.HasPrefix(tok, "prio="):
		n, err := strconv.Atoi(tok[len("prio="):])
		if err != nil {
			return fmt.Errorf("bad priority %q", tok)
		}
		e.Priority = n
		return nil

	default:
		e.Opaque = append(e.Opaque, tok)
		return nil
	}
}
