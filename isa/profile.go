package isa

// Feature names an optional architecture extension an encoding may
// require, such as the DSP or VFP extensions.
type Feature string

// Architecture extensions used by the shipped table.
const (
	FeatDSP Feature = "dsp" // saturating/DSP arithmetic (the "E" variants)
	FeatVFP Feature = "vfp" // floating point
	FeatMP  Feature = "mp"  // multiprocessing extensions
	FeatSec Feature = "sec" // security extensions
)

// Profile describes a target core: its architecture version, the
// extensions it implements, and the layout order the encoder should
// try. Profiles are plain values; the JSON tags let embedders load
// them from configuration files.
type Profile struct {
	// Version is the architecture version of the target.
	Version Version `json:"version"`

	// Features lists the extensions the target implements.
	Features []Feature `json:"features,omitempty"`

	// LayoutOrder is the encoder's layout preference, most preferred
	// first. Layouts not listed are never used for encoding. Decoding
	// ignores this field; the caller names the layout explicitly.
	LayoutOrder []Layout `json:"layout_order,omitempty"`
}

// ThumbProfile returns a profile for a Thumb-state target: compact
// encodings are preferred, falling back to 32-bit Thumb-2 where the
// version allows it.
func ThumbProfile(v Version, features ...Feature) Profile {
	return Profile{
		Version:     v,
		Features:    features,
		LayoutOrder: []Layout{T16, T32},
	}
}

// ARMProfile returns a profile for an ARM-state target.
func ARMProfile(v Version, features ...Feature) Profile {
	return Profile{
		Version:     v,
		Features:    features,
		LayoutOrder: []Layout{A32},
	}
}

// Has reports whether the profile implements the named extension.
func (p Profile) Has(f Feature) bool {
	for _, have := range p.Features {
		if have == f {
			return true
		}
	}
	return false
}

// Permits reports whether the profile's version falls inside the range
// [min, max). A zero min means no lower bound; a zero max means the
// encoding was never deprecated.
func (p Profile) Permits(min, max Version) bool {
	if min != VersionNone && p.Version < min {
		return false
	}
	if max != VersionNone && p.Version >= max {
		return false
	}
	return true
}
