package isa

import "fmt"

// Version is an architecture version. Versions form a strict total
// order; the zero value means "unspecified" and sorts below every real
// version, so an encoding with a zero minimum version is available
// everywhere.
type Version uint8

// Architecture versions, oldest first.
const (
	VersionNone Version = iota
	V4
	V4T
	V5
	V5E
	V6
	V6T2
	V7
	V8
)

var versionNames = map[Version]string{
	V4:   "4",
	V4T:  "4T",
	V5:   "5",
	V5E:  "5E",
	V6:   "6",
	V6T2: "6T2",
	V7:   "7",
	V8:   "8",
}

func (v Version) String() string {
	if v == VersionNone {
		return "none"
	}
	if s, ok := versionNames[v]; ok {
		return "v" + s
	}
	return fmt.Sprintf("Version(%d)", uint8(v))
}

// MarshalText implements encoding.TextMarshaler so profiles serialize
// with readable version names.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVersion converts a version name such as "4T", "v5" or "6T2"
// into a Version.
func ParseVersion(s string) (Version, error) {
	name := s
	if len(name) > 1 && (name[0] == 'v' || name[0] == 'V') {
		name = name[1:]
	}
	for v, n := range versionNames {
		if n == name {
			return v, nil
		}
	}
	return VersionNone, fmt.Errorf("unknown architecture version %q", s)
}
