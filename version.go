package tagupdater

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/iov-one/tagupdater/errors"
)

// Version identifies a schema state. Versions are ordered lexicographically
// by major, minor, patch and sequence, which is the same order as the one of
// their packed 32 bit form.
//
// Sequence disambiguates updaters registered for the same release. A version
// with zero sequence is a base version.
type Version struct {
	Major    uint8
	Minor    uint8
	Patch    uint8
	Sequence uint8
}

// MaxComponent is the highest value a single version component can hold.
const MaxComponent = 0xFF

// MakeVersion returns the base version of a release. Each component must be
// in the 0..255 range.
func MakeVersion(major, minor, patch int) (Version, error) {
	var errs error
	errs = errors.AppendField(errs, "major", checkComponent(major))
	errs = errors.AppendField(errs, "minor", checkComponent(minor))
	errs = errors.AppendField(errs, "patch", checkComponent(patch))
	if errs != nil {
		return Version{}, errs
	}
	return Version{Major: uint8(major), Minor: uint8(minor), Patch: uint8(patch)}, nil
}

// MustVersion is like MakeVersion but panics on invalid input. Use it for
// version literals.
func MustVersion(major, minor, patch int) Version {
	v, err := MakeVersion(major, minor, patch)
	if err != nil {
		panic(err)
	}
	return v
}

func checkComponent(n int) error {
	switch {
	case n < 0:
		return errors.Wrapf(errors.ErrInput, "negative value %d", n)
	case n > MaxComponent:
		return errors.Wrapf(errors.ErrOverflow, "%d exceeds %d", n, MaxComponent)
	}
	return nil
}

// BaseVersion returns given version with its sequence cleared.
func BaseVersion(v Version) Version {
	return v.Base()
}

// SequenceOf returns the sequence component of given version.
func SequenceOf(v Version) uint8 {
	return v.Sequence
}

// Merge returns a base version combined with given sequence. Base must not
// carry a sequence of its own.
func Merge(base Version, sequence uint8) (Version, error) {
	if base.Sequence != 0 {
		return Version{}, errors.Wrapf(errors.ErrInput, "%s is not a base version", base)
	}
	base.Sequence = sequence
	return base, nil
}

// Base returns this version with the sequence cleared.
func (v Version) Base() Version {
	v.Sequence = 0
	return v
}

// Pack returns the 32 bit form of this version, major being the most
// significant byte.
func (v Version) Pack() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<16 | uint32(v.Patch)<<8 | uint32(v.Sequence)
}

// Unpack returns the version encoded by Pack.
func Unpack(packed uint32) Version {
	return Version{
		Major:    uint8(packed >> 24),
		Minor:    uint8(packed >> 16),
		Patch:    uint8(packed >> 8),
		Sequence: uint8(packed),
	}
}

// Compare returns -1, 0 or 1 if this version is respectively lower, equal or
// greater than the other one.
func (v Version) Compare(other Version) int {
	a, b := v.Pack(), other.Pack()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less returns true if this version is ordered before the other one.
func (v Version) Less(other Version) bool {
	return v.Pack() < other.Pack()
}

// IsZero returns true for the zero version. An empty registry is at the
// zero version.
func (v Version) IsZero() bool {
	return v == (Version{})
}

func (v Version) String() string {
	if v.Sequence == 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.Sequence)
}

// ParseVersion reads a version in the "major.minor.patch" or
// "major.minor.patch-sequence" notation. A single integer (decimal or 0x
// prefixed hexadecimal) is read as a packed version.
func ParseVersion(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Version{}, errors.Wrap(errors.ErrEmpty, "version")
	}
	if !strings.Contains(raw, ".") {
		packed, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return Version{}, errors.Wrapf(errors.ErrInput, "invalid packed version %q", raw)
		}
		return Unpack(uint32(packed)), nil
	}

	release, seq := raw, "0"
	if i := strings.IndexByte(raw, '-'); i >= 0 {
		release, seq = raw[:i], raw[i+1:]
	}
	chunks := strings.Split(release, ".")
	if len(chunks) != 3 {
		return Version{}, errors.Wrapf(errors.ErrInput, "want major.minor.patch, got %q", raw)
	}
	var nums [4]int
	for i, c := range append(chunks, seq) {
		n, err := strconv.Atoi(c)
		if err != nil {
			return Version{}, errors.Wrapf(errors.ErrInput, "invalid component %q", c)
		}
		nums[i] = n
	}
	base, err := MakeVersion(nums[0], nums[1], nums[2])
	if err != nil {
		return Version{}, err
	}
	if err := checkComponent(nums[3]); err != nil {
		return Version{}, errors.Field("sequence", err, "")
	}
	return Merge(base, uint8(nums[3]))
}

// MarshalBinary returns the packed version in big endian byte order, so that
// encoded versions sort the same way as versions do.
func (v Version) MarshalBinary() ([]byte, error) {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, v.Pack())
	return raw, nil
}

// UnmarshalBinary reads a version encoded by MarshalBinary.
func (v *Version) UnmarshalBinary(raw []byte) error {
	if len(raw) != 4 {
		return errors.Wrapf(errors.ErrInput, "want 4 bytes, got %d", len(raw))
	}
	*v = Unpack(binary.BigEndian.Uint32(raw))
	return nil
}
