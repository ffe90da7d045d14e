package addrspace

import (
	"fmt"
	"net/netip"
	"strings"

	"lukechampine.com/uint128"
)

// Ordinal is an address's integer position within its family's space.
type Ordinal struct {
	v uint128.Uint128
}

func OrdinalFrom64(n uint64) Ordinal {
	return Ordinal{v: uint128.From64(n)}
}

// OrdinalOf returns the ordinal of addr. IPv4-mapped IPv6 addresses are
// treated as IPv6.
func OrdinalOf(addr netip.Addr) Ordinal {
	if addr.Is4() {
		b := addr.As4()
		return OrdinalFrom64(uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3]))
	}
	b := addr.As16()
	return Ordinal{v: uint128.FromBytesBE(b[:])}
}

func Compare(a, b Ordinal) int {
	return a.v.Cmp(b.v)
}

func (o Ordinal) Cmp(p Ordinal) int {
	return o.v.Cmp(p.v)
}

// Cmp64 compares o with a small integer.
func (o Ordinal) Cmp64(n uint64) int {
	return o.v.Cmp64(n)
}

// Uint64 reports the ordinal as a uint64 when it fits.
func (o Ordinal) Uint64() (uint64, bool) {
	return o.v.Lo, o.v.Hi == 0
}

func (o Ordinal) String() string {
	return o.v.String()
}

// Size returns the number of ordinals in [start, end].
func Size(start, end Ordinal) (Ordinal, error) {
	if end.v.Cmp(start.v) < 0 {
		return Ordinal{}, fmt.Errorf("%w: end is before start", ErrInvalidRange)
	}
	diff := end.v.Sub(start.v)
	if diff.Equals(uint128.Max) {
		// The full IPv6 space has 2^128 members, which does not fit.
		return Ordinal{}, fmt.Errorf("%w: range covers the whole address space", ErrInvalidRange)
	}
	return Ordinal{v: diff.Add64(1)}, nil
}

// V4MappedBlock holds the IPv4-mapped IPv6 addresses. They are not part of
// the v6 space: Parse rejects them and Format refuses to render them.
var V4MappedBlock = netip.MustParsePrefix("::ffff:0:0/96")

// OverlapsV4Mapped reports whether a v6 prefix shares addresses with
// V4MappedBlock.
func OverlapsV4Mapped(p netip.Prefix) bool {
	return p.Addr().Is6() && p.Overlaps(V4MappedBlock)
}

// Space performs conversions for one address family.
type Space struct {
	family Family
	max    uint128.Uint128
}

func For(f Family) Space {
	if f == V4 {
		return Space{family: V4, max: uint128.From64(1<<32 - 1)}
	}
	return Space{family: V6, max: uint128.Max}
}

func (s Space) Family() Family {
	return s.family
}

func (s Space) Max() Ordinal {
	return Ordinal{v: s.max}
}

// Parse converts the textual form of an address of this family into its
// ordinal.
func (s Space) Parse(text string) (Ordinal, error) {
	addr, err := s.ParseAddr(text)
	if err != nil {
		return Ordinal{}, err
	}
	return OrdinalOf(addr), nil
}

// ParseAddr parses text and requires it to belong to the space's family.
// Zoned addresses and IPv4-mapped IPv6 addresses are rejected.
func (s Space) ParseAddr(text string) (netip.Addr, error) {
	trimmed := strings.TrimSpace(text)
	addr, err := netip.ParseAddr(trimmed)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddressFormat, text)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: zoned address %q", ErrInvalidAddressFormat, text)
	}
	switch s.family {
	case V4:
		if !addr.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidAddressFormat, text)
		}
	case V6:
		if !addr.Is6() || addr.Is4In6() {
			return netip.Addr{}, fmt.Errorf("%w: %q is not an IPv6 address", ErrInvalidAddressFormat, text)
		}
	}
	return addr, nil
}

// Addr converts an ordinal back to an address. It fails when the ordinal is
// wider than the family.
func (s Space) Addr(o Ordinal) (netip.Addr, error) {
	if o.v.Cmp(s.max) > 0 {
		return netip.Addr{}, fmt.Errorf("%w: ordinal %s exceeds %s space", ErrInvalidRange, o, s.family)
	}
	if s.family == V4 {
		n := o.v.Lo
		return netip.AddrFrom4([4]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}), nil
	}
	var b [16]byte
	o.v.PutBytesBE(b[:])
	return netip.AddrFrom16(b), nil
}

// Format returns the canonical text of an ordinal, compressed for IPv6.
func (s Space) Format(o Ordinal) (string, error) {
	addr, err := s.Addr(o)
	if err != nil {
		return "", err
	}
	if s.family == V6 && addr.Is4In6() {
		return "", fmt.Errorf("%w: ordinal %s is in the IPv4-mapped block", ErrInvalidRange, o)
	}
	return addr.String(), nil
}

// Next returns o+1, failing at the top of the space.
func (s Space) Next(o Ordinal) (Ordinal, error) {
	if o.v.Cmp(s.max) >= 0 {
		return Ordinal{}, fmt.Errorf("%w: no address after %s in %s space", ErrInvalidRange, o, s.family)
	}
	return Ordinal{v: o.v.Add64(1)}, nil
}

// Canonical re-renders text in canonical form.
func (s Space) Canonical(text string) (string, error) {
	o, err := s.Parse(text)
	if err != nil {
		return "", err
	}
	return s.Format(o)
}
