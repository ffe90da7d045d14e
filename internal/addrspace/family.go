// Package addrspace converts IPv4 and IPv6 addresses to and from their
// ordinal position in the family's linear address space.
package addrspace

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

var (
	ErrInvalidAddressFormat = errors.New("invalid address format")
	ErrInvalidRange         = errors.New("invalid range")
	ErrInvalidPrefix        = errors.New("invalid prefix")
	ErrUnknownFamily        = errors.New("unknown address family")
)

type Family string

const (
	V4 Family = "v4"
	V6 Family = "v6"
)

// ParseFamily accepts the short and long spellings used by the console
// ("v4", "ipv4", "4" and their v6 counterparts).
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v4", "ipv4", "4":
		return V4, nil
	case "v6", "ipv6", "6":
		return V6, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

func FamilyOf(addr netip.Addr) Family {
	if addr.Is4() {
		return V4
	}
	return V6
}

func (f Family) Valid() bool {
	return f == V4 || f == V6
}

// Bits is the width of the family's address space.
func (f Family) Bits() int {
	if f == V4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	return string(f)
}

// ValidatePrefix checks a prefix length for the family. Only IPv6 records
// carry a prefix, so IPv4 always passes.
func ValidatePrefix(f Family, prefix int) error {
	if f != V6 {
		return nil
	}
	if prefix < 0 || prefix > 128 {
		return fmt.Errorf("%w: %d is outside 0..128", ErrInvalidPrefix, prefix)
	}
	return nil
}
