package domain

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNetworkNotFound = fmt.Errorf("network %w", ErrNotFound)
	ErrIPNotFound      = fmt.Errorf("ip %w", ErrNotFound)
	ErrNoFreeAddress   = fmt.Errorf("free address %w", ErrNotFound)

	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidAddressFormat = addrspace.ErrInvalidAddressFormat
	ErrInvalidRange         = addrspace.ErrInvalidRange
	ErrInvalidPrefix        = addrspace.ErrInvalidPrefix
	ErrRangeTooLarge        = errors.New("range too large")
	ErrRangeConflict        = errors.New("range conflict")
	ErrDuplicateAddress     = errors.New("duplicate address")
	ErrAddressAssigned      = fmt.Errorf("%w: address is assigned to a customer", ErrConflict)
)

// RangeConflictError names the addresses that made a bulk insert fail.
type RangeConflictError struct {
	Addresses []netip.Addr
}

func (e *RangeConflictError) Error() string {
	if len(e.Addresses) == 0 {
		return ErrRangeConflict.Error()
	}

	const shown = 5
	parts := make([]string, 0, shown)
	for i, addr := range e.Addresses {
		if i == shown {
			break
		}
		parts = append(parts, addr.String())
	}
	msg := fmt.Sprintf("%s: %s already allocated", ErrRangeConflict, strings.Join(parts, ", "))
	if extra := len(e.Addresses) - shown; extra > 0 {
		msg += fmt.Sprintf(" (and %d more)", extra)
	}
	return msg
}

func (e *RangeConflictError) Unwrap() error {
	return ErrRangeConflict
}
