// Package ipv4 provides IPv4 address, mask and subnet arithmetic on
// 32-bit integer values: dotted-decimal and binary codecs, CIDR
// conversion, network/broadcast/usable-range math, VLSM splitting and
// address classification. All functions are pure; failures are
// reported through the Err* sentinel errors.
package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is an IPv4 address as a 32-bit unsigned integer:
// A.B.C.D = A*256^3 + B*256^2 + C*256 + D.
type Addr uint32

// ParseAddr parses a dotted-decimal string into an Addr. The string
// must have exactly four fields, each a decimal integer in 0-255.
func ParseAddr(s string) (Addr, error) {
	fields := strings.Split(s, ".")
	if len(fields) != 4 {
		return 0, fmt.Errorf("%w: %q has %d fields, want 4", ErrInvalidFormat, s, len(fields))
	}
	var v uint32
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrOctetOutOfRange, f)
		}
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: %d", ErrOctetOutOfRange, n)
		}
		v = v<<8 + uint32(n)
	}
	return Addr(v), nil
}

// String returns the dotted-decimal form without leading zeros.
func (a Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a>>24, a>>16&0xFF, a>>8&0xFF, a&0xFF)
}

// Hex returns the address as eight zero-padded uppercase hex digits.
func (a Addr) Hex() string {
	return fmt.Sprintf("%08X", uint32(a))
}

// Octets returns the four octets, most significant first.
func (a Addr) Octets() [4]uint8 {
	return [4]uint8{uint8(a >> 24), uint8(a >> 16), uint8(a >> 8), uint8(a)}
}
