package ipv4

import (
	"fmt"
	"math/bits"
)

// Mask is a subnet mask in the same 32-bit form as Addr. A standard
// mask is left-contiguous: a run of 1-bits followed by 0-bits.
// ParseMask does not enforce contiguity; Prefix does.
type Mask uint32

// ParseMask parses a dotted-decimal mask string.
func ParseMask(s string) (Mask, error) {
	a, err := ParseAddr(s)
	if err != nil {
		return 0, err
	}
	return Mask(a), nil
}

// MaskFromPrefix builds the mask with prefix leading 1-bits.
func MaskFromPrefix(prefix int) (Mask, error) {
	if prefix < 0 || prefix > 32 {
		return 0, fmt.Errorf("%w: %d", ErrPrefixOutOfRange, prefix)
	}
	if prefix == 0 {
		return 0, nil
	}
	return Mask(0xFFFFFFFF << (32 - prefix)), nil
}

// Prefix returns the CIDR prefix length of a left-contiguous mask.
// A mask with a 1-bit after its first 0-bit is not a CIDR mask.
func (m Mask) Prefix() (int, error) {
	ones := bits.LeadingZeros32(^uint32(m))
	if m != 0 && uint32(m) != 0xFFFFFFFF<<(32-ones) {
		return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, m)
	}
	return ones, nil
}

// HostBits counts trailing 0-bits, stopping at the first 1-bit from
// the right. For a contiguous mask this is 32 minus the prefix; for a
// non-contiguous mask it reproduces the mechanical right-to-left count.
func (m Mask) HostBits() int {
	if m == 0 {
		return 32
	}
	return bits.TrailingZeros32(uint32(m))
}

// String returns the dotted-decimal form.
func (m Mask) String() string {
	return Addr(m).String()
}
