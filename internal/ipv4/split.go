package ipv4

import (
	"fmt"
	"math/bits"
)

// Split divides the network addr/prefix into count equal subnets.
// count must be a power of two greater than 1, and the resulting
// prefix may not pass /30. The subnets are returned in ascending base
// order and tile the original range contiguously and exhaustively.
func Split(addr Addr, prefix, count int) ([]Network, error) {
	mask, err := MaskFromPrefix(prefix)
	if err != nil {
		return nil, err
	}
	if count <= 1 {
		return nil, fmt.Errorf("%w: %d", ErrSubnetCountTooSmall, count)
	}
	if count&(count-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, count)
	}
	subnetBits := bits.TrailingZeros(uint(count))

	newPrefix := prefix + subnetBits
	if newPrefix > 30 {
		return nil, fmt.Errorf("%w: /%d + %d subnet bits gives /%d", ErrPrefixOverflow, prefix, subnetBits, newPrefix)
	}
	newMask, err := MaskFromPrefix(newPrefix)
	if err != nil {
		return nil, err
	}

	base := NetworkAddress(addr, mask)
	subnetSize := Addr(1) << uint(32-newPrefix)

	subnets := make([]Network, count)
	for i := range subnets {
		subnets[i] = Network{IP: base + Addr(i)*subnetSize, Mask: newMask}
	}
	return subnets, nil
}
