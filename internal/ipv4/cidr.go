package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCIDR splits "a.b.c.d/p" notation into its address and prefix
// length. The address keeps its host bits; callers mask it as needed.
func ParseCIDR(s string) (Addr, int, error) {
	addrPart, prefixPart, found := strings.Cut(s, "/")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q has no '/'", ErrInvalidFormat, s)
	}
	addr, err := ParseAddr(addrPart)
	if err != nil {
		return 0, 0, err
	}
	prefix, err := strconv.Atoi(prefixPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: prefix %q is not a number", ErrPrefixOutOfRange, prefixPart)
	}
	if prefix < 0 || prefix > 32 {
		return 0, 0, fmt.Errorf("%w: %d", ErrPrefixOutOfRange, prefix)
	}
	return addr, prefix, nil
}
