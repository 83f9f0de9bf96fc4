package ipv4

import "errors"

// Error kinds for specific error handling with errors.Is.
var (
	ErrInvalidFormat       = errors.New("invalid dotted-decimal or CIDR format")
	ErrOctetOutOfRange     = errors.New("octet outside 0-255")
	ErrPrefixOutOfRange    = errors.New("prefix length outside 0-32")
	ErrNonContiguousMask   = errors.New("mask bits are not left-contiguous")
	ErrNotPowerOfTwo       = errors.New("subnet count must be a power of two")
	ErrSubnetCountTooSmall = errors.New("subnet count must be greater than 1")
	ErrPrefixOverflow      = errors.New("split would exceed the /30 practical maximum")
)
