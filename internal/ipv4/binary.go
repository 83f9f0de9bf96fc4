package ipv4

import "fmt"

// OctetBits renders a single octet as an 8-character bit string,
// most significant bit first. Values outside 0-255 are rejected.
func OctetBits(n int) (string, error) {
	if n < 0 || n > 255 {
		return "", fmt.Errorf("%w: %d", ErrOctetOutOfRange, n)
	}
	var bits [8]byte
	for i := 7; i >= 0; i-- {
		bits[i] = byte('0' + n%2)
		n /= 2
	}
	return string(bits[:]), nil
}

// OctetFromBits is the inverse of OctetBits. The input must be exactly
// eight '0'/'1' characters.
func OctetFromBits(s string) (uint8, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("%w: %q is not 8 bits", ErrInvalidFormat, s)
	}
	var n uint8
	for i := 0; i < 8; i++ {
		switch s[i] {
		case '0':
			n <<= 1
		case '1':
			n = n<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q contains %q", ErrInvalidFormat, s, s[i])
		}
	}
	return n, nil
}

// Bits returns the 32-bit binary expansion grouped into octets,
// e.g. "11000000 10101000 00000001 00000001".
func (a Addr) Bits() string {
	var out []byte
	for i, o := range a.Octets() {
		if i > 0 {
			out = append(out, ' ')
		}
		s, _ := OctetBits(int(o)) // octet is always in range
		out = append(out, s...)
	}
	return string(out)
}

// Bits returns the mask's grouped 32-bit binary expansion.
func (m Mask) Bits() string {
	return Addr(m).Bits()
}
