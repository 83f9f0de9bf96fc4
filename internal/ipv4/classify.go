package ipv4

// Class is the historical (pre-CIDR) network class of an address,
// keyed on the first octet.
type Class int

const (
	ClassA Class = iota
	ClassB
	ClassC
	ClassD
	ClassE
	ClassLoopback
)

func (c Class) String() string {
	switch c {
	case ClassA:
		return "Class A"
	case ClassB:
		return "Class B"
	case ClassC:
		return "Class C"
	case ClassD:
		return "Class D (Multicast)"
	case ClassE:
		return "Class E (Reserved)"
	case ClassLoopback:
		return "Loopback"
	}
	return "Unknown"
}

// ClassOf returns the historical class of an address.
// 0.x.x.x ("this network") is grouped with Class A, as the legacy
// table has no slot for it.
func ClassOf(a Addr) Class {
	switch first := uint8(a >> 24); {
	case first == 127:
		return ClassLoopback
	case first <= 127:
		return ClassA
	case first <= 191:
		return ClassB
	case first <= 223:
		return ClassC
	case first <= 239:
		return ClassD
	default:
		return ClassE
	}
}

// DefaultMask returns the classful default mask for classes A-C and
// false for classes without one.
func (c Class) DefaultMask() (Mask, bool) {
	switch c {
	case ClassA:
		return 0xFF000000, true
	case ClassB:
		return 0xFFFF0000, true
	case ClassC:
		return 0xFFFFFF00, true
	}
	return 0, false
}

// SpecialRange tags the well-known special-purpose IPv4 ranges.
type SpecialRange int

const (
	RangePublic SpecialRange = iota
	RangeLoopback
	RangePrivate
	RangeLinkLocal
	RangeMulticast
	RangeReserved
)

func (r SpecialRange) String() string {
	switch r {
	case RangeLoopback:
		return "Loopback"
	case RangePrivate:
		return "Private"
	case RangeLinkLocal:
		return "Link-Local"
	case RangeMulticast:
		return "Multicast"
	case RangeReserved:
		return "Reserved"
	}
	return "Public"
}

// Range boundaries as precomputed 32-bit constants so they cannot
// drift from the dotted forms in the comments.
const (
	loopbackStart   Addr = 0x7F000000 // 127.0.0.0/8
	loopbackEnd     Addr = 0x7FFFFFFF
	private10Start  Addr = 0x0A000000 // 10.0.0.0/8
	private10End    Addr = 0x0AFFFFFF
	private172Start Addr = 0xAC100000 // 172.16.0.0/12
	private172End   Addr = 0xAC1FFFFF
	private192Start Addr = 0xC0A80000 // 192.168.0.0/16
	private192End   Addr = 0xC0A8FFFF
	linkLocalStart  Addr = 0xA9FE0000 // 169.254.0.0/16
	linkLocalEnd    Addr = 0xA9FEFFFF
	multicastStart  Addr = 0xE0000000 // 224.0.0.0/4
	multicastEnd    Addr = 0xEFFFFFFF
	reservedStart   Addr = 0xF0000000 // 240.0.0.0/4
)

// SpecialRangeOf returns the special-purpose tag for an address, or
// RangePublic when it falls in none of the fixed ranges.
func SpecialRangeOf(a Addr) SpecialRange {
	switch {
	case a >= loopbackStart && a <= loopbackEnd:
		return RangeLoopback
	case a >= private10Start && a <= private10End,
		a >= private172Start && a <= private172End,
		a >= private192Start && a <= private192End:
		return RangePrivate
	case a >= linkLocalStart && a <= linkLocalEnd:
		return RangeLinkLocal
	case a >= multicastStart && a <= multicastEnd:
		return RangeMulticast
	case a >= reservedStart:
		return RangeReserved
	}
	return RangePublic
}
