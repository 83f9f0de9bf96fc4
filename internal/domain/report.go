package domain

// MaskReport describes a subnet mask: its binary expansion, prefix
// length and host capacity. Prefix is -1 when the mask is not a
// left-contiguous CIDR mask.
type MaskReport struct {
	Mask        string
	Binary      string
	Prefix      int
	Contiguous  bool
	HostBits    int
	UsableHosts uint64
}

// RangeReport describes the boundaries of one subnet.
type RangeReport struct {
	CIDR        string
	Network     string
	Broadcast   string
	FirstUsable string
	LastUsable  string
	Total       uint64
	UsableHosts uint64
}

// CIDRReport combines the parsed parts of CIDR notation with the full
// mask and range analysis.
type CIDRReport struct {
	Input   string
	Address string
	Prefix  int
	Mask    MaskReport
	Range   RangeReport
}

// OctetTerm is one term of the base-256 positional expansion
// value = A*256^3 + B*256^2 + C*256 + D.
type OctetTerm struct {
	Octet   uint8
	Weight  uint32
	Product uint64
}

// ConversionReport shows one address in every representation.
type ConversionReport struct {
	Address string
	Decimal uint32
	Hex     string
	Binary  string
	Terms   [4]OctetTerm
}

// ClassReport describes the historical class and special-purpose
// range of an address. DefaultMask is empty for classes D, E and
// loopback.
type ClassReport struct {
	Address     string
	Decimal     uint32
	Class       string
	DefaultMask string
	Special     string
}

// MembershipReport is the outcome of an IP-in-network check.
type MembershipReport struct {
	Address   string
	Network   string
	NetworkIP string
	Mask      string
	Contained bool
}

// SplitReport lists the equal subnets a network was divided into.
type SplitReport struct {
	Original    string
	SubnetCount int
	SubnetBits  int
	NewPrefix   int
	SubnetSize  uint64
	UsableHosts uint64
	Subnets     []RangeReport
}

// ProbeResult is the outcome of a single TCP connect attempt.
type ProbeResult struct {
	Address   string
	Port      int
	Service   string
	Open      bool
	ElapsedMs int64
	Error     string
}

// PortScanReport aggregates probe results for one host.
type PortScanReport struct {
	Address string
	Results []ProbeResult
}

// OpenCount returns the number of open ports in the report.
func (r *PortScanReport) OpenCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Open {
			n++
		}
	}
	return n
}
