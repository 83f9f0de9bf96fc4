package ipv4

import "fmt"

// Network is a subnet: a base address and its mask. Construct with
// NewNetwork so the base is already masked.
type Network struct {
	IP   Addr
	Mask Mask
}

// NewNetwork builds a Network from any address inside it, zeroing the
// host bits.
func NewNetwork(ip Addr, mask Mask) Network {
	return Network{IP: NetworkAddress(ip, mask), Mask: mask}
}

// NetworkAddress clears the host bits: ip AND mask.
func NetworkAddress(ip Addr, mask Mask) Addr {
	return ip & Addr(mask)
}

// Broadcast sets the host bits: network OR NOT mask.
func (n Network) Broadcast() Addr {
	return n.IP | ^Addr(n.Mask)
}

// UsableHostCount returns the number of assignable addresses for a
// subnet with the given host-bit count. A /32 is one host; a /31 is a
// point-to-point pair with both addresses usable (RFC 3021); otherwise
// the network and broadcast addresses are subtracted.
func UsableHostCount(hostBits int) uint64 {
	switch hostBits {
	case 0:
		return 1
	case 1:
		return 2
	default:
		return 1<<uint(hostBits) - 2
	}
}

// UsableRange returns the first and last assignable address. For a /32
// both are the network address; for a /31 the pair is the whole range.
func (n Network) UsableRange() (first, last Addr) {
	switch n.Mask.HostBits() {
	case 0:
		return n.IP, n.IP
	case 1:
		return n.IP, n.Broadcast()
	default:
		return n.IP + 1, n.Broadcast() - 1
	}
}

// Contains reports whether ip falls inside the network: both must
// share the same network address under the mask.
func (n Network) Contains(ip Addr) bool {
	return NetworkAddress(ip, n.Mask) == n.IP
}

// Size returns the total number of addresses in the network.
func (n Network) Size() uint64 {
	return 1 << uint(n.Mask.HostBits())
}

// Hosts returns every usable host address in ascending order. limit
// guards against enumerating huge networks; 0 means no limit. The
// error reports how many addresses the network holds.
func (n Network) Hosts(limit int) ([]Addr, error) {
	count := UsableHostCount(n.Mask.HostBits())
	if limit > 0 && count > uint64(limit) {
		return nil, fmt.Errorf("network holds %d hosts, limit is %d", count, limit)
	}
	first, last := n.UsableRange()
	hosts := make([]Addr, 0, count)
	for ip := first; ; ip++ {
		hosts = append(hosts, ip)
		if ip == last {
			break
		}
	}
	return hosts, nil
}

// String returns CIDR notation when the mask is contiguous, otherwise
// "ip mask" with the mask spelled out.
func (n Network) String() string {
	prefix, err := n.Mask.Prefix()
	if err != nil {
		return fmt.Sprintf("%s %s", n.IP, n.Mask)
	}
	return fmt.Sprintf("%s/%d", n.IP, prefix)
}
