package ipv4

import "testing"

var networkCases = []struct {
	ip        string
	mask      string
	network   string
	broadcast string
	first     string
	last      string
	usable    uint64
}{
	{"192.168.1.100", "255.255.255.0", "192.168.1.0", "192.168.1.255", "192.168.1.1", "192.168.1.254", 254},
	{"10.20.30.40", "255.0.0.0", "10.0.0.0", "10.255.255.255", "10.0.0.1", "10.255.255.254", 16777214},
	{"172.16.5.9", "255.255.255.252", "172.16.5.8", "172.16.5.11", "172.16.5.9", "172.16.5.10", 2},
	// RFC 3021 point-to-point: both addresses usable.
	{"192.168.1.0", "255.255.255.254", "192.168.1.0", "192.168.1.1", "192.168.1.0", "192.168.1.1", 2},
	// Single host.
	{"192.168.1.7", "255.255.255.255", "192.168.1.7", "192.168.1.7", "192.168.1.7", "192.168.1.7", 1},
	{"5.6.7.8", "0.0.0.0", "0.0.0.0", "255.255.255.255", "0.0.0.1", "255.255.255.254", 4294967294},
}

func TestNetworkBoundaries(t *testing.T) {
	for _, tc := range networkCases {
		ip, err := ParseAddr(tc.ip)
		if err != nil {
			t.Fatalf("ParseAddr(%q): %v", tc.ip, err)
		}
		mask, err := ParseMask(tc.mask)
		if err != nil {
			t.Fatalf("ParseMask(%q): %v", tc.mask, err)
		}
		n := NewNetwork(ip, mask)

		if got := n.IP.String(); got != tc.network {
			t.Errorf("%s/%s network = %s, want %s", tc.ip, tc.mask, got, tc.network)
		}
		if got := n.Broadcast().String(); got != tc.broadcast {
			t.Errorf("%s/%s broadcast = %s, want %s", tc.ip, tc.mask, got, tc.broadcast)
		}
		first, last := n.UsableRange()
		if first.String() != tc.first || last.String() != tc.last {
			t.Errorf("%s/%s usable range = %s-%s, want %s-%s",
				tc.ip, tc.mask, first, last, tc.first, tc.last)
		}
		if got := UsableHostCount(mask.HostBits()); got != tc.usable {
			t.Errorf("%s/%s usable count = %d, want %d", tc.ip, tc.mask, got, tc.usable)
		}
	}
}

var usableHostCountCases = []struct {
	hostBits int
	count    uint64
}{
	{0, 1},
	{1, 2},
	{2, 2},
	{8, 254},
	{16, 65534},
	{32, 4294967294},
}

func TestUsableHostCount(t *testing.T) {
	for _, tc := range usableHostCountCases {
		if got := UsableHostCount(tc.hostBits); got != tc.count {
			t.Errorf("UsableHostCount(%d) = %d, want %d", tc.hostBits, got, tc.count)
		}
	}
}

func TestNetworkContains(t *testing.T) {
	ip, _ := ParseAddr("192.168.1.100")
	mask, _ := ParseMask("255.255.255.0")
	n := NewNetwork(ip, mask)

	// The network and broadcast addresses are both inside.
	if !n.Contains(n.IP) {
		t.Error("network address not contained in its own network")
	}
	if !n.Contains(n.Broadcast()) {
		t.Error("broadcast address not contained in its network")
	}
	for _, s := range []string{"192.168.1.1", "192.168.1.254"} {
		a, _ := ParseAddr(s)
		if !n.Contains(a) {
			t.Errorf("%s not contained in %s", s, n)
		}
	}
	for _, s := range []string{"192.168.2.1", "192.168.0.255", "10.0.0.1"} {
		a, _ := ParseAddr(s)
		if n.Contains(a) {
			t.Errorf("%s contained in %s", s, n)
		}
	}
}

func TestNetworkHosts(t *testing.T) {
	ip, _ := ParseAddr("192.168.1.0")
	mask, _ := MaskFromPrefix(29)
	n := NewNetwork(ip, mask)

	hosts, err := n.Hosts(0)
	if err != nil {
		t.Fatalf("Hosts: %v", err)
	}
	want := []string{
		"192.168.1.1", "192.168.1.2", "192.168.1.3",
		"192.168.1.4", "192.168.1.5", "192.168.1.6",
	}
	if len(hosts) != len(want) {
		t.Fatalf("Hosts returned %d addresses, want %d", len(hosts), len(want))
	}
	for i, h := range hosts {
		if h.String() != want[i] {
			t.Errorf("host %d = %s, want %s", i, h, want[i])
		}
	}
}

func TestNetworkHostsLimit(t *testing.T) {
	ip, _ := ParseAddr("10.0.0.0")
	mask, _ := MaskFromPrefix(8)
	n := NewNetwork(ip, mask)

	if _, err := n.Hosts(1024); err == nil {
		t.Error("expected limit error for /8 enumeration")
	}
}

func TestNetworkString(t *testing.T) {
	ip, _ := ParseAddr("192.168.1.64")
	mask, _ := MaskFromPrefix(26)
	if got := NewNetwork(ip, mask).String(); got != "192.168.1.64/26" {
		t.Errorf("Network.String() = %q", got)
	}

	nc := Network{IP: 0xC0A80100, Mask: 0xFF00FF00}
	if got := nc.String(); got != "192.168.1.0 255.0.255.0" {
		t.Errorf("non-contiguous Network.String() = %q", got)
	}
}
