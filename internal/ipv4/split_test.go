package ipv4

import (
	"errors"
	"testing"
)

func TestSplitConcrete(t *testing.T) {
	addr, _ := ParseAddr("192.168.1.0")
	subnets, err := Split(addr, 24, 4)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	want := []string{
		"192.168.1.0/26",
		"192.168.1.64/26",
		"192.168.1.128/26",
		"192.168.1.192/26",
	}
	if len(subnets) != len(want) {
		t.Fatalf("Split returned %d subnets, want %d", len(subnets), len(want))
	}
	for i, n := range subnets {
		if got := n.String(); got != want[i] {
			t.Errorf("subnet %d = %s, want %s", i, got, want[i])
		}
	}
}

func TestSplitMasksHostBits(t *testing.T) {
	// A non-base address inside the network splits the same way.
	addr, _ := ParseAddr("10.0.7.33")
	subnets, err := Split(addr, 16, 2)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if subnets[0].String() != "10.0.0.0/17" || subnets[1].String() != "10.0.128.0/17" {
		t.Errorf("subnets = %s, %s", subnets[0], subnets[1])
	}
}

var splitFailCases = []struct {
	prefix int
	count  int
	kind   error
}{
	{24, 0, ErrSubnetCountTooSmall},
	{24, 1, ErrSubnetCountTooSmall},
	{24, -4, ErrSubnetCountTooSmall},
	{24, 3, ErrNotPowerOfTwo},
	{24, 6, ErrNotPowerOfTwo},
	{24, 100, ErrNotPowerOfTwo},
	{24, 128, ErrPrefixOverflow}, // /24 + 7 bits = /31
	{30, 2, ErrPrefixOverflow},
	{29, 4, ErrPrefixOverflow},
	{33, 2, ErrPrefixOutOfRange},
	{-1, 2, ErrPrefixOutOfRange},
}

func TestSplitErrors(t *testing.T) {
	addr, _ := ParseAddr("192.168.1.0")
	for _, tc := range splitFailCases {
		_, err := Split(addr, tc.prefix, tc.count)
		if err == nil {
			t.Errorf("Split(/%d, %d) succeeded, want error", tc.prefix, tc.count)
			continue
		}
		if !errors.Is(err, tc.kind) {
			t.Errorf("Split(/%d, %d) error = %v, want kind %v", tc.prefix, tc.count, err, tc.kind)
		}
	}
}

// The load-bearing invariant: subnets are ascending, pairwise disjoint,
// contiguous, and together cover exactly the original range.
func TestSplitTiling(t *testing.T) {
	cases := []struct {
		cidr  string
		count int
	}{
		{"10.0.0.0/8", 16},
		{"192.168.0.0/16", 256},
		{"172.16.4.0/22", 8},
		{"0.0.0.0/0", 4},
		{"192.168.1.0/28", 4},
	}
	for _, tc := range cases {
		addr, prefix, err := ParseCIDR(tc.cidr)
		if err != nil {
			t.Fatalf("ParseCIDR(%q): %v", tc.cidr, err)
		}
		mask, _ := MaskFromPrefix(prefix)
		original := NewNetwork(addr, mask)

		subnets, err := Split(addr, prefix, tc.count)
		if err != nil {
			t.Fatalf("Split(%q, %d): %v", tc.cidr, tc.count, err)
		}
		if len(subnets) != tc.count {
			t.Fatalf("Split(%q, %d) returned %d subnets", tc.cidr, tc.count, len(subnets))
		}

		if subnets[0].IP != original.IP {
			t.Errorf("%q: first subnet starts at %s, want %s", tc.cidr, subnets[0].IP, original.IP)
		}
		if subnets[len(subnets)-1].Broadcast() != original.Broadcast() {
			t.Errorf("%q: last subnet ends at %s, want %s",
				tc.cidr, subnets[len(subnets)-1].Broadcast(), original.Broadcast())
		}
		for i := 1; i < len(subnets); i++ {
			prev, cur := subnets[i-1], subnets[i]
			if cur.IP != prev.Broadcast()+1 {
				t.Errorf("%q: subnet %d starts at %s, previous ends at %s",
					tc.cidr, i, cur.IP, prev.Broadcast())
			}
			if cur.Size() != prev.Size() {
				t.Errorf("%q: subnet sizes differ: %d vs %d", tc.cidr, cur.Size(), prev.Size())
			}
		}
	}
}
