package service

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestScannerHosts(t *testing.T) {
	s := NewScanner(zerolog.Nop())

	hosts, err := s.Hosts("192.168.1.0/29")
	if err != nil {
		t.Fatalf("Hosts: %v", err)
	}
	want := []string{
		"192.168.1.1", "192.168.1.2", "192.168.1.3",
		"192.168.1.4", "192.168.1.5", "192.168.1.6",
	}
	if len(hosts) != len(want) {
		t.Fatalf("Hosts returned %d entries, want %d", len(hosts), len(want))
	}
	for i, h := range hosts {
		if h != want[i] {
			t.Errorf("host %d = %s, want %s", i, h, want[i])
		}
	}
}

func TestScannerHostsMasksBase(t *testing.T) {
	s := NewScanner(zerolog.Nop())
	hosts, err := s.Hosts("10.0.0.37/30")
	if err != nil {
		t.Fatalf("Hosts: %v", err)
	}
	if len(hosts) != 2 || hosts[0] != "10.0.0.37" || hosts[1] != "10.0.0.38" {
		t.Errorf("hosts = %v", hosts)
	}
}

func TestScannerRefusesHugeNetworks(t *testing.T) {
	s := NewScanner(zerolog.Nop())
	if _, err := s.Hosts("10.0.0.0/8"); err == nil {
		t.Error("expected guard error for /8")
	}
}

func TestScannerRejectsBadCIDR(t *testing.T) {
	s := NewScanner(zerolog.Nop())
	for _, bad := range []string{"10.0.0.0", "10.0.0.0/33", "300.1.1.1/8"} {
		if _, err := s.Hosts(bad); err == nil {
			t.Errorf("Hosts(%q) succeeded", bad)
		}
	}
}
