package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"netcalc/internal/ipv4"
)

// Networks bigger than this are refused to keep enumeration bounded.
const maxScanHosts = 65536

// Scanner enumerates the usable host addresses of a network.
type Scanner struct {
	logger zerolog.Logger
}

// NewScanner creates a new scanner service
func NewScanner(logger zerolog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Hosts returns every usable host address in a CIDR network in
// ascending order.
func (s *Scanner) Hosts(cidrStr string) ([]string, error) {
	addr, prefix, err := ipv4.ParseCIDR(cidrStr)
	if err != nil {
		return nil, fmt.Errorf("parse CIDR %q: %w", cidrStr, err)
	}
	mask, err := ipv4.MaskFromPrefix(prefix)
	if err != nil {
		return nil, err
	}

	network := ipv4.NewNetwork(addr, mask)
	hosts, err := network.Hosts(maxScanHosts)
	if err != nil {
		return nil, fmt.Errorf("enumerate %q: %w", cidrStr, err)
	}

	out := make([]string, len(hosts))
	for i, h := range hosts {
		out[i] = h.String()
	}

	s.logger.Info().
		Str("network", network.String()).
		Int("hosts", len(out)).
		Msg("Host enumeration complete")
	return out, nil
}
