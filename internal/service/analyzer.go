package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"netcalc/internal/domain"
	"netcalc/internal/ipv4"
)

// Analyzer builds structured reports from the ipv4 arithmetic core.
type Analyzer struct {
	logger zerolog.Logger
}

// NewAnalyzer creates a new analyzer service
func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// AnalyzeMask parses a dotted-decimal mask and reports its binary
// expansion, prefix and host capacity. A non-contiguous mask is still
// reported (Prefix -1) the way the capacity math sees it.
func (a *Analyzer) AnalyzeMask(maskStr string) (*domain.MaskReport, error) {
	mask, err := ipv4.ParseMask(maskStr)
	if err != nil {
		return nil, fmt.Errorf("parse mask %q: %w", maskStr, err)
	}

	report := &domain.MaskReport{
		Mask:       mask.String(),
		Binary:     mask.Bits(),
		Prefix:     -1,
		HostBits:   mask.HostBits(),
		Contiguous: true,
	}
	prefix, err := mask.Prefix()
	if err != nil {
		a.logger.Warn().Str("mask", maskStr).Msg("Mask is not a contiguous CIDR mask")
		report.Contiguous = false
	} else {
		report.Prefix = prefix
	}
	report.UsableHosts = ipv4.UsableHostCount(report.HostBits)

	a.logger.Debug().
		Str("mask", report.Mask).
		Int("prefix", report.Prefix).
		Uint64("usable", report.UsableHosts).
		Msg("Mask analyzed")
	return report, nil
}

// AnalyzeRange computes the subnet boundaries for an address and mask.
func (a *Analyzer) AnalyzeRange(ipStr, maskStr string) (*domain.RangeReport, error) {
	ip, err := ipv4.ParseAddr(ipStr)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", ipStr, err)
	}
	mask, err := ipv4.ParseMask(maskStr)
	if err != nil {
		return nil, fmt.Errorf("parse mask %q: %w", maskStr, err)
	}

	report := rangeReport(ipv4.NewNetwork(ip, mask))
	a.logger.Debug().
		Str("network", report.Network).
		Str("broadcast", report.Broadcast).
		Msg("Range analyzed")
	return &report, nil
}

// AnalyzeCIDR parses CIDR notation and reports the derived mask and
// subnet boundaries.
func (a *Analyzer) AnalyzeCIDR(cidrStr string) (*domain.CIDRReport, error) {
	addr, prefix, err := ipv4.ParseCIDR(cidrStr)
	if err != nil {
		return nil, fmt.Errorf("parse CIDR %q: %w", cidrStr, err)
	}
	mask, err := ipv4.MaskFromPrefix(prefix)
	if err != nil {
		return nil, err
	}

	maskReport, err := a.AnalyzeMask(mask.String())
	if err != nil {
		return nil, err
	}
	return &domain.CIDRReport{
		Input:   cidrStr,
		Address: addr.String(),
		Prefix:  prefix,
		Mask:    *maskReport,
		Range:   rangeReport(ipv4.NewNetwork(addr, mask)),
	}, nil
}

// Classify reports the historical class and special-purpose range of
// an address.
func (a *Analyzer) Classify(ipStr string) (*domain.ClassReport, error) {
	ip, err := ipv4.ParseAddr(ipStr)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", ipStr, err)
	}

	class := ipv4.ClassOf(ip)
	report := &domain.ClassReport{
		Address: ip.String(),
		Decimal: uint32(ip),
		Class:   class.String(),
		Special: ipv4.SpecialRangeOf(ip).String(),
	}
	if mask, ok := class.DefaultMask(); ok {
		report.DefaultMask = mask.String()
	}

	a.logger.Debug().
		Str("address", report.Address).
		Str("class", report.Class).
		Str("special", report.Special).
		Msg("Address classified")
	return report, nil
}

// CheckMembership reports whether an address lies inside a CIDR
// network.
func (a *Analyzer) CheckMembership(ipStr, cidrStr string) (*domain.MembershipReport, error) {
	ip, err := ipv4.ParseAddr(ipStr)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", ipStr, err)
	}
	addr, prefix, err := ipv4.ParseCIDR(cidrStr)
	if err != nil {
		return nil, fmt.Errorf("parse CIDR %q: %w", cidrStr, err)
	}
	mask, err := ipv4.MaskFromPrefix(prefix)
	if err != nil {
		return nil, err
	}

	network := ipv4.NewNetwork(addr, mask)
	return &domain.MembershipReport{
		Address:   ip.String(),
		Network:   cidrStr,
		NetworkIP: network.IP.String(),
		Mask:      mask.String(),
		Contained: network.Contains(ip),
	}, nil
}

// Convert reports an address in dotted-decimal, integer, hex and
// binary form, with the base-256 positional terms that produce the
// integer value.
func (a *Analyzer) Convert(ipStr string) (*domain.ConversionReport, error) {
	ip, err := ipv4.ParseAddr(ipStr)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", ipStr, err)
	}

	report := &domain.ConversionReport{
		Address: ip.String(),
		Decimal: uint32(ip),
		Hex:     ip.Hex(),
		Binary:  ip.Bits(),
	}
	for i, octet := range ip.Octets() {
		weight := uint32(1) << uint(8*(3-i))
		report.Terms[i] = domain.OctetTerm{
			Octet:   octet,
			Weight:  weight,
			Product: uint64(octet) * uint64(weight),
		}
	}
	return report, nil
}

// SplitNetwork divides a CIDR network into count equal subnets.
func (a *Analyzer) SplitNetwork(cidrStr string, count int) (*domain.SplitReport, error) {
	addr, prefix, err := ipv4.ParseCIDR(cidrStr)
	if err != nil {
		return nil, fmt.Errorf("parse CIDR %q: %w", cidrStr, err)
	}
	subnets, err := ipv4.Split(addr, prefix, count)
	if err != nil {
		return nil, fmt.Errorf("split %q into %d: %w", cidrStr, count, err)
	}

	newPrefix, _ := subnets[0].Mask.Prefix()
	report := &domain.SplitReport{
		Original:    cidrStr,
		SubnetCount: count,
		SubnetBits:  newPrefix - prefix,
		NewPrefix:   newPrefix,
		SubnetSize:  subnets[0].Size(),
		UsableHosts: ipv4.UsableHostCount(32 - newPrefix),
		Subnets:     make([]domain.RangeReport, 0, len(subnets)),
	}
	for _, n := range subnets {
		report.Subnets = append(report.Subnets, rangeReport(n))
	}

	a.logger.Debug().
		Str("original", cidrStr).
		Int("count", count).
		Int("new_prefix", newPrefix).
		Msg("Network split")
	return report, nil
}

// rangeReport derives all boundary fields for one subnet.
func rangeReport(n ipv4.Network) domain.RangeReport {
	first, last := n.UsableRange()
	return domain.RangeReport{
		CIDR:        n.String(),
		Network:     n.IP.String(),
		Broadcast:   n.Broadcast().String(),
		FirstUsable: first.String(),
		LastUsable:  last.String(),
		Total:       n.Size(),
		UsableHosts: ipv4.UsableHostCount(n.Mask.HostBits()),
	}
}
