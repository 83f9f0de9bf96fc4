package service

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"netcalc/internal/domain"
	"netcalc/internal/ipv4"
)

// serviceNames labels well-known ports in scan output.
var serviceNames = map[int]string{
	22:    "SSH",
	23:    "Telnet",
	25:    "SMTP",
	53:    "DNS",
	80:    "HTTP",
	110:   "POP3",
	143:   "IMAP",
	443:   "HTTPS",
	3306:  "MySQL",
	3389:  "RDP",
	5432:  "PostgreSQL",
	6379:  "Redis",
	27017: "MongoDB",
}

// Diag performs live TCP reachability checks.
type Diag struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// NewDiag creates a new diagnostics service with the given probe
// timeout.
func NewDiag(logger zerolog.Logger, timeout time.Duration) *Diag {
	return &Diag{logger: logger, timeout: timeout}
}

// Probe attempts one TCP connection and reports whether the port
// answered and how long the attempt took.
func (d *Diag) Probe(ipStr string, port int) (*domain.ProbeResult, error) {
	ip, err := ipv4.ParseAddr(ipStr)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", ipStr, err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}

	result := &domain.ProbeResult{
		Address: ip.String(),
		Port:    port,
		Service: serviceNames[port],
	}

	target := net.JoinHostPort(ip.String(), strconv.Itoa(port))
	start := time.Now()
	conn, err := net.DialTimeout("tcp", target, d.timeout)
	result.ElapsedMs = time.Since(start).Milliseconds()
	if err != nil {
		result.Error = err.Error()
		d.logger.Debug().
			Str("target", target).
			Int64("elapsed_ms", result.ElapsedMs).
			Err(err).
			Msg("TCP probe failed")
		return result, nil
	}
	conn.Close()

	result.Open = true
	d.logger.Debug().
		Str("target", target).
		Int64("elapsed_ms", result.ElapsedMs).
		Msg("TCP probe connected")
	return result, nil
}

// ScanPorts probes each port in the list and aggregates the results.
func (d *Diag) ScanPorts(ipStr string, ports []int) (*domain.PortScanReport, error) {
	ip, err := ipv4.ParseAddr(ipStr)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", ipStr, err)
	}

	report := &domain.PortScanReport{
		Address: ip.String(),
		Results: make([]domain.ProbeResult, 0, len(ports)),
	}
	for _, port := range ports {
		result, err := d.Probe(ipStr, port)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *result)
	}

	d.logger.Info().
		Str("address", report.Address).
		Int("ports", len(ports)).
		Int("open", report.OpenCount()).
		Msg("Port scan complete")
	return report, nil
}
