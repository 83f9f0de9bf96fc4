package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"netcalc/internal/config"
	"netcalc/internal/domain"
	"netcalc/internal/logger"
	"netcalc/internal/service"
)

var (
	configPath   string
	logLevel     string
	probeTimeout int
	version      = "dev" // set at build time via -ldflags
)

func main() {
	log := logger.New()
	logger.SetGlobalLogger(log)

	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:     "netcalc",
		Short:   "IPv4 subnet calculator and network analyzer",
		Long:    `Converts between IPv4 address representations, derives subnet boundaries, splits networks and runs TCP reachability probes.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = probeTimeout
			}
			log = logger.NewWithLevel(cfg.LogLevel)
			logger.SetGlobalLogger(log)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "netcalc.toml", "Path to optional TOML defaults file")

	analyzeCmd := &cobra.Command{
		Use:   "analyze <mask> | <ip> <mask>",
		Short: "Analyze a subnet mask, or a full network when an address is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runAnalyze,
	}

	cidrCmd := &cobra.Command{
		Use:   "cidr <addr/prefix>",
		Short: "Analyze a network in CIDR notation",
		Args:  cobra.ExactArgs(1),
		RunE:  runCIDR,
	}

	classCmd := &cobra.Command{
		Use:   "class <ip>",
		Short: "Show the historical class and special-purpose range of an address",
		Args:  cobra.ExactArgs(1),
		RunE:  runClass,
	}

	checkCmd := &cobra.Command{
		Use:   "check <ip> <addr/prefix>",
		Short: "Check whether an address lies inside a CIDR network",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheck,
	}

	convertCmd := &cobra.Command{
		Use:   "convert <ip>",
		Short: "Show an address in dotted, decimal, hex and binary form",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}

	splitCmd := &cobra.Command{
		Use:   "split <addr/prefix> <count>",
		Short: "Split a network into equal subnets (count must be a power of two)",
		Args:  cobra.ExactArgs(2),
		RunE:  runSplit,
	}

	scanCmd := &cobra.Command{
		Use:   "scan <addr/prefix>",
		Short: "List the usable host addresses of a network",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}

	probeCmd := &cobra.Command{
		Use:   "probe <ip> <port>",
		Short: "Attempt one TCP connection to an address and port",
		Args:  cobra.ExactArgs(2),
		RunE:  func(cmd *cobra.Command, args []string) error { return runProbe(cfg, args) },
	}
	probeCmd.Flags().IntVar(&probeTimeout, "timeout", config.DefaultTimeout, "Probe timeout in seconds")

	portsCmd := &cobra.Command{
		Use:   "ports <ip>",
		Short: "Scan the common service ports of an address",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return runPorts(cfg, args) },
	}
	portsCmd.Flags().IntVar(&probeTimeout, "timeout", config.DefaultTimeout, "Probe timeout in seconds")

	rootCmd.AddCommand(analyzeCmd, cidrCmd, classCmd, checkCmd, convertCmd, splitCmd, scanCmd, probeCmd, portsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analyzer := service.NewAnalyzer(logger.Global().Logger)

	maskStr := args[len(args)-1]
	mask, err := analyzer.AnalyzeMask(maskStr)
	if err != nil {
		return err
	}
	printMask(mask)

	// Single-argument mode shows the range against base 0.0.0.0.
	ipStr := "0.0.0.0"
	if len(args) == 2 {
		ipStr = args[0]
	}
	rng, err := analyzer.AnalyzeRange(ipStr, maskStr)
	if err != nil {
		return err
	}
	fmt.Println()
	printRange(rng)

	if len(args) == 2 {
		class, err := analyzer.Classify(ipStr)
		if err != nil {
			return err
		}
		fmt.Println()
		printClass(class)
	}
	return nil
}

func runCIDR(cmd *cobra.Command, args []string) error {
	analyzer := service.NewAnalyzer(logger.Global().Logger)
	report, err := analyzer.AnalyzeCIDR(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("CIDR:        %s\n", report.Input)
	fmt.Printf("Address:     %s\n", report.Address)
	fmt.Printf("Prefix:      /%d\n", report.Prefix)
	fmt.Println()
	printMask(&report.Mask)
	fmt.Println()
	printRange(&report.Range)
	return nil
}

func runClass(cmd *cobra.Command, args []string) error {
	analyzer := service.NewAnalyzer(logger.Global().Logger)
	report, err := analyzer.Classify(args[0])
	if err != nil {
		return err
	}
	printClass(report)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	analyzer := service.NewAnalyzer(logger.Global().Logger)
	report, err := analyzer.CheckMembership(args[0], args[1])
	if err != nil {
		return err
	}

	verdict := "is NOT in"
	if report.Contained {
		verdict = "is in"
	}
	fmt.Printf("Address:     %s\n", report.Address)
	fmt.Printf("Network:     %s (network %s, mask %s)\n", report.Network, report.NetworkIP, report.Mask)
	fmt.Printf("Result:      %s %s network %s\n", report.Address, verdict, report.Network)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	analyzer := service.NewAnalyzer(logger.Global().Logger)
	report, err := analyzer.Convert(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Dotted:      %s\n", report.Address)
	fmt.Printf("Decimal:     %d\n", report.Decimal)
	fmt.Printf("Hex:         0x%s\n", report.Hex)
	fmt.Printf("Binary:      %s\n", report.Binary)
	fmt.Println("Derivation:")
	for i, term := range report.Terms {
		fmt.Printf("  %3d x 256^%d = %d\n", term.Octet, 3-i, term.Product)
	}
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("subnet count %q is not a number", args[1])
	}

	analyzer := service.NewAnalyzer(logger.Global().Logger)
	report, err := analyzer.SplitNetwork(args[0], count)
	if err != nil {
		return err
	}

	fmt.Printf("Original:    %s\n", report.Original)
	fmt.Printf("Subnets:     %d (/%d each, %d addresses, %d usable)\n",
		report.SubnetCount, report.NewPrefix, report.SubnetSize, report.UsableHosts)
	for i, sub := range report.Subnets {
		fmt.Printf("  %2d. %-20s %s - %s\n", i+1, sub.CIDR, sub.Network, sub.Broadcast)
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner := service.NewScanner(logger.Global().Logger)
	hosts, err := scanner.Hosts(args[0])
	if err != nil {
		return err
	}
	for _, host := range hosts {
		fmt.Println(host)
	}
	return nil
}

func runProbe(cfg *config.Config, args []string) error {
	port, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("port %q is not a number", args[1])
	}

	diag := service.NewDiag(logger.Global().Logger, time.Duration(cfg.Timeout)*time.Second)
	result, err := diag.Probe(args[0], port)
	if err != nil {
		return err
	}
	printProbe(result)
	return nil
}

func runPorts(cfg *config.Config, args []string) error {
	diag := service.NewDiag(logger.Global().Logger, time.Duration(cfg.Timeout)*time.Second)
	report, err := diag.ScanPorts(args[0], cfg.Ports)
	if err != nil {
		return err
	}

	for i := range report.Results {
		printProbe(&report.Results[i])
	}
	fmt.Printf("%d of %d ports open on %s\n", report.OpenCount(), len(report.Results), report.Address)
	return nil
}

func printMask(r *domain.MaskReport) {
	fmt.Printf("Mask:        %s\n", r.Mask)
	fmt.Printf("Binary:      %s\n", r.Binary)
	if r.Contiguous {
		fmt.Printf("Prefix:      /%d\n", r.Prefix)
	} else {
		fmt.Println("Prefix:      none (mask is not left-contiguous)")
	}
	fmt.Printf("Host bits:   %d\n", r.HostBits)
	fmt.Printf("Usable:      %d\n", r.UsableHosts)
}

func printRange(r *domain.RangeReport) {
	fmt.Printf("Network:     %s\n", r.Network)
	fmt.Printf("Broadcast:   %s\n", r.Broadcast)
	fmt.Printf("First host:  %s\n", r.FirstUsable)
	fmt.Printf("Last host:   %s\n", r.LastUsable)
	fmt.Printf("Addresses:   %d total, %d usable\n", r.Total, r.UsableHosts)
}

func printClass(r *domain.ClassReport) {
	fmt.Printf("Address:     %s (decimal %d)\n", r.Address, r.Decimal)
	fmt.Printf("Class:       %s\n", r.Class)
	if r.DefaultMask != "" {
		fmt.Printf("Default mask: %s\n", r.DefaultMask)
	}
	fmt.Printf("Range:       %s\n", r.Special)
}

func printProbe(r *domain.ProbeResult) {
	state := "closed"
	if r.Open {
		state = "open"
	}
	label := ""
	if r.Service != "" {
		label = " (" + r.Service + ")"
	}
	fmt.Printf("%s:%d%s %s (%d ms)\n", r.Address, r.Port, label, state, r.ElapsedMs)
}
