// Package main provides the entry point for Relay Cycler.
// Relay Cycler selects a Mullvad exit relay by geographic proximity to
// a configured home location and cycles between the candidates on each
// invocation, driving the daemon through connect/reconnect transitions.
//
// Usage:
//
//	relay-cycler [options] [next|previous]
//
// Environment:
//
//	The tool requires the Mullvad VPN client to be installed and the
//	home reference record to have been written by the setup flow.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/yllada/relay-cycler/cli"
	"github.com/yllada/relay-cycler/common"
	"github.com/yllada/relay-cycler/config"
	"github.com/yllada/relay-cycler/vpn"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	listRelays    = flag.Bool("list", false, "Show the ranked relay list for the active country")
	showStatus    = flag.Bool("status", false, "Show current connection status")
	disconnectVPN = flag.Bool("disconnect", false, "Disconnect the VPN")
	noLock        = flag.Bool("no-lock", false, "Skip the advisory invocation lock")
)

func main() {
	flag.Usage = cli.PrintHelp
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Relay Cycler v%s\n", appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, common.ErrMissingHomeReference) {
			fmt.Fprintln(os.Stderr, "Run the location setup flow to create the home reference record.")
		}
		os.Exit(1)
	}
}

func run() error {
	if !vpn.Installed() {
		return fmt.Errorf("the %s client is not installed", common.DaemonBinary)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app, err := cli.New(cfg)
	if err != nil {
		return err
	}

	switch {
	case *listRelays:
		return app.List()
	case *showStatus:
		return app.Status()
	case *disconnectVPN:
		return app.Disconnect()
	default:
		if flag.NArg() > 1 {
			return fmt.Errorf("too many arguments: %v", flag.Args())
		}
		return app.Cycle(flag.Arg(0), *noLock)
	}
}
