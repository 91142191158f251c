package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/pkg/manifest"
	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬┌─┐┬ ┬┌─┐┬┌┐┌┌┬┐
  │││├─┤└┬┘├┤ ││││ ││
  └┴┘┴ ┴ ┴ └  ┴┘└┘─┴┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "wayfind",
		Short: "Route table tooling for the Wayfind navigation library",
		Long: `Wayfind is a client-side route registry and navigation dispatcher.

This CLI works with declarative route manifests (JSON or YAML):

  • Validate and list route tables
  • Resolve paths against a manifest
  • Run a dev server with a live navigation inspector`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		routesCmd(),
		matchCmd(),
		devCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Wayfind ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// buildRouter loads a manifest and registers its routes on a fresh
// router, surfacing compile failures as CLI errors.
func buildRouter(manifestPath string, opts ...router.Option) (*router.Router, error) {
	specs, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	r := router.New(opts...)
	if err := r.AddRoutes(specs); err != nil {
		return nil, err
	}
	return r, nil
}
