package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/awsinv/awsinv/inventory"
)

var (
	version = "0.1.0"
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "awsinv",
		Short: "Point-in-time AWS resource inventory",
		Long: `Awsinv enumerates AWS resources of one service in one region and
prints them as a uniform aligned table.

Each run is a single bounded enumeration: no caching, no watching,
and never any mutation of the resources it lists.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
)

// Execute runs the root command and maps the outcome to an exit
// code: 0 for success (an empty listing included), 1 for any failure.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Listing failures were already reported on stderr by the
		// list command; everything else is reported here.
		var lerr *inventory.Error
		if !errors.As(err, &lerr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.SetVersionTemplate(`awsinv {{.Version}}
`)
}
