package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/widget"
)

// errLookupFailed signals a non-zero exit after output was already written.
var errLookupFailed = errors.New("one or more lookups failed")

var delay time.Duration

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "foodsearch",
	Short: "Look up nutrition facts from the terminal",
	Long: `foodsearch drives the nutrition lookup widget from the command line.

Available subcommands:
  list   - Print every food in the lookup table
  lookup - Look up one or more foods
  tui    - Interactive search screen`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&delay, "delay", widget.DefaultDelay, "Simulated lookup latency")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errLookupFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// newWidget returns a widget over the built-in table using the --delay flag.
func newWidget() *widget.Widget {
	return widget.New(catalog.Default(), widget.Options{Delay: delay})
}
