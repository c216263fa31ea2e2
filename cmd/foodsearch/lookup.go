package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nutrisearch/internal/models"
	"nutrisearch/internal/tui"
	"nutrisearch/internal/validation"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <food>...",
	Short: "Look up one or more foods",
	Long: `Look up each argument in turn, waiting out the simulated latency.

Exits with status 1 if any food was not found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print each resolved state as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	w := newWidget()
	defer w.Close()

	out := cmd.OutOrStdout()
	failed := false

	for _, query := range args {
		if validation.IsBlank(query) {
			fmt.Fprintln(cmd.ErrOrStderr(), "skipping blank query")
			continue
		}

		w.Search(query)
		st, err := w.Await(cmd.Context())
		if err != nil {
			return fmt.Errorf("lookup %q: %w", query, err)
		}

		if err := printState(out, st, lookupJSON); err != nil {
			return err
		}
		if !st.IsFound() {
			failed = true
		}
	}

	if failed {
		return errLookupFailed
	}
	return nil
}

func printState(out io.Writer, st models.QueryState, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	if st.IsFound() {
		_, err := fmt.Fprintln(out, tui.RenderRecord(*st.Result))
		return err
	}
	_, err := fmt.Fprintln(out, st.Error)
	return err
}
