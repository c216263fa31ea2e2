package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"nutrisearch/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every food in the lookup table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("KEY", "NAME", "SERVING", "KCAL", "PROTEIN", "CARBS", "FATS", "FIBER")

		for _, e := range catalog.Default().Entries() {
			r := e.Record
			t.Row(e.Key, r.Name, r.ServingSize,
				formatValue(r.Calories), formatValue(r.Protein), formatValue(r.Carbs),
				formatValue(r.Fats), formatValue(r.Fiber))
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return err
	},
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
