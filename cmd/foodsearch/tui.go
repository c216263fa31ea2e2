package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/config"
	"nutrisearch/internal/tui"
)

var landingFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive search screen",
	Long: `Open an interactive search screen.

Keys:
  enter   - search
  1-7     - quick search (on an empty input)
  ctrl+r  - reset
  esc     - quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		landing, err := config.LoadLandingConfig(landingFile)
		if err != nil {
			return err
		}

		w := newWidget()
		defer w.Close()

		m := tui.New(w, landing, catalog.Default().QuickSearches())
		p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

func init() {
	tuiCmd.Flags().StringVar(&landingFile, "landing", "landing.yaml", "YAML file overriding widget labels")
}
