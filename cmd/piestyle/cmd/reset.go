package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/piestyle/internal/ui"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default colors and transparency",
	Long: `Restore the theme colors and the default background transparency.
Control size and mirroring keep their current values.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.controller.ResetToDefaults(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessBox.Render(s.tr("Reset to defaults")))
	fmt.Fprintln(cmd.OutOrStdout(), renderRows(s.prefs.Rows()))
	return nil
}
