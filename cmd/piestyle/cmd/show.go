package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iiroan/piestyle/internal/ui"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current pie style",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the stored values instead of the display values")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	if showRaw {
		entries, err := s.store.All()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s=%s\n", e.Name, e.Value)
		}
		return nil
	}

	fmt.Fprintln(out, renderRows(s.prefs.Rows()))
	fmt.Fprintln(out, ui.MutedStyle.Render("Database: "+s.dbPath))
	return nil
}

func renderRows(rows []ui.Row) string {
	titleWidth := lipgloss.Width("Setting")
	for _, r := range rows {
		titleWidth = max(titleWidth, lipgloss.Width(r.Title))
	}
	titleWidth += 2

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		ui.TableHeader.Width(titleWidth).Render("Setting"),
		ui.TableHeader.Render("Value"),
	))
	for _, r := range rows {
		value := r.Summary
		if r.Swatch != "" {
			value += " " + r.Swatch
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			ui.TableCell.Width(titleWidth).Render(r.Title),
			ui.TableCell.Render(value),
		))
	}
	return strings.Join(lines, "\n")
}
