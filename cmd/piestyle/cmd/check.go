package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iiroan/piestyle/internal/config"
	"github.com/iiroan/piestyle/internal/ui"
	"github.com/iiroan/piestyle/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the config, theme overlay and settings database",
	Long: `Check the piestyle setup without changing anything:
  - Configuration (piestyle.yaml)
  - Theme overlay colors
  - Stored pie style values`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	configPath := cfgFile
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	total := validate.Result{}
	sections := []struct {
		title  string
		result validate.Result
	}{
		{"Configuration", validate.Config(configPath)},
		{"Theme overlay", validate.Overlay(cfg.Theme.Overlay)},
		{"Settings database", validate.Store(cfg.Store.Path)},
	}
	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, ui.Title.Render(section.title))
		printItems(out, section.result.Items)
		total.Merge(section.result)
	}

	fmt.Fprintln(out)
	if !total.OK() {
		return fmt.Errorf("%d check(s) failed", len(total.Errors))
	}
	summary := "All checks passed"
	if n := len(total.Warnings); n > 0 {
		summary = fmt.Sprintf("Passed with %d warning(s)", n)
	}
	fmt.Fprintln(out, ui.SuccessStyle.Render(summary))
	return nil
}

func printItems(out io.Writer, items []validate.Item) {
	for _, item := range items {
		line := fmt.Sprintf("  %s %s", statusIcon(item.Status), item.Name)
		if item.Details != "" {
			line += " " + ui.MutedStyle.Render("("+item.Details+")")
		}
		fmt.Fprintln(out, line)
	}
}

func statusIcon(s validate.Status) string {
	switch s {
	case validate.StatusSuccess:
		return ui.SuccessStyle.Render("✓")
	case validate.StatusWarning:
		return ui.WarningStyle.Render("!")
	case validate.StatusError:
		return ui.ErrorStyle.Render("✗")
	default:
		return ui.MutedStyle.Render("○")
	}
}
