package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/piestyle/internal/config"
	"github.com/iiroan/piestyle/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	dbPath  string
	locale  string
	logger  *log.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "piestyle",
	Short: "Adjust the look of the pie control",
	Long: `piestyle edits the colors, transparency, size and placement of the
pie control and stores them in the system settings database.

Run without arguments for the interactive screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() != "version" && cmd.Name() != "help" {
			if err := config.LoadEnvFile(".env"); err != nil {
				logger.Warn("could not read .env", "error", err)
			}
			cfg = loadConfig()
		}

		applyUISettings()
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runStyleScreen()
		}
		return cmd.Help()
	},
}

// loadConfig layers defaults, the config file, PIESTYLE_* variables and
// command line flags, in that order.
func loadConfig() *config.Config {
	var (
		c   *config.Config
		err error
	)
	if cfgFile != "" {
		c, err = config.Load(cfgFile)
	} else {
		c, err = config.LoadDefault()
	}
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		c = config.DefaultConfig()
	}

	for _, envErr := range c.ApplyEnv() {
		logger.Warn("ignoring environment override", "error", envErr)
	}

	if dbPath != "" {
		c.Store.Path = dbPath
	}
	if locale != "" {
		c.Locale = locale
	}
	return c
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorBox.Render(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/piestyle/piestyle.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Settings database (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Label language, e.g. de or fr (default: from LANG)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{
			Theme:   "aurora",
			Dense:   false,
			NoColor: noColor,
		})
		return
	}
	ui.ApplyPreferences(ui.Preferences{
		Theme:   cfg.UI.Theme,
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
	})
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
