package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/abhisek/woundcheck/internal/cases"
	"github.com/abhisek/woundcheck/internal/config"
	"github.com/abhisek/woundcheck/internal/report"
	"github.com/abhisek/woundcheck/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "woundcheck",
	Short: "Wound risk classifier",
	Long: `woundcheck grades a wound as Good, Warning or Critical from its area (cm²),
pain level (0-10) and exudate volume (None/Light/Moderate/Heavy).

Without a subcommand it runs the built-in cases and then prompts for input.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDefault(cmd)
	},
}

// Execute runs the command tree. Ctrl+C cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WOUNDCHECK_DB env var)")
	rootCmd.PersistentFlags().String("color", "", "Colour output: auto, always or never (overrides WOUNDCHECK_COLOR)")
	rootCmd.PersistentFlags().Bool("record", false, "Record assessments to the database (overrides WOUNDCHECK_RECORD)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.ConfigFromEnv()
	flags := cmd.Flags()

	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if c, _ := flags.GetString("color"); c != "" {
		cfg.Color = config.ColorMode(strings.ToLower(c))
	}
	if flags.Changed("record") {
		cfg.Record, _ = flags.GetBool("record")
	}
	if f := flags.Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}

	return cfg, cfg.Validate()
}

// openStore opens the assessment log at the configured path.
func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openRecorder opens the store when recording is enabled. The returned
// recorder is nil when it is not, and close is always safe to call.
func openRecorder(cfg config.Config) (rec cases.Recorder, closeFn func(), err error) {
	if !cfg.Record {
		return nil, func() {}, nil
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return st, func() { st.Close() }, nil
}

func renderer(cfg config.Config) report.Renderer {
	return report.Renderer{Color: cfg.UseColor(os.Stdout)}
}
