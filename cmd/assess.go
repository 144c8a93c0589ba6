package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/store"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess <area> <pain> <exudate>",
	Short: "Assess a single wound",
	Long: `Assess a single wound from its area in cm², pain level 0-10 and exudate
volume (None/Light/Moderate/Heavy). Arguments are passed to the validator as
typed, so malformed values are reported rather than rejected by the shell.`,
	Example: `  woundcheck assess 1.5 2 none
  woundcheck assess 6 4 Moderate --json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		rec, closeRec, err := openRecorder(cfg)
		if err != nil {
			return err
		}
		defer closeRec()

		resp := assessment.Assess(args[0], args[1], args[2])

		if rec != nil {
			r := store.NewRecord("cli", args[0], args[1], args[2], resp)
			if err := rec.Record(context.WithoutCancel(cmd.Context()), r); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record assessment: %v\n", err)
			}
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		fmt.Fprintln(out, renderer(cfg).Render(resp))
		return nil
	},
}

func init() {
	assessCmd.Flags().Bool("json", false, "Print the response envelope as JSON")
}
