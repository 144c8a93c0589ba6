package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/woundcheck/internal/cases"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the built-in cases or a JSON case file",
	Long: `Run a sequence of cases through the classifier and print a report for each.

A case file is a JSON object with a "cases" array. Each case has area, pain and
exudate of any JSON type, and optionally name, category and expect
(Good, Warning, Critical or "Input Error"). The command fails when any case
with an expectation produces a different outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		cs, title := cases.Builtin(), builtinTitle
		if file != "" {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open case file: %w", err)
			}
			defer f.Close()
			if cs, err = cases.Load(f); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			title = "Wound risk classifier: cases from " + file
		}

		rec, closeRec, err := openRecorder(cfg)
		if err != nil {
			return err
		}
		defer closeRec()

		out := cmd.OutOrStdout()
		sum := cases.Run(cmd.Context(), out, cs, cases.RunOptions{
			Title:    title,
			Renderer: renderer(cfg),
			Recorder: rec,
		})
		if sum.Interrupted {
			fmt.Fprintln(out, "\nInterrupted. Exiting.")
			return nil
		}
		if n := len(sum.Mismatches); n > 0 {
			return fmt.Errorf("%d of %d checked cases did not match their expected outcome", n, sum.Checked)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringP("file", "f", "", "JSON case file (default: built-in cases)")
}
