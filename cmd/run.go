package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/woundcheck/internal/cases"
	"github.com/abhisek/woundcheck/internal/prompt"
	"github.com/spf13/cobra"
)

const builtinTitle = "Wound risk classifier: built-in test cases"

// runDefault runs the built-in cases and then the interactive prompt.
// Ctrl+C at any point ends the program normally.
func runDefault(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rec, closeRec, err := openRecorder(cfg)
	if err != nil {
		return err
	}
	defer closeRec()

	out := cmd.OutOrStdout()
	r := renderer(cfg)

	sum := cases.Run(ctx, out, cases.Builtin(), cases.RunOptions{
		Title:    builtinTitle,
		Renderer: r,
		Recorder: rec,
	})
	if sum.Interrupted {
		fmt.Fprintln(out, "\nInterrupted. Exiting.")
		return nil
	}

	session := &prompt.Session{
		In:       cmd.InOrStdin(),
		Out:      out,
		Renderer: r,
		Recorder: rec,
	}
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "\nInterrupted. Exiting.")
			return nil
		}
		return err
	}
	return nil
}
