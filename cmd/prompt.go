package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/woundcheck/internal/prompt"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Assess wounds interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		once, _ := cmd.Flags().GetBool("once")

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
		session := &prompt.Session{
			In:       cmd.InOrStdin(),
			Out:      out,
			Renderer: renderer(cfg),
			Recorder: rec,
			Once:     once,
		}
		if err := session.Run(cmd.Context()); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "\nInterrupted. Exiting.")
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	promptCmd.Flags().Bool("once", false, "Exit after a single assessment")
}
