package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/woundcheck/internal/report"
	"github.com/abhisek/woundcheck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded assessments",
	Long: `List assessments recorded with --record or WOUNDCHECK_RECORD=true,
newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")
		source, _ := cmd.Flags().GetString("source")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.Recent(cmd.Context(), store.QueryOpts{Limit: limit, Status: status, Source: source})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No assessments found.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-6s  %-11s  %-10s  %-10s  %-10s  %s\n",
			"Timestamp", "Source", "Status", "Area", "Pain", "Exudate", "Detail")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, r := range recs {
			outcome, detail := r.Status, strings.Join(r.Reasons, "; ")
			if !r.Success {
				outcome, detail = report.StatusInputError, r.Error
			}
			fmt.Fprintf(out, "%-19s  %-6s  %-11s  %-10s  %-10s  %-10s  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Source,
				outcome,
				truncate(r.AreaRaw, 10),
				truncate(r.PainRaw, 10),
				truncate(r.ExudateRaw, 10),
				detail,
			)
		}
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded assessment counts per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.CountByStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("count assessments: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(counts) == 0 {
			fmt.Fprintln(out, "No assessments recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-12s  %6s\n", "Status", "Count")
		fmt.Fprintln(out, strings.Repeat("─", 20))
		total := 0
		for _, st := range []string{"Good", "Warning", "Critical", store.StatusInputError} {
			fmt.Fprintf(out, "%-12s  %6d\n", st, counts[st])
			total += counts[st]
		}
		fmt.Fprintln(out, strings.Repeat("─", 20))
		fmt.Fprintf(out, "%-12s  %6d\n", "TOTAL", total)
		return nil
	},
}

// truncate keeps at most max runes of s.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
	historyCmd.Flags().String("status", "", `Filter by status (Good, Warning, Critical or "Input Error")`)
	historyCmd.Flags().String("source", "", "Filter by source (cli, batch, prompt, http)")

	historyCmd.AddCommand(historyStatsCmd)
}
