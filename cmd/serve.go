package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/woundcheck/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessor over HTTP",
	Long: `Serve the assessor over HTTP until interrupted.

  POST /api/v1/assess               {"area": .., "pain": .., "exudate": ..}
  GET  /api/v1/assessments          recorded assessments (with --record)
  GET  /api/v1/assessments/stats    counts per status (with --record)
  GET  /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		opts := server.Options{Logger: os.Stderr}

		if cfg.Record {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			opts.Store = st
		}

		fmt.Fprintf(os.Stderr, "Listening on http://%s\n", cfg.Addr)
		return server.New(opts).ListenAndServe(cmd.Context(), cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides WOUNDCHECK_ADDR, default localhost:8080)")
}
