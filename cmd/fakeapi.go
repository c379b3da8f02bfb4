package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/fakeapi"
)

var fakeapiCmd = &cobra.Command{
	Use:   "fakeapi",
	Short: "Serve a local stand-in for the platform API",
	Long: fmt.Sprintf("Serve the login, logout, register and mark-known endpoints locally.\n"+
		"A test account is seeded: %s / %s.", fakeapi.SeedEmail, fakeapi.SeedPassword),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := fakeapi.ConfigFromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			cfg.Verbose = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		srv, err := fakeapi.NewServer(cfg, api.ConfigFromEnv().Endpoints)
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.ListenAndServe(ctx)
	},
}

func init() {
	fakeapiCmd.Flags().String("addr", "", "Listen address (overrides LEARNPATH_FAKEAPI_ADDR env var)")
	fakeapiCmd.Flags().BoolP("verbose", "v", false, "Log every request")
}
