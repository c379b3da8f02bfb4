package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/app"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logPath, _ := cmd.Flags().GetString("log-file")
	if logPath == "" {
		logPath = os.Getenv("LEARNPATH_LOG_FILE")
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "learnpath")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := api.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sess := session.New()
	httpClient, err := api.NewHTTPClient(cfg, api.WithTokenSource(sess))
	if err != nil {
		return fmt.Errorf("build API client: %w", err)
	}
	client := api.WithLogging(httpClient, st.RequestEventRepo())

	start, _ := cmd.Flags().GetString("start")
	log.Printf("starting at %s against %s", start, cfg.BaseURL)

	return app.Run(app.Options{
		Service:    api.NewService(client, cfg.Endpoints),
		Session:    sess,
		Translator: i18n.FromEnv(),
		Start:      router.ParseLocation(start),
	})
}
