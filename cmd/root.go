package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Terminal client for the learning platform",
	Long:  "Learnpath: sign in, register and track node progress from the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPATH_DB env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file loaded before reading the environment")

	rootCmd.Flags().String("api-url", "", "API origin (overrides LEARNPATH_API_URL env var)")
	rootCmd.Flags().String("start", "/", "Page to open first, e.g. /login or /lab?node_id=42")
	rootCmd.Flags().String("log-file", "", "Write debug logs to this file (overrides LEARNPATH_LOG_FILE env var)")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(fakeapiCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv loads the --env-file if it exists. Values already set in the
// environment win.
func loadDotEnv() error {
	path, _ := rootCmd.PersistentFlags().GetString("env-file")
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
