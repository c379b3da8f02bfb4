package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect recorded API requests",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent API requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		operation, _ := cmd.Flags().GetString("operation")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Operation: operation}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}

		events, err := s.RequestEventRepo().QueryRequests(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No API requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Operation", "Path", "Status", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.FailureKind
				if e.ErrorMessage != "" {
					ok += ": " + e.ErrorMessage
				}
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Operation,
				truncate(e.Method+" "+e.Path, 28),
				e.Status,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var eventsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show request counts and latency per operation",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		usage, err := s.RequestEventRepo().UsageByOperation(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(usage) == 0 {
			fmt.Println("No API requests recorded yet.")
			return nil
		}

		fmt.Println("Usage by Operation")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-16s  %6s  %8s  %8s  %8s\n",
			"Operation", "Calls", "Failures", "Rate", "Avg Ms")
		fmt.Println(strings.Repeat("─", 56))

		var totalCalls, totalFailures int
		for _, u := range usage {
			fmt.Printf("%-16s  %6d  %8d  %8s  %8d\n",
				u.Operation, u.Calls, u.Failures, failureRate(u.Failures, u.Calls), u.AvgLatencyMs)
			totalCalls += u.Calls
			totalFailures += u.Failures
		}

		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-16s  %6d  %8d  %8s\n",
			"TOTAL", totalCalls, totalFailures, failureRate(totalFailures, totalCalls))
		return nil
	},
}

func failureRate(failures, calls int) string {
	if calls == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", float64(failures)*100/float64(calls))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func init() {
	eventsListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	eventsListCmd.Flags().String("operation", "", "Only show this operation (login, logout, register, mark-known)")
	eventsListCmd.Flags().Duration("since", 0, "Only show events newer than this, e.g. 24h")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsStatsCmd)
}
