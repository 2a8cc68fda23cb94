package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests, usage and cost",
}

// withEvents opens the database for the duration of fn.
func withEvents(cmd *cobra.Command, fn func(events store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(s.EventRepo())
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("─", n))
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		if purpose != "" {
			if _, err := llm.ParsePurpose(purpose); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()

		return withEvents(cmd, func(events store.EventRepo) error {
			recs, err := events.QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			shown := 0
			for _, e := range recs {
				if shown == 0 {
					fmt.Fprintf(out, "%-5s  %-19s  %-8s  %-11s  %-24s  %6s  %6s  %7s  %s\n",
						"ID", "Timestamp", "Provider", "Purpose", "Model", "In", "Out", "Ms", "OK")
					rule(out, 104)
				}
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				fmt.Fprintf(out, "%-5d  %-19s  %-8s  %-11s  %-24s  %6d  %6d  %7d  %s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Provider,
					e.Purpose,
					truncate(e.Model, 24),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					ok,
				)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, "No LLM requests recorded.")
			}
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		out := cmd.OutOrStdout()

		return withEvents(cmd, func(events store.EventRepo) error {
			e, err := events.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			fields := [][2]string{
				{"ID", strconv.Itoa(e.ID)},
				{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
				{"Provider", e.Provider},
				{"Model", e.Model},
				{"Purpose", e.Purpose},
				{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
				{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
				{"Success", strconv.FormatBool(e.Success)},
			}
			if e.ErrorMessage != "" {
				fields = append(fields, [2]string{"Error", e.ErrorMessage})
			}
			for _, f := range fields {
				fmt.Fprintf(out, "%-10s %s\n", f[0]+":", f[1])
			}

			for _, section := range [][2]string{{"PROMPT", e.RequestBody}, {"REPLY", e.ResponseBody}} {
				fmt.Fprintln(out)
				rule(out, 60)
				fmt.Fprintln(out, section[0])
				rule(out, 60)
				if section[1] == "" {
					fmt.Fprintln(out, "(not captured)")
				} else {
					fmt.Fprintln(out, section[1])
				}
			}
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		return withEvents(cmd, func(events store.EventRepo) error {
			ctx := cmd.Context()
			stats, err := events.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(stats) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			fmt.Fprintln(out, "Usage by Purpose")
			rule(out, 80)
			fmt.Fprintf(out, "%-12s  %8s  %8s  %10s  %10s  %10s  %8s\n",
				"Purpose", "Requests", "Failed", "Input", "Output", "Total", "Avg Ms")
			rule(out, 80)

			var total store.LLMUsageStats
			for _, st := range stats {
				fmt.Fprintf(out, "%-12s  %8d  %8d  %10d  %10d  %10d  %8.0f\n",
					st.Purpose, st.Requests, st.Failures, st.InputTokens, st.OutputTokens,
					st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
				total.Requests += st.Requests
				total.Failures += st.Failures
				total.InputTokens += st.InputTokens
				total.OutputTokens += st.OutputTokens
			}
			rule(out, 80)
			fmt.Fprintf(out, "%-12s  %8d  %8d  %10d  %10d  %10d\n",
				"TOTAL", total.Requests, total.Failures, total.InputTokens, total.OutputTokens,
				total.InputTokens+total.OutputTokens)

			models, err := events.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(models) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Estimated Cost (USD)")
			rule(out, 80)
			fmt.Fprintf(out, "%-32s  %8s  %10s  %10s  %10s\n", "Model", "Requests", "Input", "Output", "Cost")
			rule(out, 80)

			var totalCost float64
			var unpriced []string
			for _, mu := range models {
				cost := "?"
				if mc := llm.LookupCost(mu.Model); mc != nil {
					c := mc.Cost(mu.InputTokens, mu.OutputTokens)
					totalCost += c
					cost = formatCost(c)
				} else {
					unpriced = append(unpriced, mu.Model)
				}
				fmt.Fprintf(out, "%-32s  %8d  %10d  %10d  %10s\n",
					truncate(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, cost)
			}
			rule(out, 80)
			label := "TOTAL"
			if len(unpriced) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Fprintf(out, "%-32s  %8s  %10s  %10s  %10s\n", label, "", "", "", formatCost(totalCost))
			if len(unpriced) > 0 {
				fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
			}
			return nil
		})
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (summary, concepts, flashcards, ask)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
