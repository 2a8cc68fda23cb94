package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/insightmentor/insightmentor/internal/config"
	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/render"
	"github.com/insightmentor/insightmentor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "insightmentor",
	Short: "Virtual study buddy",
	Long: "Insight Mentor turns study material into notes, key concepts, flashcards,\n" +
		"a personalized study plan and a quick quiz using OpenAI or Gemini.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INSIGHT_DB env var)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider to prefer: openai or gemini (overrides INSIGHT_LLM_PROVIDER)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional env file to load")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		k, err := llm.ParseKind(p)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LLM.DefaultProvider = k
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, or the default XDG
// path when none is set, and makes sure its directory exists.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath == "" {
		return store.DefaultDBPath()
	}
	return cfg.DBPath, store.EnsureDir(cfg.DBPath)
}

// newPrinter writes to stdout, styled only when stdout is a terminal.
func newPrinter(cmd *cobra.Command) *render.Printer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	color := !noColor && os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())
	return render.NewPrinter(cmd.OutOrStdout(), color)
}
