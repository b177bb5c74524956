package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizzer",
	Short: "Turn CSV question banks into quizzes and grade your runs",
	Long: "Quizzer converts CSV files of question/answer pairs into quiz JSON files,\n" +
		"runs them interactively in the terminal, and keeps a local history of results.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides QUIZZER_DB env var)")
	rootCmd.PersistentFlags().String("config", config.DefaultFileName, "Path to YAML config file")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZZER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the config file named by --config; a missing file
// yields the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
