package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/quiz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quiz sets and their quizzes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringP("output", "o", "", "Quiz directory to list (default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	baseDir, _ := cmd.Flags().GetString("output")
	if baseDir == "" {
		baseDir = cfg.OutputDir
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "No quizzes found under %s. Run 'quizzer import' first.\n", baseDir)
			return nil
		}
		return fmt.Errorf("read quiz dir: %w", err)
	}

	out := cmd.OutOrStdout()
	found := false
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		setDir := filepath.Join(baseDir, entry.Name())
		files, err := filepath.Glob(filepath.Join(setDir, "*.json"))
		if err != nil || len(files) == 0 {
			continue
		}
		sort.Strings(files)

		found = true
		label := entry.Name()
		if cfg.IsSampleData(entry.Name()) {
			label += " (sample data)"
		}
		fmt.Fprintf(out, "%s\n", label)

		for _, path := range files {
			q, err := quiz.Load(path)
			if err != nil {
				fmt.Fprintf(out, "  %s  (unreadable: %v)\n", filepath.Base(path), err)
				continue
			}
			fmt.Fprintf(out, "  %s  %d questions  %s\n",
				q.ID, len(q.Questions), q.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if !found {
		fmt.Fprintf(out, "No quizzes found under %s. Run 'quizzer import' first.\n", baseDir)
	}
	return nil
}
