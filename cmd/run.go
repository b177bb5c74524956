package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/store"
	"github.com/abhisek/quizzer/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <quiz.json>",
	Short: "Take a quiz interactively and record the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Float64("threshold", 0, "Pass threshold percentage (default from config)")
	runCmd.Flags().Bool("no-report", false, "Skip writing the text report file")
	runCmd.Flags().Bool("no-history", false, "Skip recording the run in the history database")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold <= 0 {
		threshold = cfg.PassThreshold
	}
	noReport, _ := cmd.Flags().GetBool("no-report")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	q, err := quiz.Load(args[0])
	if err != nil {
		return err
	}

	result, err := tui.Run(q, threshold)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Quiz aborted; nothing recorded.")
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Report())

	if !noReport {
		if err := os.MkdirAll(cfg.ReportsDir, 0o755); err != nil {
			return fmt.Errorf("create reports dir: %w", err)
		}
		path := filepath.Join(cfg.ReportsDir, result.QuizID+"_report.txt")
		if err := result.SaveReport(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", path)
	}

	if !noHistory {
		if err := recordRun(cmd, *result, cfg.MaxStoredRuns); err != nil {
			// A history failure should not discard an otherwise
			// completed run.
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not record run history: %v\n", err)
		}
	}
	return nil
}

func recordRun(cmd *cobra.Command, result quiz.RunResult, keep int) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.SaveRun(cmd.Context(), result, keep)
	return err
}
