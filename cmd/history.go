package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 10, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quiz runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPLETED\tQUIZ\tSCORE\tRESULT\tTIME")
	for _, r := range records {
		status := "fail"
		if r.Passed {
			status = "pass"
		}
		fmt.Fprintf(w, "%s\t%s\t%d/%d (%.1f%%)\t%s\t%.0fs\n",
			r.CompletedAt.Local().Format("2006-01-02 15:04"),
			r.QuizID, r.CorrectAnswers, r.TotalQuestions,
			r.ScorePercentage, status, r.TimeSpent)
	}
	return w.Flush()
}
