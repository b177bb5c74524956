package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/assemble"
	"github.com/abhisek/quizzer/internal/distribute"
	"github.com/abhisek/quizzer/internal/ingest"
	"github.com/abhisek/quizzer/internal/quiz"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Convert a CSV question bank into quiz JSON files",
	Long: "Import reads a CSV of question/answer pairs and writes one or more\n" +
		"quiz JSON files. By default every question lands in exactly one quiz;\n" +
		"--allow-duplicates restores independent sampling per quiz instead.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// importMeta is written next to the generated quizzes so the list and
// run commands can point at the most recent import.
type importMeta struct {
	SourceFile    string    `json:"source_file"`
	ImportedAt    time.Time `json:"imported_at"`
	QuestionCount int       `json:"question_count"`
	QuizIDs       []string  `json:"quiz_ids"`
	OutputDir     string    `json:"output_dir"`
}

func init() {
	importCmd.Flags().StringP("output", "o", "", "Output directory (default from config)")
	importCmd.Flags().IntP("number", "n", 0, "Number of quizzes to generate (default: computed from pool size)")
	importCmd.Flags().IntP("max-questions", "m", 0, "Maximum questions per quiz (default from config)")
	importCmd.Flags().String("prefix", "", "Quiz ID prefix (default from config)")
	importCmd.Flags().Bool("allow-duplicates", false, "Sample each quiz independently; questions may repeat across quizzes")
	importCmd.Flags().Int64("seed", 0, "Random seed for shuffling (0 uses the current time)")
	importCmd.Flags().Bool("force", false, "Overwrite existing quiz files in the output directory")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sourcePath := args[0]
	outputBase, _ := cmd.Flags().GetString("output")
	if outputBase == "" {
		outputBase = cfg.OutputDir
	}
	maxQuestions, _ := cmd.Flags().GetInt("max-questions")
	if maxQuestions <= 0 {
		maxQuestions = cfg.MaxQuestions
	}
	prefix, _ := cmd.Flags().GetString("prefix")
	if prefix == "" {
		prefix = cfg.IDPrefix
	}
	number, _ := cmd.Flags().GetInt("number")
	allowDuplicates, _ := cmd.Flags().GetBool("allow-duplicates")
	seed, _ := cmd.Flags().GetInt64("seed")
	force, _ := cmd.Flags().GetBool("force")

	pairs, warnings, err := ingest.Ingest(sourcePath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no valid questions found in %s", sourcePath)
	}

	var plan distribute.Plan
	if allowDuplicates {
		count := number
		if count <= 0 {
			count = cfg.QuizCount
		}
		plan, err = distribute.Duplicates(len(pairs), maxQuestions, count)
	} else {
		plan, err = distribute.Partition(len(pairs), maxQuestions, number)
	}
	if err != nil {
		return err
	}
	for _, w := range plan.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pool := make([]quiz.RawPair, len(pairs))
	copy(pool, pairs)

	var units [][]quiz.RawPair
	if allowDuplicates {
		units = distribute.Sample(pool, plan, rng)
	} else {
		distribute.Shuffle(pool, rng)
		units, err = distribute.Cut(pool, plan)
		if err != nil {
			return err
		}
	}

	setName := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	outputDir := filepath.Join(outputBase, setName)
	if err := prepareOutputDir(outputDir, force); err != nil {
		return err
	}

	now := time.Now()
	meta := importMeta{
		SourceFile:    filepath.Base(sourcePath),
		ImportedAt:    now,
		QuestionCount: len(pairs),
		OutputDir:     outputDir,
	}

	for i, unit := range units {
		seq := 0
		if len(units) > 1 {
			seq = i + 1
		}
		id := assemble.QuizID(prefix, now, seq)
		q := assemble.Assemble(unit, id, filepath.Base(sourcePath), now)

		path := filepath.Join(outputDir, id+".json")
		if err := q.Save(path); err != nil {
			return err
		}
		meta.QuizIDs = append(meta.QuizIDs, id)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d questions)\n", path, len(q.Questions))
	}

	if err := writeImportMeta(outputBase, meta); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d questions into %d quiz(es) under %s\n",
		len(pairs), len(units), outputDir)
	return nil
}

// prepareOutputDir creates dir and, with force set, clears any quiz
// files left over from a previous import. Without force an existing
// quiz file is an error.
func prepareOutputDir(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	existing, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("scan output dir: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}
	if !force {
		return fmt.Errorf("%s already contains %d quiz file(s); use --force to overwrite", dir, len(existing))
	}
	for _, path := range existing {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old quiz file: %w", err)
		}
	}
	return nil
}

// writeImportMeta records the most recent import under the output base
// directory.
func writeImportMeta(baseDir string, meta importMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal import metadata: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(baseDir, "last_import.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write import metadata: %w", err)
	}
	return nil
}
