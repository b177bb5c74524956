// Package tui is the interactive quiz runner: it walks the user through
// a quiz one question at a time, grades each answer as it is submitted,
// and shows a summary when the run completes. All grading goes through
// the score package; the TUI owns only presentation.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/score"
)

type phase int

const (
	phaseIntro phase = iota
	phaseAsk
	phaseFeedback
	phaseSummary
)

// ErrAborted is returned when the user quits before finishing the quiz.
var ErrAborted = fmt.Errorf("quiz aborted")

// Model is the Bubble Tea model for one quiz run.
type Model struct {
	quiz   *quiz.Quiz
	scorer *score.Scorer
	input  textinput.Model

	phase       phase
	lastCorrect bool
	lastAnswer  string // correct answer shown on incorrect feedback
	result      *quiz.RunResult
	err         error
	aborted     bool

	width  int
	height int
}

// newModel builds the model for q with a ready scorer.
func newModel(q *quiz.Quiz, s *score.Scorer) Model {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.CharLimit = 200

	return Model{
		quiz:   q,
		scorer: s,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}

		switch m.phase {
		case phaseIntro:
			if msg.String() == "enter" {
				m.phase = phaseAsk
				return m, m.input.Focus()
			}
			return m, nil

		case phaseAsk:
			if msg.String() == "enter" {
				return m.submit()
			}

		case phaseFeedback:
			return m.advance()

		case phaseSummary:
			if msg.String() == "enter" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.phase == phaseAsk {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit grades the current input and moves to the feedback phase.
func (m Model) submit() (tea.Model, tea.Cmd) {
	q := m.scorer.Question()
	if q == nil {
		return m, nil
	}

	correct, err := m.scorer.Submit(strings.TrimSpace(m.input.Value()))
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.lastCorrect = correct
	m.lastAnswer = q.DisplayAnswer
	m.input.SetValue("")
	m.phase = phaseFeedback
	return m, nil
}

// advance leaves the feedback phase: on to the next question, or to the
// summary when the run is complete.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.scorer.State() == score.Completed {
		result, err := m.scorer.Result()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.result = &result
		m.phase = phaseSummary
		return m, nil
	}
	m.phase = phaseAsk
	return m, m.input.Focus()
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseIntro:
		content = m.viewIntro()
	case phaseAsk:
		content = m.viewQuestion(false)
	case phaseFeedback:
		content = m.viewQuestion(true)
	case phaseSummary:
		content = m.viewSummary()
	}

	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content))
	return v
}

func (m Model) viewIntro() string {
	lines := []string{
		titleStyle.Render("Quiz: " + m.quiz.ID),
		"",
		bodyStyle.Render(fmt.Sprintf("%d questions", len(m.quiz.Questions))),
		dimStyle.Render("Separate multiple answers with commas (e.g. 'a, b, c')."),
		dimStyle.Render("Answers are case-insensitive; whitespace is ignored."),
		"",
		hintStyle.Render("press Enter to start, Ctrl+C to quit"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewQuestion(withFeedback bool) string {
	q := m.scorer.Question()
	num := m.scorer.Answered()
	if withFeedback {
		// The graded question was the previous one.
		num--
	}

	var b strings.Builder
	header := fmt.Sprintf("Question %d/%d", num+1, len(m.quiz.Questions))
	b.WriteString(dimStyle.Render(header) + "\n\n")

	prompt := ""
	if withFeedback {
		prompt = m.quiz.Questions[num].Prompt
	} else if q != nil {
		prompt = q.Prompt
	}
	b.WriteString(questionCard.Render(bodyStyle.Render(prompt)) + "\n\n")

	if withFeedback {
		if m.lastCorrect {
			b.WriteString(correctStyle.Render("✓ Correct!") + "\n")
		} else {
			b.WriteString(incorrectStyle.Render("✗ Incorrect") + "\n")
			b.WriteString(bodyStyle.Render("Correct answer: "+m.lastAnswer) + "\n")
		}
		b.WriteString("\n" + hintStyle.Render("press any key to continue"))
	} else {
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(hintStyle.Render("Enter to submit"))
	}
	return b.String()
}

func (m Model) viewSummary() string {
	r := m.result
	if r == nil {
		return ""
	}

	status := incorrectStyle.Render("FAIL")
	if r.Passed {
		status = correctStyle.Render("PASS")
	}

	lines := []string{
		titleStyle.Render("Quiz complete"),
		"",
		bodyStyle.Render(fmt.Sprintf("Score: %d/%d (%.1f%%)", r.CorrectCount, r.TotalQuestions, r.ScorePercentage)),
		bodyStyle.Render("Result: ") + status,
		dimStyle.Render(tierMessage(score.TierFor(r.ScorePercentage))),
	}

	if len(r.Failures) > 0 {
		lines = append(lines, "", warnStyle.Render(fmt.Sprintf("Missed %d question(s). See the report for details.", len(r.Failures))))
	}

	lines = append(lines, "", hintStyle.Render("press Enter to finish"))
	return strings.Join(lines, "\n")
}

// tierMessage maps a score tier to its summary line.
func tierMessage(t score.Tier) string {
	switch t {
	case score.TierPerfect:
		return "Perfect score! All answers correct."
	case score.TierExcellent:
		return "Excellent work!"
	case score.TierGood:
		return "Good job."
	case score.TierClose:
		return "Close. A little more practice."
	default:
		return "Keep studying and try again."
	}
}

// Run walks the user through q interactively and returns the completed
// run's result. Quitting early returns an error and no result.
func Run(q *quiz.Quiz, threshold float64) (*quiz.RunResult, error) {
	scorer, err := score.New(q, threshold)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(newModel(q, scorer))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run quiz ui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.aborted || m.result == nil {
		return nil, ErrAborted
	}
	return m.result, nil
}
