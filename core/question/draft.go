package question

import (
	"errors"
	"strings"

	"github.com/shuleapp/console/core"
)

const (
	// MaxOptions is enforced by the form layer, not the label codec.
	MaxOptions     = 10
	defaultOptions = 4
)

var (
	errTooManyOptions = errors.New("a question cannot have more than 10 options")
	errMinOptions     = errors.New("a multiple choice question needs at least 2 options")
	errNotMultiple    = errors.New("multiple selection is not enabled")
)

// Draft is the transient, unpersisted form state for one question under
// edit. All transitions keep CorrectAnswer consistent with the current
// Options and selection mode; Validate gates submission.
type Draft struct {
	ID            string // empty until persisted
	AssessmentID  string
	Text          string
	Type          string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Points        float64
	Difficulty    int
	Tags          []string
	AllowMultiple bool
	WordLimit     *int
	InputHint     string
}

// NewDraft returns the form state a fresh question starts from.
func NewDraft(assessmentID string) *Draft {
	return &Draft{
		AssessmentID: assessmentID,
		Type:         TypeMultipleChoice,
		Options:      make([]string, defaultOptions),
		Points:       1,
		Difficulty:   3,
	}
}

// DraftFrom seeds an edit form from an existing question.
func DraftFrom(q Question) *Draft {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	tags := make([]string, len(q.Tags))
	copy(tags, q.Tags)
	return &Draft{
		ID:            q.ID,
		AssessmentID:  q.AssessmentID,
		Text:          q.Text,
		Type:          q.Type,
		Options:       opts,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Points:        q.Points,
		Difficulty:    q.Difficulty,
		Tags:          tags,
		AllowMultiple: q.AllowMultiple,
		WordLimit:     q.WordLimit,
		InputHint:     q.InputHint,
	}
}

// SetType switches the question type. Entering multiple choice resets the
// options to 4 empty entries; leaving it clears them. The correct answer is
// cleared either way since labels and free text do not survive a type change.
func (d *Draft) SetType(t string) {
	if t == d.Type {
		return
	}
	d.Type = t
	d.CorrectAnswer = ""
	if t == TypeMultipleChoice {
		d.Options = make([]string, defaultOptions)
		d.WordLimit = nil
		d.InputHint = ""
	} else {
		d.Options = nil
		d.AllowMultiple = false
	}
}

// SetAllowMultiple toggles between single and multiple correct answers.
// Single to multiple starts from an empty selection; multiple to single
// keeps only the first selected label.
func (d *Draft) SetAllowMultiple(allow bool) {
	if allow == d.AllowMultiple {
		return
	}
	d.AllowMultiple = allow
	if allow {
		d.CorrectAnswer = ""
		return
	}
	tokens := SplitAnswers(d.CorrectAnswer)
	if len(tokens) > 0 {
		d.CorrectAnswer = tokens[0]
	} else {
		d.CorrectAnswer = ""
	}
}

func (d *Draft) AddOption() error {
	if len(d.Options) >= MaxOptions {
		return errTooManyOptions
	}
	d.Options = append(d.Options, "")
	return nil
}

func (d *Draft) SetOption(i int, text string) {
	if i < 0 || i >= len(d.Options) {
		return
	}
	d.Options[i] = text
}

// RemoveOption drops the option at index i and purges its label from the
// selected answer set so the correct answer never references an absent label.
func (d *Draft) RemoveOption(i int) error {
	if len(d.Options) <= 2 {
		return errMinOptions
	}
	if i < 0 || i >= len(d.Options) {
		return errors.New("no such option")
	}
	removed := Label(i)
	d.Options = append(d.Options[:i], d.Options[i+1:]...)

	tokens := SplitAnswers(d.CorrectAnswer)
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok != removed {
			kept = append(kept, tok)
		}
	}
	d.CorrectAnswer = JoinAnswers(kept)
	return nil
}

// ToggleLabel adds the label to the answer set if absent and removes it if
// present. Only meaningful in multiple selection mode.
func (d *Draft) ToggleLabel(label string) error {
	if !d.AllowMultiple {
		return errNotMultiple
	}
	label = core.CleanString(label)
	tokens := SplitAnswers(d.CorrectAnswer)
	for i, tok := range tokens {
		if tok == label {
			d.CorrectAnswer = JoinAnswers(append(tokens[:i], tokens[i+1:]...))
			return nil
		}
	}
	d.CorrectAnswer = JoinAnswers(append(tokens, label))
	return nil
}

// SelectLabel replaces the answer in single selection mode.
func (d *Draft) SelectLabel(label string) {
	d.CorrectAnswer = core.CleanString(label)
}

// SelectedLabels reports the current answer set membership.
func (d *Draft) SelectedLabels() []string {
	return SplitAnswers(d.CorrectAnswer)
}

func (d *Draft) HasLabel(label string) bool {
	for _, tok := range d.SelectedLabels() {
		if tok == label {
			return true
		}
	}
	return false
}

// Payload serializes the draft for a create or update call. Call Validate first.
func (d *Draft) Payload() Payload {
	p := Payload{
		Text:          core.CleanString(d.Text),
		Type:          d.Type,
		CorrectAnswer: core.CleanString(d.CorrectAnswer),
		Explanation:   core.CleanString(d.Explanation),
		Points:        d.Points,
		Difficulty:    d.Difficulty,
		Tags:          d.Tags,
		AllowMultiple: d.AllowMultiple,
		WordLimit:     d.WordLimit,
		InputHint:     d.InputHint,
	}
	if d.Type == TypeMultipleChoice {
		p.Options = d.nonEmptyOptions()
	}
	return p
}

func (d *Draft) nonEmptyOptions() []string {
	opts := make([]string, 0, len(d.Options))
	for _, opt := range d.Options {
		if core.CleanString(opt) != "" {
			opts = append(opts, opt)
		}
	}
	return opts
}

// SplitAnswers parses a comma-joined label set into trimmed, de-duplicated
// tokens, preserving order. Raw string matching is never used for membership.
func SplitAnswers(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		tok := strings.TrimSpace(part)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}

// JoinAnswers is the inverse of SplitAnswers.
func JoinAnswers(tokens []string) string {
	return strings.Join(tokens, ", ")
}
