package question

import (
	"github.com/go-playground/validator/v10"

	"github.com/shuleapp/console/core"
)

var (
	minOptionsTag  = "minoptions"
	minOptionsText = "at least 2 non-empty options are required"

	answerTag  = "answerrequired"
	answerText = "a correct answer is required"

	badLabelTag  = "badlabel"
	badLabelText = "correct answer references a missing or empty option"
)

func init() {
	core.Validate.RegisterStructValidation(submissionStructValidation, submission{})
	core.RegisterCustomTranslation(core.Validate, core.Translator, minOptionsTag, minOptionsText)
	core.RegisterCustomTranslation(core.Validate, core.Translator, answerTag, answerText)
	core.RegisterCustomTranslation(core.Validate, core.Translator, badLabelTag, badLabelText)
}

// submission is the validation view of a Draft: the full option list as laid
// out in the form, so labels can be checked against option positions.
type submission struct {
	Text          string   `json:"question_text" validate:"required"`
	Type          string   `json:"question_type" validate:"required,oneof=multiple_choice essay fill_in_blank"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Points        float64  `json:"points" validate:"gt=0"`
	Difficulty    int      `json:"difficulty" validate:"min=1,max=5"`
	WordLimit     *int     `json:"word_limit" validate:"omitempty,min=1"`
	AllowMultiple bool     `json:"allow_multiple_selection"`
}

// Validate gates submission. A failure here means no request is sent.
func (d *Draft) Validate() error {
	d.Text = core.CleanString(d.Text)
	d.Explanation = core.CleanString(d.Explanation)
	d.CorrectAnswer = JoinAnswers(SplitAnswers(d.CorrectAnswer))

	sub := submission{
		Text:          d.Text,
		Type:          d.Type,
		Options:       d.Options,
		CorrectAnswer: d.CorrectAnswer,
		Points:        d.Points,
		Difficulty:    d.Difficulty,
		WordLimit:     d.WordLimit,
		AllowMultiple: d.AllowMultiple,
	}
	if err := core.Validate.Struct(sub); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// submissionStructValidation applies the type-dependent rules:
// - multiple choice needs >= 2 non-empty options;
// - multiple choice and fill-in-blank need a non-blank correct answer;
// - selected labels must address non-empty options.
func submissionStructValidation(sl validator.StructLevel) {
	sub, ok := sl.Current().Interface().(submission)
	if !ok {
		return
	}

	switch sub.Type {
	case TypeMultipleChoice:
		var nonEmpty int
		for _, opt := range sub.Options {
			if core.CleanString(opt) != "" {
				nonEmpty++
			}
		}
		if nonEmpty < 2 {
			sl.ReportError(sub.Options, "options", "Options", minOptionsTag, "")
			return
		}
		if sub.CorrectAnswer == "" {
			sl.ReportError(sub.CorrectAnswer, "correct_answer", "CorrectAnswer", answerTag, "")
			return
		}
		for _, label := range SplitAnswers(sub.CorrectAnswer) {
			idx := LabelIndex(label, len(sub.Options))
			if idx < 0 || core.CleanString(sub.Options[idx]) == "" {
				sl.ReportError(sub.CorrectAnswer, "correct_answer", "CorrectAnswer", badLabelTag, "")
				return
			}
		}
	case TypeFillInBlank:
		if core.CleanString(sub.CorrectAnswer) == "" {
			sl.ReportError(sub.CorrectAnswer, "correct_answer", "CorrectAnswer", answerTag, "")
		}
	}
}
