package assessment

import (
	"errors"
	"time"

	"github.com/shuleapp/console/core"
)

// Assessment types
const (
	TypeQuiz     = "quiz"
	TypeExam     = "exam"
	TypePractice = "practice"
)

var ErrNotFound = errors.New("assessment not found")

// Assessment is owned by the backend; the console only holds a working copy
// during edit.
type Assessment struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Type               string    `json:"assessment_type"`
	SubjectID          string    `json:"subject_id"`
	TimeLimitMinutes   *int      `json:"time_limit_minutes,omitempty"`
	MaxAttempts        *int      `json:"max_attempts,omitempty"`
	IsPublished        bool      `json:"is_published"`
	RandomizeQuestions bool      `json:"randomize_questions"`
	ShowResults        bool      `json:"show_results"`
	ShowExplanations   bool      `json:"show_explanations"`
	QuestionCount      int       `json:"question_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Draft is the transient form state for an assessment under edit.
type Draft struct {
	ID                 string
	Title              string
	Description        string
	Type               string
	SubjectID          string
	TimeLimitMinutes   *int
	MaxAttempts        *int
	RandomizeQuestions bool
	ShowResults        bool
	ShowExplanations   bool
}

func NewDraft(subjectID string) *Draft {
	return &Draft{
		Type:        TypeQuiz,
		SubjectID:   subjectID,
		ShowResults: true,
	}
}

func DraftFrom(a Assessment) *Draft {
	return &Draft{
		ID:                 a.ID,
		Title:              a.Title,
		Description:        a.Description,
		Type:               a.Type,
		SubjectID:          a.SubjectID,
		TimeLimitMinutes:   a.TimeLimitMinutes,
		MaxAttempts:        a.MaxAttempts,
		RandomizeQuestions: a.RandomizeQuestions,
		ShowResults:        a.ShowResults,
		ShowExplanations:   a.ShowExplanations,
	}
}

// Payload is the write DTO sent on create/update.
type Payload struct {
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description,omitempty"`
	Type               string `json:"assessment_type" validate:"required,oneof=quiz exam practice"`
	SubjectID          string `json:"subject_id" validate:"required"`
	TimeLimitMinutes   *int   `json:"time_limit_minutes,omitempty" validate:"omitempty,min=1"`
	MaxAttempts        *int   `json:"max_attempts,omitempty" validate:"omitempty,min=1"`
	RandomizeQuestions bool   `json:"randomize_questions"`
	ShowResults        bool   `json:"show_results"`
	ShowExplanations   bool   `json:"show_explanations"`
}

func (d *Draft) Validate() error {
	d.Title = core.CleanString(d.Title)
	d.Description = core.CleanString(d.Description)
	return core.TranslateValidationErrors(core.Validate.Struct(d.Payload()))
}

func (d *Draft) Payload() Payload {
	return Payload{
		Title:              core.CleanString(d.Title),
		Description:        core.CleanString(d.Description),
		Type:               d.Type,
		SubjectID:          d.SubjectID,
		TimeLimitMinutes:   d.TimeLimitMinutes,
		MaxAttempts:        d.MaxAttempts,
		RandomizeQuestions: d.RandomizeQuestions,
		ShowResults:        d.ShowResults,
		ShowExplanations:   d.ShowExplanations,
	}
}
