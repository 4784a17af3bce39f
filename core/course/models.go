package course

import (
	"errors"
	"time"

	"github.com/shuleapp/console/core"
)

var (
	ErrNotFound        = errors.New("course not found")
	ErrLectureNotFound = errors.New("lecture not found")
)

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	SubjectID    string    `json:"subject_id"`
	InstructorID string    `json:"instructor_id"`
	IsPublished  bool      `json:"is_published"`
	LectureCount int       `json:"lecture_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Lecture struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"course_id"`
	Title           string    `json:"title"`
	Content         string    `json:"content,omitempty"`
	VideoURL        string    `json:"video_url,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Position        int       `json:"position"`
	IsPreview       bool      `json:"is_preview"`
	CreatedAt       time.Time `json:"created_at"`
}

type Payload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	SubjectID   string `json:"subject_id" validate:"required"`
}

func (p *Payload) Validate() error {
	p.Title = core.CleanString(p.Title)
	p.Description = core.CleanString(p.Description)
	return core.TranslateValidationErrors(core.Validate.Struct(p))
}

type LecturePayload struct {
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content,omitempty"`
	VideoURL        string `json:"video_url,omitempty" validate:"omitempty,url"`
	DurationMinutes *int   `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	IsPreview       bool   `json:"is_preview"`
}

func (p *LecturePayload) Validate() error {
	p.Title = core.CleanString(p.Title)
	p.Content = core.CleanString(p.Content)
	p.VideoURL = core.CleanString(p.VideoURL)
	return core.TranslateValidationErrors(core.Validate.Struct(p))
}
