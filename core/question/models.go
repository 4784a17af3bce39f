package question

import (
	"errors"
	"time"
)

// Question types
const (
	TypeMultipleChoice = "multiple_choice"
	TypeEssay          = "essay"
	TypeFillInBlank    = "fill_in_blank"
)

var (
	Types = []string{TypeMultipleChoice, TypeEssay, TypeFillInBlank}

	// errors
	ErrNotFound = errors.New("question not found")
)

// Question mirrors the backend's question resource. The console never owns
// one long-term: it is fetched, copied into a Draft for editing, submitted
// and discarded.
type Question struct {
	ID            string    `json:"id"`
	AssessmentID  string    `json:"assessment_id"`
	Text          string    `json:"question_text"`
	Type          string    `json:"question_type"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	Points        float64   `json:"points"`
	Difficulty    int       `json:"difficulty"`
	Tags          []string  `json:"tags,omitempty"`
	AllowMultiple bool      `json:"allow_multiple_selection"`
	WordLimit     *int      `json:"word_limit,omitempty"`
	InputHint     string    `json:"input_type,omitempty"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Payload is the write DTO sent on create/update, built from a validated Draft.
type Payload struct {
	Text          string   `json:"question_text"`
	Type          string   `json:"question_type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Points        float64  `json:"points"`
	Difficulty    int      `json:"difficulty"`
	Tags          []string `json:"tags,omitempty"`
	AllowMultiple bool     `json:"allow_multiple_selection"`
	WordLimit     *int     `json:"word_limit,omitempty"`
	InputHint     string   `json:"input_type,omitempty"`
}
