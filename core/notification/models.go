package notification

import (
	"errors"
	"time"

	"github.com/shuleapp/console/core"
)

// Audiences an announcement can target.
const (
	AudienceAll         = "all"
	AudienceInstructors = "instructors"
	AudienceStudents    = "students"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Kind      string    `json:"kind"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Announcement is the draft of a platform-wide notice. EmailCopy asks for a
// copy to be delivered by email on top of the in-app notification.
type Announcement struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Audience  string `json:"audience" validate:"required,oneof=all instructors students"`
	EmailCopy bool   `json:"email_copy"`
}

func (a *Announcement) Validate() error {
	a.Title = core.CleanString(a.Title)
	a.Body = core.CleanString(a.Body)
	a.Audience = core.CleanString(a.Audience, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(a))
}
