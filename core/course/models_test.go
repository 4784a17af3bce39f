package course

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core"
)

func wantFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	for _, fld := range vErr.Fields {
		if fld.Field == field {
			return
		}
	}
	t.Errorf("fields = %+v, want one for %q", vErr.Fields, field)
}

func TestPayload_Validate(t *testing.T) {
	p := &Payload{Title: "  Intro to Physics  ", SubjectID: "subj-1"}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if p.Title != "Intro to Physics" {
		t.Errorf("Title = %q, want cleaned", p.Title)
	}

	wantFieldError(t, (&Payload{SubjectID: "subj-1"}).Validate(), "title")
	wantFieldError(t, (&Payload{Title: "Physics"}).Validate(), "subject_id")
}

func TestLecturePayload_Validate(t *testing.T) {
	dur := 45
	p := &LecturePayload{Title: "Kinematics", VideoURL: "https://cdn.test.cd/v/1.mp4", DurationMinutes: &dur}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	wantFieldError(t, (&LecturePayload{}).Validate(), "title")
	wantFieldError(t, (&LecturePayload{Title: "Kinematics", VideoURL: "not a url"}).Validate(), "video_url")

	zero := 0
	wantFieldError(t, (&LecturePayload{Title: "Kinematics", DurationMinutes: &zero}).Validate(), "duration_minutes")
}
