package assessment

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core"
)

func TestDraft_Validate(t *testing.T) {
	limit := 30
	badLimit := 0

	valid := func() *Draft {
		d := NewDraft("subj-1")
		d.Title = "Algebra midterm"
		d.Type = TypeExam
		d.TimeLimitMinutes = &limit
		return d
	}

	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{name: "valid", mutate: func(d *Draft) {}},
		{name: "missing title", mutate: func(d *Draft) { d.Title = "  " }, wantField: "title"},
		{name: "unknown type", mutate: func(d *Draft) { d.Type = "pop-quiz" }, wantField: "assessment_type"},
		{name: "missing subject", mutate: func(d *Draft) { d.SubjectID = "" }, wantField: "subject_id"},
		{name: "zero time limit", mutate: func(d *Draft) { d.TimeLimitMinutes = &badLimit }, wantField: "time_limit_minutes"},
		{name: "zero max attempts", mutate: func(d *Draft) { d.MaxAttempts = &badLimit }, wantField: "max_attempts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)

			err := d.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			for _, fld := range vErr.Fields {
				if fld.Field == tt.wantField {
					return
				}
			}
			t.Errorf("Validate() fields = %+v, want one for %q", vErr.Fields, tt.wantField)
		})
	}
}

func TestNewDraft_defaults(t *testing.T) {
	d := NewDraft("subj-1")
	if d.Type != TypeQuiz {
		t.Errorf("Type = %q, want %q", d.Type, TypeQuiz)
	}
	if !d.ShowResults {
		t.Error("ShowResults = false, want true by default")
	}
	if d.SubjectID != "subj-1" {
		t.Errorf("SubjectID = %q, want %q", d.SubjectID, "subj-1")
	}
}
