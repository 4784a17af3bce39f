package notification

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core"
)

func TestAnnouncement_Validate(t *testing.T) {
	tests := []struct {
		name      string
		ann       Announcement
		wantField string
	}{
		{
			name: "valid",
			ann:  Announcement{Title: "Maintenance", Body: "Down Sunday 02:00 UTC.", Audience: AudienceAll},
		},
		{
			name: "audience is case-insensitive",
			ann:  Announcement{Title: "Exams", Body: "Schedule posted.", Audience: " Students "},
		},
		{
			name:      "missing title",
			ann:       Announcement{Body: "b", Audience: AudienceAll},
			wantField: "title",
		},
		{
			name:      "missing body",
			ann:       Announcement{Title: "t", Audience: AudienceAll},
			wantField: "body",
		},
		{
			name:      "unknown audience",
			ann:       Announcement{Title: "t", Body: "b", Audience: "everyone"},
			wantField: "audience",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ann.Validate()
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
