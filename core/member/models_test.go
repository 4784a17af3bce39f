package member

import (
	"reflect"
	"testing"
	"time"
)

func TestParseMember(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		want    Member
		wantErr bool
	}{
		{
			name: "modern payload",
			raw: map[string]interface{}{
				"id":         "usr-1",
				"email":      "awe@test.cd",
				"full_name":  "Awe",
				"role":       "instructor",
				"is_active":  true,
				"created_at": "2024-03-01T10:00:00Z",
			},
			want: Member{
				ID:        "usr-1",
				Email:     "awe@test.cd",
				Name:      "Awe",
				Role:      RoleInstructor,
				IsActive:  true,
				CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "numeric id and epoch timestamps",
			raw: map[string]interface{}{
				"id":         float64(42),
				"email":      "num@test.cd",
				"name":       "Num",
				"role":       "student",
				"created_at": float64(1700000000),
			},
			want: Member{
				ID:        "42",
				Email:     "num@test.cd",
				Name:      "Num",
				Role:      RoleStudent,
				IsActive:  true,
				CreatedAt: time.Unix(1700000000, 0).UTC(),
			},
		},
		{
			name: "role from roles list",
			raw: map[string]interface{}{
				"id":    "usr-2",
				"roles": []interface{}{"ADMIN", "instructor"},
			},
			want: Member{ID: "usr-2", Role: RoleAdmin, IsActive: true},
		},
		{
			name: "legacy is_admin flag",
			raw: map[string]interface{}{
				"id":       "usr-3",
				"is_admin": true,
			},
			want: Member{ID: "usr-3", Role: RoleAdmin, IsActive: true},
		},
		{
			name: "legacy is_instructor flag",
			raw: map[string]interface{}{
				"id":            "usr-4",
				"is_instructor": true,
			},
			want: Member{ID: "usr-4", Role: RoleInstructor, IsActive: true},
		},
		{
			name: "no role fields defaults to student",
			raw:  map[string]interface{}{"id": "usr-5"},
			want: Member{ID: "usr-5", Role: RoleStudent, IsActive: true},
		},
		{
			name:    "unknown role is an error",
			raw:     map[string]interface{}{"id": "usr-6", "role": "superuser"},
			wantErr: true,
		},
		{
			name:    "missing id is an error",
			raw:     map[string]interface{}{"email": "lost@test.cd"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMember(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMember() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMember() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQueryFilter_Values(t *testing.T) {
	active := true
	qf := QueryFilter{Search: "  Awe ", Role: "Instructor", IsActive: &active}
	qf.Clean()

	v := qf.Values()
	if got := v.Get("search"); got != "Awe" {
		t.Errorf("search = %q, want %q", got, "Awe")
	}
	if got := v.Get("role"); got != "instructor" {
		t.Errorf("role = %q, want %q", got, "instructor")
	}
	if got := v.Get("is_active"); got != "true" {
		t.Errorf("is_active = %q, want %q", got, "true")
	}

	empty := QueryFilter{}
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for zero filter")
	}
	if len(empty.Values()) != 0 {
		t.Errorf("Values() = %v, want empty", empty.Values())
	}
}

func TestOrdering(t *testing.T) {
	ords := ParseOrdering(" -created_at, email ,,")
	want := []Ordering{
		{Field: "created_at", Ascending: false},
		{Field: "email", Ascending: true},
	}
	if !reflect.DeepEqual(ords, want) {
		t.Fatalf("ParseOrdering() = %+v, want %+v", ords, want)
	}
	if got := EncodeOrdering(ords); got != "-created_at,email" {
		t.Errorf("EncodeOrdering() = %q, want %q", got, "-created_at,email")
	}
}

func TestMaxRolePriority(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{name: "admin wins", roles: []string{"student", "admin"}, want: 30},
		{name: "instructor", roles: []string{"instructor"}, want: 20},
		{name: "unknown roles count zero", roles: []string{"superuser"}, want: 0},
		{name: "empty", roles: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxRolePriority(tt.roles); got != tt.want {
				t.Errorf("MaxRolePriority(%v) = %d, want %d", tt.roles, got, tt.want)
			}
		})
	}
}
