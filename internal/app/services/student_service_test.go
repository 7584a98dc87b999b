package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
)

func validCreateStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:     "Jerry",
		LastName:      "Jerome",
		CarpoolNumber: 3,
	}
}

func TestCreateStudentGeneratesIdentifier(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())

	student, err := svc.CreateStudent(context.Background(), validCreateStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	if student.StudentID != "jjerome3" {
		t.Errorf("StudentID = %q, want jjerome3", student.StudentID)
	}
	if !student.IsEnabled {
		t.Error("new student should be enabled")
	}
}

func TestCreateStudentIdentifierCollisionAppendsCounter(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	ctx := context.Background()

	// Siblings sharing a carpool number produce the same base
	// identifier; the counter disambiguates.
	want := []string{"jjerome3", "jjerome31", "jjerome32"}
	for _, expected := range want {
		student, err := svc.CreateStudent(ctx, validCreateStudentRequest())
		if err != nil {
			t.Fatalf("CreateStudent returned error: %v", err)
		}
		if student.StudentID != expected {
			t.Errorf("StudentID = %q, want %q", student.StudentID, expected)
		}
	}
}

func TestCreateStudentRejectsBadInput(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.CreateStudentRequest)
	}{
		{"blank first name", func(r *dto.CreateStudentRequest) { r.FirstName = " " }},
		{"blank last name", func(r *dto.CreateStudentRequest) { r.LastName = "" }},
		{"zero carpool number", func(r *dto.CreateStudentRequest) { r.CarpoolNumber = 0 }},
		{"negative carpool number", func(r *dto.CreateStudentRequest) { r.CarpoolNumber = -2 }},
		{"bad email", func(r *dto.CreateStudentRequest) { r.PrimaryEmail = "not-an-email" }},
		{"letterless name", func(r *dto.CreateStudentRequest) { r.FirstName = "123"; r.LastName = "456" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateStudentRequest()
			tt.mutate(req)
			if _, err := svc.CreateStudent(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestCreateStudentEmailOptional(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())

	req := validCreateStudentRequest()
	req.PrimaryEmail = "Parent.Jerome@Example.com"
	student, err := svc.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}
	if student.PrimaryEmail != "parent.jerome@example.com" {
		t.Errorf("PrimaryEmail = %q, want lowercased", student.PrimaryEmail)
	}
}

func TestUpdateStudentPartial(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	carpool := 7
	updated, err := svc.UpdateStudent(ctx, created.StudentID, &dto.UpdateStudentRequest{
		CarpoolNumber: &carpool,
		IsEnabled:     boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateStudent returned error: %v", err)
	}

	if updated.CarpoolNumber != 7 {
		t.Errorf("CarpoolNumber = %d, want 7", updated.CarpoolNumber)
	}
	if updated.IsEnabled {
		t.Error("IsEnabled should be false")
	}
	// The identifier keeps the carpool number it was minted with.
	if updated.StudentID != "jjerome3" {
		t.Errorf("StudentID = %q, want jjerome3", updated.StudentID)
	}
	if updated.FirstName != "Jerry" {
		t.Errorf("FirstName = %q", updated.FirstName)
	}
}

func TestUpdateStudentRejectsBadValues(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	zero := 0
	if _, err := svc.UpdateStudent(ctx, created.StudentID, &dto.UpdateStudentRequest{CarpoolNumber: &zero}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("zero carpool error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.UpdateStudent(ctx, "ghost1", &dto.UpdateStudentRequest{FirstName: strPtr("X")}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("unknown student error = %v, want ErrStudentNotFound", err)
	}
}

func TestRemoveStudents(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	ctx := context.Background()

	ids := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		created, err := svc.CreateStudent(ctx, validCreateStudentRequest())
		if err != nil {
			t.Fatalf("CreateStudent returned error: %v", err)
		}
		ids = append(ids, created.StudentID)
	}

	removed, err := svc.RemoveStudents(ctx, append(ids, "ghost1"))
	if err != nil {
		t.Fatalf("RemoveStudents returned error: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	if _, err := svc.RemoveStudents(ctx, []string{"ghost1"}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("no-match error = %v, want ErrStudentNotFound", err)
	}
	if _, err := svc.RemoveStudents(ctx, nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty list error = %v, want ErrValidationFailed", err)
	}
}

func TestRemoveStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	if err := svc.RemoveStudent(ctx, created.StudentID); err != nil {
		t.Fatalf("RemoveStudent returned error: %v", err)
	}
	if err := svc.RemoveStudent(ctx, created.StudentID); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("second remove error = %v, want ErrStudentNotFound", err)
	}
}
