package usecase

import (
	"bytes"
	"context"
	"errors"
	"membership/domain"
	"membership/services/membership/repository"
	"testing"
	"time"
)

func TestMemberUseCase_Create_Validation(t *testing.T) {
	db := newTestDB(t)
	uc := NewMemberUseCase(repository.NewMemberRepository(db), time.Second)

	_, err := uc.Create(context.Background(), &domain.CreateMemberPayload{})
	errs := fieldErrors(t, err)
	if !hasFieldError(errs, "firstName") || !hasFieldError(errs, "lastName") {
		t.Errorf("Expected firstName and lastName errors, got %v", errs)
	}

	futureBirth := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	badJoin := "15-01-2024"
	badOccupation := "astronaut"
	_, err = uc.Create(context.Background(), &domain.CreateMemberPayload{
		FirstName:  "Amina",
		LastName:   "Diallo",
		BirthDate:  &futureBirth,
		JoinDate:   &badJoin,
		Occupation: &badOccupation,
	})
	errs = fieldErrors(t, err)
	for _, field := range []string{"birthDate", "joinDate", "occupation"} {
		if !hasFieldError(errs, field) {
			t.Errorf("Expected a field error for %s, got %v", field, errs)
		}
	}
}

func TestMemberUseCase_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	uc := NewMemberUseCase(repository.NewMemberRepository(db), time.Second)

	occupation := "student"
	birthDate := "2000-03-15"
	member, err := uc.Create(context.Background(), &domain.CreateMemberPayload{
		FirstName:  "Amina",
		LastName:   "Diallo",
		BirthDate:  &birthDate,
		Occupation: &occupation,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if member.RegistrationNumber == "" {
		t.Fatal("Expected a registration number")
	}

	found, err := uc.GetByRegistrationNumber(context.Background(), member.RegistrationNumber)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found.ID != member.ID {
		t.Errorf("Expected member %d, got %d", member.ID, found.ID)
	}
}

func TestMemberUseCase_Update_RejectsEmptyNames(t *testing.T) {
	db := newTestDB(t)
	uc := NewMemberUseCase(repository.NewMemberRepository(db), time.Second)

	member, err := uc.Create(context.Background(), &domain.CreateMemberPayload{FirstName: "Amina", LastName: "Diallo"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	empty := ""
	_, err = uc.Update(context.Background(), member.ID, &domain.UpdateMemberPayload{FirstName: &empty})
	errs := fieldErrors(t, err)
	if !hasFieldError(errs, "firstName") {
		t.Errorf("Expected firstName error, got %v", errs)
	}

	// A nil firstName is an untouched field, not an error.
	last := "Toure"
	updated, err := uc.Update(context.Background(), member.ID, &domain.UpdateMemberPayload{LastName: &last})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.LastName != "Toure" || updated.FirstName != "Amina" {
		t.Errorf("Unexpected names after update: %s %s", updated.FirstName, updated.LastName)
	}
}

func TestMemberUseCase_QRCode(t *testing.T) {
	db := newTestDB(t)
	uc := NewMemberUseCase(repository.NewMemberRepository(db), time.Second)

	member, err := uc.Create(context.Background(), &domain.CreateMemberPayload{FirstName: "Karim", LastName: "Benali"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	png, err := uc.QRCode(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("Expected PNG output")
	}

	_, err = uc.QRCode(context.Background(), 404)
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}
}

func TestMemberUseCase_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	uc := NewMemberUseCase(repository.NewMemberRepository(db), time.Second)

	for i := 0; i < 3; i++ {
		if _, err := uc.Create(context.Background(), &domain.CreateMemberPayload{FirstName: "Member", LastName: "Test"}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	members, pagination, err := uc.List(context.Background(), &domain.MemberListQuery{
		ListQuery: domain.ListQuery{Limit: 2},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(members) != 2 {
		t.Errorf("Expected 2 members, got %d", len(members))
	}
	if pagination.Total != 3 || !pagination.HasMore {
		t.Errorf("Unexpected pagination: %+v", pagination)
	}
}
