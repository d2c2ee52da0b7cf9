package usecase

import (
	"context"
	"errors"
	"membership/domain"
	"membership/services/membership/repository"
	"testing"
	"time"
)

type checkinFixture struct {
	uc       domain.CheckinUseCase
	member   *domain.Member
	activity *domain.Activity
}

func newCheckinFixture(t *testing.T) *checkinFixture {
	t.Helper()
	db := newTestDB(t)

	memberRepo := repository.NewMemberRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)

	member := &domain.Member{FirstName: "Amina", LastName: "Diallo"}
	if err := memberRepo.Create(context.Background(), member); err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}

	activity := &domain.Activity{Name: "Arabic class", StartTime: "18:00:00", EndTime: "19:30:00", IsPeriodic: true, CreatedBy: 1}
	if err := activityRepo.Create(context.Background(), activity); err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}

	return &checkinFixture{
		uc:       NewCheckinUseCase(checkinRepo, memberRepo, activityRepo, time.Second),
		member:   member,
		activity: activity,
	}
}

func TestCheckinUseCase_Create_DefaultsCheckInTime(t *testing.T) {
	f := newCheckinFixture(t)

	before := time.Now()
	checkin, err := f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if checkin.MemberID != f.member.ID {
		t.Errorf("Expected member %d, got %d", f.member.ID, checkin.MemberID)
	}
	if checkin.CheckInTime.Before(before) || checkin.CheckInTime.After(time.Now()) {
		t.Errorf("Expected check-in time to default to now, got %v", checkin.CheckInTime)
	}
	if checkin.CheckOutTime != nil {
		t.Error("Expected no check-out time")
	}
}

func TestCheckinUseCase_Create_ExplicitTimes(t *testing.T) {
	f := newCheckinFixture(t)

	in := "2026-05-10T18:00:00Z"
	out := "2026-05-10T19:30:00Z"
	reason := "Weekly class"
	checkin, err := f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
		CheckInTime:        &in,
		CheckOutTime:       &out,
		VisitReason:        &reason,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !checkin.CheckInTime.Equal(time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected check-in time %v", checkin.CheckInTime)
	}
	if checkin.CheckOutTime == nil || !checkin.CheckOutTime.After(checkin.CheckInTime) {
		t.Errorf("Unexpected check-out time %v", checkin.CheckOutTime)
	}
}

func TestCheckinUseCase_Create_Failures(t *testing.T) {
	f := newCheckinFixture(t)

	// Unknown registration number is a member not-found.
	_, err := f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: "ACMJN-999999",
		ActivityID:         f.activity.ID,
	})
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}

	// Unknown activity is an activity not-found, distinct from the above.
	_, err = f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         404,
	})
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Errorf("Expected ErrActivityNotFound, got %v", err)
	}

	_, err = f.uc.Create(context.Background(), &domain.CreateCheckinPayload{})
	errs := fieldErrors(t, err)
	if !hasFieldError(errs, "registrationNumber") {
		t.Errorf("Expected registrationNumber error, got %v", errs)
	}

	bad := "10/05/2026 18:00"
	_, err = f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
		CheckInTime:        &bad,
	})
	errs = fieldErrors(t, err)
	if !hasFieldError(errs, "checkInTime") {
		t.Errorf("Expected checkInTime error, got %v", errs)
	}
}

func TestCheckinUseCase_Create_CheckOutBeforeCheckIn(t *testing.T) {
	f := newCheckinFixture(t)

	in := "2026-05-10T19:00:00Z"
	out := "2026-05-10T18:00:00Z"
	_, err := f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
		CheckInTime:        &in,
		CheckOutTime:       &out,
	})
	errs := fieldErrors(t, err)
	if !hasFieldError(errs, "checkOutTime") {
		t.Errorf("Expected checkOutTime error, got %v", errs)
	}

	// Check-out in the past also fails against a defaulted check-in of now.
	_, err = f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
		CheckOutTime:       &out,
	})
	errs = fieldErrors(t, err)
	if !hasFieldError(errs, "checkOutTime") {
		t.Errorf("Expected checkOutTime error, got %v", errs)
	}
}

func TestCheckinUseCase_Update_ValidatesAgainstStoredCheckIn(t *testing.T) {
	f := newCheckinFixture(t)

	in := "2026-05-10T18:00:00Z"
	checkin, err := f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
		CheckInTime:        &in,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	early := "2026-05-10T17:00:00Z"
	_, err = f.uc.Update(context.Background(), checkin.ID, &domain.UpdateCheckinPayload{CheckOutTime: &early})
	errs := fieldErrors(t, err)
	if !hasFieldError(errs, "checkOutTime") {
		t.Errorf("Expected checkOutTime error, got %v", errs)
	}

	out := "2026-05-10T19:30:00Z"
	updated, err := f.uc.Update(context.Background(), checkin.ID, &domain.UpdateCheckinPayload{CheckOutTime: &out})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.CheckOutTime == nil {
		t.Fatal("Expected a check-out time")
	}

	_, err = f.uc.Update(context.Background(), 404, &domain.UpdateCheckinPayload{CheckOutTime: &out})
	if !errors.Is(err, domain.ErrCheckinNotFound) {
		t.Errorf("Expected ErrCheckinNotFound, got %v", err)
	}
}

func TestCheckinUseCase_ListByRegistrationNumber_HonorsTimeout(t *testing.T) {
	db := newTestDB(t)
	memberRepo := repository.NewMemberRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)

	member := &domain.Member{FirstName: "Amina", LastName: "Diallo"}
	if err := memberRepo.Create(context.Background(), member); err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}

	// An already-expired deadline must stop the member lookup too, not just
	// the listing that follows it.
	uc := NewCheckinUseCase(checkinRepo, memberRepo, activityRepo, -time.Second)
	_, _, err := uc.ListByRegistrationNumber(context.Background(), member.RegistrationNumber, &domain.CheckinListQuery{})
	if err == nil {
		t.Fatal("Expected an error from an expired deadline")
	}
}

func TestCheckinUseCase_List_DateValidation(t *testing.T) {
	f := newCheckinFixture(t)

	_, _, err := f.uc.List(context.Background(), &domain.CheckinListQuery{Date: "05-10-2026"})
	errs := fieldErrors(t, err)
	if !hasFieldError(errs, "date") {
		t.Errorf("Expected date error, got %v", errs)
	}
}

func TestCheckinUseCase_ListByRegistrationNumber(t *testing.T) {
	f := newCheckinFixture(t)

	if _, err := f.uc.Create(context.Background(), &domain.CreateCheckinPayload{
		RegistrationNumber: f.member.RegistrationNumber,
		ActivityID:         f.activity.ID,
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	checkins, pagination, err := f.uc.ListByRegistrationNumber(context.Background(), f.member.RegistrationNumber, &domain.CheckinListQuery{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pagination.Total != 1 || len(checkins) != 1 {
		t.Fatalf("Expected one check-in, got total %d len %d", pagination.Total, len(checkins))
	}
	if checkins[0].MemberID != f.member.ID {
		t.Errorf("Expected member %d, got %d", f.member.ID, checkins[0].MemberID)
	}

	// An unknown number is a not-found, never an empty list.
	_, _, err = f.uc.ListByRegistrationNumber(context.Background(), "ACMJN-999999", &domain.CheckinListQuery{})
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}
}
