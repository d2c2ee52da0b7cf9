package usecase

import (
	"context"
	"membership/domain"
	"time"
)

type checkinUC struct {
	checkinRepo  domain.CheckinRepo
	memberRepo   domain.MemberRepo
	activityRepo domain.ActivityRepo
	TimeOut      time.Duration
}

func NewCheckinUseCase(repo domain.CheckinRepo, memberRepo domain.MemberRepo, activityRepo domain.ActivityRepo, timeOut time.Duration) domain.CheckinUseCase {
	return &checkinUC{
		checkinRepo:  repo,
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
		TimeOut:      timeOut,
	}
}

func parseTimestamp(errs []domain.FieldError, field string, value *string) (*time.Time, []domain.FieldError) {
	if value == nil {
		return nil, errs
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, append(errs, domain.FieldError{Field: field, Message: "Invalid ISO 8601 datetime format"})
	}
	return &parsed, errs
}

// Create resolves the registration number to a member and verifies the
// activity exists before inserting. A missing check-in time defaults to now;
// a check-out time must be strictly after the check-in time.
func (cUC *checkinUC) Create(ctx context.Context, payload *domain.CreateCheckinPayload) (*domain.Checkin, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if vErr := domain.ValidateStruct(payload); vErr != nil {
		errs = vErr.Errors
	}
	if payload.ActivityID < 0 {
		errs = append(errs, domain.FieldError{Field: "activityId", Message: "Activity ID must be a positive integer"})
	}

	checkInTime, errs := parseTimestamp(errs, "checkInTime", payload.CheckInTime)
	checkOutTime, errs := parseTimestamp(errs, "checkOutTime", payload.CheckOutTime)
	if checkInTime != nil && checkOutTime != nil && !checkOutTime.After(*checkInTime) {
		errs = append(errs, domain.FieldError{Field: "checkOutTime", Message: "Check-out time must be after check-in time"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	member, err := cUC.memberRepo.GetByRegistrationNumber(ctx, payload.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if _, err := cUC.activityRepo.GetByID(ctx, payload.ActivityID); err != nil {
		return nil, err
	}

	checkin := &domain.Checkin{
		MemberID:     member.ID,
		ActivityID:   payload.ActivityID,
		CheckInTime:  time.Now(),
		CheckOutTime: checkOutTime,
		VisitReason:  payload.VisitReason,
	}
	if checkInTime != nil {
		checkin.CheckInTime = *checkInTime
	}
	if checkin.CheckOutTime != nil && !checkin.CheckOutTime.After(checkin.CheckInTime) {
		return nil, domain.NewValidationError("checkOutTime", "Check-out time must be after check-in time")
	}

	if err := cUC.checkinRepo.Create(ctx, checkin); err != nil {
		return nil, err
	}

	return checkin, nil
}

func (cUC *checkinUC) List(ctx context.Context, query *domain.CheckinListQuery) ([]domain.Checkin, domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	if query.Date != "" {
		if _, err := time.Parse("2006-01-02", query.Date); err != nil {
			return nil, domain.Pagination{}, domain.NewValidationError("date", "Date must be in YYYY-MM-DD format")
		}
	}

	checkins, total, err := cUC.checkinRepo.List(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return checkins, domain.NewPagination(query.Offset, query.Limit, total), nil
}

// ListByRegistrationNumber scopes the listing to the member the registration
// number resolves to; an unknown number is a not-found, not an empty list.
func (cUC *checkinUC) ListByRegistrationNumber(ctx context.Context, registrationNumber string, query *domain.CheckinListQuery) ([]domain.Checkin, domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	member, err := cUC.memberRepo.GetByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	query.MemberID = member.ID
	return cUC.List(ctx, query)
}

func (cUC *checkinUC) GetByID(ctx context.Context, id int) (*domain.Checkin, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	return cUC.checkinRepo.GetByID(ctx, id)
}

func (cUC *checkinUC) Update(ctx context.Context, id int, payload *domain.UpdateCheckinPayload) (*domain.Checkin, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	checkOutTime, errs := parseTimestamp(errs, "checkOutTime", payload.CheckOutTime)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	existing, err := cUC.checkinRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if checkOutTime != nil && !checkOutTime.After(existing.CheckInTime) {
		return nil, domain.NewValidationError("checkOutTime", "Check-out time must be after check-in time")
	}

	return cUC.checkinRepo.Update(ctx, id, checkOutTime, payload.VisitReason)
}

func (cUC *checkinUC) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	return cUC.checkinRepo.Delete(ctx, id)
}
