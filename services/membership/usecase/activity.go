package usecase

import (
	"context"
	"membership/domain"
	"regexp"
	"time"
)

var timeOfDay = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

type activityUC struct {
	activityRepo domain.ActivityRepo
	TimeOut      time.Duration
}

func NewActivityUseCase(repo domain.ActivityRepo, timeOut time.Duration) domain.ActivityUseCase {
	return &activityUC{
		activityRepo: repo,
		TimeOut:      timeOut,
	}
}

func checkTimeOfDay(errs []domain.FieldError, field string, value *string) []domain.FieldError {
	if value == nil {
		return errs
	}
	if !timeOfDay.MatchString(*value) {
		return append(errs, domain.FieldError{Field: field, Message: "Time must be in HH:MM:SS format"})
	}
	return errs
}

func validateActivitySchedule(errs []domain.FieldError, dayOfWeek, startDate, endDate *string) []domain.FieldError {
	errs = domain.CheckEnum(errs, "dayOfWeek", dayOfWeek, domain.DaysOfWeek, "Invalid day of week")
	errs = domain.CheckDate(errs, "startDate", startDate)
	errs = domain.CheckDate(errs, "endDate", endDate)
	return errs
}

func (aUC *activityUC) Create(ctx context.Context, payload *domain.CreateActivityPayload, createdBy int) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if vErr := domain.ValidateStruct(payload); vErr != nil {
		errs = vErr.Errors
	}
	errs = checkTimeOfDay(errs, "startTime", &payload.StartTime)
	errs = checkTimeOfDay(errs, "endTime", &payload.EndTime)
	errs = validateActivitySchedule(errs, payload.DayOfWeek, payload.StartDate, payload.EndDate)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	isPeriodic := true
	if payload.IsPeriodic != nil {
		isPeriodic = *payload.IsPeriodic
	}

	activity := &domain.Activity{
		Name:        payload.Name,
		Description: payload.Description,
		Image:       payload.Image,
		Emoji:       payload.Emoji,
		IsPeriodic:  isPeriodic,
		DayOfWeek:   payload.DayOfWeek,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		CreatedBy:   createdBy,
	}
	if err := aUC.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (aUC *activityUC) List(ctx context.Context, query *domain.ActivityListQuery) ([]domain.Activity, domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	activities, total, err := aUC.activityRepo.List(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return activities, domain.NewPagination(query.Offset, query.Limit, total), nil
}

func (aUC *activityUC) GetByID(ctx context.Context, id int) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.activityRepo.GetByID(ctx, id)
}

func (aUC *activityUC) Update(ctx context.Context, id int, payload *domain.UpdateActivityPayload) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if payload.Name != nil && *payload.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Activity name is required"})
	}
	errs = checkTimeOfDay(errs, "startTime", payload.StartTime)
	errs = checkTimeOfDay(errs, "endTime", payload.EndTime)
	errs = validateActivitySchedule(errs, payload.DayOfWeek, payload.StartDate, payload.EndDate)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	return aUC.activityRepo.Update(ctx, id, payload)
}

func (aUC *activityUC) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.activityRepo.Delete(ctx, id)
}
