package usecase

import (
	"context"
	"membership/domain"
	"time"
)

type volunteerUC struct {
	volunteerRepo domain.VolunteerRepo
	memberRepo    domain.MemberRepo
	TimeOut       time.Duration
}

func NewVolunteerUseCase(repo domain.VolunteerRepo, memberRepo domain.MemberRepo, timeOut time.Duration) domain.VolunteerUseCase {
	return &volunteerUC{
		volunteerRepo: repo,
		memberRepo:    memberRepo,
		TimeOut:       timeOut,
	}
}

func (vUC *volunteerUC) Create(ctx context.Context, payload *domain.CreateVolunteerPayload, createdBy int) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if vErr := domain.ValidateStruct(payload); vErr != nil {
		errs = vErr.Errors
	}
	errs = domain.CheckDate(errs, "joinDate", payload.JoinDate)
	errs = domain.CheckDate(errs, "expirationDate", payload.ExpirationDate)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	if _, err := vUC.memberRepo.GetByID(ctx, payload.MemberID); err != nil {
		return nil, err
	}

	volunteer := &domain.Volunteer{
		MemberID:       payload.MemberID,
		JoinDate:       payload.JoinDate,
		ExpirationDate: payload.ExpirationDate,
		CreatedBy:      createdBy,
	}
	if err := vUC.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	return volunteer, nil
}

func (vUC *volunteerUC) List(ctx context.Context, query *domain.VolunteerListQuery) ([]domain.Volunteer, domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	volunteers, total, err := vUC.volunteerRepo.List(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return volunteers, domain.NewPagination(query.Offset, query.Limit, total), nil
}

func (vUC *volunteerUC) GetByID(ctx context.Context, id int) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	return vUC.volunteerRepo.GetByID(ctx, id)
}

func (vUC *volunteerUC) Update(ctx context.Context, id int, payload *domain.UpdateVolunteerPayload) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	errs = domain.CheckDate(errs, "joinDate", payload.JoinDate)
	errs = domain.CheckDate(errs, "expirationDate", payload.ExpirationDate)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	if payload.MemberID != nil {
		if _, err := vUC.memberRepo.GetByID(ctx, *payload.MemberID); err != nil {
			return nil, err
		}
	}

	return vUC.volunteerRepo.Update(ctx, id, payload)
}

func (vUC *volunteerUC) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	return vUC.volunteerRepo.Delete(ctx, id)
}
