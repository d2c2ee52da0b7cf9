package usecase

import (
	"context"
	"membership/domain"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

type memberUC struct {
	memberRepo domain.MemberRepo
	TimeOut    time.Duration
}

func NewMemberUseCase(repo domain.MemberRepo, timeOut time.Duration) domain.MemberUseCase {
	return &memberUC{
		memberRepo: repo,
		TimeOut:    timeOut,
	}
}

func validateMemberDates(errs []domain.FieldError, birthDate, joinDate, occupation *string) []domain.FieldError {
	errs = domain.CheckPastDate(errs, "birthDate", birthDate)
	errs = domain.CheckDate(errs, "joinDate", joinDate)
	errs = domain.CheckEnum(errs, "occupation", occupation, domain.Occupations, "Invalid occupation")
	return errs
}

func (mUC *memberUC) Create(ctx context.Context, payload *domain.CreateMemberPayload) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if vErr := domain.ValidateStruct(payload); vErr != nil {
		errs = vErr.Errors
	}
	errs = validateMemberDates(errs, payload.BirthDate, payload.JoinDate, payload.Occupation)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	member := &domain.Member{
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		BirthDate:        payload.BirthDate,
		BirthPlace:       payload.BirthPlace,
		Address:          payload.Address,
		Occupation:       payload.Occupation,
		PhoneNumber:      payload.PhoneNumber,
		StudyOrWorkPlace: payload.StudyOrWorkPlace,
		JoinDate:         payload.JoinDate,
		ProfileImage:     payload.ProfileImage,
	}
	if err := mUC.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (mUC *memberUC) List(ctx context.Context, query *domain.MemberListQuery) ([]domain.Member, domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	members, total, err := mUC.memberRepo.List(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return members, domain.NewPagination(query.Offset, query.Limit, total), nil
}

func (mUC *memberUC) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	return mUC.memberRepo.GetByID(ctx, id)
}

func (mUC *memberUC) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	return mUC.memberRepo.GetByRegistrationNumber(ctx, registrationNumber)
}

// QRCode renders the member's registration number as a PNG for kiosk
// check-in scanners.
func (mUC *memberUC) QRCode(ctx context.Context, id int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	member, err := mUC.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(member.RegistrationNumber, qrcode.Medium, 256)
}

func (mUC *memberUC) Update(ctx context.Context, id int, payload *domain.UpdateMemberPayload) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if payload.FirstName != nil && *payload.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "First name is required"})
	}
	if payload.LastName != nil && *payload.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "Last name is required"})
	}
	errs = validateMemberDates(errs, payload.BirthDate, payload.JoinDate, payload.Occupation)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	return mUC.memberRepo.Update(ctx, id, payload)
}

func (mUC *memberUC) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	return mUC.memberRepo.Delete(ctx, id)
}
