package repository

import (
	"context"
	"errors"
	"fmt"
	"membership/domain"
	"time"

	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) domain.MemberRepo {
	return &memberRepository{
		db: db,
	}
}

var memberSortFields = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"joinDate":  "join_date",
}

// Create inserts the member and then writes the registration number derived
// from the assigned id. Both writes run in one transaction so no reader sees
// a member with an empty registration number.
func (mr *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	return mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("could not insert member: %w", err)
		}

		registrationNumber := domain.FormatRegistrationNumber(member.ID)
		err := tx.Model(&domain.Member{}).
			Where("id = ?", member.ID).
			Update("registration_number", registrationNumber).Error
		if err != nil {
			return fmt.Errorf("could not assign registration number: %w", err)
		}

		member.RegistrationNumber = registrationNumber
		return nil
	})
}

func (mr *memberRepository) List(ctx context.Context, query *domain.MemberListQuery) ([]domain.Member, int64, error) {
	query.Normalize("asc")

	scope := func() *gorm.DB {
		tx := mr.db.WithContext(ctx).Model(&domain.Member{})
		if query.Search != "" {
			pattern := "%" + query.Search + "%"
			tx = tx.Where(
				"first_name LIKE ? OR last_name LIKE ? OR registration_number LIKE ?",
				pattern, pattern, pattern,
			)
		}
		return tx
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("could not count members: %w", err)
	}

	var members []domain.Member
	err := scope().
		Order(orderClause(memberSortFields, query.SortBy, query.Order)).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not list members: %w", err)
	}

	return members, total, nil
}

func (mr *memberRepository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	var member domain.Member
	err := mr.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("could not get member: %w", err)
	}
	return &member, nil
}

func (mr *memberRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*domain.Member, error) {
	var member domain.Member
	err := mr.db.WithContext(ctx).
		Where("registration_number = ?", registrationNumber).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("could not get member: %w", err)
	}
	return &member, nil
}

func (mr *memberRepository) Update(ctx context.Context, id int, payload *domain.UpdateMemberPayload) (*domain.Member, error) {
	member, err := mr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.FirstName != nil {
		updates["first_name"] = *payload.FirstName
	}
	if payload.LastName != nil {
		updates["last_name"] = *payload.LastName
	}
	if payload.BirthDate != nil {
		updates["birth_date"] = *payload.BirthDate
	}
	if payload.BirthPlace != nil {
		updates["birth_place"] = *payload.BirthPlace
	}
	if payload.Address != nil {
		updates["address"] = *payload.Address
	}
	if payload.Occupation != nil {
		updates["occupation"] = *payload.Occupation
	}
	if payload.PhoneNumber != nil {
		updates["phone_number"] = *payload.PhoneNumber
	}
	if payload.StudyOrWorkPlace != nil {
		updates["study_or_work_place"] = *payload.StudyOrWorkPlace
	}
	if payload.JoinDate != nil {
		updates["join_date"] = *payload.JoinDate
	}
	if payload.ProfileImage != nil {
		updates["profile_image"] = *payload.ProfileImage
	}

	err = mr.db.WithContext(ctx).Model(member).Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("could not update member: %w", err)
	}

	return mr.GetByID(ctx, id)
}

// Delete refuses to remove a member while check-ins reference it.
func (mr *memberRepository) Delete(ctx context.Context, id int) error {
	var dependents int64
	err := mr.db.WithContext(ctx).
		Model(&domain.Checkin{}).
		Where("member_id = ?", id).
		Count(&dependents).Error
	if err != nil {
		return fmt.Errorf("could not check for member check-ins: %w", err)
	}
	if dependents > 0 {
		return domain.ErrMemberHasCheckins
	}

	result := mr.db.WithContext(ctx).Delete(&domain.Member{}, id)
	if result.Error != nil {
		return fmt.Errorf("could not delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}
