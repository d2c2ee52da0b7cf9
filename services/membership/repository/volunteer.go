package repository

import (
	"context"
	"errors"
	"fmt"
	"membership/domain"
	"time"

	"gorm.io/gorm"
)

type volunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) domain.VolunteerRepo {
	return &volunteerRepository{
		db: db,
	}
}

var volunteerSortFields = map[string]string{
	"id":             "id",
	"memberId":       "member_id",
	"joinDate":       "join_date",
	"expirationDate": "expiration_date",
	"createdAt":      "created_at",
}

func (vr *volunteerRepository) Create(ctx context.Context, volunteer *domain.Volunteer) error {
	if err := vr.db.WithContext(ctx).Create(volunteer).Error; err != nil {
		return fmt.Errorf("could not insert volunteer: %w", err)
	}
	return nil
}

// List enriches each volunteer with its member via one batched lookup.
func (vr *volunteerRepository) List(ctx context.Context, query *domain.VolunteerListQuery) ([]domain.Volunteer, int64, error) {
	query.Normalize("asc")

	var total int64
	err := vr.db.WithContext(ctx).Model(&domain.Volunteer{}).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not count volunteers: %w", err)
	}

	var volunteers []domain.Volunteer
	err = vr.db.WithContext(ctx).
		Order(orderClause(volunteerSortFields, query.SortBy, query.Order)).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&volunteers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not list volunteers: %w", err)
	}

	if len(volunteers) > 0 {
		memberIDs := make([]int, 0, len(volunteers))
		for _, v := range volunteers {
			memberIDs = append(memberIDs, v.MemberID)
		}

		var members []domain.Member
		err = vr.db.WithContext(ctx).Where("id IN ?", memberIDs).Find(&members).Error
		if err != nil {
			return nil, 0, fmt.Errorf("could not load volunteer members: %w", err)
		}

		byID := make(map[int]*domain.Member, len(members))
		for i := range members {
			byID[members[i].ID] = &members[i]
		}
		for i := range volunteers {
			volunteers[i].Member = byID[volunteers[i].MemberID]
		}
	}

	return volunteers, total, nil
}

func (vr *volunteerRepository) GetByID(ctx context.Context, id int) (*domain.Volunteer, error) {
	var volunteer domain.Volunteer
	err := vr.db.WithContext(ctx).First(&volunteer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("could not get volunteer: %w", err)
	}
	return &volunteer, nil
}

func (vr *volunteerRepository) Update(ctx context.Context, id int, payload *domain.UpdateVolunteerPayload) (*domain.Volunteer, error) {
	volunteer, err := vr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.MemberID != nil {
		updates["member_id"] = *payload.MemberID
	}
	if payload.JoinDate != nil {
		updates["join_date"] = *payload.JoinDate
	}
	if payload.ExpirationDate != nil {
		updates["expiration_date"] = *payload.ExpirationDate
	}

	err = vr.db.WithContext(ctx).Model(volunteer).Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("could not update volunteer: %w", err)
	}

	return vr.GetByID(ctx, id)
}

func (vr *volunteerRepository) Delete(ctx context.Context, id int) error {
	result := vr.db.WithContext(ctx).Delete(&domain.Volunteer{}, id)
	if result.Error != nil {
		return fmt.Errorf("could not delete volunteer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVolunteerNotFound
	}
	return nil
}
