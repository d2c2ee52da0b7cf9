package repository

import (
	"context"
	"errors"
	"fmt"
	"membership/domain"
	"time"

	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) domain.ActivityRepo {
	return &activityRepository{
		db: db,
	}
}

var activitySortFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
}

func (ar *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if err := ar.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("could not insert activity: %w", err)
	}
	return nil
}

func (ar *activityRepository) List(ctx context.Context, query *domain.ActivityListQuery) ([]domain.Activity, int64, error) {
	query.Normalize("asc")

	var total int64
	err := ar.db.WithContext(ctx).Model(&domain.Activity{}).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not count activities: %w", err)
	}

	var activities []domain.Activity
	err = ar.db.WithContext(ctx).
		Order(orderClause(activitySortFields, query.SortBy, query.Order)).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&activities).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not list activities: %w", err)
	}

	return activities, total, nil
}

func (ar *activityRepository) GetByID(ctx context.Context, id int) (*domain.Activity, error) {
	var activity domain.Activity
	err := ar.db.WithContext(ctx).First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("could not get activity: %w", err)
	}
	return &activity, nil
}

func (ar *activityRepository) Update(ctx context.Context, id int, payload *domain.UpdateActivityPayload) (*domain.Activity, error) {
	activity, err := ar.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Image != nil {
		updates["image"] = *payload.Image
	}
	if payload.Emoji != nil {
		updates["emoji"] = *payload.Emoji
	}
	if payload.IsPeriodic != nil {
		updates["is_periodic"] = *payload.IsPeriodic
	}
	if payload.DayOfWeek != nil {
		updates["day_of_week"] = *payload.DayOfWeek
	}
	if payload.StartTime != nil {
		updates["start_time"] = *payload.StartTime
	}
	if payload.EndTime != nil {
		updates["end_time"] = *payload.EndTime
	}
	if payload.StartDate != nil {
		updates["start_date"] = *payload.StartDate
	}
	if payload.EndDate != nil {
		updates["end_date"] = *payload.EndDate
	}

	err = ar.db.WithContext(ctx).Model(activity).Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("could not update activity: %w", err)
	}

	return ar.GetByID(ctx, id)
}

// Delete refuses to remove an activity while check-ins reference it.
func (ar *activityRepository) Delete(ctx context.Context, id int) error {
	var dependents int64
	err := ar.db.WithContext(ctx).
		Model(&domain.Checkin{}).
		Where("activity_id = ?", id).
		Count(&dependents).Error
	if err != nil {
		return fmt.Errorf("could not check for activity check-ins: %w", err)
	}
	if dependents > 0 {
		return domain.ErrActivityHasCheckins
	}

	result := ar.db.WithContext(ctx).Delete(&domain.Activity{}, id)
	if result.Error != nil {
		return fmt.Errorf("could not delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}
