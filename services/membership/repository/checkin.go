package repository

import (
	"context"
	"errors"
	"fmt"
	"membership/domain"
	"time"

	"gorm.io/gorm"
)

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) domain.CheckinRepo {
	return &checkinRepository{
		db: db,
	}
}

var checkinSortFields = map[string]string{
	"id":          "id",
	"checkInTime": "check_in_time",
	"createdAt":   "created_at",
}

func (cr *checkinRepository) Create(ctx context.Context, checkin *domain.Checkin) error {
	if err := cr.db.WithContext(ctx).Create(checkin).Error; err != nil {
		return fmt.Errorf("could not insert check-in: %w", err)
	}
	return nil
}

// List returns check-ins newest first by default, each enriched with its
// member. The enrichment is a single batched lookup, not a per-row query;
// the output shape (nested Member, nil when missing) is the contract.
func (cr *checkinRepository) List(ctx context.Context, query *domain.CheckinListQuery) ([]domain.Checkin, int64, error) {
	query.Normalize("desc")

	scope := func() *gorm.DB {
		tx := cr.db.WithContext(ctx).Model(&domain.Checkin{})
		if query.MemberID > 0 {
			tx = tx.Where("member_id = ?", query.MemberID)
		}
		if query.ActivityID > 0 {
			tx = tx.Where("activity_id = ?", query.ActivityID)
		}
		if query.Date != "" {
			if day, err := time.Parse("2006-01-02", query.Date); err == nil {
				tx = tx.Where("check_in_time >= ? AND check_in_time < ?", day, day.AddDate(0, 0, 1))
			}
		}
		return tx
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("could not count check-ins: %w", err)
	}

	var checkins []domain.Checkin
	err := scope().
		Order(orderClause(checkinSortFields, query.SortBy, query.Order)).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&checkins).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not list check-ins: %w", err)
	}

	if err := cr.attachMembers(ctx, checkins); err != nil {
		return nil, 0, err
	}

	return checkins, total, nil
}

func (cr *checkinRepository) attachMembers(ctx context.Context, checkins []domain.Checkin) error {
	if len(checkins) == 0 {
		return nil
	}

	memberIDs := make([]int, 0, len(checkins))
	for _, c := range checkins {
		memberIDs = append(memberIDs, c.MemberID)
	}

	var members []domain.Member
	err := cr.db.WithContext(ctx).Where("id IN ?", memberIDs).Find(&members).Error
	if err != nil {
		return fmt.Errorf("could not load check-in members: %w", err)
	}

	byID := make(map[int]*domain.Member, len(members))
	for i := range members {
		byID[members[i].ID] = &members[i]
	}
	for i := range checkins {
		checkins[i].Member = byID[checkins[i].MemberID]
	}

	return nil
}

func (cr *checkinRepository) GetByID(ctx context.Context, id int) (*domain.Checkin, error) {
	var checkin domain.Checkin
	err := cr.db.WithContext(ctx).First(&checkin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCheckinNotFound
		}
		return nil, fmt.Errorf("could not get check-in: %w", err)
	}
	return &checkin, nil
}

func (cr *checkinRepository) Update(ctx context.Context, id int, checkOutTime *time.Time, visitReason *string) (*domain.Checkin, error) {
	if _, err := cr.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if checkOutTime != nil {
		updates["check_out_time"] = *checkOutTime
	}
	if visitReason != nil {
		updates["visit_reason"] = *visitReason
	}

	err := cr.db.WithContext(ctx).
		Model(&domain.Checkin{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("could not update check-in: %w", err)
	}

	return cr.GetByID(ctx, id)
}

func (cr *checkinRepository) Delete(ctx context.Context, id int) error {
	result := cr.db.WithContext(ctx).Delete(&domain.Checkin{}, id)
	if result.Error != nil {
		return fmt.Errorf("could not delete check-in: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCheckinNotFound
	}
	return nil
}
