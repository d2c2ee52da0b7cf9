package domain

import (
	"context"
	"time"
)

type Checkin struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID     int        `gorm:"not null;index" json:"memberId"`
	ActivityID   int        `gorm:"not null;index" json:"activityId"`
	CheckInTime  time.Time  `gorm:"not null" json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	VisitReason  *string    `gorm:"type:varchar(500)" json:"visitReason"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Related rows attached by list enrichment; never persisted from here.
	Member   *Member   `gorm:"-" json:"Member,omitempty"`
	Activity *Activity `gorm:"-" json:"Activity,omitempty"`
}

// CreateCheckinPayload identifies the member by registration number; the
// numeric memberId is resolved at creation time, never supplied directly.
type CreateCheckinPayload struct {
	RegistrationNumber string  `json:"registrationNumber" valid:"required~Registration number is required"`
	ActivityID         int     `json:"activityId" valid:"required~Activity ID must be a positive integer"`
	CheckInTime        *string `json:"checkInTime"`
	CheckOutTime       *string `json:"checkOutTime"`
	VisitReason        *string `json:"visitReason" valid:"maxstringlength(500)~Visit reason must be less than 500 characters"`
}

type UpdateCheckinPayload struct {
	CheckOutTime *string `json:"checkOutTime"`
	VisitReason  *string `json:"visitReason"`
}

type CheckinListQuery struct {
	ListQuery
	MemberID   int
	ActivityID int
	Date       string
}

type CheckinRepo interface {
	Create(ctx context.Context, checkin *Checkin) error
	List(ctx context.Context, query *CheckinListQuery) ([]Checkin, int64, error)
	GetByID(ctx context.Context, id int) (*Checkin, error)
	Update(ctx context.Context, id int, checkOutTime *time.Time, visitReason *string) (*Checkin, error)
	Delete(ctx context.Context, id int) error
}

type CheckinUseCase interface {
	Create(ctx context.Context, payload *CreateCheckinPayload) (*Checkin, error)
	List(ctx context.Context, query *CheckinListQuery) ([]Checkin, Pagination, error)
	ListByRegistrationNumber(ctx context.Context, registrationNumber string, query *CheckinListQuery) ([]Checkin, Pagination, error)
	GetByID(ctx context.Context, id int) (*Checkin, error)
	Update(ctx context.Context, id int, payload *UpdateCheckinPayload) (*Checkin, error)
	Delete(ctx context.Context, id int) error
}
