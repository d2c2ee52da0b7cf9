package domain

import (
	"context"
	"time"
)

type Volunteer struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID       int       `gorm:"not null;index" json:"memberId"`
	JoinDate       *string   `gorm:"type:varchar(10)" json:"joinDate"`
	ExpirationDate *string   `gorm:"type:varchar(10)" json:"expirationDate"`
	CreatedBy      int       `gorm:"not null" json:"createdBy"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Member *Member `gorm:"-" json:"Member,omitempty"`
}

type CreateVolunteerPayload struct {
	MemberID       int     `json:"memberId" valid:"required~Member ID is required"`
	JoinDate       *string `json:"joinDate"`
	ExpirationDate *string `json:"expirationDate"`
}

type UpdateVolunteerPayload struct {
	MemberID       *int    `json:"memberId"`
	JoinDate       *string `json:"joinDate"`
	ExpirationDate *string `json:"expirationDate"`
}

type VolunteerListQuery struct {
	ListQuery
}

type VolunteerRepo interface {
	Create(ctx context.Context, volunteer *Volunteer) error
	List(ctx context.Context, query *VolunteerListQuery) ([]Volunteer, int64, error)
	GetByID(ctx context.Context, id int) (*Volunteer, error)
	Update(ctx context.Context, id int, payload *UpdateVolunteerPayload) (*Volunteer, error)
	Delete(ctx context.Context, id int) error
}

type VolunteerUseCase interface {
	Create(ctx context.Context, payload *CreateVolunteerPayload, createdBy int) (*Volunteer, error)
	List(ctx context.Context, query *VolunteerListQuery) ([]Volunteer, Pagination, error)
	GetByID(ctx context.Context, id int) (*Volunteer, error)
	Update(ctx context.Context, id int, payload *UpdateVolunteerPayload) (*Volunteer, error)
	Delete(ctx context.Context, id int) error
}
