package domain

import (
	"context"
	"time"
)

var DaysOfWeek = []string{"tuesday", "wednesday", "thursday", "friday", "saturday"}

type Activity struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       *string   `gorm:"type:varchar(500)" json:"image"`
	Emoji       *string   `gorm:"type:varchar(10)" json:"emoji"`
	// No column default here: gorm would drop an explicit false from the
	// INSERT as a zero value and the default would win. The use case is the
	// one that defaults an absent isPeriodic to true.
	IsPeriodic  bool      `gorm:"not null" json:"isPeriodic"`
	DayOfWeek   *string   `gorm:"type:day_of_week" json:"dayOfWeek"`
	StartTime   string    `gorm:"type:varchar(8);not null" json:"startTime"`
	EndTime     string    `gorm:"type:varchar(8);not null" json:"endTime"`
	StartDate   *string   `gorm:"type:varchar(10)" json:"startDate"`
	EndDate     *string   `gorm:"type:varchar(10)" json:"endDate"`
	CreatedBy   int       `gorm:"not null" json:"createdBy"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CreateActivityPayload struct {
	Name        string  `json:"name" valid:"required~Activity name is required,maxstringlength(255)~Activity name must be less than 255 characters"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Emoji       *string `json:"emoji" valid:"maxstringlength(10)~Emoji must be less than 10 characters"`
	IsPeriodic  *bool   `json:"isPeriodic"`
	DayOfWeek   *string `json:"dayOfWeek"`
	StartTime   string  `json:"startTime" valid:"required~Start time is required"`
	EndTime     string  `json:"endTime" valid:"required~End time is required"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

type UpdateActivityPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Emoji       *string `json:"emoji"`
	IsPeriodic  *bool   `json:"isPeriodic"`
	DayOfWeek   *string `json:"dayOfWeek"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

type ActivityListQuery struct {
	ListQuery
}

type ActivityRepo interface {
	Create(ctx context.Context, activity *Activity) error
	List(ctx context.Context, query *ActivityListQuery) ([]Activity, int64, error)
	GetByID(ctx context.Context, id int) (*Activity, error)
	Update(ctx context.Context, id int, payload *UpdateActivityPayload) (*Activity, error)
	Delete(ctx context.Context, id int) error
}

type ActivityUseCase interface {
	Create(ctx context.Context, payload *CreateActivityPayload, createdBy int) (*Activity, error)
	List(ctx context.Context, query *ActivityListQuery) ([]Activity, Pagination, error)
	GetByID(ctx context.Context, id int) (*Activity, error)
	Update(ctx context.Context, id int, payload *UpdateActivityPayload) (*Activity, error)
	Delete(ctx context.Context, id int) error
}
