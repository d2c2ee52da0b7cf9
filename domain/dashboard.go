package domain

import (
	"context"
	"time"
)

// DashboardStats aggregates one day's check-ins (enriched with their member
// and activity) together with overall member/activity counts.
type DashboardStats struct {
	Checkins   []Checkin `json:"checkins"`
	Members    int64     `json:"members"`
	Activities int64     `json:"activities"`
}

type DashboardRepo interface {
	Stats(ctx context.Context, day time.Time) (*DashboardStats, error)
}

type DashboardUseCase interface {
	Stats(ctx context.Context, date string) (*DashboardStats, error)
}
