package usecase

import (
	"context"
	"membership/domain"
	"time"
)

type dashboardUC struct {
	dashboardRepo domain.DashboardRepo
	TimeOut       time.Duration
}

func NewDashboardUseCase(repo domain.DashboardRepo, timeOut time.Duration) domain.DashboardUseCase {
	return &dashboardUC{
		dashboardRepo: repo,
		TimeOut:       timeOut,
	}
}

// Stats aggregates the given day's check-ins; an empty date means today.
func (dUC *dashboardUC) Stats(ctx context.Context, date string) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	day := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, domain.NewValidationError("date", "Date must be in YYYY-MM-DD format")
		}
		day = parsed
	}

	return dUC.dashboardRepo.Stats(ctx, day)
}
