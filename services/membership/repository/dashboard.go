package repository

import (
	"context"
	"fmt"
	"membership/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(database *pgxpool.Pool) domain.DashboardRepo {
	return &dashboardRepository{
		db: database,
	}
}

// Stats gathers one day's check-ins joined with their member and activity,
// plus the overall member/activity counts.
func (dr *dashboardRepository) Stats(ctx context.Context, day time.Time) (*domain.DashboardStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		SELECT c.id, c.member_id, c.activity_id, c.check_in_time, c.check_out_time, c.visit_reason, c.created_at, c.updated_at,
		m.id, m.registration_number, m.first_name, m.last_name, m.birth_date, m.birth_place, m.address, m.occupation,
		m.phone_number, m.study_or_work_place, m.join_date, m.profile_image, m.created_at, m.updated_at,
		a.id, a.name, a.description, a.image, a.emoji, a.is_periodic, a.day_of_week, a.start_time, a.end_time,
		a.start_date, a.end_date, a.created_by, a.created_at, a.updated_at
		FROM checkins c
		LEFT JOIN members m ON c.member_id = m.id
		LEFT JOIN activities a ON c.activity_id = a.id
		WHERE c.check_in_time >= $1 AND c.check_in_time < $2
		ORDER BY c.check_in_time DESC;
	`

	rows, err := dr.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not get dashboard check-ins: %v", err)
	}
	defer rows.Close()

	checkins := []domain.Checkin{}
	for rows.Next() {
		var checkin domain.Checkin

		var mID *int
		var mRegistrationNumber, mFirstName, mLastName *string
		var mBirthDate, mBirthPlace, mAddress, mOccupation *string
		var mPhoneNumber, mStudyOrWorkPlace, mJoinDate, mProfileImage *string
		var mCreatedAt, mUpdatedAt *time.Time

		var aID, aCreatedBy *int
		var aName, aStartTime, aEndTime *string
		var aDescription, aImage, aEmoji, aDayOfWeek, aStartDate, aEndDate *string
		var aIsPeriodic *bool
		var aCreatedAt, aUpdatedAt *time.Time

		err := rows.Scan(
			&checkin.ID, &checkin.MemberID, &checkin.ActivityID, &checkin.CheckInTime,
			&checkin.CheckOutTime, &checkin.VisitReason, &checkin.CreatedAt, &checkin.UpdatedAt,
			&mID, &mRegistrationNumber, &mFirstName, &mLastName, &mBirthDate, &mBirthPlace, &mAddress, &mOccupation,
			&mPhoneNumber, &mStudyOrWorkPlace, &mJoinDate, &mProfileImage, &mCreatedAt, &mUpdatedAt,
			&aID, &aName, &aDescription, &aImage, &aEmoji, &aIsPeriodic, &aDayOfWeek, &aStartTime, &aEndTime,
			&aStartDate, &aEndDate, &aCreatedBy, &aCreatedAt, &aUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan dashboard check-in: %v", err)
		}

		if mID != nil {
			checkin.Member = &domain.Member{
				ID:                 *mID,
				RegistrationNumber: *mRegistrationNumber,
				FirstName:          *mFirstName,
				LastName:           *mLastName,
				BirthDate:          mBirthDate,
				BirthPlace:         mBirthPlace,
				Address:            mAddress,
				Occupation:         mOccupation,
				PhoneNumber:        mPhoneNumber,
				StudyOrWorkPlace:   mStudyOrWorkPlace,
				JoinDate:           mJoinDate,
				ProfileImage:       mProfileImage,
				CreatedAt:          *mCreatedAt,
				UpdatedAt:          *mUpdatedAt,
			}
		}

		if aID != nil {
			checkin.Activity = &domain.Activity{
				ID:          *aID,
				Name:        *aName,
				Description: aDescription,
				Image:       aImage,
				Emoji:       aEmoji,
				IsPeriodic:  *aIsPeriodic,
				DayOfWeek:   aDayOfWeek,
				StartTime:   *aStartTime,
				EndTime:     *aEndTime,
				StartDate:   aStartDate,
				EndDate:     aEndDate,
				CreatedBy:   *aCreatedBy,
				CreatedAt:   *aCreatedAt,
				UpdatedAt:   *aUpdatedAt,
			}
		}

		checkins = append(checkins, checkin)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	stats := &domain.DashboardStats{Checkins: checkins}

	err = dr.db.QueryRow(ctx, `SELECT count(*) FROM members;`).Scan(&stats.Members)
	if err != nil {
		return nil, fmt.Errorf("could not count members: %v", err)
	}

	err = dr.db.QueryRow(ctx, `SELECT count(*) FROM activities;`).Scan(&stats.Activities)
	if err != nil {
		return nil, fmt.Errorf("could not count activities: %v", err)
	}

	return stats, nil
}
