package main

import (
	"context"
	"membership/config"
	"membership/domain"
	"membership/services/membership/repository"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Populates a fresh database with an admin account and a small set of
// members, activities and check-ins for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	log := config.GetLogrusInstance()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
	}

	ctx := context.Background()

	if err := db.Exec("TRUNCATE checkins, volunteers, members, activities, users RESTART IDENTITY CASCADE").Error; err != nil {
		log.Fatalf("Failed to reset tables: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &domain.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hash),
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Infof("Created admin user %s", admin.Username)

	memberRepo := repository.NewMemberRepository(db)
	members := []*domain.Member{
		{FirstName: "Amina", LastName: "Diallo", Occupation: ptr("student"), JoinDate: ptr("2024-01-15")},
		{FirstName: "Karim", LastName: "Benali", Occupation: ptr("employee"), JoinDate: ptr("2024-02-03")},
		{FirstName: "Leila", LastName: "Haddad", Occupation: ptr("entrepreneur"), JoinDate: ptr("2024-03-21")},
	}
	for _, m := range members {
		if err := memberRepo.Create(ctx, m); err != nil {
			log.Fatalf("Failed to create member %s %s: %v", m.FirstName, m.LastName, err)
		}
		log.Infof("Created member %s (%s)", m.FirstName, m.RegistrationNumber)
	}

	activityRepo := repository.NewActivityRepository(db)
	activities := []*domain.Activity{
		{Name: "Arabic class", Description: ptr("Weekly beginner class"), DayOfWeek: ptr("wednesday"), StartTime: "18:00:00", EndTime: "19:30:00", IsPeriodic: true, CreatedBy: admin.ID},
		{Name: "Open library", DayOfWeek: ptr("saturday"), StartTime: "10:00:00", EndTime: "12:00:00", IsPeriodic: true, CreatedBy: admin.ID},
	}
	for _, a := range activities {
		if err := activityRepo.Create(ctx, a); err != nil {
			log.Fatalf("Failed to create activity %s: %v", a.Name, err)
		}
		log.Infof("Created activity %s", a.Name)
	}

	checkinRepo := repository.NewCheckinRepository(db)
	now := time.Now()
	checkins := []*domain.Checkin{
		{MemberID: members[0].ID, ActivityID: activities[0].ID, CheckInTime: now.Add(-2 * time.Hour)},
		{MemberID: members[1].ID, ActivityID: activities[0].ID, CheckInTime: now.Add(-90 * time.Minute), VisitReason: ptr("First visit")},
	}
	for _, ci := range checkins {
		if err := checkinRepo.Create(ctx, ci); err != nil {
			log.Fatalf("Failed to create check-in: %v", err)
		}
	}
	log.Infof("Created %d check-ins", len(checkins))

	log.Info("Seed completed")
}

func ptr(s string) *string {
	return &s
}
