package repository

import (
	"context"
	"errors"
	"fmt"
	"membership/domain"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Member{},
		&domain.Activity{},
		&domain.Checkin{},
		&domain.Volunteer{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func createTestMember(t *testing.T, repo domain.MemberRepo, firstName, lastName string) *domain.Member {
	t.Helper()
	member := &domain.Member{FirstName: firstName, LastName: lastName}
	if err := repo.Create(context.Background(), member); err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	return member
}

func TestMemberRepository_Create_AssignsRegistrationNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	member := createTestMember(t, repo, "Amina", "Diallo")

	want := fmt.Sprintf("ACMJN-%06d", member.ID)
	if member.RegistrationNumber != want {
		t.Errorf("Expected registration number %s, got %s", want, member.RegistrationNumber)
	}

	// The persisted row must carry the same number.
	stored, err := repo.GetByID(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("Failed to get member: %v", err)
	}
	if stored.RegistrationNumber != want {
		t.Errorf("Stored registration number %s, want %s", stored.RegistrationNumber, want)
	}
}

func TestMemberRepository_GetByRegistrationNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	member := createTestMember(t, repo, "Karim", "Benali")

	found, err := repo.GetByRegistrationNumber(context.Background(), member.RegistrationNumber)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found.ID != member.ID {
		t.Errorf("Expected member %d, got %d", member.ID, found.ID)
	}

	_, err = repo.GetByRegistrationNumber(context.Background(), "ACMJN-999999")
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}
}

func TestMemberRepository_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	for i := 0; i < 5; i++ {
		createTestMember(t, repo, fmt.Sprintf("First%d", i), "Last")
	}

	query := &domain.MemberListQuery{ListQuery: domain.ListQuery{Offset: 2, Limit: 2}}
	members, total, err := repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 5 {
		t.Errorf("Expected total 5, got %d", total)
	}
	if len(members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(members))
	}
	if members[0].FirstName != "First2" {
		t.Errorf("Expected First2 at offset 2, got %s", members[0].FirstName)
	}

	pagination := domain.NewPagination(query.Offset, query.Limit, total)
	if !pagination.HasMore {
		t.Error("Expected hasMore true for offset 2, limit 2, total 5")
	}
	pagination = domain.NewPagination(4, 2, total)
	if pagination.HasMore {
		t.Error("Expected hasMore false for offset 4, limit 2, total 5")
	}
}

func TestMemberRepository_List_DefaultsAndCap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	createTestMember(t, repo, "Solo", "Member")

	// Zero limit takes the default, an oversized one is capped, never rejected.
	query := &domain.MemberListQuery{ListQuery: domain.ListQuery{Limit: 0, Offset: -3}}
	_, _, err := repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if query.Limit != domain.DefaultLimit {
		t.Errorf("Expected limit %d, got %d", domain.DefaultLimit, query.Limit)
	}
	if query.Offset != 0 {
		t.Errorf("Expected offset 0, got %d", query.Offset)
	}

	query = &domain.MemberListQuery{ListQuery: domain.ListQuery{Limit: 500}}
	_, _, err = repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if query.Limit != domain.MaxLimit {
		t.Errorf("Expected limit capped at %d, got %d", domain.MaxLimit, query.Limit)
	}
}

func TestMemberRepository_List_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	target := createTestMember(t, repo, "Leila", "Haddad")
	createTestMember(t, repo, "Karim", "Benali")
	createTestMember(t, repo, "Amina", "Diallo")

	query := &domain.MemberListQuery{Search: "Haddad"}
	members, total, err := repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 1 || len(members) != 1 {
		t.Fatalf("Expected exactly one match, got total %d len %d", total, len(members))
	}
	if members[0].ID != target.ID {
		t.Errorf("Expected member %d, got %d", target.ID, members[0].ID)
	}

	// Registration numbers are searchable too.
	query = &domain.MemberListQuery{Search: target.RegistrationNumber}
	_, total, err = repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 1 {
		t.Errorf("Expected registration number search to match 1, got %d", total)
	}
}

func TestMemberRepository_List_SortUnknownFieldFallsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	createTestMember(t, repo, "Zed", "Omega")
	createTestMember(t, repo, "Abe", "Alpha")

	// An unknown sort key must not leak into SQL; it falls back to id asc.
	query := &domain.MemberListQuery{ListQuery: domain.ListQuery{SortBy: "password; DROP TABLE members"}}
	members, _, err := repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(members))
	}
	if members[0].ID > members[1].ID {
		t.Error("Expected id ascending order on unknown sort field")
	}

	query = &domain.MemberListQuery{ListQuery: domain.ListQuery{SortBy: "firstName", Order: "desc"}}
	members, _, err = repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if members[0].FirstName != "Zed" {
		t.Errorf("Expected Zed first on firstName desc, got %s", members[0].FirstName)
	}
}

func TestMemberRepository_Update_PartialFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	member := createTestMember(t, repo, "Amina", "Diallo")
	phone := "+33612345678"

	updated, err := repo.Update(context.Background(), member.ID, &domain.UpdateMemberPayload{
		PhoneNumber: &phone,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.PhoneNumber == nil || *updated.PhoneNumber != phone {
		t.Errorf("Expected phone number %s, got %v", phone, updated.PhoneNumber)
	}
	if updated.FirstName != "Amina" {
		t.Errorf("Untouched field changed, got first name %s", updated.FirstName)
	}
	if updated.RegistrationNumber != member.RegistrationNumber {
		t.Error("Registration number must never change on update")
	}
}

func TestMemberRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	name := "Ghost"
	_, err := repo.Update(context.Background(), 404, &domain.UpdateMemberPayload{FirstName: &name})
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}
}

func TestMemberRepository_Delete_GuardsCheckins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)

	member := createTestMember(t, repo, "Karim", "Benali")
	checkin := &domain.Checkin{MemberID: member.ID, ActivityID: 1, CheckInTime: time.Now()}
	if err := db.Create(checkin).Error; err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	err := repo.Delete(context.Background(), member.ID)
	if !errors.Is(err, domain.ErrMemberHasCheckins) {
		t.Errorf("Expected ErrMemberHasCheckins, got %v", err)
	}

	// Member must still be there after the refused delete.
	if _, err := repo.GetByID(context.Background(), member.ID); err != nil {
		t.Errorf("Member should survive refused delete, got %v", err)
	}

	if err := db.Delete(&domain.Checkin{}, checkin.ID).Error; err != nil {
		t.Fatalf("Failed to remove check-in: %v", err)
	}
	if err := repo.Delete(context.Background(), member.ID); err != nil {
		t.Errorf("Expected delete to succeed without check-ins, got %v", err)
	}

	err = repo.Delete(context.Background(), member.ID)
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound on second delete, got %v", err)
	}
}
