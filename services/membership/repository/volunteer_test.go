package repository

import (
	"context"
	"errors"
	"membership/domain"
	"testing"
)

func TestVolunteerRepository_List_AttachesMembers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db)
	memberRepo := NewMemberRepository(db)

	first := createTestMember(t, memberRepo, "Amina", "Diallo")
	second := createTestMember(t, memberRepo, "Karim", "Benali")

	joinDate := "2026-01-10"
	for _, memberID := range []int{first.ID, second.ID} {
		v := &domain.Volunteer{MemberID: memberID, JoinDate: &joinDate, CreatedBy: 1}
		if err := repo.Create(context.Background(), v); err != nil {
			t.Fatalf("Failed to create volunteer: %v", err)
		}
	}

	volunteers, total, err := repo.List(context.Background(), &domain.VolunteerListQuery{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 2 {
		t.Errorf("Expected total 2, got %d", total)
	}
	for _, v := range volunteers {
		if v.Member == nil {
			t.Fatalf("Expected member attached to volunteer %d", v.ID)
		}
		if v.Member.ID != v.MemberID {
			t.Errorf("Attached member %d does not match memberId %d", v.Member.ID, v.MemberID)
		}
	}
}

func TestVolunteerRepository_List_SortByExpirationDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db)
	memberRepo := NewMemberRepository(db)
	member := createTestMember(t, memberRepo, "Leila", "Haddad")

	late := "2027-12-31"
	early := "2026-06-30"
	for _, exp := range []*string{&late, &early} {
		v := &domain.Volunteer{MemberID: member.ID, ExpirationDate: exp, CreatedBy: 1}
		if err := repo.Create(context.Background(), v); err != nil {
			t.Fatalf("Failed to create volunteer: %v", err)
		}
	}

	query := &domain.VolunteerListQuery{ListQuery: domain.ListQuery{SortBy: "expirationDate", Order: "asc"}}
	volunteers, _, err := repo.List(context.Background(), query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(volunteers) != 2 {
		t.Fatalf("Expected 2 volunteers, got %d", len(volunteers))
	}
	if volunteers[0].ExpirationDate == nil || *volunteers[0].ExpirationDate != early {
		t.Errorf("Expected earliest expiration first, got %v", volunteers[0].ExpirationDate)
	}
}

func TestVolunteerRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db)
	memberRepo := NewMemberRepository(db)
	member := createTestMember(t, memberRepo, "Amina", "Diallo")

	v := &domain.Volunteer{MemberID: member.ID, CreatedBy: 1}
	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("Failed to create volunteer: %v", err)
	}

	exp := "2027-01-01"
	updated, err := repo.Update(context.Background(), v.ID, &domain.UpdateVolunteerPayload{ExpirationDate: &exp})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.ExpirationDate == nil || *updated.ExpirationDate != exp {
		t.Errorf("Expected expiration date %s, got %v", exp, updated.ExpirationDate)
	}
	if updated.MemberID != member.ID {
		t.Errorf("Untouched memberId changed, got %d", updated.MemberID)
	}

	_, err = repo.Update(context.Background(), 404, &domain.UpdateVolunteerPayload{ExpirationDate: &exp})
	if !errors.Is(err, domain.ErrVolunteerNotFound) {
		t.Errorf("Expected ErrVolunteerNotFound, got %v", err)
	}

	if err := repo.Delete(context.Background(), v.ID); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	err = repo.Delete(context.Background(), v.ID)
	if !errors.Is(err, domain.ErrVolunteerNotFound) {
		t.Errorf("Expected ErrVolunteerNotFound, got %v", err)
	}
}
