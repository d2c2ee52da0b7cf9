package repository

import (
	"context"
	"errors"
	"membership/domain"
	"testing"
)

func TestUserRepository_Create_DuplicateMapping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{Username: "admin", Email: "admin@example.com", Password: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	err := repo.Create(context.Background(), &domain.User{Username: "admin", Email: "other@example.com", Password: "hash"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}

	err = repo.Create(context.Background(), &domain.User{Username: "other", Email: "admin@example.com", Password: "hash"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_Find(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{Username: "admin", Email: "admin@example.com", Password: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	byName, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, byName.ID)
	}

	byEmail, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, byEmail.ID)
	}

	_, err = repo.FindByID(context.Background(), 404)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
