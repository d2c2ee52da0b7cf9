package repository

import (
	"context"
	"errors"
	"fmt"
	"membership/domain"
	"strings"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepo {
	return &userRepository{
		db: db,
	}
}

// Create relies on the storage unique constraints as the final authority for
// username/email collisions; the use case's lookups are only a fast path.
func (ur *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := ur.db.WithContext(ctx).Create(user).Error
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "username") {
			return domain.ErrUsernameTaken
		}
		if strings.Contains(msg, "email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("could not insert user: %w", err)
	}
	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return &user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return &user, nil
}
