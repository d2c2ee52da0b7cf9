package usecase

import (
	"context"
	"errors"
	"membership/domain"
	"membership/middleware"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

type authUC struct {
	userRepo domain.UserRepo
	auth     *middleware.AuthMiddleware
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.UserRepo, auth *middleware.AuthMiddleware, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		userRepo: repo,
		auth:     auth,
		TimeOut:  timeOut,
	}
}

func (aUC *authUC) Login(ctx context.Context, payload *domain.LoginPayload) (*domain.LoginResult, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if vErr := domain.ValidateStruct(payload); vErr != nil {
		return nil, vErr
	}

	user, err := aUC.userRepo.FindByUsername(ctx, payload.Username)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return nil, domain.ErrInvalidPassword
	}

	token, err := aUC.auth.GenerateJWT(user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{Token: token, User: user.Profile()}, nil
}

func (aUC *authUC) Register(ctx context.Context, payload *domain.RegisterPayload) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	var errs []domain.FieldError
	if vErr := domain.ValidateStruct(payload); vErr != nil {
		errs = vErr.Errors
	}
	if payload.Password != "" && !hasLetter.MatchString(payload.Password) {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password must contain at least one letter"})
	}
	if payload.Password != "" && !hasDigit.MatchString(payload.Password) {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password must contain at least one number"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	// Fast-path duplicate checks; the unique constraints settle races.
	if _, err := aUC.userRepo.FindByUsername(ctx, payload.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := aUC.userRepo.FindByEmail(ctx, payload.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: payload.Username,
		Email:    payload.Email,
		Password: string(hashed),
	}
	if err := aUC.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.Profile(), nil
}

func (aUC *authUC) VerifyUser(ctx context.Context, userID int) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	user, err := aUC.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
