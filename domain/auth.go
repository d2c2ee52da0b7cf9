package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type LoginPayload struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type RegisterPayload struct {
	Username string `json:"username" valid:"required~Username is required,minstringlength(3)~Username must be at least 3 characters,alphanum~Username must be alphanumeric"`
	Email    string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string `json:"password" valid:"required~Password is required,minstringlength(8)~Password must be at least 8 characters"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type AuthUseCase interface {
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	Register(ctx context.Context, payload *RegisterPayload) (*UserProfile, error)
	VerifyUser(ctx context.Context, userID int) (*UserProfile, error)
}
