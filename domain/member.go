package domain

import (
	"context"
	"fmt"
	"time"
)

// RegistrationNumberPrefix fronts the zero-padded numeric id in every
// member's human-displayable registration number.
const RegistrationNumberPrefix = "ACMJN-"

// FormatRegistrationNumber derives the registration number from the id
// assigned at insert time, e.g. 7 -> "ACMJN-000007".
func FormatRegistrationNumber(id int) string {
	return fmt.Sprintf("%s%06d", RegistrationNumberPrefix, id)
}

var Occupations = []string{"student", "unemployed", "employee", "entrepreneur"}

type Member struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RegistrationNumber string    `gorm:"type:varchar(255);not null;unique" json:"registrationNumber"`
	FirstName          string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName           string    `gorm:"type:varchar(255);not null" json:"lastName"`
	BirthDate          *string   `gorm:"type:varchar(10)" json:"birthDate"`
	BirthPlace         *string   `gorm:"type:varchar(255)" json:"birthPlace"`
	Address            *string   `gorm:"type:text" json:"address"`
	Occupation         *string   `gorm:"type:occupation" json:"occupation"`
	PhoneNumber        *string   `gorm:"type:varchar(255)" json:"phoneNumber"`
	StudyOrWorkPlace   *string   `gorm:"type:varchar(255)" json:"studyOrWorkPlace"`
	JoinDate           *string   `gorm:"type:varchar(10)" json:"joinDate"`
	ProfileImage       *string   `gorm:"type:varchar(500)" json:"profileImage"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CreateMemberPayload struct {
	FirstName        string  `json:"firstName" valid:"required~First name is required"`
	LastName         string  `json:"lastName" valid:"required~Last name is required"`
	BirthDate        *string `json:"birthDate"`
	BirthPlace       *string `json:"birthPlace"`
	Address          *string `json:"address"`
	Occupation       *string `json:"occupation"`
	PhoneNumber      *string `json:"phoneNumber"`
	StudyOrWorkPlace *string `json:"studyOrWorkPlace"`
	JoinDate         *string `json:"joinDate"`
	ProfileImage     *string `json:"profileImage"`
}

// UpdateMemberPayload applies only the fields the caller provided; nil means
// leave untouched.
type UpdateMemberPayload struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	BirthDate        *string `json:"birthDate"`
	BirthPlace       *string `json:"birthPlace"`
	Address          *string `json:"address"`
	Occupation       *string `json:"occupation"`
	PhoneNumber      *string `json:"phoneNumber"`
	StudyOrWorkPlace *string `json:"studyOrWorkPlace"`
	JoinDate         *string `json:"joinDate"`
	ProfileImage     *string `json:"profileImage"`
}

type MemberListQuery struct {
	ListQuery
	Search string
}

type MemberRepo interface {
	Create(ctx context.Context, member *Member) error
	List(ctx context.Context, query *MemberListQuery) ([]Member, int64, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*Member, error)
	Update(ctx context.Context, id int, payload *UpdateMemberPayload) (*Member, error)
	Delete(ctx context.Context, id int) error
}

type MemberUseCase interface {
	Create(ctx context.Context, payload *CreateMemberPayload) (*Member, error)
	List(ctx context.Context, query *MemberListQuery) ([]Member, Pagination, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*Member, error)
	QRCode(ctx context.Context, id int) ([]byte, error)
	Update(ctx context.Context, id int, payload *UpdateMemberPayload) (*Member, error)
	Delete(ctx context.Context, id int) error
}
