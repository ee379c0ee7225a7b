package user

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidGender = errors.New("invalid gender")
	ErrEmptyFullName = errors.New("full name is required")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type User struct {
	id             int64
	email          string
	hashedPassword string
	fullName       string
	role           Role
	gender         Gender
	createdAt      time.Time
}

func NewUser(email, hashedPassword, fullName string, role Role, gender Gender) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}

	return &User{
		email:          email,
		hashedPassword: hashedPassword,
		fullName:       fullName,
		role:           role,
		gender:         gender,
	}, nil
}

func ReconstructUser(id int64, email, hashedPassword, fullName string, role Role, gender Gender, createdAt time.Time) *User {
	return &User{
		id:             id,
		email:          email,
		hashedPassword: hashedPassword,
		fullName:       fullName,
		role:           role,
		gender:         gender,
		createdAt:      createdAt,
	}
}

func (u *User) ID() int64              { return u.id }
func (u *User) Email() string          { return u.email }
func (u *User) HashedPassword() string { return u.hashedPassword }
func (u *User) FullName() string       { return u.fullName }
func (u *User) Role() Role             { return u.role }
func (u *User) Gender() Gender         { return u.gender }
func (u *User) CreatedAt() time.Time   { return u.createdAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
