// Package domain holds back-office users and roles.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/facturable/facturable/internal/normalize"
	"gorm.io/datatypes"
)

var (
	ErrNotFound     = errors.New("user_not_found")
	ErrRoleNotFound = errors.New("role_not_found")
	ErrInvalidID    = errors.New("invalid_user_id")
	ErrUserExists   = errors.New("user_exists")
	// ErrInvalidMode reports contract misuse: the mode flag must be
	// ModeCreate or ModeEdit.
	ErrInvalidMode = errors.New("invalid_user_contract_mode")
)

// User is a back-office account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64             `gorm:"primaryKey" json:"id"`
	Name         string            `gorm:"type:text;not null" json:"name"`
	Email        string            `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Roles        []string          `gorm:"serializer:json" json:"roles"`
	Active       bool              `gorm:"not null;default:true" json:"active"`
	PasswordHash string            `gorm:"type:text;not null" json:"-"`
	Preferences  datatypes.JSONMap `gorm:"type:jsonb" json:"preferences"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	// Password fields only travel on the way in.
	Password             string `gorm:"-" json:"-"`
	PasswordConfirmation string `gorm:"-" json:"-"`
}

func (User) TableName() string { return "users" }

type Role struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

// RoleRecord is a role as nested under a user record.
type RoleRecord struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type preferencesRecord struct {
	Locale *string `json:"locale"`
	Theme  *string `json:"theme"`
}

// Record is the externally-sourced user shape. Roles only count when they
// arrive as an actual array of role objects.
type Record struct {
	ID                   *int64             `json:"id"`
	Name                 *string            `json:"name"`
	Email                *string            `json:"email"`
	Roles                []RoleRecord       `json:"roles"`
	Active               *bool              `json:"active"`
	Password             *string            `json:"password"`
	PasswordConfirmation *string            `json:"password_confirmation"`
	Preferences          *preferencesRecord `json:"preferences"`
	CreatedAt            *string            `json:"created_at"`
	UpdatedAt            *string            `json:"updated_at"`
}

const (
	DefaultLocale = "es"
	DefaultTheme  = "light"
)

func Default() User {
	return User{
		Roles:  []string{},
		Active: true,
		Preferences: datatypes.JSONMap{
			"locale": DefaultLocale,
			"theme":  DefaultTheme,
		},
	}
}

func FromRecord(rec *Record) User {
	if rec == nil {
		return Default()
	}

	roles := make([]string, 0, len(rec.Roles))
	for _, role := range rec.Roles {
		roles = append(roles, normalize.Or(role.Name, ""))
	}

	locale, theme := DefaultLocale, DefaultTheme
	if rec.Preferences != nil {
		locale = normalize.Or(rec.Preferences.Locale, DefaultLocale)
		theme = normalize.Or(rec.Preferences.Theme, DefaultTheme)
	}

	return User{
		ID:     normalize.Or(rec.ID, 0),
		Name:   normalize.Or(rec.Name, ""),
		Email:  normalize.Or(rec.Email, ""),
		Roles:  roles,
		Active: normalize.Or(rec.Active, true),
		Preferences: datatypes.JSONMap{
			"locale": locale,
			"theme":  theme,
		},
		CreatedAt:            normalize.Time(rec.CreatedAt),
		UpdatedAt:            normalize.Time(rec.UpdatedAt),
		Password:             normalize.Or(rec.Password, ""),
		PasswordConfirmation: normalize.Or(rec.PasswordConfirmation, ""),
	}
}

func DefaultRole() Role {
	return Role{}
}

func RoleFromRecord(rec *RoleRecord) Role {
	if rec == nil {
		return DefaultRole()
	}
	return Role{
		ID:   normalize.Or(rec.ID, 0),
		Name: normalize.Or(rec.Name, ""),
	}
}

type Service interface {
	Create(ctx context.Context, rec *Record) (*User, error)
	Update(ctx context.Context, id int64, rec *Record) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id int64) error

	CreateRole(ctx context.Context, rec *RoleRecord) (*Role, error)
	UpdateRole(ctx context.Context, id int64, rec *RoleRecord) (*Role, error)
	ListRoles(ctx context.Context) ([]*Role, error)
	DeleteRole(ctx context.Context, id int64) error
}
