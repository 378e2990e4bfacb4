package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Email        string    `gorm:"size:191" json:"email"`
	Role         string    `gorm:"size:16" json:"role"` // 只建模 "admin"
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}
