package gorm

import (
	"time"

	"skyharbor/booking/internal/constants"
)

type User struct {
	ID           int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string             `gorm:"column:email;size:255;uniqueIndex;not null"`
	PasswordHash string             `gorm:"column:password_hash;size:255;not null"`
	Role         constants.UserRole `gorm:"column:role;size:31;default:passenger"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
