package gorm

import "time"

type Crew struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string    `gorm:"column:first_name;size:63;not null"`
	LastName  string    `gorm:"column:last_name;size:63;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Crew) TableName() string {
	return "crew"
}
