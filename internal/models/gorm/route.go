package gorm

import "time"

type Route struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SourceID      int64     `gorm:"column:source_id;not null;uniqueIndex:idx_routes_source_destination"`
	DestinationID int64     `gorm:"column:destination_id;not null;uniqueIndex:idx_routes_source_destination"`
	Distance      int       `gorm:"column:distance;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Source      Airport `gorm:"foreignKey:SourceID"`
	Destination Airport `gorm:"foreignKey:DestinationID"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "routes"
}
