package gorm

import "time"

type AirplaneType struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:63;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AirplaneType) TableName() string {
	return "airplane_types"
}

type Airplane struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `gorm:"column:name;size:63;not null"`
	Rows       int       `gorm:"column:rows;not null"`
	SeatsInRow int       `gorm:"column:seats_in_row;not null"`
	TypeID     int64     `gorm:"column:type_id;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Type AirplaneType `gorm:"foreignKey:TypeID"`
}

// TableName specifies the table name for GORM
func (Airplane) TableName() string {
	return "airplanes"
}

// Capacity is derived from the seat grid and never stored.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
