package gorm

import "time"

type Flight struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID       int64     `gorm:"column:route_id;not null"`
	AirplaneID    int64     `gorm:"column:airplane_id;not null"`
	DepartureTime time.Time `gorm:"column:departure_time;not null"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Route    Route    `gorm:"foreignKey:RouteID"`
	Airplane Airplane `gorm:"foreignKey:AirplaneID"`
	Crew     []Crew   `gorm:"many2many:flight_crew;joinForeignKey:FlightID;joinReferences:CrewID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
