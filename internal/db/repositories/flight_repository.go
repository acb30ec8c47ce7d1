package repositories

import (
	"context"
	"errors"
	"time"

	gormlib "gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// FlightFilter narrows the flight listing. Dates match the calendar day
// of the timestamp, not the exact instant.
type FlightFilter struct {
	RouteID       *int64
	DepartureDate *time.Time
	ArrivalDate   *time.Time
}

// FlightRepository handles flights table operations
type FlightRepository struct {
	db *gormlib.DB
}

func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) List(ctx context.Context, filter FlightFilter, page, pageSize int) ([]gormModels.Flight, int64, error) {
	query := r.db.WithContext(ctx).Model(&gormModels.Flight{})

	if filter.RouteID != nil {
		query = query.Where("route_id = ?", *filter.RouteID)
	}
	if filter.DepartureDate != nil {
		day := filter.DepartureDate.Truncate(24 * time.Hour)
		query = query.Where("departure_time >= ? AND departure_time < ?", day, day.Add(24*time.Hour))
	}
	if filter.ArrivalDate != nil {
		day := filter.ArrivalDate.Truncate(24 * time.Hour)
		query = query.Where("arrival_time >= ? AND arrival_time < ?", day, day.Add(24*time.Hour))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var flights []gormModels.Flight
	err := query.
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.Type").
		Order("id").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&flights).Error
	return flights, count, err
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*gormModels.Flight, error) {
	var flight gormModels.Flight
	err := r.db.WithContext(ctx).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.Type").
		Preload("Crew").
		First(&flight, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &flight, nil
}

// Create inserts a flight and its crew associations.
func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return err
	}
	created, err := r.GetByID(ctx, flight.ID)
	if err != nil {
		return err
	}
	*flight = *created
	return nil
}

func (r *FlightRepository) Update(ctx context.Context, flight *gormModels.Flight, crew []gormModels.Crew) error {
	result := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Where("id = ?", flight.ID).
		Updates(map[string]interface{}{
			"route_id":       flight.RouteID,
			"airplane_id":    flight.AirplaneID,
			"departure_time": flight.DepartureTime,
			"arrival_time":   flight.ArrivalTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	if crew != nil {
		target := gormModels.Flight{ID: flight.ID}
		if err := r.db.WithContext(ctx).Model(&target).Association("Crew").Replace(crew); err != nil {
			return err
		}
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Flight{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
