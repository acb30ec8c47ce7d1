package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// AirportRepository handles airports table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) List(ctx context.Context) ([]gormModels.Airport, error) {
	var airports []gormModels.Airport
	err := r.db.WithContext(ctx).Order("id").Find(&airports).Error
	return airports, err
}

func (r *AirportRepository) GetByID(ctx context.Context, id int64) (*gormModels.Airport, error) {
	var airport gormModels.Airport
	err := r.db.WithContext(ctx).First(&airport, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &airport, nil
}

func (r *AirportRepository) Create(ctx context.Context, airport *gormModels.Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

func (r *AirportRepository) Update(ctx context.Context, airport *gormModels.Airport) error {
	result := r.db.WithContext(ctx).Model(&gormModels.Airport{}).
		Where("id = ?", airport.ID).
		Updates(map[string]interface{}{
			"name":             airport.Name,
			"closest_big_city": airport.ClosestBigCity,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AirportRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Airport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
