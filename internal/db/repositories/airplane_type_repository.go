package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// AirplaneTypeRepository handles airplane_types table operations
type AirplaneTypeRepository struct {
	db *gormlib.DB
}

func NewAirplaneTypeRepository(db *gormlib.DB) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{db: db}
}

func (r *AirplaneTypeRepository) List(ctx context.Context) ([]gormModels.AirplaneType, error) {
	var types []gormModels.AirplaneType
	err := r.db.WithContext(ctx).Order("id").Find(&types).Error
	return types, err
}

func (r *AirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*gormModels.AirplaneType, error) {
	var t gormModels.AirplaneType
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *AirplaneTypeRepository) Create(ctx context.Context, t *gormModels.AirplaneType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *AirplaneTypeRepository) Update(ctx context.Context, t *gormModels.AirplaneType) error {
	result := r.db.WithContext(ctx).Model(&gormModels.AirplaneType{}).
		Where("id = ?", t.ID).
		Update("name", t.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.AirplaneType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
