package repositories

import (
	"context"
	"errors"
	"strings"

	gormlib "gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// AirplaneFilter narrows the airplane listing. Name is a case-insensitive
// substring; TypeIDs are ORed together.
type AirplaneFilter struct {
	Name    string
	TypeIDs []int64
}

// AirplaneRepository handles airplanes table operations
type AirplaneRepository struct {
	db *gormlib.DB
}

func NewAirplaneRepository(db *gormlib.DB) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

func (r *AirplaneRepository) List(ctx context.Context, filter AirplaneFilter) ([]gormModels.Airplane, error) {
	query := r.db.WithContext(ctx).Preload("Type").Order("id")

	if filter.Name != "" {
		pattern := "%" + strings.ToLower(filter.Name) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if len(filter.TypeIDs) > 0 {
		query = query.Where("type_id IN ?", filter.TypeIDs)
	}

	var airplanes []gormModels.Airplane
	err := query.Find(&airplanes).Error
	return airplanes, err
}

func (r *AirplaneRepository) GetByID(ctx context.Context, id int64) (*gormModels.Airplane, error) {
	var airplane gormModels.Airplane
	err := r.db.WithContext(ctx).Preload("Type").First(&airplane, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &airplane, nil
}

func (r *AirplaneRepository) Create(ctx context.Context, airplane *gormModels.Airplane) error {
	if err := r.db.WithContext(ctx).Create(airplane).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Type").First(airplane, airplane.ID).Error
}

func (r *AirplaneRepository) Update(ctx context.Context, airplane *gormModels.Airplane) error {
	result := r.db.WithContext(ctx).Model(&gormModels.Airplane{}).
		Where("id = ?", airplane.ID).
		Updates(map[string]interface{}{
			"name":         airplane.Name,
			"rows":         airplane.Rows,
			"seats_in_row": airplane.SeatsInRow,
			"type_id":      airplane.TypeID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AirplaneRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Airplane{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
