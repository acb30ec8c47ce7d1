package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// RouteFilter narrows the route listing. IDs inside one list are ORed;
// the two lists are ANDed against each other.
type RouteFilter struct {
	SourceIDs      []int64
	DestinationIDs []int64
}

// RouteRepository handles routes table operations
type RouteRepository struct {
	db *gormlib.DB
}

func NewRouteRepository(db *gormlib.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) List(ctx context.Context, filter RouteFilter) ([]gormModels.Route, error) {
	query := r.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		Order("id")

	if len(filter.SourceIDs) > 0 {
		query = query.Where("source_id IN ?", filter.SourceIDs)
	}
	if len(filter.DestinationIDs) > 0 {
		query = query.Where("destination_id IN ?", filter.DestinationIDs)
	}

	var routes []gormModels.Route
	err := query.Find(&routes).Error
	return routes, err
}

func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*gormModels.Route, error) {
	var route gormModels.Route
	err := r.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		First(&route, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &route, nil
}

// Create inserts a route, enforcing at most one route per ordered
// (source, destination) pair.
func (r *RouteRepository) Create(ctx context.Context, route *gormModels.Route) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Route{}).
		Where("source_id = ? AND destination_id = ?", route.SourceID, route.DestinationID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateRoute
	}

	if err := r.db.WithContext(ctx).Create(route).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		First(route, route.ID).Error
}

func (r *RouteRepository) Update(ctx context.Context, route *gormModels.Route) error {
	result := r.db.WithContext(ctx).Model(&gormModels.Route{}).
		Where("id = ?", route.ID).
		Updates(map[string]interface{}{
			"source_id":      route.SourceID,
			"destination_id": route.DestinationID,
			"distance":       route.Distance,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Route{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
