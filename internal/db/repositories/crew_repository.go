package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// CrewRepository handles crew table operations. The API only exposes
// list and create for crew members.
type CrewRepository struct {
	db *gormlib.DB
}

func NewCrewRepository(db *gormlib.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

func (r *CrewRepository) List(ctx context.Context) ([]gormModels.Crew, error) {
	var crew []gormModels.Crew
	err := r.db.WithContext(ctx).Order("id").Find(&crew).Error
	return crew, err
}

func (r *CrewRepository) Create(ctx context.Context, member *gormModels.Crew) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByIDs resolves crew members for a flight assignment. Any id that
// does not exist makes the whole lookup fail with ErrNotFound.
func (r *CrewRepository) GetByIDs(ctx context.Context, ids []int64) ([]gormModels.Crew, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var crew []gormModels.Crew
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&crew).Error; err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(crew))
	for _, c := range crew {
		seen[c.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			return nil, ErrNotFound
		}
	}
	return crew, nil
}
