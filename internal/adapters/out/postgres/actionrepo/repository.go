package actionrepo

import (
	"context"
	"errors"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE of a duplicate key.
const uniqueViolation = "23505"

// GormActionRepository implements ports.ActionRepository using GORM.
type GormActionRepository struct {
	db *gorm.DB
}

// NewGormActionRepository creates a new GORM action repository.
func NewGormActionRepository(db *gorm.DB) *GormActionRepository {
	return &GormActionRepository{
		db: db,
	}
}

// Add saves a new action to the database. A (route, target) pair that is
// already taken is reported as an errs.ObjectExistsError.
func (r *GormActionRepository) Add(ctx context.Context, aggregate *action.Action) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewObjectExistsErrorWithCause("action",
				aggregate.Route().ID()+"/"+aggregate.Target().String(), err)
		}
		return err
	}

	return nil
}

// Get retrieves an action by ID.
func (r *GormActionRepository) Get(ctx context.Context, id kernel.UUID) (*action.Action, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("action", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an action by ID.
func (r *GormActionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ActionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("action", id.String())
	}

	return nil
}

// ListByRoute returns all actions of a route, location rules first.
func (r *GormActionRepository) ListByRoute(ctx context.Context, rt route.Route) ([]*action.Action, error) {
	if err := rt.Validate(); err != nil {
		return nil, err
	}

	var dtos []ActionDTO
	err := r.db.WithContext(ctx).
		Where("route_id = ?", rt.ID()).
		Order("location_key NULLS LAST, location_group_name, created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	actions := make([]*action.Action, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}

	return actions, nil
}

// FindByRouteAndLocationKey returns the action keyed on (route, coordinate), or nil.
func (r *GormActionRepository) FindByRouteAndLocationKey(
	ctx context.Context,
	rt route.Route,
	coordinate kernel.Coordinate,
) (*action.Action, error) {
	return r.findOne(ctx, "route_id = ? AND location_key = ?", rt.ID(), coordinate.String())
}

// FindByRouteAndLocationGroupName returns the action keyed on (route, group name), or nil.
func (r *GormActionRepository) FindByRouteAndLocationGroupName(
	ctx context.Context,
	rt route.Route,
	groupName string,
) (*action.Action, error) {
	return r.findOne(ctx, "route_id = ? AND location_group_name = ?", rt.ID(), groupName)
}

// findOne returns (nil, nil) when no row matches. Duplicate rows can only come
// from tables filled before the unique indexes existed; the oldest one wins.
func (r *GormActionRepository) findOne(ctx context.Context, query string, args ...any) (*action.Action, error) {
	var dtos []ActionDTO
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at, id").
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}
