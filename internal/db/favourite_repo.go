package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skycast/internal/types"
)

// FavouriteRepository provides data access for the favourite_locations table.
type FavouriteRepository struct {
	db DBTX
}

// NewFavouriteRepository creates a FavouriteRepository backed by the given
// connection (pool or transaction).
func NewFavouriteRepository(db DBTX) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

const favColumns = `id, label, lat, lon, timezone, created_at`

func scanFavourite(row pgx.Row) (*types.FavouriteLocation, error) {
	var f types.FavouriteLocation
	err := row.Scan(&f.ID, &f.Label, &f.Lat, &f.Lon, &f.Timezone, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new favourite. The ID and CreatedAt are assigned here
// when unset so callers can pass a bare label/coordinate struct.
func (r *FavouriteRepository) Create(ctx context.Context, fav *types.FavouriteLocation) error {
	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}
	if fav.CreatedAt.IsZero() {
		fav.CreatedAt = time.Now().UTC()
	}
	if fav.Timezone == "" {
		fav.Timezone = "auto"
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO favourite_locations (id, label, lat, lon, timezone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		fav.ID, fav.Label, fav.Lat, fav.Lon, fav.Timezone, fav.CreatedAt,
	)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalDB, "failed to create favourite", err)
	}
	return nil
}

// GetByID returns one favourite, or a not-found AppError.
func (r *FavouriteRepository) GetByID(ctx context.Context, id string) (*types.FavouriteLocation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+favColumns+` FROM favourite_locations WHERE id = $1`, id)

	fav, err := scanFavourite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.NewAppError(types.ErrCodeNotFoundFavourite, "favourite not found", err)
		}
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to load favourite", err)
	}
	return fav, nil
}

// List returns every favourite ordered by creation time.
func (r *FavouriteRepository) List(ctx context.Context) ([]types.FavouriteLocation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+favColumns+` FROM favourite_locations ORDER BY created_at, id`)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list favourites", err)
	}
	defer rows.Close()

	var out []types.FavouriteLocation
	for rows.Next() {
		fav, err := scanFavourite(rows)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan favourite", err)
		}
		out = append(out, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to iterate favourites", err)
	}
	return out, nil
}

// Delete removes a favourite; deleting an unknown ID is a not-found error.
func (r *FavouriteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favourite_locations WHERE id = $1`, id)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalDB, "failed to delete favourite", err)
	}
	if tag.RowsAffected() == 0 {
		return types.NewAppError(types.ErrCodeNotFoundFavourite, "favourite not found", nil)
	}
	return nil
}
