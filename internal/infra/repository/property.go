package repository

import (
	"context"
	"errors"
	"time"

	"ferienwerk/internal/infra"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyRepository struct {
	db DBTX
}

func NewPropertyRepository(db DBTX) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyColumns = `id, slug, title, location, max_guests, dogs_allowed,
       feed_url, feed_attempted_at, feed_synced_at`

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return r.scanProperty(r.db.QueryRow(ctx, query, id))
}

func (r *PropertyRepository) FindBySlug(ctx context.Context, slug string) (*shared.PropertySnapshot, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE slug = $1`
	return r.scanProperty(r.db.QueryRow(ctx, query, slug))
}

// Lock serializes writers on one property for the rest of the transaction.
func (r *PropertyRepository) Lock(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM properties WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock property", err)
	}
	return nil
}

func (r *PropertyRepository) MarkFeedAttempted(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE properties SET feed_attempted_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record feed attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) MarkFeedSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE properties SET feed_synced_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record feed sync", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) scanProperty(row pgx.Row) (*shared.PropertySnapshot, error) {
	var p shared.PropertySnapshot
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Location,
		&p.MaxGuests,
		&p.DogsAllowed,
		&p.FeedURL,
		&p.FeedAttemptedAt,
		&p.FeedSyncedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	return &p, nil
}
