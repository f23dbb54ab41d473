package repository

import (
	"context"
	"errors"
	"time"

	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RatePeriodRepository struct {
	db DBTX
}

func NewRatePeriodRepository(db DBTX) *RatePeriodRepository {
	return &RatePeriodRepository{db: db}
}

func (r *RatePeriodRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]pricing.RatePeriod, error) {
	query := `
		SELECT id, property_id, start_date, end_date, nightly_cents
		FROM rate_periods
		WHERE property_id = $1
		ORDER BY start_date ASC`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate periods", err)
	}
	defer rows.Close()

	var result []pricing.RatePeriod
	for rows.Next() {
		rp, err := scanRatePeriod(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rate period rows", err)
	}
	return result, nil
}

func (r *RatePeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.RatePeriod, error) {
	query := `
		SELECT id, property_id, start_date, end_date, nightly_cents
		FROM rate_periods
		WHERE id = $1`

	var (
		rp                 pricing.RatePeriod
		startDate, endDate time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&rp.ID, &rp.PropertyID, &startDate, &endDate, &rp.NightlyCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rate period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rate period", err)
	}

	rng, err := stay.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rate period has invalid range", err)
	}
	rp.Stay = rng
	return &rp, nil
}

func (r *RatePeriodRepository) Create(ctx context.Context, rp pricing.RatePeriod) error {
	query := `
		INSERT INTO rate_periods (id, property_id, start_date, end_date, nightly_cents)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, rp.ID, rp.PropertyID, rp.Stay.Start(), rp.Stay.End(), rp.NightlyCents)
	if err != nil {
		return infra.WrapRepoErr("failed to create rate period", err)
	}
	return nil
}

func (r *RatePeriodRepository) Update(ctx context.Context, rp pricing.RatePeriod) error {
	query := `
		UPDATE rate_periods
		SET start_date = $2, end_date = $3, nightly_cents = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, rp.ID, rp.Stay.Start(), rp.Stay.End(), rp.NightlyCents)
	if err != nil {
		return infra.WrapRepoErr("failed to update rate period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate period not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RatePeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rate_periods WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rate period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate period not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRatePeriod(rows pgx.Rows) (pricing.RatePeriod, error) {
	var (
		rp                 pricing.RatePeriod
		startDate, endDate time.Time
	)
	if err := rows.Scan(&rp.ID, &rp.PropertyID, &startDate, &endDate, &rp.NightlyCents); err != nil {
		return pricing.RatePeriod{}, infra.WrapRepoErr("failed to scan rate period", err)
	}
	rng, err := stay.NewDateRange(startDate, endDate)
	if err != nil {
		return pricing.RatePeriod{}, infra.WrapRepoErr("stored rate period has invalid range", err)
	}
	rp.Stay = rng
	return rp, nil
}

type OfferRepository struct {
	db DBTX
}

func NewOfferRepository(db DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]pricing.Offer, error) {
	query := `
		SELECT id, property_id, start_date, end_date, percent, note
		FROM last_minute_offers
		WHERE property_id = $1
		ORDER BY start_date ASC, id ASC`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var result []pricing.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}
	return result, nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.Offer, error) {
	query := `
		SELECT id, property_id, start_date, end_date, percent, note
		FROM last_minute_offers
		WHERE id = $1`

	var (
		o                  pricing.Offer
		startDate, endDate time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.PropertyID, &startDate, &endDate, &o.Percent, &o.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}

	rng, err := stay.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored offer has invalid range", err)
	}
	o.Stay = rng
	return &o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o pricing.Offer) error {
	query := `
		INSERT INTO last_minute_offers (id, property_id, start_date, end_date, percent, note)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, o.ID, o.PropertyID, o.Stay.Start(), o.Stay.End(), o.Percent, o.Note)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, o pricing.Offer) error {
	query := `
		UPDATE last_minute_offers
		SET start_date = $2, end_date = $3, percent = $4, note = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, o.ID, o.Stay.Start(), o.Stay.End(), o.Percent, o.Note)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM last_minute_offers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanOffer(rows pgx.Rows) (pricing.Offer, error) {
	var (
		o                  pricing.Offer
		startDate, endDate time.Time
	)
	if err := rows.Scan(&o.ID, &o.PropertyID, &startDate, &endDate, &o.Percent, &o.Note); err != nil {
		return pricing.Offer{}, infra.WrapRepoErr("failed to scan offer", err)
	}
	rng, err := stay.NewDateRange(startDate, endDate)
	if err != nil {
		return pricing.Offer{}, infra.WrapRepoErr("stored offer has invalid range", err)
	}
	o.Stay = rng
	return o, nil
}

type FeeRepository struct {
	db DBTX
}

func NewFeeRepository(db DBTX) *FeeRepository {
	return &FeeRepository{db: db}
}

func (r *FeeRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]pricing.Fee, error) {
	query := `
		SELECT id, property_id, title, amount_cents, per_night
		FROM fees
		WHERE property_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fees", err)
	}
	defer rows.Close()

	var result []pricing.Fee
	for rows.Next() {
		var f pricing.Fee
		if err := rows.Scan(&f.ID, &f.PropertyID, &f.Title, &f.AmountCents, &f.PerNight); err != nil {
			return nil, infra.WrapRepoErr("failed to scan fee", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read fee rows", err)
	}
	return result, nil
}

func (r *FeeRepository) Create(ctx context.Context, f pricing.Fee) error {
	query := `
		INSERT INTO fees (id, property_id, title, amount_cents, per_night)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, f.ID, f.PropertyID, f.Title, f.AmountCents, f.PerNight)
	if err != nil {
		return infra.WrapRepoErr("failed to create fee", err)
	}
	return nil
}

func (r *FeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete fee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fee not found", nil, infra.KindNotFound)
	}
	return nil
}
