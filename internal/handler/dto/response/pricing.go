package response

import (
	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"

	"github.com/google/uuid"
)

type RatePeriodResponse struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	NightlyCents int64     `json:"nightly_cents"`
}

func FromRatePeriod(p *pricing.RatePeriod) *RatePeriodResponse {
	return &RatePeriodResponse{
		ID:           p.ID,
		PropertyID:   p.PropertyID,
		StartDate:    p.Stay.Start().Format(stay.ISODate),
		EndDate:      p.Stay.End().Format(stay.ISODate),
		NightlyCents: p.NightlyCents,
	}
}

type OfferResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Percent    int       `json:"percent"`
	Note       string    `json:"note,omitempty"`
}

func FromOffer(o *pricing.Offer) *OfferResponse {
	return &OfferResponse{
		ID:         o.ID,
		PropertyID: o.PropertyID,
		StartDate:  o.Stay.Start().Format(stay.ISODate),
		EndDate:    o.Stay.End().Format(stay.ISODate),
		Percent:    o.Percent,
		Note:       o.Note,
	}
}

type FeeResponse struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
	PerNight    bool      `json:"per_night"`
}

func FromFee(f *pricing.Fee) *FeeResponse {
	return &FeeResponse{
		ID:          f.ID,
		PropertyID:  f.PropertyID,
		Title:       f.Title,
		AmountCents: f.AmountCents,
		PerNight:    f.PerNight,
	}
}
