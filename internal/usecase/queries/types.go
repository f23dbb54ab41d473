package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	GuestName string    `json:"guest_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type NightPriceView struct {
	Date            string `json:"date"`
	BaseCents       int64  `json:"base_cents"`
	DiscountPercent int    `json:"discount_percent"`
	PriceCents      int64  `json:"price_cents"`
}

type DiscountGroupView struct {
	Percent     int   `json:"percent"`
	Nights      int   `json:"nights"`
	AmountCents int64 `json:"amount_cents"`
}

type InvoiceLineView struct {
	Kind           string              `json:"kind"`
	Title          string              `json:"title"`
	Quantity       int                 `json:"quantity"`
	Unit           string              `json:"unit"`
	UnitPriceCents int64               `json:"unit_price_cents"`
	AmountCents    int64               `json:"amount_cents"`
	Groups         []DiscountGroupView `json:"groups,omitempty"`
}

type QuoteView struct {
	PropertyID     uuid.UUID         `json:"property_id"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	NightCount     int               `json:"night_count"`
	Breakdown      []NightPriceView  `json:"breakdown"`
	BaseTotalCents int64             `json:"base_total_cents"`
	SubtotalCents  int64             `json:"subtotal_cents"`
	SavingsCents   int64             `json:"savings_cents"`
	FeesTotalCents int64             `json:"fees_total_cents"`
	TotalCents     int64             `json:"total_cents"`
	Lines          []InvoiceLineView `json:"lines"`
}

type RatePeriodView struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	NightlyCents int64     `json:"nightly_cents"`
}

type OfferView struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Percent    int       `json:"percent"`
	Note       string    `json:"note,omitempty"`
}

type FeeView struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
	PerNight    bool      `json:"per_night"`
}
