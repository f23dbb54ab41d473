package pricing

import (
	"sort"
	"time"

	"ferienwerk/internal/domain/stay"
)

type LineKind string

const (
	LineLodging  LineKind = "lodging"
	LineDiscount LineKind = "discount"
	LineFee      LineKind = "fee"
)

type NightPrice struct {
	Date            time.Time
	BaseCents       int64
	DiscountPercent int
	PriceCents      int64
}

// DiscountGroup aggregates the savings of all nights discounted at the same
// percent, for transparent invoice display.
type DiscountGroup struct {
	Percent     int
	Nights      int
	AmountCents int64
}

type InvoiceLine struct {
	Kind           LineKind
	Title          string
	Quantity       int
	Unit           string
	UnitPriceCents int64
	AmountCents    int64
	Groups         []DiscountGroup
}

type Quote struct {
	Stay           stay.DateRange
	Nights         []NightPrice
	BaseTotalCents int64
	SubtotalCents  int64
	SavingsCents   int64
	FeesTotalCents int64
	TotalCents     int64
	Lines          []InvoiceLine
}

// BuildQuote is a pure function: called twice with the same inputs it yields
// identical output, and it never touches storage.
//
// Per night the base price comes from the containing rate period, or zero
// when no period matches (unpriced nights are priced at zero, not rejected).
// The effective discount is the highest percent among offers covering the
// night; nights before today are never discounted. The total always equals
// the sum of the invoice line amounts.
func BuildQuote(today time.Time, r stay.DateRange, rates []RatePeriod, offers []Offer, fees []Fee) *Quote {
	todayDay := stay.DateOnly(today)
	nights := r.Nights()

	q := &Quote{
		Stay:   r,
		Nights: make([]NightPrice, 0, len(nights)),
	}

	for _, night := range nights {
		base := baseRateFor(night, rates)
		percent := 0
		if !night.Before(todayDay) {
			percent = maxDiscountFor(night, offers)
		}

		price := base
		if percent > 0 {
			price = applyPercentOff(base, percent)
		}

		q.Nights = append(q.Nights, NightPrice{
			Date:            night,
			BaseCents:       base,
			DiscountPercent: percent,
			PriceCents:      price,
		})
		q.BaseTotalCents += base
		q.SubtotalCents += price
	}
	q.SavingsCents = q.BaseTotalCents - q.SubtotalCents

	feeLines := make([]InvoiceLine, 0, len(fees))
	for _, f := range fees {
		line := InvoiceLine{
			Kind:           LineFee,
			Title:          f.Title,
			Quantity:       1,
			Unit:           "flat",
			UnitPriceCents: f.AmountCents,
			AmountCents:    f.AmountCents,
		}
		if f.PerNight {
			line.Quantity = len(nights)
			line.Unit = "night"
			line.AmountCents = f.AmountCents * int64(len(nights))
		}
		q.FeesTotalCents += line.AmountCents
		feeLines = append(feeLines, line)
	}

	q.TotalCents = q.SubtotalCents + q.FeesTotalCents
	q.Lines = buildLines(q, feeLines)
	return q
}

func baseRateFor(night time.Time, rates []RatePeriod) int64 {
	for _, rp := range rates {
		if rp.Stay.Contains(night) {
			return rp.NightlyCents
		}
	}
	return 0
}

func maxDiscountFor(night time.Time, offers []Offer) int {
	max := 0
	for _, o := range offers {
		if o.Stay.Contains(night) && o.Percent > max {
			max = o.Percent
		}
	}
	return max
}

// applyPercentOff rounds half-up to the cent.
func applyPercentOff(baseCents int64, percent int) int64 {
	return (baseCents*int64(100-percent) + 50) / 100
}

func buildLines(q *Quote, feeLines []InvoiceLine) []InvoiceLine {
	nightCount := len(q.Nights)

	lodging := InvoiceLine{
		Kind:        LineLodging,
		Title:       "Lodging",
		Quantity:    nightCount,
		Unit:        "night",
		AmountCents: q.BaseTotalCents,
	}
	if nightCount > 0 {
		// Representative average; individual nights may differ across
		// rate periods.
		lodging.UnitPriceCents = q.BaseTotalCents / int64(nightCount)
	}

	lines := []InvoiceLine{lodging}

	if q.SavingsCents > 0 {
		lines = append(lines, InvoiceLine{
			Kind:        LineDiscount,
			Title:       "Last-minute discount",
			Quantity:    discountedNightCount(q.Nights),
			Unit:        "night",
			AmountCents: -q.SavingsCents,
			Groups:      groupDiscounts(q.Nights),
		})
	}

	return append(lines, feeLines...)
}

func discountedNightCount(nights []NightPrice) int {
	n := 0
	for _, np := range nights {
		if np.DiscountPercent > 0 {
			n++
		}
	}
	return n
}

func groupDiscounts(nights []NightPrice) []DiscountGroup {
	byPercent := make(map[int]*DiscountGroup)
	for _, np := range nights {
		if np.DiscountPercent == 0 {
			continue
		}
		g, ok := byPercent[np.DiscountPercent]
		if !ok {
			g = &DiscountGroup{Percent: np.DiscountPercent}
			byPercent[np.DiscountPercent] = g
		}
		g.Nights++
		g.AmountCents += np.BaseCents - np.PriceCents
	}

	groups := make([]DiscountGroup, 0, len(byPercent))
	for _, g := range byPercent {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Percent > groups[j].Percent
	})
	return groups
}
