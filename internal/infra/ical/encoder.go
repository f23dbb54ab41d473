package ical

import (
	"fmt"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/usecase/shared"

	ics "github.com/arran4/golang-ical"
)

const calendarProductID = "-//ferienwerk//booking calendar//EN"

type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders confirmed bookings as all-day VEVENTs. DTEND stays
// exclusive, so a consumer of this feed reconstructs exactly the stored
// half-open ranges.
func (e *Encoder) Encode(prop *shared.PropertySnapshot, bookings []*booking.Booking) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	now := time.Now().UTC()
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("booking-%s@ferienwerk", b.ID()))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(b.Stay().Start())
		ev.SetAllDayEndAt(b.Stay().End())
		ev.SetSummary(fmt.Sprintf("%s – booked", prop.Title))
		ev.SetStatus(ics.ObjectStatusConfirmed)
	}

	return []byte(cal.Serialize()), nil
}
