// Package ical adapts external iCal calendars to the reconciler's normalized
// event model and serializes bookings back out for partner calendars.
package ical

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/pkg/config"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/commands"

	ics "github.com/arran4/golang-ical"
)

type Parser struct {
	client       *http.Client
	maxBodyBytes int64
}

func NewParser(cfg config.FeedConfig) *Parser {
	return &Parser{
		client:       &http.Client{Timeout: cfg.FetchTimeout},
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Parse fetches (when given a URL) and normalizes an ICS document. DTEND is
// exclusive in iCal, which matches the half-open booking model directly;
// timed events are rounded down to calendar days. Events without a usable
// start/end or with end <= start are dropped, not errors.
func (p *Parser) Parse(ctx context.Context, src commands.FeedSource) ([]commands.FeedEvent, error) {
	data := src.Raw
	if src.URL != "" {
		fetched, err := p.fetch(ctx, src.URL)
		if err != nil {
			return nil, err
		}
		data = fetched
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(err, "malformed ics document")
	}

	var events []commands.FeedEvent
	for _, ev := range cal.Events() {
		start, ok := eventStart(ev)
		if !ok {
			continue
		}
		end, ok := eventEnd(ev)
		if !ok {
			continue
		}

		r, err := stay.NewDateRange(start, end)
		if err != nil {
			continue
		}
		events = append(events, commands.FeedEvent{
			Stay:    r,
			Summary: eventSummary(ev),
		})
	}
	return events, nil
}

func (p *Parser) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "invalid feed url")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("feed returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodyBytes))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read feed body")
	}
	return data, nil
}

// eventStart handles both timed (DTSTART) and all-day (DTSTART;VALUE=DATE)
// events.
func eventStart(ev *ics.VEvent) (time.Time, bool) {
	if t, err := ev.GetStartAt(); err == nil {
		return t, true
	}
	if t, err := ev.GetAllDayStartAt(); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func eventEnd(ev *ics.VEvent) (time.Time, bool) {
	if t, err := ev.GetEndAt(); err == nil {
		return t, true
	}
	if t, err := ev.GetAllDayEndAt(); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func eventSummary(ev *ics.VEvent) string {
	prop := ev.GetProperty(ics.ComponentPropertySummary)
	if prop == nil {
		return ""
	}
	return prop.Value
}
