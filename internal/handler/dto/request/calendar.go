package request

import "github.com/google/uuid"

type SyncFeedRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
}

// ImportFeedRequest feeds the reconciler from a caller-supplied source
// instead of the stored feed URL. Exactly one of URL or ICS should be set.
type ImportFeedRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	URL        string    `json:"url"`
	ICS        string    `json:"ics"`
}
