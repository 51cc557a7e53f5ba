package domain

import "time"

// EventType represents the type of a company event
type EventType string

const (
	EventTypeListingCreated       EventType = "listing.created"
	EventTypeTokensPurchased      EventType = "tokens.purchased"
	EventTypeListingLaunched      EventType = "listing.launched"
	EventTypePipelineTransitioned EventType = "pipeline.transitioned"
	EventTypeRevenueDistributed   EventType = "revenue.distributed"
)

// Event is the envelope published for marketplace and pipeline changes
type Event struct {
	Type      EventType `json:"type"`
	Subject   string    `json:"subject"` // listing id, company id or pipeline run id
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
