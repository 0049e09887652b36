package calendar

import "context"

// Service defines the interface for the merged calendar feed
type Service interface {
	// GetEvents returns all fixtures and sessions inside an inclusive date
	// range as a single chronologically ordered event feed
	GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error)
}
