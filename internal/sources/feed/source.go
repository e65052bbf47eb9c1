package feed

import (
	"context"
	"time"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
)

// Source combines the loader and mapper into the scheduler's
// EventSource capability.
type Source struct {
	loader *Loader
	mapper *Mapper
}

// NewSource creates a feed source for the given endpoint.
func NewSource(url string, timeout time.Duration) *Source {
	return &Source{
		loader: NewLoader(url, timeout),
		mapper: NewMapper(),
	}
}

// Fetch loads the feed and returns the mapped domain events.
func (s *Source) Fetch(ctx context.Context) ([]domain.FeedEvent, error) {
	wire, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.MapEvents(wire), nil
}
