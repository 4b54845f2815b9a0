package regionapi

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/arenahub/clientkit/core/apiclient"
)

const basePath = "/public/regions"

// Region is a geographic region tournaments and circuits are scoped to.
type Region struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Timezone string    `json:"timezone"`
	Servers  []string  `json:"servers"`
	LogoURL  string    `json:"logoUrl,omitempty"`
}

// Service wraps the region endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a region service over the given transport.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List returns all active regions.
func (s *Service) List(ctx context.Context) ([]Region, error) {
	var regions []Region
	if err := s.client.Get(ctx, basePath, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// GetByCode returns one region by its short code, e.g. "EUW".
func (s *Service) GetByCode(ctx context.Context, code string) (Region, error) {
	var r Region
	if err := s.client.Get(ctx, basePath+"/"+url.PathEscape(code), &r); err != nil {
		return Region{}, err
	}
	return r, nil
}
