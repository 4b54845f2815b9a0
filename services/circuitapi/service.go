package circuitapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/arenahub/clientkit/core/apiclient"
)

const (
	publicBasePath = "/public/circuits"
	authBasePath   = "/circuits"
)

// Service wraps the circuit endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a circuit service over the given transport.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List returns public circuits matching the filters.
func (s *Service) List(ctx context.Context, filters Filters) ([]Circuit, error) {
	path := publicBasePath
	if query := filters.encode(); query != "" {
		path += "?" + query
	}

	var circuits []Circuit
	if err := s.client.Get(ctx, path, &circuits); err != nil {
		return nil, err
	}
	return circuits, nil
}

// GetBySlug returns one circuit with its full season tree.
func (s *Service) GetBySlug(ctx context.Context, slug string) (CircuitDetail, error) {
	var c CircuitDetail
	if err := s.client.Get(ctx, publicBasePath+"/"+url.PathEscape(slug), &c); err != nil {
		return CircuitDetail{}, err
	}
	return c, nil
}

// Mine returns the circuits the authenticated user organizes or competes in.
func (s *Service) Mine(ctx context.Context) ([]Circuit, error) {
	var circuits []Circuit
	if err := s.client.Get(ctx, authBasePath, &circuits); err != nil {
		return nil, err
	}
	return circuits, nil
}

func (f Filters) encode() string {
	values := url.Values{}
	if f.RegionID != uuid.Nil {
		values.Set("regionId", f.RegionID.String())
	}
	if f.Year != 0 {
		values.Set("year", strconv.Itoa(f.Year))
	}
	if f.CircuitType != "" {
		values.Set("circuitType", f.CircuitType)
	}
	return values.Encode()
}
