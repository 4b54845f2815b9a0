package tournamentapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/arenahub/clientkit/core/apiclient"
)

const (
	publicBasePath = "/public/tournaments"
	authBasePath   = "/tournaments"
	matchBasePath  = "/matches"
)

// Lobby size bounds for a single game.
const (
	minPlacement = 1
	maxPlacement = 8
)

var (
	// ErrNoResults is returned when a submission carries no results.
	ErrNoResults = errors.New("results are required")
	// ErrPlacementOutOfRange is returned for placements outside the lobby bounds.
	ErrPlacementOutOfRange = errors.New("placement out of range")
	// ErrDuplicatePlacement is returned when two participants share a placement.
	ErrDuplicatePlacement = errors.New("duplicate placement")
	// ErrDuplicateParticipant is returned when one participant appears twice.
	ErrDuplicateParticipant = errors.New("duplicate participant")
)

// Service wraps the tournament endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a tournament service over the given transport.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List returns public tournaments matching the filters.
func (s *Service) List(ctx context.Context, filters Filters) ([]Tournament, error) {
	path := publicBasePath
	if query := filters.encode(); query != "" {
		path += "?" + query
	}

	var tournaments []Tournament
	if err := s.client.Get(ctx, path, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetBySlug returns one tournament by its public slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Tournament, error) {
	var t Tournament
	if err := s.client.Get(ctx, publicBasePath+"/"+url.PathEscape(slug), &t); err != nil {
		return Tournament{}, err
	}
	return t, nil
}

// Standings returns a tournament's server-computed ranking.
func (s *Service) Standings(ctx context.Context, slug string) ([]Standing, error) {
	var standings []Standing
	if err := s.client.Get(ctx, publicBasePath+"/"+url.PathEscape(slug)+"/standings", &standings); err != nil {
		return nil, err
	}
	return standings, nil
}

// Matches returns a tournament's scheduled and played games.
func (s *Service) Matches(ctx context.Context, slug string) ([]Match, error) {
	var matches []Match
	if err := s.client.Get(ctx, publicBasePath+"/"+url.PathEscape(slug)+"/matches", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Participants returns a tournament's registered entrants.
func (s *Service) Participants(ctx context.Context, slug string) ([]Participant, error) {
	var participants []Participant
	if err := s.client.Get(ctx, publicBasePath+"/"+url.PathEscape(slug)+"/participants", &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// Register enters the current user into a tournament.
func (s *Service) Register(ctx context.Context, tournamentID uuid.UUID, req RegisterRequest) (Participant, error) {
	var p Participant
	path := fmt.Sprintf("%s/%s/register", authBasePath, tournamentID)
	if err := s.client.Post(ctx, path, req, &p); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// CheckIn confirms the current user's presence before the tournament starts.
func (s *Service) CheckIn(ctx context.Context, tournamentID uuid.UUID) (Participant, error) {
	var p Participant
	path := fmt.Sprintf("%s/%s/check-in", authBasePath, tournamentID)
	if err := s.client.Post(ctx, path, nil, &p); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// SubmitResults uploads a game's placements after validating them
// client-side.
func (s *Service) SubmitResults(ctx context.Context, matchID uuid.UUID, req SubmitResultsRequest) error {
	if err := ValidateResults(req.Results); err != nil {
		return err
	}
	path := fmt.Sprintf("%s/%s/results", matchBasePath, matchID)
	return s.client.Post(ctx, path, req, nil)
}

// ValidateResults enforces the placement constraints for a single game:
// every placement is within the lobby bounds, no placement is used twice,
// and no participant appears twice.
func ValidateResults(results []ParticipantResult) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	placements := make(map[int]uuid.UUID, len(results))
	participants := make(map[uuid.UUID]struct{}, len(results))

	for _, r := range results {
		if r.Placement < minPlacement || r.Placement > maxPlacement {
			return fmt.Errorf("%w: %d (allowed %d-%d)", ErrPlacementOutOfRange, r.Placement, minPlacement, maxPlacement)
		}
		if other, taken := placements[r.Placement]; taken {
			return fmt.Errorf("%w: placement %d claimed by %s and %s", ErrDuplicatePlacement, r.Placement, other, r.ParticipantID)
		}
		if _, seen := participants[r.ParticipantID]; seen {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, r.ParticipantID)
		}
		placements[r.Placement] = r.ParticipantID
		participants[r.ParticipantID] = struct{}{}
	}
	return nil
}

func (f Filters) encode() string {
	values := url.Values{}
	if f.Status != "" {
		values.Set("status", f.Status)
	}
	if f.TournamentType != "" {
		values.Set("tournamentType", f.TournamentType)
	}
	if f.Region != "" {
		values.Set("region", f.Region)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values.Encode()
}
