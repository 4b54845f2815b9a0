package mediaapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenahub/clientkit/core/apiclient"
)

var (
	// ErrTitleRequired is returned when an upload carries no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrTypeRequired is returned when an upload carries no media type.
	ErrTypeRequired = errors.New("media type is required")
	// ErrChannelRequired is returned when an import names no Twitch channel.
	ErrChannelRequired = errors.New("twitch channel is required")
	// ErrPeriodRequired is returned when an import omits its time window.
	ErrPeriodRequired = errors.New("import period is required")
	// ErrInvalidDecision is returned for moderation statuses other than
	// approved or rejected.
	ErrInvalidDecision = errors.New("moderation decision must approve or reject")
	// ErrConsentIncomplete is returned when a consent request is missing its
	// caster, tournament or method.
	ErrConsentIncomplete = errors.New("consent request is incomplete")
)

// Service wraps the media endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a media service over the given transport.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// TournamentMedia returns a tournament's publicly visible media.
func (s *Service) TournamentMedia(ctx context.Context, tournamentID uuid.UUID) ([]Media, error) {
	var media []Media
	path := fmt.Sprintf("/public/tournaments/%s/media", tournamentID)
	if err := s.client.Get(ctx, path, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// GetByID returns one media item.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Media, error) {
	var m Media
	if err := s.client.Get(ctx, fmt.Sprintf("/public/media/%s", id), &m); err != nil {
		return Media{}, err
	}
	return m, nil
}

// ImportFromTwitch pulls a channel's recordings for the given window into the
// tournament's media pool.
func (s *Service) ImportFromTwitch(ctx context.Context, tournamentID uuid.UUID, req ImportRequest) ([]Media, error) {
	if req.TwitchChannelID == "" {
		return nil, ErrChannelRequired
	}
	if req.Since == "" || req.Until == "" {
		return nil, ErrPeriodRequired
	}

	var media []Media
	path := fmt.Sprintf("/tournaments/%s/media/import", tournamentID)
	if err := s.client.Post(ctx, path, req, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// Upload registers a new media item against a tournament.
func (s *Service) Upload(ctx context.Context, tournamentID uuid.UUID, req UploadRequest) (Media, error) {
	if req.Title == "" {
		return Media{}, ErrTitleRequired
	}
	if req.Type == "" {
		return Media{}, ErrTypeRequired
	}

	var m Media
	path := fmt.Sprintf("/tournaments/%s/media/upload", tournamentID)
	if err := s.client.Post(ctx, path, req, &m); err != nil {
		return Media{}, err
	}
	return m, nil
}

// UpdateStatus records a moderation decision for a media item. Only approval
// and rejection are decisions; pending is the state under review.
func (s *Service) UpdateStatus(ctx context.Context, mediaID uuid.UUID, req StatusUpdateRequest) (Media, error) {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return Media{}, fmt.Errorf("%w: %q", ErrInvalidDecision, req.Status)
	}

	var m Media
	if err := s.client.Put(ctx, fmt.Sprintf("/media/%s/status", mediaID), req, &m); err != nil {
		return Media{}, err
	}
	return m, nil
}

// CreateConsent stores a caster's broadcast consent for a tournament.
func (s *Service) CreateConsent(ctx context.Context, req ConsentRequest) (Consent, error) {
	if req.CasterID == uuid.Nil || req.TournamentID == uuid.Nil || req.ConsentMethod == "" {
		return Consent{}, ErrConsentIncomplete
	}

	var c Consent
	if err := s.client.Post(ctx, "/media/consent", req, &c); err != nil {
		return Consent{}, err
	}
	return c, nil
}
