package mediaapi

import "github.com/google/uuid"

// Media type values.
const (
	TypeTwitchVOD  = "TWITCH_VOD"
	TypeTwitchClip = "TWITCH_CLIP"
	TypeUpload     = "UPLOAD"
	TypeYouTube    = "YOUTUBE"
	TypeScreenshot = "SCREENSHOT"
	TypeOther      = "OTHER"
)

// Media moderation status values.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Consent method values.
const (
	ConsentOAuthTwitch = "OAUTH_TWITCH"
	ConsentManual      = "MANUAL"
	ConsentEmail       = "EMAIL"
	ConsentImplicit    = "IMPLICIT"
)

// CasterInfo identifies the caster a media item belongs to.
type CasterInfo struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
}

// Media is one VOD, clip or screenshot attached to a tournament.
type Media struct {
	ID           uuid.UUID   `json:"id"`
	Caster       *CasterInfo `json:"caster,omitempty"`
	Type         string      `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	EmbedURL     string      `json:"embedUrl,omitempty"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	MatchID      string      `json:"matchId,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
}

// ImportRequest asks the backend to pull a Twitch channel's recordings for a
// time window.
type ImportRequest struct {
	TwitchChannelID string `json:"twitchChannelId"`
	Since           string `json:"since"`
	Until           string `json:"until"`
	AutoApprove     bool   `json:"autoApprove,omitempty"`
}

// UploadRequest registers a single media item against a tournament.
type UploadRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	MatchID     string `json:"matchId,omitempty"`
}

// StatusUpdateRequest carries a moderation decision.
type StatusUpdateRequest struct {
	Status      string    `json:"status"`
	ModeratorID uuid.UUID `json:"moderatorId,omitempty"`
	Comment     string    `json:"comment,omitempty"`
}

// ConsentRequest records a caster's broadcast consent for a tournament.
type ConsentRequest struct {
	CasterID      uuid.UUID `json:"casterId"`
	TournamentID  uuid.UUID `json:"tournamentId"`
	ConsentMethod string    `json:"consentMethod"`
	ProofURL      string    `json:"proofUrl,omitempty"`
}

// Consent is a stored broadcast consent record.
type Consent struct {
	ID            uuid.UUID `json:"id"`
	CasterID      uuid.UUID `json:"casterId"`
	TournamentID  uuid.UUID `json:"tournamentId"`
	ConsentMethod string    `json:"consentMethod"`
	IsActive      bool      `json:"isActive"`
}
