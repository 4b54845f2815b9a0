package tournamentapi

import "github.com/google/uuid"

// Tournament lifecycle status values.
const (
	StatusDraft              = "DRAFT"
	StatusRegistrationOpen   = "REGISTRATION_OPEN"
	StatusRegistrationClosed = "REGISTRATION_CLOSED"
	StatusCheckIn            = "CHECK_IN"
	StatusInProgress         = "IN_PROGRESS"
	StatusCompleted          = "COMPLETED"
	StatusCancelled          = "CANCELLED"
)

// Tournament type values.
const (
	TypeOfficial  = "OFFICIAL"
	TypeCommunity = "COMMUNITY"
	TypePrivate   = "PRIVATE"
	TypeShowmatch = "SHOWMATCH"
)

// Tournament is a tournament as listed publicly.
type Tournament struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	Description         string    `json:"description,omitempty"`
	TournamentType      string    `json:"tournamentType"`
	Status              string    `json:"status"`
	RegistrationStart   string    `json:"registrationStart,omitempty"`
	RegistrationEnd     string    `json:"registrationEnd,omitempty"`
	StartDate           string    `json:"startDate,omitempty"`
	EndDate             string    `json:"endDate,omitempty"`
	MaxParticipants     int       `json:"maxParticipants,omitempty"`
	CurrentParticipants int       `json:"currentParticipants"`
	IsTeamBased         bool      `json:"isTeamBased"`
	PrizePool           string    `json:"prizePool,omitempty"`
	LogoURL             string    `json:"logoUrl,omitempty"`
	BannerURL           string    `json:"bannerUrl,omitempty"`
}

// Filters narrows public tournament listings. Zero fields are omitted from
// the query string.
type Filters struct {
	Status         string
	TournamentType string
	Region         string
	Search         string
}

// Participant is a registered tournament entrant with their running stats.
type Participant struct {
	ID               uuid.UUID `json:"id"`
	DisplayName      string    `json:"displayName,omitempty"`
	RiotID           string    `json:"riotId,omitempty"`
	Status           string    `json:"status"`
	Seed             int       `json:"seed,omitempty"`
	TotalPoints      int       `json:"totalPoints"`
	GamesPlayed      int       `json:"gamesPlayed"`
	Wins             int       `json:"wins"`
	Top4Count        int       `json:"top4Count"`
	AveragePlacement float64   `json:"averagePlacement,omitempty"`
	FinalRank        int       `json:"finalRank,omitempty"`
}

// Standing is one row of a tournament's ranking, computed server-side.
type Standing struct {
	Rank             int         `json:"rank"`
	Participant      Participant `json:"participant"`
	TotalPoints      int         `json:"totalPoints"`
	GamesPlayed      int         `json:"gamesPlayed"`
	Wins             int         `json:"wins"`
	Top4Count        int         `json:"top4Count"`
	AveragePlacement float64     `json:"averagePlacement,omitempty"`
	PlacementHistory string      `json:"placementHistory,omitempty"`
}

// Match status values.
const (
	MatchStatusScheduled  = "SCHEDULED"
	MatchStatusInProgress = "IN_PROGRESS"
	MatchStatusCompleted  = "COMPLETED"
)

// Match is a single scheduled game within a tournament round.
type Match struct {
	ID           uuid.UUID     `json:"id"`
	RoundNumber  int           `json:"roundNumber"`
	MatchNumber  int           `json:"matchNumber,omitempty"`
	Status       string        `json:"status"`
	ScheduledAt  string        `json:"scheduledAt,omitempty"`
	StartedAt    string        `json:"startedAt,omitempty"`
	CompletedAt  string        `json:"completedAt,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
}

// RegisterRequest carries optional registration details.
type RegisterRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	RiotID      string `json:"riotId,omitempty"`
}

// ParticipantResult is one participant's outcome in a single game.
type ParticipantResult struct {
	ParticipantID     uuid.UUID `json:"participantId"`
	Placement         int       `json:"placement"`
	FinalHealth       int       `json:"finalHealth,omitempty"`
	RoundsSurvived    int       `json:"roundsSurvived,omitempty"`
	PlayersEliminated int       `json:"playersEliminated,omitempty"`
	TotalDamageDealt  int       `json:"totalDamageDealt,omitempty"`
}

// SubmitResultsRequest carries the full placement list for a finished game.
type SubmitResultsRequest struct {
	Results []ParticipantResult `json:"results"`
}
