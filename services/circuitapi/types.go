package circuitapi

import (
	"github.com/google/uuid"

	"github.com/arenahub/clientkit/services/regionapi"
	"github.com/arenahub/clientkit/services/tournamentapi"
)

// Circuit type values.
const (
	TypeOfficial  = "OFFICIAL"
	TypePartnered = "PARTNERED"
	TypeCommunity = "COMMUNITY"
	TypePrivate   = "PRIVATE"
)

// Season and stage lifecycle status values.
const (
	StatusUpcoming  = "UPCOMING"
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Stage type values.
const (
	StageQualifier = "QUALIFIER"
	StageFinals    = "FINALS"
	StagePlayoffs  = "PLAYOFFS"
	StageGroups    = "GROUPS"
	StageCustom    = "CUSTOM"
)

// UserSummary is the organizer's public identity on a circuit detail.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
}

// Stage is one phase of a season, carrying its tournaments.
type Stage struct {
	ID                 uuid.UUID                  `json:"id"`
	Name               string                     `json:"name"`
	Slug               string                     `json:"slug"`
	StageType          string                     `json:"stageType"`
	OrderIndex         int                        `json:"orderIndex"`
	StartDate          string                     `json:"startDate,omitempty"`
	EndDate            string                     `json:"endDate,omitempty"`
	Status             string                     `json:"status"`
	QualificationSpots int                        `json:"qualificationSpots,omitempty"`
	Tournaments        []tournamentapi.Tournament `json:"tournaments"`
}

// Season is one competitive year-slice of a circuit.
type Season struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate,omitempty"`
	Status      string    `json:"status"`
	OrderIndex  int       `json:"orderIndex"`
	Description string    `json:"description,omitempty"`
	Stages      []Stage   `json:"stages"`
}

// Circuit is a circuit as listed publicly.
type Circuit struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Region           *regionapi.Region `json:"region,omitempty"`
	Year             int               `json:"year"`
	CircuitType      string            `json:"circuitType"`
	LogoURL          string            `json:"logoUrl,omitempty"`
	BannerURL        string            `json:"bannerUrl,omitempty"`
	PrizePool        string            `json:"prizePool,omitempty"`
	IsFeatured       bool              `json:"isFeatured"`
	ActiveSeasonName string            `json:"activeSeasonName,omitempty"`
}

// CircuitDetail is the full circuit with its organizer and season tree.
type CircuitDetail struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Region      *regionapi.Region `json:"region,omitempty"`
	Year        int               `json:"year"`
	CircuitType string            `json:"circuitType"`
	Description string            `json:"description,omitempty"`
	LogoURL     string            `json:"logoUrl,omitempty"`
	BannerURL   string            `json:"bannerUrl,omitempty"`
	PrizePool   string            `json:"prizePool,omitempty"`
	IsFeatured  bool              `json:"isFeatured"`
	Organizer   *UserSummary      `json:"organizer,omitempty"`
	Seasons     []Season          `json:"seasons"`
}

// Filters narrows public circuit listings. Zero fields are omitted from the
// query string.
type Filters struct {
	RegionID    uuid.UUID
	Year        int
	CircuitType string
}
