package tournamentapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenahub/clientkit/core/apiclient"
	"github.com/arenahub/clientkit/services/tournamentapi"
)

func newService(t *testing.T, handler http.Handler) *tournamentapi.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return tournamentapi.New(client)
}

func TestService_List(t *testing.T) {
	t.Parallel()

	t.Run("encodes filters as query parameters", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		mux := http.NewServeMux()
		mux.HandleFunc("GET /public/tournaments", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"` + uuid.New().String() + `","name":"Weekly Cup","slug":"weekly-cup","tournamentType":"COMMUNITY","status":"REGISTRATION_OPEN","currentParticipants":12}]`))
		})

		svc := newService(t, mux)

		tournaments, err := svc.List(context.Background(), tournamentapi.Filters{
			Status: tournamentapi.StatusRegistrationOpen,
			Search: "weekly",
		})
		require.NoError(t, err)
		require.Len(t, tournaments, 1)
		assert.Equal(t, "weekly-cup", tournaments[0].Slug)
		assert.Equal(t, []string{"REGISTRATION_OPEN"}, gotQuery["status"])
		assert.Equal(t, []string{"weekly"}, gotQuery["search"])
		assert.NotContains(t, gotQuery, "region", "zero filters are omitted")
	})

	t.Run("empty filters produce a bare path", func(t *testing.T) {
		t.Parallel()

		var gotURI string
		mux := http.NewServeMux()
		mux.HandleFunc("GET /public/tournaments", func(w http.ResponseWriter, r *http.Request) {
			gotURI = r.URL.RequestURI()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})

		svc := newService(t, mux)

		_, err := svc.List(context.Background(), tournamentapi.Filters{})
		require.NoError(t, err)
		assert.Equal(t, "/public/tournaments", gotURI)
	})
}

func TestService_Standings(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /public/tournaments/weekly-cup/standings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"rank":        1,
				"totalPoints": 42,
				"gamesPlayed": 6,
				"wins":        3,
				"top4Count":   5,
				"participant": map[string]any{
					"id":          uuid.New().String(),
					"displayName": "Ada",
					"status":      "PLAYING",
					"totalPoints": 42,
				},
			},
		})
	})

	svc := newService(t, mux)

	standings, err := svc.Standings(context.Background(), "weekly-cup")
	require.NoError(t, err)
	require.Len(t, standings, 1)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "Ada", standings[0].Participant.DisplayName)
}

func TestService_Matches(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /public/tournaments/weekly-cup/matches", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":          uuid.New().String(),
				"roundNumber": 2,
				"matchNumber": 1,
				"status":      "COMPLETED",
			},
			{
				"id":          uuid.New().String(),
				"roundNumber": 3,
				"status":      "SCHEDULED",
			},
		})
	})

	svc := newService(t, mux)

	matches, err := svc.Matches(context.Background(), "weekly-cup")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].RoundNumber)
	assert.Equal(t, tournamentapi.MatchStatusCompleted, matches[0].Status)
	assert.Equal(t, tournamentapi.MatchStatusScheduled, matches[1].Status)
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	tournamentID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tournaments/"+tournamentID.String()+"/register", func(w http.ResponseWriter, r *http.Request) {
		var req tournamentapi.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          uuid.New().String(),
			"displayName": req.DisplayName,
			"status":      "REGISTERED",
		})
	})

	svc := newService(t, mux)

	p, err := svc.Register(context.Background(), tournamentID, tournamentapi.RegisterRequest{DisplayName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "REGISTERED", p.Status)
	assert.Equal(t, "Ada", p.DisplayName)
}

func TestService_SubmitResults(t *testing.T) {
	t.Parallel()

	t.Run("submits a valid placement set", func(t *testing.T) {
		t.Parallel()

		matchID := uuid.New()
		var got tournamentapi.SubmitResultsRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /matches/"+matchID.String()+"/results", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		})

		svc := newService(t, mux)

		err := svc.SubmitResults(context.Background(), matchID, tournamentapi.SubmitResultsRequest{
			Results: []tournamentapi.ParticipantResult{
				{ParticipantID: uuid.New(), Placement: 1},
				{ParticipantID: uuid.New(), Placement: 2},
			},
		})
		require.NoError(t, err)
		assert.Len(t, got.Results, 2)
	})

	t.Run("rejects invalid results without a request", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued")
		}))

		err := svc.SubmitResults(context.Background(), uuid.New(), tournamentapi.SubmitResultsRequest{
			Results: []tournamentapi.ParticipantResult{
				{ParticipantID: uuid.New(), Placement: 1},
				{ParticipantID: uuid.New(), Placement: 1},
			},
		})
		assert.ErrorIs(t, err, tournamentapi.ErrDuplicatePlacement)
	})
}

func TestValidateResults(t *testing.T) {
	t.Parallel()

	p1, p2 := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		results []tournamentapi.ParticipantResult
		wantErr error
	}{
		{
			name: "full lobby with unique placements",
			results: []tournamentapi.ParticipantResult{
				{ParticipantID: uuid.New(), Placement: 1},
				{ParticipantID: uuid.New(), Placement: 2},
				{ParticipantID: uuid.New(), Placement: 3},
				{ParticipantID: uuid.New(), Placement: 4},
				{ParticipantID: uuid.New(), Placement: 5},
				{ParticipantID: uuid.New(), Placement: 6},
				{ParticipantID: uuid.New(), Placement: 7},
				{ParticipantID: uuid.New(), Placement: 8},
			},
		},
		{
			name:    "empty",
			wantErr: tournamentapi.ErrNoResults,
		},
		{
			name: "placement zero",
			results: []tournamentapi.ParticipantResult{
				{ParticipantID: p1, Placement: 0},
			},
			wantErr: tournamentapi.ErrPlacementOutOfRange,
		},
		{
			name: "placement above lobby size",
			results: []tournamentapi.ParticipantResult{
				{ParticipantID: p1, Placement: 9},
			},
			wantErr: tournamentapi.ErrPlacementOutOfRange,
		},
		{
			name: "duplicate placement",
			results: []tournamentapi.ParticipantResult{
				{ParticipantID: p1, Placement: 3},
				{ParticipantID: p2, Placement: 3},
			},
			wantErr: tournamentapi.ErrDuplicatePlacement,
		},
		{
			name: "same participant twice",
			results: []tournamentapi.ParticipantResult{
				{ParticipantID: p1, Placement: 1},
				{ParticipantID: p1, Placement: 2},
			},
			wantErr: tournamentapi.ErrDuplicateParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tournamentapi.ValidateResults(tt.results)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
