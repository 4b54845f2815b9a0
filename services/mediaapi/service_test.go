package mediaapi_test

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
	"github.com/arenahub/clientkit/services/mediaapi"
)

func newService(t *testing.T, handler http.Handler) *mediaapi.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mediaapi.New(client)
}

func TestService_TournamentMedia(t *testing.T) {
	t.Parallel()

	tournamentID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /public/tournaments/"+tournamentID.String()+"/media", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":        uuid.New().String(),
				"type":      "TWITCH_VOD",
				"title":     "Grand Final",
				"status":    "APPROVED",
				"createdAt": "2026-08-01T20:00:00Z",
				"caster":    map[string]any{"id": uuid.New().String(), "displayName": "Ada"},
			},
		})
	})

	svc := newService(t, mux)

	media, err := svc.TournamentMedia(context.Background(), tournamentID)
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, mediaapi.TypeTwitchVOD, media[0].Type)
	require.NotNil(t, media[0].Caster)
	assert.Equal(t, "Ada", media[0].Caster.DisplayName)
}

func TestService_ImportFromTwitch(t *testing.T) {
	t.Parallel()

	t.Run("submits a complete import request", func(t *testing.T) {
		t.Parallel()

		tournamentID := uuid.New()
		var got mediaapi.ImportRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /tournaments/"+tournamentID.String()+"/media/import", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"` + uuid.New().String() + `","type":"TWITCH_VOD","title":"Day 1","status":"PENDING","createdAt":"2026-08-01T20:00:00Z"}]`))
		})

		svc := newService(t, mux)

		media, err := svc.ImportFromTwitch(context.Background(), tournamentID, mediaapi.ImportRequest{
			TwitchChannelID: "chan-1",
			Since:           "2026-08-01T00:00:00Z",
			Until:           "2026-08-02T00:00:00Z",
		})
		require.NoError(t, err)
		require.Len(t, media, 1)
		assert.Equal(t, "chan-1", got.TwitchChannelID)
	})

	t.Run("rejects incomplete requests without issuing them", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued")
		}))

		_, err := svc.ImportFromTwitch(context.Background(), uuid.New(), mediaapi.ImportRequest{
			Since: "2026-08-01T00:00:00Z",
			Until: "2026-08-02T00:00:00Z",
		})
		assert.ErrorIs(t, err, mediaapi.ErrChannelRequired)

		_, err = svc.ImportFromTwitch(context.Background(), uuid.New(), mediaapi.ImportRequest{
			TwitchChannelID: "chan-1",
		})
		assert.ErrorIs(t, err, mediaapi.ErrPeriodRequired)
	})
}

func TestService_Upload(t *testing.T) {
	t.Parallel()

	t.Run("uploads a titled media item", func(t *testing.T) {
		t.Parallel()

		tournamentID := uuid.New()
		mux := http.NewServeMux()
		mux.HandleFunc("POST /tournaments/"+tournamentID.String()+"/media/upload", func(w http.ResponseWriter, r *http.Request) {
			var req mediaapi.UploadRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":        uuid.New().String(),
				"type":      req.Type,
				"title":     req.Title,
				"status":    "PENDING",
				"createdAt": "2026-08-01T20:00:00Z",
			})
		})

		svc := newService(t, mux)

		m, err := svc.Upload(context.Background(), tournamentID, mediaapi.UploadRequest{
			Title: "Semifinal highlights",
			Type:  mediaapi.TypeYouTube,
		})
		require.NoError(t, err)
		assert.Equal(t, "Semifinal highlights", m.Title)
		assert.Equal(t, mediaapi.StatusPending, m.Status)
	})

	t.Run("rejects missing title or type", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued")
		}))

		_, err := svc.Upload(context.Background(), uuid.New(), mediaapi.UploadRequest{Type: mediaapi.TypeUpload})
		assert.ErrorIs(t, err, mediaapi.ErrTitleRequired)

		_, err = svc.Upload(context.Background(), uuid.New(), mediaapi.UploadRequest{Title: "Clip"})
		assert.ErrorIs(t, err, mediaapi.ErrTypeRequired)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("records an approval", func(t *testing.T) {
		t.Parallel()

		mediaID := uuid.New()
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /media/"+mediaID.String()+"/status", func(w http.ResponseWriter, r *http.Request) {
			var req mediaapi.StatusUpdateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":        mediaID.String(),
				"type":      "TWITCH_CLIP",
				"title":     "Clip",
				"status":    req.Status,
				"createdAt": "2026-08-01T20:00:00Z",
			})
		})

		svc := newService(t, mux)

		m, err := svc.UpdateStatus(context.Background(), mediaID, mediaapi.StatusUpdateRequest{
			Status: mediaapi.StatusApproved,
		})
		require.NoError(t, err)
		assert.Equal(t, mediaapi.StatusApproved, m.Status)
	})

	t.Run("rejects a non-decision status", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued")
		}))

		_, err := svc.UpdateStatus(context.Background(), uuid.New(), mediaapi.StatusUpdateRequest{
			Status: mediaapi.StatusPending,
		})
		assert.ErrorIs(t, err, mediaapi.ErrInvalidDecision)
	})
}

func TestService_CreateConsent(t *testing.T) {
	t.Parallel()

	t.Run("stores a complete consent", func(t *testing.T) {
		t.Parallel()

		casterID, tournamentID := uuid.New(), uuid.New()
		mux := http.NewServeMux()
		mux.HandleFunc("POST /media/consent", func(w http.ResponseWriter, r *http.Request) {
			var req mediaapi.ConsentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":            uuid.New().String(),
				"casterId":      req.CasterID.String(),
				"tournamentId":  req.TournamentID.String(),
				"consentMethod": req.ConsentMethod,
				"isActive":      true,
			})
		})

		svc := newService(t, mux)

		c, err := svc.CreateConsent(context.Background(), mediaapi.ConsentRequest{
			CasterID:      casterID,
			TournamentID:  tournamentID,
			ConsentMethod: mediaapi.ConsentOAuthTwitch,
		})
		require.NoError(t, err)
		assert.Equal(t, casterID, c.CasterID)
		assert.True(t, c.IsActive)
	})

	t.Run("rejects an incomplete consent", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued")
		}))

		_, err := svc.CreateConsent(context.Background(), mediaapi.ConsentRequest{
			CasterID: uuid.New(),
		})
		assert.ErrorIs(t, err, mediaapi.ErrConsentIncomplete)
	})
}
