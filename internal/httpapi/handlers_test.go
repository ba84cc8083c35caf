package httpapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/images"
	"github.com/midlaj581/AUCTION-S7/internal/room"
	"github.com/midlaj581/AUCTION-S7/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.Default()
	rm := room.New(ctx,
		store.NewMemoryRoster(store.SeedPlayers()),
		store.NewMemoryTeams(store.SeedTeams()),
		cfg, zap.NewNop())
	srv := httptest.NewServer(SetupRoutes(rm, images.NewStore(), cfg, "", zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUploadRoundtrip(t *testing.T) {
	srv := newTestServer(t)

	raw := []byte{0xff, 0xd8, 0xff, 0xe0}
	body, _ := json.Marshal(map[string]string{
		"data": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw),
	})
	res, err := http.Post(srv.URL+"/api/upload", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	require.True(t, strings.HasPrefix(out.URL, "/api/img/"))

	img, err := http.Get(srv.URL + out.URL)
	require.NoError(t, err)
	defer img.Body.Close()
	assert.Equal(t, http.StatusOK, img.StatusCode)
	assert.Equal(t, "image/jpeg", img.Header.Get("Content-Type"))
}

func TestUploadRejectsNonImage(t *testing.T) {
	srv := newTestServer(t)

	body := `{"data":"data:text/plain;base64,aGVsbG8="}`
	res, err := http.Post(srv.URL+"/api/upload", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestImageNotFound(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/img/missing")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestStateSnapshot(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var snap map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&snap))
	for _, key := range []string{"auctionState", "teams", "players", "config"} {
		assert.Contains(t, snap, key)
	}

	// The admin password must never leave the process.
	var cfg map[string]any
	require.NoError(t, json.Unmarshal(snap["config"], &cfg))
	assert.NotContains(t, cfg, "adminPassword")
}
