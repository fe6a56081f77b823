package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type countingPlayers struct {
	registered []string
}

func (p *countingPlayers) RegisterPlayer(ctx context.Context, input services.RegisterPlayerInput) (*models.Player, error) {
	p.registered = append(p.registered, input.Name)
	return &models.Player{ID: len(p.registered), Name: input.Name}, nil
}

func (p *countingPlayers) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return []models.Player{}, nil
}

func (p *countingPlayers) CountPlayers(ctx context.Context) (int, error) {
	return len(p.registered), nil
}

func (p *countingPlayers) DeletePlayers(ctx context.Context) error {
	p.registered = nil
	return nil
}

func newRouter(t *testing.T, players services.PlayerService) http.Handler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	router := chi.NewRouter()
	SetupRoutes(router, Handlers{
		Auth:   handlers.NewAuthHandler(services.NewAuthService(string(hash), "routes-secret", time.Hour)),
		Player: handlers.NewPlayerHandler(players),
	}, Options{
		JWTSecret:      []byte("routes-secret"),
		AllowedOrigins: []string{"*"},
	})
	return router
}

func do(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	players := &countingPlayers{}
	router := newRouter(t, players)

	rec := do(router, http.MethodPost, "/players", `{"name": "Alice"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, players.registered)

	rec = do(router, http.MethodPost, "/auth/login", `{"password": "wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(router, http.MethodPost, "/auth/login", `{"password": "letmein"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = do(router, http.MethodPost, "/players", `{"name": "Alice"}`, login.Token)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Alice"}, players.registered)

	rec = do(router, http.MethodDelete, "/players", "", login.Token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPublicRoutes(t *testing.T) {
	players := &countingPlayers{registered: []string{"a", "b", "c"}}
	router := newRouter(t, players)

	rec := do(router, http.MethodGet, "/players/count", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count": 3`)

	rec = do(router, http.MethodGet, "/players", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
