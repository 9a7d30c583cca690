package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NZWalks-API/internal/application"
	"NZWalks-API/internal/auth"
	"NZWalks-API/internal/config"
	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/middleware"
	"NZWalks-API/internal/repository"
	"NZWalks-API/internal/store"
	"NZWalks-API/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	tokens *auth.TokenManager
}

type serverOptions struct {
	auth       bool
	validation bool
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	s := store.NewMemoryStore()
	logger := zerolog.Nop()

	var v RequestValidator
	if opts.validation {
		v = validation.New()
	}

	authz := middleware.NewAuthorizer(nil)
	var tokens *auth.TokenManager
	if opts.auth {
		var err error
		tokens, err = auth.NewTokenManager(config.AuthConfig{
			Enabled:   true,
			JWTSecret: "handler-secret",
			Issuer:    "nzwalks-api",
			Audience:  "nzwalks-api",
			TokenTTL:  time.Hour,
		})
		require.NoError(t, err)
		authz = middleware.NewAuthorizer(tokens)
	}

	r := gin.New()
	RegisterRoutes(r, Handlers{
		Health:           NewHealthHandler(s, logger),
		Regions:          NewRegionsHandler(application.NewRegionsService(repository.NewStoreRegionsRepository(s)), v, logger),
		WalkDifficulties: NewWalkDifficultiesHandler(application.NewWalkDifficultiesService(repository.NewStoreWalkDifficultiesRepository(s)), v, logger),
		Walks:            NewWalksHandler(application.NewWalksService(repository.NewStoreWalksRepository(s, logger)), v, logger),
	}, authz)

	return &testServer{router: r, tokens: tokens}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, roles ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if ts.tokens != nil && len(roles) > 0 {
		token, err := ts.tokens.Issue("tester", roles, 0)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestWalksAPI_MilfordTrack(t *testing.T) {
	ts := newTestServer(t, serverOptions{validation: true})

	w := ts.do(t, http.MethodPost, "/regions", map[string]any{"name": "Fiordland", "code": "FIO"})
	require.Equal(t, http.StatusCreated, w.Code)
	region := decode[model.RegionResponse](t, w)
	assert.Equal(t, "/regions/"+region.ID, w.Header().Get("Location"))

	w = ts.do(t, http.MethodPost, "/walk-difficulties", map[string]any{"code": "Hard"})
	require.Equal(t, http.StatusCreated, w.Code)
	difficulty := decode[model.WalkDifficultyResponse](t, w)

	w = ts.do(t, http.MethodPost, "/walks", map[string]any{
		"id":                 "client-chosen",
		"name":               "Milford Track",
		"length":             53.5,
		"region_id":          region.ID,
		"walk_difficulty_id": difficulty.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	walk := decode[model.WalkResponse](t, w)
	assert.NotEqual(t, "client-chosen", walk.ID)
	assert.Equal(t, "/walks/"+walk.ID, w.Header().Get("Location"))

	w = ts.do(t, http.MethodGet, "/walks/"+walk.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.WalkResponse](t, w)
	require.NotNil(t, got.Region)
	require.NotNil(t, got.WalkDifficulty)
	assert.Equal(t, "Fiordland", got.Region.Name)
	assert.Equal(t, "Hard", got.WalkDifficulty.Code)

	w = ts.do(t, http.MethodDelete, "/walk-difficulties/"+difficulty.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/walks/"+walk.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	raw := decode[map[string]any](t, w)
	assert.Nil(t, raw["walk_difficulty"])
	assert.Equal(t, difficulty.ID, raw["walk_difficulty_id"])

	w = ts.do(t, http.MethodGet, "/walks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.WalkResponse](t, w), 1)

	w = ts.do(t, http.MethodDelete, "/walks/"+walk.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(t, http.MethodDelete, "/walks/"+walk.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_NotFound(t *testing.T) {
	ts := newTestServer(t, serverOptions{validation: true})

	paths := []string{"/regions/missing", "/walk-difficulties/missing", "/walks/missing"}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, p, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "not_found", decode[map[string]any](t, w)["error"])
		})
	}

	w := ts.do(t, http.MethodPut, "/walks/missing", map[string]any{
		"name": "x", "length": 1, "region_id": "r", "walk_difficulty_id": "d",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_Validation(t *testing.T) {
	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{"散歩道の長さが0", "/walks", map[string]any{"name": "Short", "length": 0, "region_id": "r", "walk_difficulty_id": "d"}},
		{"散歩道の名前が空", "/walks", map[string]any{"name": "", "length": 3, "region_id": "r", "walk_difficulty_id": "d"}},
		{"難易度コードが空白", "/walk-difficulties", map[string]any{"code": "   "}},
		{"地域名なし", "/regions", map[string]any{"code": "AKL"}},
	}

	t.Run("有効", func(t *testing.T) {
		ts := newTestServer(t, serverOptions{validation: true})
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := ts.do(t, http.MethodPost, tt.path, tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				body := decode[map[string]any](t, w)
				assert.Equal(t, "validation_error", body["error"])
				assert.NotEmpty(t, body["fields"])
			})
		}
	})

	t.Run("無効なら保存される", func(t *testing.T) {
		ts := newTestServer(t, serverOptions{validation: false})
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := ts.do(t, http.MethodPost, tt.path, tt.body)
				assert.Equal(t, http.StatusCreated, w.Code)
			})
		}
	})

	t.Run("不正なJSON", func(t *testing.T) {
		ts := newTestServer(t, serverOptions{validation: true})
		req := httptest.NewRequest(http.MethodPost, "/regions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		ts.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode[map[string]any](t, w)["error"])
	})
}

func TestAPI_Roles(t *testing.T) {
	ts := newTestServer(t, serverOptions{auth: true, validation: true})

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/regions", nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/regions", nil, auth.RoleReader).Code)
	assert.Equal(t, http.StatusForbidden,
		ts.do(t, http.MethodPost, "/regions", map[string]any{"name": "Otago"}, auth.RoleReader).Code)
	assert.Equal(t, http.StatusCreated,
		ts.do(t, http.MethodPost, "/regions", map[string]any{"name": "Otago"}, auth.RoleWriter).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/health", nil).Code)
}

func TestRegionsAPI_Update(t *testing.T) {
	ts := newTestServer(t, serverOptions{validation: true})

	w := ts.do(t, http.MethodPost, "/regions", map[string]any{"name": "Otago"})
	require.Equal(t, http.StatusCreated, w.Code)
	region := decode[model.RegionResponse](t, w)

	w = ts.do(t, http.MethodPut, "/regions/"+region.ID, map[string]any{
		"id":               "ignored",
		"name":             "Central Otago",
		"region_image_url": "https://example.com/otago.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[model.RegionResponse](t, w)
	assert.Equal(t, region.ID, updated.ID)
	assert.Equal(t, "Central Otago", updated.Name)
	require.NotNil(t, updated.RegionImageURL)
}

type failingWalksService struct {
	application.WalksService
}

func (failingWalksService) GetAllWalks(context.Context) ([]model.WalkResponse, error) {
	return nil, fmt.Errorf("散歩データの取得失敗: %w: connection refused", model.ErrStorage)
}

func TestRespondError_InternalIsGeneric(t *testing.T) {
	logs := &bytes.Buffer{}
	h := NewWalksHandler(failingWalksService{}, nil, zerolog.New(logs))

	r := gin.New()
	r.GET("/walks", h.GetAllWalks)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/walks", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, logs.String(), "connection refused")
}

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("down") }

func TestHealth_Unhealthy(t *testing.T) {
	r := gin.New()
	r.GET("/health", NewHealthHandler(downStore{}, zerolog.Nop()).Health)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
