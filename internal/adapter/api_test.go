// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curllabs/curllabs-client/internal/config"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/store"
	"github.com/curllabs/curllabs-client/internal/testserver"
	"github.com/curllabs/curllabs-client/models"
)

func newTestAdapter(t *testing.T, address, prefix string) (*ServerAdapter, *session.Session) {
	t.Helper()
	sess := session.New(store.NewMemoryCredentialRepository(), logger.Nop())
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    address,
		APIPrefix:      prefix,
		RequestTimeout: 5 * time.Second,
	}, sess, logger.Nop())
	require.NoError(t, err)
	return a, sess
}

// ── against the fake backend ─────────────────────────────────────────────────

func TestAuthAPI_RegisterLoginAndUseSession(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	a, sess := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	ctx := context.Background()

	user, err := a.Auth.Register(ctx, models.SignUp{Email: "alice@example.com", Password: "curly-girl-1"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	pair, err := a.Auth.Login(ctx, models.SignIn{Email: "alice@example.com", Password: "curly-girl-1"})
	require.NoError(t, err)
	require.True(t, pair.Complete())
	require.NoError(t, sess.Replace(ctx, pair))

	me, err := a.Users.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	claims, err := sess.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthAPI_RegisterDuplicate(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	srv.CreateUser("alice@example.com", "curly-girl-1")

	a, _ := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	_, err := a.Auth.Register(context.Background(), models.SignUp{Email: "alice@example.com", Password: "another-pass"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Email already registered", Detail(err))
}

func TestAuthAPI_LoginWrongPassword(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	srv.CreateUser("alice@example.com", "curly-girl-1")

	a, _ := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	_, err := a.Auth.Login(context.Background(), models.SignIn{Email: "alice@example.com", Password: "nope"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Incorrect email or password", Detail(err))
	assert.Zero(t, srv.RefreshCalls())
}

func TestAuthAPI_RefreshRotates(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	pair := srv.IssuePair(srv.CreateUser("alice@example.com", "curly-girl-1"))

	a, _ := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	ctx := context.Background()

	next, err := a.Auth.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.True(t, next.Complete())
	assert.NotEqual(t, pair.Access, next.Access)

	_, err = a.Auth.Refresh(ctx, pair.Refresh)
	require.ErrorIs(t, err, ErrUnauthorized, "refresh tokens are single use")
}

func TestServerAdapter_ExpiredAccessIsRenewedTransparently(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	pair := srv.IssuePair(srv.CreateUser("alice@example.com", "curly-girl-1"))

	a, sess := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	ctx := context.Background()
	require.NoError(t, sess.Replace(ctx, pair))

	created, err := a.Products.Create(ctx, models.ProductCreate{Brand: "Bounce", Name: "Curl Cream", Type: models.ProductCream})
	require.NoError(t, err)

	srv.RevokeAccess(pair.Access)

	products, err := a.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, 1, srv.RefreshCalls())

	renewed, err := sess.Credentials(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access, renewed.Access)
	assert.NotEqual(t, pair.Refresh, renewed.Refresh)

	refreshRequests := srv.RequestsTo(http.MethodPost, "/auth/refresh")
	require.Len(t, refreshRequests, 1)
	assert.Empty(t, refreshRequests[0].Authorization)
}

func TestServerAdapter_RejectedRefreshClearsSession(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	pair := srv.IssuePair(srv.CreateUser("alice@example.com", "curly-girl-1"))
	srv.RejectRefresh(true)

	a, sess := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	ctx := context.Background()
	require.NoError(t, sess.Replace(ctx, pair))
	srv.RevokeAccess(pair.Access)

	_, err := a.Users.Me(ctx)

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, sess.Authenticated(ctx))
	assert.Len(t, srv.RequestsTo(http.MethodGet, "/users/me"), 1)
}

func TestProductsAPI_CRUD(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	pair := srv.IssuePair(srv.CreateUser("alice@example.com", "curly-girl-1"))

	a, sess := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	ctx := context.Background()
	require.NoError(t, sess.Replace(ctx, pair))

	created, err := a.Products.Create(ctx, models.ProductCreate{
		Brand:       "Curlsmith",
		Name:        "Hold Me Softly",
		Type:        models.ProductGel,
		Ingredients: []string{"aloe", "flax"},
	})
	require.NoError(t, err)

	starred := true
	updated, err := a.Products.Update(ctx, created.ID, models.ProductUpdate{IsStarred: &starred})
	require.NoError(t, err)
	assert.True(t, updated.IsStarred)

	got, err := a.Products.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"aloe", "flax"}, got.Ingredients)

	require.NoError(t, a.Products.Delete(ctx, created.ID))
	_, err = a.Products.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUsersAPI_UpdateProfile(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	pair := srv.IssuePair(srv.CreateUser("alice@example.com", "curly-girl-1"))

	a, sess := newTestAdapter(t, srv.URL, testserver.APIPrefix)
	ctx := context.Background()
	require.NoError(t, sess.Replace(ctx, pair))

	pattern, porosity := "3A", "high"
	user, err := a.Users.UpdateProfile(ctx, models.UserProfile{CurlPattern: &pattern, Porosity: &porosity})

	require.NoError(t, err)
	require.NotNil(t, user.CurlPattern)
	assert.Equal(t, "3A", *user.CurlPattern)
	assert.Equal(t, "high", *user.Porosity)
}

// ── request shapes ───────────────────────────────────────────────────────────

func TestRoutineLogsAPI_ListSendsFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/routine-logs", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("skip"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "2026-03-01", q.Get("start_date"))
		assert.Equal(t, "2026-03-31", q.Get("end_date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"user_id":1,"date":"2026-03-02","wash_day":true}]`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, "/api/v1/")
	start, _ := models.ParseDate("2026-03-01")
	end, _ := models.ParseDate("2026-03-31")

	logs, err := a.RoutineLogs.List(context.Background(), models.RoutineLogFilter{Skip: 10, Limit: 5, StartDate: start, EndDate: end})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "2026-03-02", logs[0].Date.String())
	assert.True(t, logs[0].WashDay)
}

func TestWeatherAPI_FetchAndSave(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/weather/fetch", r.URL.Path)
		assert.Equal(t, "2026-10-19", r.URL.Query().Get("target_date"))
		assert.Equal(t, "Lisbon", r.URL.Query().Get("location"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.WeatherData{ID: 3, Location: "Lisbon", Humidity: 71})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, "/api/v1")
	date, _ := models.ParseDate("2026-10-19")

	weather, err := a.Weather.FetchAndSave(context.Background(), date, " Lisbon ")

	require.NoError(t, err)
	assert.Equal(t, 71.0, weather.Humidity)
}

func TestDashboardAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/dashboard/trends":
			assert.Equal(t, "30", r.URL.Query().Get("days"))
			_, _ = w.Write([]byte(`{"trends":[{"date":"2026-10-01","overall":4.2}]}`))
		case "/api/v1/dashboard/insights":
			_, _ = w.Write([]byte(`{"insights":[{"type":"weather","message":"Humid days hurt","confidence":"medium"}]}`))
		case "/api/v1/dashboard/stats":
			_, _ = w.Write([]byte(`{"total_logs":4,"total_outcomes":3,"average_scores":{"overall":3.9},"best_routine":null,"best_products":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, "/api/v1")
	ctx := context.Background()

	trends, err := a.Dashboard.Trends(ctx, 0)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, 4.2, trends[0].Overall)

	insights, err := a.Dashboard.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, "weather", insights[0].Type)

	stats, err := a.Dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalLogs)
	require.NotNil(t, stats.AverageScores.Overall)
	assert.Nil(t, stats.BestRoutine)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8000", want: "http://localhost:8000"},
		{in: "https://api.curllabs.test/", want: "https://api.curllabs.test"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "/api/v1", normalizePrefix("api/v1/"))
	assert.Equal(t, "/api/v1", normalizePrefix("/api/v1"))
	assert.Equal(t, "", normalizePrefix(" / "))
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	sess := session.New(store.NewMemoryCredentialRepository(), logger.Nop())
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, sess, logger.Nop())
	require.Error(t, err)
}
