// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testserver runs an in-process fake of the curllabs backend for
// tests. It implements the auth, users and products endpoints with real
// HS256 tokens and bcrypt password hashes, and exposes switches and counters
// for exercising session renewal.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/curllabs/curllabs-client/internal/utils"
	"github.com/curllabs/curllabs-client/models"
)

// APIPrefix is where the fake mounts its routes.
const APIPrefix = "/api/v1"

const (
	signKey         = "testserver-sign-key"
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// RecordedRequest is what the fake saw of one incoming request.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type account struct {
	user         models.User
	passwordHash []byte
}

// Server is a running fake backend. Close it when done.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	accounts    map[string]*account
	nextUserID  int64
	products    map[int64]models.Product
	nextProduct int64
	revoked     map[string]bool
	usedRefresh map[string]bool
	requests    []RecordedRequest

	refreshCalls  atomic.Int32
	rejectRefresh atomic.Bool
	refreshDelay  atomic.Int64
}

// New starts a fake backend.
func New() *Server {
	s := &Server{
		accounts:    make(map[string]*account),
		products:    make(map[int64]models.Product),
		revoked:     make(map[string]bool),
		usedRefresh: make(map[string]bool),
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.register)
			r.Post("/login", s.login)
			r.Post("/refresh", s.refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/users/me", s.me)
			r.Put("/users/me", s.updateMe)
			r.Put("/users/me/profile", s.updateProfile)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", s.listProducts)
				r.Post("/", s.createProduct)
				r.Get("/{id}", s.getProduct)
				r.Put("/{id}", s.updateProduct)
				r.Delete("/{id}", s.deleteProduct)
			})
		})
	})

	return r
}

// URL of the API root, i.e. the server URL plus [APIPrefix].
func (s *Server) APIURL() string {
	return s.URL + APIPrefix
}

// RefreshCalls returns how many times /auth/refresh was hit.
func (s *Server) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

// RejectRefresh makes every following refresh exchange fail with 401.
func (s *Server) RejectRefresh(reject bool) {
	s.rejectRefresh.Store(reject)
}

// SetRefreshDelay delays every refresh response by d.
func (s *Server) SetRefreshDelay(d time.Duration) {
	s.refreshDelay.Store(int64(d))
}

// RevokeAccess makes token fail authentication from now on, as if it had
// expired.
func (s *Server) RevokeAccess(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
}

// Requests returns a copy of every request seen so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestsTo returns the recorded requests whose path ends with path.
func (s *Server) RequestsTo(method, path string) []RecordedRequest {
	var matched []RecordedRequest
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == APIPrefix+path {
			matched = append(matched, r)
		}
	}
	return matched
}

// CreateUser registers an account directly and returns its id.
func (s *Server) CreateUser(email, password string) int64 {
	acc, err := s.addAccount(email, password)
	if err != nil {
		panic(err)
	}
	return acc.user.ID
}

// IssuePair signs a fresh credential pair for userID.
func (s *Server) IssuePair(userID int64) models.Credentials {
	pair, err := issuePair(userID)
	if err != nil {
		panic(err)
	}
	return pair
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func issuePair(userID int64) (models.Credentials, error) {
	access, err := utils.GenerateJWTToken(utils.TokenTypeAccess, userID, accessTokenTTL, signKey)
	if err != nil {
		return models.Credentials{}, err
	}
	refresh, err := utils.GenerateJWTToken(utils.TokenTypeRefresh, userID, refreshTokenTTL, signKey)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{Access: access, Refresh: refresh, TokenType: "bearer"}, nil
}
