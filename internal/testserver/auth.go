// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/curllabs/curllabs-client/internal/utils"
	"github.com/curllabs/curllabs-client/models"
)

var errEmailTaken = errors.New("email already registered")

func (s *Server) addAccount(email, password string) (*account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := s.accounts[email]; ok {
		return nil, errEmailTaken
	}

	s.nextUserID++
	acc := &account{
		user: models.User{
			ID:        s.nextUserID,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		},
		passwordHash: hash,
	}
	s.accounts[email] = acc

	return acc, nil
}

func (s *Server) accountByID(userID int64) (*account, bool) {
	for _, acc := range s.accounts {
		if acc.user.ID == userID {
			return acc, true
		}
	}
	return nil, false
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var signUp models.SignUp
	if err := json.NewDecoder(r.Body).Decode(&signUp); err != nil || signUp.Email == "" || signUp.Password == "" {
		utils.WriteDetail(w, "Invalid registration payload", http.StatusUnprocessableEntity)
		return
	}

	acc, err := s.addAccount(signUp.Email, signUp.Password)
	if errors.Is(err, errEmailTaken) {
		utils.WriteDetail(w, "Email already registered", http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, acc.user, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		utils.WriteDetail(w, "Invalid login form", http.StatusUnprocessableEntity)
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.FormValue("username")))
	password := r.FormValue("password")

	s.mu.Lock()
	acc, ok := s.accounts[email]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		utils.WriteDetail(w, "Incorrect email or password", http.StatusUnauthorized)
		return
	}

	pair, err := issuePair(acc.user.ID)
	if err != nil {
		utils.WriteDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, pair, http.StatusOK)
}

// refresh rotates the pair. Every refresh token is single use.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	s.refreshCalls.Add(1)

	if delay := time.Duration(s.refreshDelay.Load()); delay > 0 {
		time.Sleep(delay)
	}

	if r.Header.Get("Authorization") != "" {
		utils.WriteDetail(w, "Refresh must not carry an access token", http.StatusBadRequest)
		return
	}

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteDetail(w, "Invalid refresh payload", http.StatusUnprocessableEntity)
		return
	}

	if s.rejectRefresh.Load() {
		utils.WriteDetail(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	userID, err := utils.ValidateAndParseJWTToken(req.RefreshToken, signKey, utils.TokenTypeRefresh)
	if err != nil {
		utils.WriteDetail(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	reused := s.usedRefresh[req.RefreshToken]
	s.usedRefresh[req.RefreshToken] = true
	s.mu.Unlock()
	if reused {
		utils.WriteDetail(w, "Refresh token already used", http.StatusUnauthorized)
		return
	}

	pair, err := issuePair(userID)
	if err != nil {
		utils.WriteDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, pair, http.StatusOK)
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			unauthorized(w)
			return
		}

		s.mu.Lock()
		revoked := s.revoked[token]
		s.mu.Unlock()
		if revoked {
			unauthorized(w)
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(token, signKey, utils.TokenTypeAccess)
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, "Could not validate credentials", http.StatusUnauthorized)
}
