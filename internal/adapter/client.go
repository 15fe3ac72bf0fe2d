// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/utils"
	"github.com/curllabs/curllabs-client/models"
)

const (
	refreshPath     = "/auth/refresh"
	requestIDHeader = "X-Request-ID"
)

// errCredentialsCleared reports that the refresh credential disappeared
// before the exchange could start, e.g. after a logout.
var errCredentialsCleared = errors.New("credentials cleared")

// Request describes one backend call made through [SessionClient.Do].
type Request struct {
	Method string
	// Path is relative to the configured base URL, e.g. "/products/3".
	Path string
	// Body is encoded as JSON. Ignored when Form is set.
	Body any
	// Form is sent as multipart/form-data.
	Form map[string]string
	// Query parameters; empty values are still sent.
	Query map[string]string
	// Result receives the decoded JSON response when non-nil.
	Result any
}

// SessionClient sends backend requests on behalf of the signed-in user.
//
// It attaches the stored access token, and when the backend answers 401 it
// exchanges the refresh token once and replays the request once. Concurrent
// 401s share one exchange. If the exchange fails the session is expired:
// credentials are removed and listeners registered with
// [session.Session.OnExpired] are notified.
type SessionClient struct {
	http    *utils.HTTPClient
	session *session.Session
	ids     *utils.UUIDGenerator

	refresh singleflight.Group

	logger *logger.Logger
}

// NewSessionClient binds client to sess.
func NewSessionClient(client *utils.HTTPClient, sess *session.Session, log *logger.Logger) *SessionClient {
	return &SessionClient{
		http:    client,
		session: sess,
		ids:     utils.NewUUIDGenerator(),
		logger:  log.WithComponent("session_client"),
	}
}

// Session returns the session the client reads credentials from.
func (c *SessionClient) Session() *session.Session {
	return c.session
}

// Do performs req. The request ID from ctx (see [utils.WithRequestID]) is
// reused for the replay, otherwise a new one is generated.
func (c *SessionClient) Do(ctx context.Context, req Request) error {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.ids.Generate()
	}

	return c.do(ctx, req, requestID, false)
}

func (c *SessionClient) do(ctx context.Context, req Request, requestID string, retried bool) error {
	credentials, err := c.session.Credentials(ctx)
	if err != nil {
		return err
	}

	resp, err := c.newRequest(ctx, req, requestID, credentials.Access).Execute(req.Method, req.Path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", req.Method, req.Path, err)
	}

	if resp.StatusCode() != http.StatusUnauthorized || retried {
		if err = mapHTTPError(resp); err != nil {
			return err
		}
		return decodeResult(resp, req.Result)
	}

	log := c.logger.With().
		Str("method", req.Method).
		Str("path", req.Path).
		Str("request_id", requestID).
		Logger()

	if credentials.Refresh == "" {
		log.Debug().Msg("unauthorized without refresh credential")
		return fmt.Errorf("%w: %w", ErrAuthenticationRequired, mapHTTPError(resp))
	}

	log.Debug().Msg("access credential rejected, renewing session")
	if err = c.renew(ctx, credentials.Access); err != nil {
		if errors.Is(err, errCredentialsCleared) {
			log.Debug().Msg("credentials cleared while renewing")
			return fmt.Errorf("%w: %w", ErrAuthenticationRequired, mapHTTPError(resp))
		}
		return err
	}

	log.Debug().Msg("replaying request with renewed credential")
	return c.do(ctx, req, requestID, true)
}

func (c *SessionClient) newRequest(ctx context.Context, req Request, requestID, accessToken string) *resty.Request {
	r := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)

	if accessToken != "" {
		r.SetAuthToken(accessToken)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}

	switch {
	case req.Form != nil:
		r.SetMultipartFormData(req.Form)
	case req.Body != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	return r
}

// renew runs at most one refresh exchange at a time. A caller whose failed
// access token has already been replaced by a concurrent exchange returns
// immediately so that its replay uses the current token.
func (c *SessionClient) renew(ctx context.Context, failedAccess string) error {
	// The exchange outlives the caller that started it: other callers may be
	// waiting on the same flight.
	flightCtx := context.WithoutCancel(ctx)

	_, err, shared := c.refresh.Do(refreshPath, func() (any, error) {
		current, err := c.session.Credentials(flightCtx)
		if err != nil {
			return nil, err
		}

		if current.Access != "" && current.Access != failedAccess {
			return nil, nil
		}
		if current.Refresh == "" {
			// cleared by a logout or an earlier failed exchange
			return nil, errCredentialsCleared
		}

		pair, err := c.exchange(flightCtx, current.Refresh)
		if err != nil {
			return nil, c.session.Expire(flightCtx, err)
		}

		if err = c.session.Replace(flightCtx, pair); err != nil {
			return nil, c.session.Expire(flightCtx, err)
		}

		c.logger.Info().Msg("session renewed")
		return nil, nil
	})
	if shared {
		c.logger.Debug().Msg("joined in-flight refresh exchange")
	}

	return err
}

// Refresh exchanges refreshToken for a new pair without touching the stored
// credentials. The request never carries an access token.
func (c *SessionClient) Refresh(ctx context.Context, refreshToken string) (models.Credentials, error) {
	return c.exchange(ctx, refreshToken)
}

func (c *SessionClient) exchange(ctx context.Context, refreshToken string) (models.Credentials, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, c.ids.Generate()).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post(refreshPath)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credentials{}, err
	}

	var pair models.Credentials
	if err = json.Unmarshal(resp.Body(), &pair); err != nil {
		return models.Credentials{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if !pair.Complete() {
		return models.Credentials{}, errors.New("refresh response misses a token")
	}

	return pair, nil
}

func decodeResult(resp *resty.Response, result any) error {
	if result == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}

	return nil
}
