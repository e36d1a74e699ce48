package anubis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	basecache "github.com/riskibarqy/fifa-tracker/internal/platform/cache"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
	"github.com/riskibarqy/fifa-tracker/internal/platform/resilience"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Config wires the introspection endpoint of the account service.
type Config struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	PrincipalTTL   time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies bearer tokens against the account service.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	principalTTL  time.Duration
	principals    *basecache.Store
	flight        resilience.SingleFlight
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      strings.TrimSpace(cfg.AdminKey),
		principalTTL:  cfg.PrincipalTTL,
		principals:    basecache.NewStore(cfg.PrincipalTTL),
		breaker:       resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	key := hashToken(token)
	if c.principalTTL > 0 {
		if cached, ok := c.principals.Get(ctx, key); ok {
			if principal, ok := cached.(user.Principal); ok {
				return principal, nil
			}
		}
	}

	// The shared call outlives any single waiter; the http client timeout bounds it.
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := c.flight.Do(key, func() (any, error) {
		var principal user.Principal
		err := c.breaker.Execute(func() error {
			var introspectErr error
			principal, introspectErr = c.introspect(sharedCtx, token)
			return introspectErr
		}, isCircuitFailure)
		if err != nil {
			return nil, err
		}
		if c.principalTTL > 0 {
			c.principals.Set(sharedCtx, key, principal)
		}
		return principal, nil
	})
	if err != nil {
		c.flight.Forget(key)
		if isCircuitFailure(err) || errors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "anubis introspection unavailable", "error", err, "breaker_state", string(c.breaker.State()))
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return user.Principal{}, err
	}

	principal, _ := v.(user.Principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := jsonAPI.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: request introspection: %v", errAnubisTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: read introspect response: %v", errAnubisTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.ErrorContext(ctx, "anubis rejected admin key", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: introspection rejected with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return user.Principal{}, fmt.Errorf("%w: status %d", errAnubisTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "anubis introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("anubis introspection failed with status %d", resp.StatusCode)
	}

	var decoded introspectResponse
	if err := jsonAPI.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
