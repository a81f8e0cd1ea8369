package authd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/futliga/liga-api/internal/domain/user"
	"github.com/futliga/liga-api/internal/platform/logging"
	"github.com/futliga/liga-api/internal/platform/resilience"
	"github.com/futliga/liga-api/internal/usecase"
)

var errAuthdTransient = errors.New("authd transient failure")

// Client verifies access tokens against the league's auth provider through
// its introspection endpoint.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(
	httpClient *http.Client,
	baseURL, introspectPath, adminKey string,
	breakerCfg resilience.CircuitBreakerConfig,
	logger *logging.Logger,
) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		breaker = resilience.NewCircuitBreaker(breakerCfg)
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		adminKey:      adminKey,
		breaker:       breaker,
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, fmt.Errorf("%w: auth provider circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	principal, err := c.introspect(ctx, token)
	if c.breaker != nil {
		if errors.Is(err, errAuthdTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}

	return principal, err
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
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
		return user.Principal{}, errors.Mark(fmt.Errorf("request introspection: %w", err), errAuthdTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, errors.Mark(fmt.Errorf("read introspect response: %w", err), errAuthdTransient)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "authd introspection non-200",
			"status_code", resp.StatusCode,
		)
		failure := fmt.Errorf("authd introspection failed with status %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError {
			return user.Principal{}, errors.Mark(failure, errAuthdTransient)
		}
		return user.Principal{}, failure
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
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
		Role:   decoded.Role,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
