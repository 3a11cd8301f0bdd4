// Package github lists a user's public repositories through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/config"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

const (
	userAgent      = "devconnector-api"
	maxListingSize = 1 << 20
)

var ErrNoGitHubProfile = apperr.New(apperr.NotFound, "No Github profile found")

// Client fetches repository listings and caches successful ones in Redis
type Client struct {
	cfg    config.GitHubConfig
	http   *http.Client
	cache  redis.Cmdable
	logger *logging.Logger
}

// NewClient builds a client. cache may be nil to disable caching.
func NewClient(cfg config.GitHubConfig, cache redis.Cmdable, logger *logging.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		cache:  cache,
		logger: logger,
	}
}

func cacheKey(username string) string {
	return fmt.Sprintf("github_repos:%s", username)
}

// ListRepos returns the raw JSON listing of username's latest repositories
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	if username == "" {
		return nil, ErrNoGitHubProfile
	}

	if cached, ok := c.cached(ctx, username); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL(username), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to build github request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "github request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("github lookup rejected", "username", username, "status", resp.StatusCode)
		return nil, ErrNoGitHubProfile
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListingSize))
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to read github response", err)
	}
	if !json.Valid(body) {
		return nil, apperr.Wrap(apperr.Upstream, "github returned malformed JSON", errors.New("invalid json body"))
	}

	c.store(ctx, username, body)
	return json.RawMessage(body), nil
}

func (c *Client) listURL(username string) string {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.cfg.PerPage))
	q.Set("sort", c.cfg.Sort)
	if c.cfg.ClientID != "" {
		q.Set("client_id", c.cfg.ClientID)
		q.Set("client_secret", c.cfg.ClientSecret)
	}
	return fmt.Sprintf("%s/users/%s/repos?%s", c.cfg.BaseURL, url.PathEscape(username), q.Encode())
}

// cached reads a listing from Redis. Cache failures fall through to GitHub.
func (c *Client) cached(ctx context.Context, username string) (json.RawMessage, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, err := c.cache.Get(ctx, cacheKey(username)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error("failed to read github cache", "error", err.Error())
		}
		return nil, false
	}
	return json.RawMessage(body), true
}

func (c *Client) store(ctx context.Context, username string, body []byte) {
	if c.cache == nil || c.cfg.CacheTTL <= 0 {
		return
	}
	ttl := c.cfg.CacheTTL
	if ttl < time.Second {
		ttl = time.Second
	}
	if err := c.cache.Set(ctx, cacheKey(username), body, ttl).Err(); err != nil {
		c.logger.Error("failed to write github cache", "error", err.Error())
	}
}
