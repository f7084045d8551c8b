package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// maxInputSize bounds a downloaded puzzle input.
const maxInputSize = 1 << 20

// errInputTooLarge is returned when a download exceeds maxInputSize.
var errInputTooLarge = errors.New("input too large")

// inputClient downloads puzzle input using a session cookie.
type inputClient struct {
	baseURL   *url.URL
	path      string
	userAgent string
	http      *http.Client
}

// newInputClient creates a client for cfg. A session is required.
func newInputClient(cfg fetchConfig) (*inputClient, error) {
	if cfg.Session == "" {
		return nil, errors.New("session is required to fetch input (set fetch.session or AOC_SESSION)")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base_url: %q", cfg.BaseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: cfg.Session, Path: "/"}})

	path := cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &inputClient{
		baseURL:   u,
		path:      path,
		userAgent: cfg.UserAgent,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// fetchError represents a non-2xx response.
type fetchError struct {
	StatusCode int
	Message    string
}

func (e *fetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("fetch %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch %d", e.StatusCode)
}

// fetch downloads the puzzle input.
func (c *inputClient) fetch(ctx context.Context) (string, error) {
	reqURL := c.baseURL.String() + c.path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &fetchError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(firstLine(string(b)))}
	}
	if len(b) > maxInputSize {
		return "", fmt.Errorf("%w: more than %d bytes", errInputTooLarge, maxInputSize)
	}
	return string(b), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func isAuthError(err error) bool {
	var fe *fetchError
	return errors.As(err, &fe) && (fe.StatusCode == http.StatusBadRequest || fe.StatusCode == http.StatusUnauthorized || fe.StatusCode == http.StatusForbidden)
}
