// Package rest implements the CloudVision Portal client over its HTTP JSON API.
package rest

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/netauto/cvpctl/internal/cvp"
	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
)

const (
	// DefaultPort is the CVP HTTPS port.
	DefaultPort = 443
	// DefaultProtocol is the protocol used to reach CVP.
	DefaultProtocol = "https"
	// DefaultTimeout is the timeout of every API request.
	DefaultTimeout = 30 * time.Second

	loginPath = "login/authenticate.do"

	errCodeConfigletNotFound = "132801"
	errCodeUnauthorized      = "112498"
	errCodeSessionExpired    = "112499"
)

// ClientConfig is the configuration for the CVP REST client.
type ClientConfig struct {
	Host     string
	Port     int
	Protocol string
	Username string
	Password string
	// CertValidation enables the server TLS certificate verification.
	CertValidation bool
	Timeout        time.Duration
	// HTTPClient is used for all the requests, if missing one is created from
	// the other settings.
	HTTPClient *http.Client
	Logger     log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}

	if c.Username == "" {
		return fmt.Errorf("username is required")
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}

	if c.Protocol == "" {
		c.Protocol = DefaultProtocol
	}
	if c.Protocol != "http" && c.Protocol != "https" {
		return fmt.Errorf("unknown protocol %q", c.Protocol)
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout: c.Timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !c.CertValidation}, //nolint:gosec
			},
		}
	}

	if c.HTTPClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return fmt.Errorf("could not create cookie jar: %w", err)
		}
		// Don't mutate the caller client.
		hc := *c.HTTPClient
		hc.Jar = jar
		c.HTTPClient = &hc
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "cvp.rest.Client"})

	return nil
}

// Client is a CVP API client authenticated with a session cookie. The session is
// opened on the first request.
type Client struct {
	username   string
	password   string
	httpClient *http.Client
	logger     log.Logger

	mu       sync.Mutex
	loggedIn bool

	// Base URL (overridable for testing).
	baseURL string
}

var _ cvp.Client = &Client{}

// NewClient returns a new CVP REST client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		baseURL:    fmt.Sprintf("%s://%s:%d/cvpservice", cfg.Protocol, cfg.Host, cfg.Port),
	}, nil
}

// NewClientWithBaseURL creates a client with a custom API base URL (for testing).
func NewClientWithBaseURL(cfg ClientConfig, baseURL string) (*Client, error) {
	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c, nil
}

// Login opens a new API session.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.login(ctx)
}

func (c *Client) login(ctx context.Context) error {
	body := loginJSON{UserID: c.username, Password: c.password}
	var resp loginRespJSON
	err := c.do(ctx, http.MethodPost, loginPath, nil, body, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("could not login as %s: %s: %w", c.username, apiErr.Message, model.ErrUnauthorized)
		}
		return fmt.Errorf("could not login as %s: %w", c.username, err)
	}

	c.loggedIn = true
	c.logger.Debugf("Logged in as %s", resp.Username)

	return nil
}

func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loggedIn {
		return nil
	}

	return c.login(ctx)
}

// call makes an authenticated API call, the session is reopened once if the
// server reports it as expired.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	err := c.do(ctx, method, path, query, body, out)
	if err == nil {
		return nil
	}

	var apiErr *apiError
	if !errors.As(err, &apiErr) || apiErr.Code != errCodeSessionExpired {
		return err
	}

	c.logger.Debugf("Session expired, login again")
	c.mu.Lock()
	c.loggedIn = false
	c.mu.Unlock()
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	return c.do(ctx, method, path, query, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rbody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		rbody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rbody)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not make request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response from %s: %w", path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("HTTP %d from %s: %w", resp.StatusCode, path, model.ErrUnauthorized)
	case resp.StatusCode >= http.StatusBadRequest:
		if err := checkAPIError(data); err != nil {
			return fmt.Errorf("HTTP %d from %s: %w", resp.StatusCode, path, err)
		}
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, path)
	}

	if err := checkAPIError(data); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode response from %s: %w", path, err)
	}

	return nil
}

// apiError is an error reported by the API inside a response payload.
type apiError struct {
	Code    string
	Message string
}

func (e *apiError) Error() string { return fmt.Sprintf("CVP error %s: %s", e.Code, e.Message) }

func (e *apiError) Unwrap() error {
	switch e.Code {
	case errCodeConfigletNotFound:
		return model.ErrNotFound
	case errCodeUnauthorized, errCodeSessionExpired:
		return model.ErrUnauthorized
	}
	return nil
}

func checkAPIError(data []byte) error {
	// Only objects carry error codes.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var e errorJSON
	if err := json.Unmarshal(trimmed, &e); err != nil {
		return nil
	}
	if e.ErrorCode == "" {
		return nil
	}

	return &apiError{Code: string(e.ErrorCode), Message: e.ErrorMessage}
}
