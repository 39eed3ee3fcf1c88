package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/okellojun/HackLab/internal/domain/model"
)

// APIError is a non-2xx response. Message is the server's "message" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  model.PublicUser `json:"user"`
	Token string           `json:"token"`
}

// Client talks to the HackLab API. It sets no timeout of its own; callers
// bound requests through their context.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore
}

func New(baseURL string, tokens *TokenStore, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient, tokens: tokens}
}

func (c *Client) Tokens() *TokenStore {
	return c.tokens
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, false, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, false, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Analytics(ctx context.Context) (*model.Analytics, error) {
	var a model.Analytics
	if err := c.do(ctx, http.MethodGet, "/analytics", nil, true, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) Problems(ctx context.Context) ([]model.Problem, error) {
	var problems []model.Problem
	if err := c.do(ctx, http.MethodGet, "/problems", nil, true, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

func (c *Client) Hackathons(ctx context.Context) ([]model.Hackathon, error) {
	var hackathons []model.Hackathon
	if err := c.do(ctx, http.MethodGet, "/hackathons", nil, true, &hackathons); err != nil {
		return nil, err
	}
	return hackathons, nil
}

func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, true, &raw); err != nil {
		return nil, err
	}
	return DecodeDashboard(raw)
}

// DecodeDashboard picks the dashboard variant from the keys present in data.
func DecodeDashboard(data []byte) (model.Dashboard, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("decode dashboard: %w", err)
	}
	switch {
	case keys["companyStats"] != nil:
		var d model.CompanyDashboard
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode company dashboard: %w", err)
		}
		return d, nil
	case keys["hackerStats"] != nil:
		var d model.HackerDashboard
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode hacker dashboard: %w", err)
		}
		return d, nil
	default:
		return nil, errors.New("decode dashboard: neither companyStats nor hackerStats present")
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		// with no stored token the request goes out bare and the server answers 401
		token, err := c.tokens.Load()
		if err != nil && !errors.Is(err, ErrNoToken) {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
