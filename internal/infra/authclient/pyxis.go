package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/errs"

	"github.com/sony/gobreaker"
)

type pyxisRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

type pyxisResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		MemberNo string `json:"memberNo"`
		Name     string `json:"name"`
	} `json:"data"`
}

// PyxisClient authenticates members against the library login API.
type PyxisClient struct {
	url     string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewPyxisClient(url string, timeout time.Duration) *PyxisClient {
	return &PyxisClient{
		url:  url,
		http: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "pyxis-login",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// Wrong passwords are answers, not provider failures.
			IsSuccessful: func(err error) bool {
				return err == nil || errs.Is(err, ErrInvalidCredentials)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

func (c *PyxisClient) Authenticate(ctx context.Context, creds session.Credentials) (session.Identity, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.login(ctx, creds)
	})
	if err != nil {
		if errs.Is(err, ErrInvalidCredentials) {
			return session.Anonymous, err
		}
		if errs.Is(err, gobreaker.ErrOpenState) || errs.Is(err, gobreaker.ErrTooManyRequests) {
			return session.Anonymous, errs.Mark(err, ErrProviderUnavailable)
		}
		slog.Error("pyxis login failed", "error", err.Error())
		return session.Anonymous, errs.Mark(err, ErrProviderUnavailable)
	}
	return result.(session.Identity), nil
}

func (c *PyxisClient) login(ctx context.Context, creds session.Credentials) (session.Identity, error) {
	body, err := json.Marshal(pyxisRequest{LoginID: creds.LoginID(), Password: creds.Password()})
	if err != nil {
		return session.Anonymous, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return session.Anonymous, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return session.Anonymous, fmt.Errorf("pyxis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return session.Anonymous, fmt.Errorf("pyxis responded %d", resp.StatusCode)
	}

	var out pyxisResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return session.Anonymous, fmt.Errorf("decode pyxis response: %w", err)
	}
	if !out.Success || out.Data.MemberNo == "" {
		return session.Anonymous, ErrInvalidCredentials
	}

	return session.Identity{UserID: out.Data.MemberNo, DisplayName: out.Data.Name}, nil
}
