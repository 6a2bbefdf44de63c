package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST implementation of [ServerAdapter]
// rooted at cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	var result models.TypedResponse[models.User]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginUserRequest) (models.User, error) {
	var result models.TypedResponse[models.User]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/users/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if result.Data.Token == nil || *result.Data.Token == "" {
		return models.User{}, fmt.Errorf("login: server returned no token")
	}

	h.SetToken(*result.Data.Token)
	h.logger.Debug().Str("username", result.Data.Username).Msg("logged in")
	return result.Data, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var result models.TypedResponse[models.User]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.SetResult(&result).Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) UpdateCurrentUser(ctx context.Context, body models.UpdateUserRequest) (models.User, error) {
	var result models.TypedResponse[models.User]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.SetBody(body).SetResult(&result).Patch("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/users/me")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// authedRequest returns a request carrying the session token. The server
// expects the raw token in the Authorization header.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.token), nil
}
