package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/models"
)

const authTokenHeader = "auth-token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.Address (a missing scheme defaults to
// http) and applies cfg.Timeout to every request.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid client address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
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
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, fields Fields) (int64, error) {
	data, err := h.post(ctx, h.client.R(), "/users/register", fields)
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	return data.UserID, nil
}

// Login posts the credentials to POST /users/login and stores the token
// from the "auth-token" response header.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (int64, error) {
	var envelope models.Response
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(Fields{"username": username, "password": password}).
		SetResult(&envelope).
		Post("/users/login")
	if err != nil {
		return 0, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	token := resp.Header().Get(authTokenHeader)
	if token == "" {
		return 0, ErrNoToken
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", envelope.Data.UserID).Msg("logged in")
	return envelope.Data.UserID, nil
}

func (h *httpServerAdapter) CreateClass(ctx context.Context, fields Fields) (int64, error) {
	data, err := h.post(ctx, h.authedRequest(ctx), "/classes", fields)
	if err != nil {
		return 0, fmt.Errorf("create class request: %w", err)
	}
	return data.ClassID, nil
}

func (h *httpServerAdapter) ListClasses(ctx context.Context) ([]models.Class, int, error) {
	var envelope models.Response
	resp, err := h.authedRequest(ctx).SetResult(&envelope).Get("/classes")
	if err != nil {
		return nil, 0, fmt.Errorf("list classes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, 0, err
	}

	return envelope.Data.Classes, envelope.Data.Count, nil
}

func (h *httpServerAdapter) GetClass(ctx context.Context, id int64) (models.Class, error) {
	var envelope models.Response
	resp, err := h.authedRequest(ctx).
		SetResult(&envelope).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/classes/{id}")
	if err != nil {
		return models.Class{}, fmt.Errorf("get class request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Class{}, err
	}
	if envelope.Data.Class == nil {
		return models.Class{}, fmt.Errorf("get class: %w: empty class in response", ErrNotFound)
	}

	return *envelope.Data.Class, nil
}

func (h *httpServerAdapter) ArchiveClass(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/classes/{id}")
	if err != nil {
		return fmt.Errorf("archive class request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateClassRole(ctx context.Context, fields Fields) (int64, error) {
	data, err := h.post(ctx, h.authedRequest(ctx), "/class-roles", fields)
	if err != nil {
		return 0, fmt.Errorf("create class role request: %w", err)
	}
	return data.ClassRoleID, nil
}

func (h *httpServerAdapter) CreateReportEntity(ctx context.Context, fields Fields) (int64, error) {
	data, err := h.post(ctx, h.authedRequest(ctx), "/report-entities", fields)
	if err != nil {
		return 0, fmt.Errorf("create report entity request: %w", err)
	}
	return data.ReportEntityID, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) post(ctx context.Context, req *resty.Request, path string, fields Fields) (models.ResponseData, error) {
	if fields == nil {
		fields = Fields{}
	}

	var envelope models.Response
	resp, err := req.
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&envelope).
		Post(path)
	if err != nil {
		return models.ResponseData{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResponseData{}, err
	}

	return envelope.Data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
