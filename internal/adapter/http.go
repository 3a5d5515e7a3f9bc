package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/utils"
)

const requestIDHeader = "X-Request-ID"

type httpTransport struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty-backed [Transport]. It normalises
// and validates the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTransport(cfg config.DeviceAdapter, logger *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpTransport{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
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

// Post implements [Transport].
func (h *httpTransport) Post(ctx context.Context, endpoint string, body []byte) (int, []byte, error) {
	requestID := h.ids.Generate()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.Post").
			Str("endpoint", endpoint).
			Str("request_id", requestID).
			Msg("request failed")
		return 0, nil, fmt.Errorf("post %s: %w", endpoint, err)
	}

	h.logger.Debug().
		Str("func", "httpTransport.Post").
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request done")

	return resp.StatusCode(), resp.Body(), nil
}

// Get implements [Transport].
func (h *httpTransport) Get(ctx context.Context, endpoint string) (int, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.ids.Generate()).
		Get(endpoint)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", endpoint, err)
	}

	return resp.StatusCode(), nil
}
