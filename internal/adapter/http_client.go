package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/collabcanvas/collab-canvas/models"
)

// HTTPClientConfig configures the REST implementation of
// [RemoteElementStore].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client *resty.Client
}

// NewHTTPRemoteStore builds a [RemoteElementStore] that talks to the element
// store server over HTTP. Zero-value config fields fall back to
// "http://localhost:8080" and a 15 second timeout.
func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteElementStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli}
}

func (h *httpRemoteStore) List(ctx context.Context, canvasID string) ([]models.Element, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/canvases/" + canvasID + "/elements")
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var elements []models.Element
	if err = json.Unmarshal(resp.Body(), &elements); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return elements, nil
}

func (h *httpRemoteStore) Get(ctx context.Context, elementID string) (models.Element, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/elements/" + elementID)
	if err != nil {
		return models.Element{}, fmt.Errorf("%w: get request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Element{}, err
	}

	var element models.Element
	if err = json.Unmarshal(resp.Body(), &element); err != nil {
		return models.Element{}, fmt.Errorf("decode get response: %w", err)
	}

	return element, nil
}

func (h *httpRemoteStore) Insert(ctx context.Context, element models.Element) (models.Element, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(element).
		Post("/api/canvases/" + element.CanvasID + "/elements")
	if err != nil {
		return models.Element{}, fmt.Errorf("%w: insert request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Element{}, err
	}

	var confirmed models.Element
	if err = json.Unmarshal(resp.Body(), &confirmed); err != nil {
		return models.Element{}, fmt.Errorf("decode insert response: %w", err)
	}

	return confirmed, nil
}

func (h *httpRemoteStore) Replace(ctx context.Context, elementID string, element models.Element) (models.Element, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(element).
		Put("/api/elements/" + elementID)
	if err != nil {
		return models.Element{}, fmt.Errorf("%w: replace request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Element{}, err
	}

	var confirmed models.Element
	if err = json.Unmarshal(resp.Body(), &confirmed); err != nil {
		return models.Element{}, fmt.Errorf("decode replace response: %w", err)
	}

	return confirmed, nil
}

func (h *httpRemoteStore) Delete(ctx context.Context, elementID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/elements/" + elementID)
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrUnavailable, err)
	}

	// absence of the row is not an error
	if resp.StatusCode() == 404 {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) TouchCanvas(ctx context.Context, canvasID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/canvases/" + canvasID + "/touch")
	if err != nil {
		return fmt.Errorf("%w: touch request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}
