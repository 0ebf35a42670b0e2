package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/common"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

const (
	tokenPath               = "/Token"
	summaryPath             = "/api/EquipmentSummaryAPI"
	overduePath             = "/api/OverDueAPI"
	weekDuePath             = "/api/WeekDueAPI"
	monthDuePath            = "/api/MonthDueAPI"
	yearDuePath             = "/api/YearDueAPI"
	equipmentPath           = "/api/EquipmentListApi"
	equipmentByLocationPath = "/api/EquipmentListApi/Location/"
	locationsPath           = "/api/LocationListApi"
	custodiansPath          = "/api/CustodianListApi"
)

// maxBodySize bounds how much of a response is read.
const maxBodySize = 16 << 20

type HTTPClient struct {
	baseURL      string
	http         *http.Client
	tokens       TokenSource
	log          logging.Logger
	newRequestID func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. The configured
// timeout is not applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithRequestIDGenerator replaces the uuid-based X-Request-ID generator.
func WithRequestIDGenerator(fn func() string) Option {
	return func(c *HTTPClient) { c.newRequestID = fn }
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		tokens:       tokens,
		log:          log,
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) RequestToken(ctx context.Context, username string, password []byte) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", string(password))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", common.FormContentType)

	body, err := c.do(req)
	if err != nil {
		// any non-2xx answer from the token endpoint is a rejected login
		if isStatusError(err) {
			return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return "", err
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: token response: %w", ErrMalformedResponse, err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: no access_token in response", ErrInvalidCredentials)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Summary(ctx context.Context) (models.Summary, error) {
	return getJSON[models.Summary](ctx, c, summaryPath)
}

func (c *HTTPClient) Overdue(ctx context.Context) ([]models.Equipment, error) {
	return getJSON[[]models.Equipment](ctx, c, overduePath)
}

func (c *HTTPClient) WeekDue(ctx context.Context) ([]models.Equipment, error) {
	return getJSON[[]models.Equipment](ctx, c, weekDuePath)
}

func (c *HTTPClient) MonthDue(ctx context.Context) ([]models.Equipment, error) {
	return getJSON[[]models.Equipment](ctx, c, monthDuePath)
}

func (c *HTTPClient) YearDue(ctx context.Context) ([]models.Equipment, error) {
	return getJSON[[]models.Equipment](ctx, c, yearDuePath)
}

func (c *HTTPClient) Equipment(ctx context.Context) ([]models.Equipment, error) {
	return getJSON[[]models.Equipment](ctx, c, equipmentPath)
}

func (c *HTTPClient) EquipmentByLocation(ctx context.Context, locationID models.ID) ([]models.Equipment, error) {
	return getJSON[[]models.Equipment](ctx, c, equipmentByLocationPath+url.PathEscape(locationID.String()))
}

func (c *HTTPClient) Locations(ctx context.Context) ([]models.Location, error) {
	locations, err := getJSON[[]models.Location](ctx, c, locationsPath)
	if err != nil {
		return nil, err
	}
	return models.CompactLocations(locations), nil
}

func (c *HTTPClient) Custodians(ctx context.Context) ([]models.Custodian, error) {
	custodians, err := getJSON[[]models.Custodian](ctx, c, custodiansPath)
	if err != nil {
		return nil, err
	}
	return models.CompactCustodians(custodians), nil
}

// EquipmentByID accepts both a bare object and a one-element array.
func (c *HTTPClient) EquipmentByID(ctx context.Context, id models.ID) (models.EquipmentDetail, error) {
	raw, err := getJSON[json.RawMessage](ctx, c, equipmentPath+"/"+url.PathEscape(id.String()))
	if err != nil {
		return models.EquipmentDetail{}, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return models.EquipmentDetail{}, fmt.Errorf("%w: equipment %s", ErrNoData, id)
	}

	if raw[0] == '[' {
		var list []models.EquipmentDetail
		if err := json.Unmarshal(raw, &list); err != nil {
			return models.EquipmentDetail{}, fmt.Errorf("%w: equipment %s: %w", ErrMalformedResponse, id, err)
		}
		if len(list) == 0 {
			return models.EquipmentDetail{}, fmt.Errorf("%w: equipment %s", ErrNoData, id)
		}
		return list[0], nil
	}

	var detail models.EquipmentDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return models.EquipmentDetail{}, fmt.Errorf("%w: equipment %s: %w", ErrMalformedResponse, id, err)
	}
	return detail, nil
}

func getJSON[T any](ctx context.Context, c *HTTPClient, path string) (T, error) {
	var out T

	token := c.tokens.Get(ctx)
	if token == "" {
		c.log.Warn(ctx, "no access token, request skipped", "path", path)
		return out, fmt.Errorf("%s: %w", path, ErrMissingToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return out, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	req.Header.Set("Content-Type", common.FormContentType)

	body, err := c.do(req)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		c.log.Warn(ctx, "malformed response", "path", path, "error", err)
		return out, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}
	return out, nil
}

type statusError struct {
	path string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.path, e.code)
}

func isStatusError(err error) bool {
	var se *statusError
	return errors.As(err, &se)
}

// do sends req and returns the body of a 2xx response.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	ctx := req.Context()
	path := req.URL.Path

	requestID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	log := c.log.With("request_id", requestID, "method", req.Method, "path", path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Error(ctx, "error reading response body", "error", err)
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		log.Warn(ctx, "request rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, &statusError{path: path, code: resp.StatusCode})
	default:
		log.Warn(ctx, "unexpected status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, &statusError{path: path, code: resp.StatusCode})
	}
}
