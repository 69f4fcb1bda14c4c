package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/utils"
	"github.com/MKhiriev/fit-sync/models"
	"github.com/go-resty/resty/v2"
)

// JSONBin v3 request headers.
const (
	HeaderMasterKey  = "X-Master-Key"
	HeaderBinPrivate = "X-Bin-Private"
	HeaderBinName    = "X-Bin-Name"
	HeaderBinMeta    = "X-Bin-Meta"
)

type jsonBinAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	apiKey string
	binID  string

	logger *logger.Logger
}

// NewJSONBinAdapter constructs a JSONBin v3 implementation of [RemoteStore].
// It validates the base URL from adapterCfg.BaseURL and configures the
// underlying HTTP client with it and the request timeout. Credentials from
// appCfg are applied when present.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewJSONBinAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	a := &jsonBinAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}
	a.SetCredentials(appCfg.APIKey, appCfg.BinID)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetCredentials implements [RemoteStore].
func (a *jsonBinAdapter) SetCredentials(apiKey, binID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apiKey = strings.TrimSpace(apiKey)
	a.binID = strings.TrimSpace(binID)
}

// BinID implements [RemoteStore].
func (a *jsonBinAdapter) BinID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.binID
}

// Configured implements [RemoteStore].
func (a *jsonBinAdapter) Configured() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.apiKey != "" && a.binID != ""
}

func (a *jsonBinAdapter) credentials() (apiKey, binID string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.apiKey, a.binID
}

// Create implements [RemoteStore]. It POSTs doc to POST /b as a private bin
// and remembers the returned bin id.
func (a *jsonBinAdapter) Create(ctx context.Context, name string, doc any) (models.BinMetadata, error) {
	apiKey, _ := a.credentials()
	if apiKey == "" {
		return models.BinMetadata{}, ErrNoCredentials
	}

	var created models.BinRecord
	req := a.authedRequest(ctx, apiKey).
		SetHeader(HeaderBinPrivate, "true").
		SetBody(doc).
		SetResult(&created)
	if name != "" {
		req.SetHeader(HeaderBinName, name)
	}

	resp, err := req.Post("/b")
	if err != nil {
		return models.BinMetadata{}, mapTransportError("create bin request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BinMetadata{}, err
	}
	if created.Metadata.ID == "" {
		return models.BinMetadata{}, fmt.Errorf("%w: create response without bin id", ErrMalformedData)
	}

	a.mu.Lock()
	a.binID = created.Metadata.ID
	a.mu.Unlock()

	a.logger.Info().Str("bin_id", created.Metadata.ID).Msg("remote bin created")
	return created.Metadata, nil
}

// Read implements [RemoteStore]. It GETs GET /b/{id}/latest without the
// metadata envelope and checks that the body is JSON.
func (a *jsonBinAdapter) Read(ctx context.Context) (json.RawMessage, error) {
	apiKey, binID, err := a.requireBin()
	if err != nil {
		return nil, err
	}

	resp, err := a.authedRequest(ctx, apiKey).
		SetHeader(HeaderBinMeta, "false").
		SetPathParam("id", binID).
		Get("/b/{id}/latest")
	if err != nil {
		return nil, mapTransportError("read bin request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: bin body is not JSON", ErrMalformedData)
	}

	return json.RawMessage(body), nil
}

// Update implements [RemoteStore]. It PUTs the full document to PUT /b/{id}.
func (a *jsonBinAdapter) Update(ctx context.Context, doc any) error {
	apiKey, binID, err := a.requireBin()
	if err != nil {
		return err
	}

	resp, err := a.authedRequest(ctx, apiKey).
		SetPathParam("id", binID).
		SetBody(doc).
		Put("/b/{id}")
	if err != nil {
		return mapTransportError("update bin request", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [RemoteStore]. It sends DELETE /b/{id}.
func (a *jsonBinAdapter) Delete(ctx context.Context) error {
	apiKey, binID, err := a.requireBin()
	if err != nil {
		return err
	}

	resp, err := a.authedRequest(ctx, apiKey).
		SetPathParam("id", binID).
		Delete("/b/{id}")
	if err != nil {
		return mapTransportError("delete bin request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	a.mu.Lock()
	if a.binID == binID {
		a.binID = ""
	}
	a.mu.Unlock()
	return nil
}

// Ping implements [RemoteStore]. It sends an unauthenticated HEAD to the
// base URL; the status code is ignored.
func (a *jsonBinAdapter) Ping(ctx context.Context) error {
	_, err := a.client.R().SetContext(ctx).Head("/")
	if err != nil {
		return mapTransportError("ping", err)
	}
	return nil
}

func (a *jsonBinAdapter) requireBin() (apiKey, binID string, err error) {
	apiKey, binID = a.credentials()
	if apiKey == "" {
		return "", "", ErrNoCredentials
	}
	if binID == "" {
		return "", "", ErrNoBin
	}
	return apiKey, binID, nil
}

func (a *jsonBinAdapter) authedRequest(ctx context.Context, apiKey string) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetHeader(HeaderMasterKey, apiKey)
}
