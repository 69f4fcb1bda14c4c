// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "$2a$10$abcdefghijklmnopqrstuv"

// newTestAdapter создаёт jsonBinAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL, binID string) *jsonBinAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{APIKey: testAPIKey, BinID: binID}

	a, err := NewJSONBinAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*jsonBinAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewJSONBinAdapter_InvalidURL(t *testing.T) {
	_, err := NewJSONBinAdapter(config.ClientAdapter{BaseURL: "  "}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("api.jsonbin.io/v3/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.jsonbin.io/v3", got)

	got, err = normalizeBaseURL("http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

func TestCredentials(t *testing.T) {
	a := newTestAdapter(t, "http://localhost", "")
	assert.False(t, a.Configured())
	assert.Empty(t, a.BinID())

	a.SetCredentials(" "+testAPIKey+" ", " bin-1 ")
	assert.True(t, a.Configured())
	assert.Equal(t, "bin-1", a.BinID())
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/b", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(HeaderMasterKey))
		assert.Equal(t, "true", r.Header.Get(HeaderBinPrivate))
		assert.Equal(t, "fitsync", r.Header.Get(HeaderBinName))

		var got models.Dataset
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.NotNil(t, got.Entries)

		writeJSON(w, http.StatusOK, `{"record":{"entries":[]},"metadata":{"id":"65f1c0ffee","createdAt":"2026-03-14T09:30:00Z","private":true}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	meta, err := a.Create(context.Background(), "fitsync", models.NewDataset())

	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee", meta.ID)
	assert.True(t, meta.Private)
	assert.Equal(t, "65f1c0ffee", a.BinID())
	assert.True(t, a.Configured())
}

func TestCreate_NoBinIDInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"record":{}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Create(context.Background(), "", models.NewDataset())

	assert.ErrorIs(t, err, ErrMalformedData)
	assert.Empty(t, a.BinID())
}

func TestCreate_NoKey(t *testing.T) {
	a := newTestAdapter(t, "http://localhost", "")
	a.SetCredentials("", "")

	_, err := a.Create(context.Background(), "", models.NewDataset())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

// ── Read ─────────────────────────────────────────────────────────────────────

func TestRead_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/b/bin-1/latest", r.URL.Path)
		assert.Equal(t, "false", r.Header.Get(HeaderBinMeta))
		writeJSON(w, http.StatusOK, `{"entries":[],"profile":{"name":"Ann"}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "bin-1")
	raw, err := a.Read(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[],"profile":{"name":"Ann"}}`, string(raw))
}

func TestRead_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "<html>")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "bin-1").Read(context.Background())
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestRead_NoBin(t *testing.T) {
	_, err := newTestAdapter(t, "http://localhost", "").Read(context.Background())
	assert.ErrorIs(t, err, ErrNoBin)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/b/bin-1", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(HeaderMasterKey))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusOK, `{"record":{},"metadata":{"parentId":"bin-1","private":true}}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "bin-1").Update(context.Background(), models.NewDataset())
	assert.NoError(t, err)
}

// TestUpdate_StatusMapping проверяет классификацию HTTP-статусов
func TestUpdate_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
	}{
		{http.StatusBadRequest, `{"message":"Bin cannot be blank"}`, ErrMalformedData},
		{http.StatusUnprocessableEntity, ``, ErrMalformedData},
		{http.StatusRequestEntityTooLarge, ``, ErrMalformedData},
		{http.StatusConflict, ``, ErrMalformedData},
		{http.StatusUnauthorized, `{"message":"Invalid X-Master-Key provided"}`, ErrUnauthorized},
		{http.StatusForbidden, ``, ErrUnauthorized},
		{http.StatusNotFound, `{"message":"Bin not found"}`, ErrBinNotFound},
		{http.StatusTooManyRequests, ``, ErrRemoteServer},
		{http.StatusInternalServerError, `oops`, ErrRemoteServer},
		{http.StatusBadGateway, ``, ErrRemoteServer},
		{http.StatusServiceUnavailable, ``, ErrRemoteServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL, "bin-1").Update(context.Background(), models.NewDataset())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdate_MessageInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid X-Master-Key provided"}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "bin-1").Update(context.Background(), models.NewDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid X-Master-Key provided")
}

func TestUpdate_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url, "bin-1").Update(context.Background(), models.NewDataset())
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestUpdate_CanceledIsNotNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestAdapter(t, srv.URL, "bin-1").Update(ctx, models.NewDataset())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetworkUnavailable)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/b/bin-1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"metadata":{"id":"bin-1","versionsDeleted":0},"message":"Bin deleted successfully"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "bin-1")
	require.NoError(t, a.Delete(context.Background()))
	assert.Empty(t, a.BinID())
}

func TestDelete_NotFoundKeepsBin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Bin not found"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "bin-1")
	assert.ErrorIs(t, a.Delete(context.Background()), ErrBinNotFound)
	assert.Equal(t, "bin-1", a.BinID())
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Empty(t, r.Header.Get(HeaderMasterKey))
		w.WriteHeader(http.StatusNotFound)
	}))

	a := newTestAdapter(t, srv.URL, "bin-1")
	assert.NoError(t, a.Ping(context.Background()))

	srv.Close()
	assert.ErrorIs(t, a.Ping(context.Background()), ErrNetworkUnavailable)
}
