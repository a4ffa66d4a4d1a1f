// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholarly/pkg/types"
)

func TestDoSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer ts.Close()

	req, err := NewRequest(context.Background(), http.MethodGet, ts.URL, nil, types.HTTPConfig{UserAgent: "scholarly-test"})
	require.NoError(t, err)

	resp, err := Do(ts.Client(), req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoNon2xxIsRequestFailed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "upstream exploded"},
		{"bad request", http.StatusBadRequest, `{"error":"max_results too large"}`},
		{"not found with empty body", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			req, err := NewRequest(context.Background(), http.MethodGet, ts.URL, nil, types.HTTPConfig{})
			require.NoError(t, err)

			_, err = Do(ts.Client(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrRequestFailed)
			assert.Contains(t, err.Error(), fmt.Sprintf("HTTP %d", tt.status))
			if tt.body != "" {
				assert.Contains(t, err.Error(), tt.body)
			}
		})
	}
}

func TestDoNetworkErrorIsRequestFailed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	req, err := NewRequest(context.Background(), http.MethodGet, ts.URL, nil, types.HTTPConfig{})
	require.NoError(t, err)

	_, err = Do(http.DefaultClient, req)
	assert.ErrorIs(t, err, types.ErrRequestFailed)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"total":2,"data":[{"paperId":"a"},{"paperId":"b"}]}`)
		}))
		defer ts.Close()

		req, err := NewRequest(context.Background(), http.MethodGet, ts.URL, nil, types.HTTPConfig{})
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, DecodeJSON(ts.Client(), req, &out))
		assert.EqualValues(t, 2, out["total"])
	})

	t.Run("malformed body reported whole", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"total": 2,`)
		}))
		defer ts.Close()

		req, err := NewRequest(context.Background(), http.MethodGet, ts.URL, nil, types.HTTPConfig{})
		require.NoError(t, err)

		var out map[string]any
		err = DecodeJSON(ts.Client(), req, &out)
		assert.ErrorIs(t, err, types.ErrRequestFailed)
	})
}

func TestNewRequestSetsUserAgent(t *testing.T) {
	req, err := NewRequest(context.Background(), http.MethodGet, "http://example.com", nil, types.HTTPConfig{UserAgent: "scholarly/0.1"})
	require.NoError(t, err)
	assert.Equal(t, "scholarly/0.1", req.Header.Get("User-Agent"))

	req, err = NewRequest(context.Background(), http.MethodGet, "http://example.com", nil, types.HTTPConfig{})
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("User-Agent"))
}
