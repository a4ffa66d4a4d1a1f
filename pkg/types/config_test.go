// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArxivValvesValidate(t *testing.T) {
	tests := []struct {
		name    string
		valves  ArxivValves
		wantErr error
	}{
		{"defaults", DefaultArxivValves(), nil},
		{"zero value", ArxivValves{}, nil},
		{"max results at ceiling", ArxivValves{MaxResults: 30000}, nil},
		{"max results over ceiling", ArxivValves{MaxResults: 30001}, ErrInvalidParameter},
		{"negative start", ArxivValves{Start: -1}, ErrInvalidParameter},
		{"negative max results", ArxivValves{MaxResults: -5}, ErrInvalidParameter},
		{"sort by lastUpdatedDate", ArxivValves{SortBy: SortLastUpdatedDate}, nil},
		{"sort by submittedDate", ArxivValves{SortBy: SortSubmittedDate}, nil},
		{"unknown sort field", ArxivValves{SortBy: "citations"}, ErrInvalidParameter},
		{"unknown sort order", ArxivValves{SortOrder: "downwards"}, ErrInvalidParameter},
		{"descending order", ArxivValves{SortOrder: OrderDescending}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.valves.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSemanticScholarValvesValidate(t *testing.T) {
	tests := []struct {
		name    string
		valves  SemanticScholarValves
		wantErr error
	}{
		{"defaults", DefaultSemanticScholarValves(), nil},
		{"limit at listing ceiling", SemanticScholarValves{Limit: 1000}, nil},
		{"limit over listing ceiling", SemanticScholarValves{Limit: 1001}, ErrInvalidParameter},
		{"negative offset", SemanticScholarValves{Offset: -1}, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.valves.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrKinds(t *testing.T) {
	err := ErrInvalidParameter.Withf("max_results must be ≤ %d", 30000)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "invalid parameter")
	assert.Contains(t, err.Error(), "30000")

	err = ErrRequestFailed.With("HTTP 500")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestLoadToolConfig(t *testing.T) {
	t.Run("partial file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scholarly.yaml")
		content := []byte("arxiv:\n  use_valves: true\n  max_results: 25\n  sort_by: submittedDate\n  sort_order: ascending\n")
		require.NoError(t, writeTestFile(path, content))

		cfg, err := LoadToolConfig(path)
		require.NoError(t, err)

		assert.True(t, cfg.Arxiv.UseValves)
		assert.Equal(t, 25, cfg.Arxiv.MaxResults)
		assert.Equal(t, SortSubmittedDate, cfg.Arxiv.SortBy)
		// Untouched sections keep their defaults.
		assert.Equal(t, 100, cfg.SemanticScholar.Limit)
		assert.Equal(t, "scholarly/0.1", cfg.HTTP.UserAgent)
	})

	t.Run("invalid valves rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scholarly.yaml")
		content := []byte("arxiv:\n  max_results: 30001\n")
		require.NoError(t, writeTestFile(path, content))

		_, err := LoadToolConfig(path)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadToolConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestWriteToolConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scholarly.yaml")

	cfg := DefaultToolConfig()
	cfg.SemanticScholar.UseValves = true
	cfg.SemanticScholar.Fields = "title,abstract,authors"
	require.NoError(t, WriteToolConfig(path, cfg))

	got, err := LoadToolConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestRecordAccessors(t *testing.T) {
	r := Record{"title": "Attention Is All You Need", "year": 2017}

	assert.True(t, r.Has("title"))
	assert.False(t, r.Has("abstract"))
	assert.Equal(t, "Attention Is All You Need", r.String("title"))
	assert.Equal(t, "", r.String("year")) // not a string
	assert.Equal(t, "", r.String("absent"))
}

func writeTestFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
