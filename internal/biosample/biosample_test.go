// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package biosample

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/tissue-classifier/pkg/types"
)

func biosampleTestServer(statusCode int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func testClient(ts *httptest.Server) *Client {
	return &Client{
		Client: ts.Client(),
		Config: types.EnrichmentConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   5 * time.Second,
				UserAgent: "tissue-classifier/test",
			},
		},
	}
}

func TestFetch(t *testing.T) {
	ts := biosampleTestServer(http.StatusOK, `{"organism": "Homo sapiens", "tissue": "liver"}`)
	defer ts.Close()

	old := datasetsAPIBase
	datasetsAPIBase = ts.URL + "/"
	defer func() { datasetsAPIBase = old }()

	record := testClient(ts).Fetch(context.Background(), "SAMN38539845")
	if record == nil {
		t.Fatal("Fetch returned nil for a valid record")
	}
	if record["organism"] != "Homo sapiens" {
		t.Errorf("organism = %v", record["organism"])
	}
}

func TestFetchNeverErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		accession  string
	}{
		{"empty accession", http.StatusOK, `{}`, ""},
		{"not found", http.StatusNotFound, `{"error": "no such accession"}`, "SAMN1"},
		{"server error", http.StatusInternalServerError, "boom", "SAMN1"},
		{"malformed JSON", http.StatusOK, `{"organism": `, "SAMN1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := biosampleTestServer(tt.statusCode, tt.body)
			defer ts.Close()

			old := datasetsAPIBase
			datasetsAPIBase = ts.URL + "/"
			defer func() { datasetsAPIBase = old }()

			if record := testClient(ts).Fetch(context.Background(), tt.accession); record != nil {
				t.Errorf("Fetch = %v, want nil", record)
			}
		})
	}
}

func TestFetchTransportFailure(t *testing.T) {
	ts := biosampleTestServer(http.StatusOK, `{}`)
	ts.Close()

	old := datasetsAPIBase
	datasetsAPIBase = ts.URL + "/"
	defer func() { datasetsAPIBase = old }()

	c := &Client{Client: &http.Client{Timeout: time.Second}}
	if record := c.Fetch(context.Background(), "SAMN1"); record != nil {
		t.Errorf("Fetch = %v, want nil on transport failure", record)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		before string
		record map[string]any
		want   string
	}{
		{
			name:   "nil record leaves text unchanged",
			before: "Organism: Homo sapiens",
			record: nil,
			want:   "Organism: Homo sapiens",
		},
		{
			name:   "appends string fields in fixed order",
			before: "Organism: Homo sapiens",
			record: map[string]any{
				"tissue":           "liver",
				"organism":         "Homo sapiens",
				"isolation_source": "biopsy",
			},
			want: "Organism: Homo sapiens\norganism: Homo sapiens\nisolation_source: biopsy\ntissue: liver",
		},
		{
			name:   "skips non-string and empty values",
			before: "base",
			record: map[string]any{
				"organism":  map[string]any{"name": "Homo sapiens"},
				"tissue":    "",
				"cell_type": 42,
				"cell_line": "HepG2",
			},
			want: "base\ncell_line: HepG2",
		},
		{
			name:   "record with no useful fields is a no-op",
			before: "base",
			record: map[string]any{"accession": "SAMN1"},
			want:   "base",
		},
		{
			name:   "empty initial text gains no leading newline",
			before: "",
			record: map[string]any{"tissue": "liver"},
			want:   "tissue: liver",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := &types.SampleMetadata{MetadataText: tt.before}
			Merge(meta, tt.record)
			if meta.MetadataText != tt.want {
				t.Errorf("MetadataText = %q, want %q", meta.MetadataText, tt.want)
			}
		})
	}
}
