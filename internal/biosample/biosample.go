// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package biosample enriches sample metadata from the NCBI BioSample API.
// Enrichment is strictly best-effort: the primary classification path never
// fails because of anything that happens here.
package biosample

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// datasetsAPIBase is the NCBI Datasets BioSample endpoint. Declared as a var
// so tests can substitute an httptest server.
var datasetsAPIBase = "https://api.ncbi.nlm.nih.gov/datasets/v2alpha/biosample/accession/"

// mergeKeys lists the fields copied from a BioSample record onto the
// metadata text, in output order.
var mergeKeys = []string{"organism", "isolation_source", "tissue", "cell_type", "cell_line"}

// Client queries the BioSample API.
type Client struct {
	Client *http.Client
	Config types.EnrichmentConfig
}

// Fetch retrieves the BioSample record for an accession. The record shape
// varies between entries, so it is returned as a generic mapping. Any
// failure — empty accession, transport error, non-200 status, malformed
// JSON — yields nil rather than an error.
func (c *Client) Fetch(ctx context.Context, accession string) map[string]any {
	if accession == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, datasetsAPIBase+accession, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var record map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil
	}
	return record
}

// Merge appends select BioSample fields onto the metadata text as
// "key: value" lines. Only non-empty string values are taken; a nil record
// leaves the metadata untouched.
func Merge(meta *types.SampleMetadata, record map[string]any) {
	if record == nil {
		return
	}
	var lines []string
	for _, key := range mergeKeys {
		if v, ok := record[key].(string); ok && v != "" {
			lines = append(lines, key+": "+v)
		}
	}
	meta.AppendText(lines...)
}
