// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the per-record classification flow:
// fetch → extract → enrich → prompt → classify → shape output.
package pipeline

import (
	"context"
	"fmt"

	"github.com/pdiddy/tissue-classifier/internal/biosample"
	"github.com/pdiddy/tissue-classifier/internal/classify"
	"github.com/pdiddy/tissue-classifier/internal/httputil"
	"github.com/pdiddy/tissue-classifier/internal/sra"
	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// sraLinkBase is the SRA browser URL prefix for the srx_link output field.
const sraLinkBase = "https://www.ncbi.nlm.nih.gov/sra/?term="

// Pipeline holds the collaborators for per-record classification. Each
// invocation of ClassifyRecord is independent; the pipeline keeps no state
// between records.
type Pipeline struct {
	Archive  *sra.Client
	Enricher *biosample.Client
	Backend  classify.TextBackend
}

// New wires a Pipeline from configuration, constructing HTTP clients with
// the configured timeouts.
func New(cfg types.PipelineConfig) *Pipeline {
	return &Pipeline{
		Archive: &sra.Client{
			Client: httputil.NewClient(cfg.Archive.Timeout),
			Config: cfg.Archive,
		},
		Enricher: &biosample.Client{
			Client: httputil.NewClient(cfg.Enrichment.Timeout),
			Config: cfg.Enrichment,
		},
		Backend: &classify.GeminiBackend{
			APIKey: cfg.Classifier.APIKey,
			Model:  cfg.Classifier.Model,
			Client: httputil.NewClient(cfg.Classifier.Timeout),
		},
	}
}

// ClassifyRecord runs the full classification flow for one SRX accession.
// Errors from the archive fetch, extraction, and classification propagate
// unmodified; BioSample enrichment failures are absorbed and never fail the
// call. The srx_link is built from the accession resolved out of the archive
// record when present, otherwise from the caller-supplied one.
func (p *Pipeline) ClassifyRecord(ctx context.Context, accession string) (types.RecordOutput, error) {
	set, err := p.Archive.Fetch(ctx, accession)
	if err != nil {
		return types.RecordOutput{}, err
	}

	meta := sra.Extract(set)
	if meta.IsEmpty() {
		return types.RecordOutput{}, fmt.Errorf("extracting %s: %w", accession, sra.ErrNoMetadata)
	}

	// Best-effort enrichment: a missing BioSample id and a failed or
	// useless fetch are treated identically — no extra metadata lines.
	record := p.Enricher.Fetch(ctx, meta.BioSample)
	biosample.Merge(meta, record)

	cls, err := classify.Classify(ctx, p.Backend, meta.MetadataText)
	if err != nil {
		return types.RecordOutput{}, err
	}

	resolved := meta.SRX
	if resolved == "" {
		resolved = accession
	}

	return types.RecordOutput{
		SRXLink:          SRXLink(resolved),
		SummaryFiveWords: cls.SummaryFiveWords,
		TissueGuess:      cls.TissueGuess,
	}, nil
}

// SRXLink builds the SRA browser URL for an accession.
func SRXLink(accession string) string {
	return sraLinkBase + accession
}
