// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package augment drives batch classification over a CSV of SRX accessions,
// appending the classifier output columns to each processed row.
package augment

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/tissue-classifier/internal/pipeline"
	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// newColumns are appended to the output header when not already present.
var newColumns = []string{"srx_link", "summary_5_words", "tissue_guess"}

// defaultLimit caps processed rows when no limit is configured.
const defaultLimit = 20

// BatchResult holds the outcome of a batch augmentation run.
type BatchResult struct {
	Classified int
	Blank      int
	Written    int
}

// HasFailures reports whether any rows were left blank.
func (r BatchResult) HasFailures() bool {
	return r.Blank > 0
}

// Run reads cfg.InputPath, classifies the first column of up to cfg.Limit
// rows, and writes the augmented table to cfg.OutputPath. Rows whose
// classification fails keep every original column and get empty strings in
// the three new columns; the batch itself never aborts on a per-record
// error. Per-row progress goes to w.
func Run(ctx context.Context, p *pipeline.Pipeline, cfg types.AugmentConfig, w io.Writer) (BatchResult, error) {
	infile, err := os.Open(cfg.InputPath)
	if err != nil {
		return BatchResult{}, fmt.Errorf("opening input: %w", err)
	}
	defer infile.Close()

	rows, header, err := augmentRows(ctx, p, csv.NewReader(infile), cfg.Limit, w)
	if err != nil {
		return BatchResult{}, err
	}

	outfile, err := os.Create(cfg.OutputPath)
	if err != nil {
		return BatchResult{}, fmt.Errorf("creating output: %w", err)
	}
	defer outfile.Close()

	writer := csv.NewWriter(outfile)
	if err := writer.Write(header); err != nil {
		return BatchResult{}, fmt.Errorf("writing header: %w", err)
	}

	var result BatchResult
	for _, row := range rows {
		if err := writer.Write(row.fields); err != nil {
			return BatchResult{}, fmt.Errorf("writing row: %w", err)
		}
		result.Written++
		if row.classified {
			result.Classified++
		} else {
			result.Blank++
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return BatchResult{}, fmt.Errorf("flushing output: %w", err)
	}

	fmt.Fprintf(w, "\nBatch summary: %d classified, %d blank (wrote %d rows)\n",
		result.Classified, result.Blank, result.Written)
	return result, nil
}

// outputRow is one augmented row plus whether classification succeeded.
type outputRow struct {
	fields     []string
	classified bool
}

// augmentRows reads the header and up to limit data rows, classifying each.
// The returned header preserves every original column and appends the new
// columns that are not already present.
func augmentRows(ctx context.Context, p *pipeline.Pipeline, r *csv.Reader, limit int, w io.Writer) ([]outputRow, []string, error) {
	// Input rows may be ragged; pad instead of failing.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("input CSV is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	existing := make(map[string]int, len(header))
	for i, col := range header {
		existing[col] = i
	}

	outHeader := append([]string(nil), header...)
	colIndex := make(map[string]int, len(newColumns))
	for _, col := range newColumns {
		if i, ok := existing[col]; ok {
			colIndex[col] = i
			continue
		}
		colIndex[col] = len(outHeader)
		outHeader = append(outHeader, col)
	}

	if limit <= 0 {
		limit = defaultLimit
	}

	var rows []outputRow
	for len(rows) < limit {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}

		fields := make([]string, len(outHeader))
		copy(fields, record)

		accession := ""
		if len(record) > 0 {
			accession = strings.TrimSpace(record[0])
		}

		classified := false
		if accession != "" {
			out, err := p.ClassifyRecord(ctx, accession)
			if err != nil {
				fmt.Fprintf(w, "failed:     %s (%v)\n", accession, err)
			} else {
				fields[colIndex["srx_link"]] = out.SRXLink
				fields[colIndex["summary_5_words"]] = out.SummaryFiveWords
				fields[colIndex["tissue_guess"]] = out.TissueGuess
				classified = true
				fmt.Fprintf(w, "classified: %s (%s)\n", accession, out.TissueGuess)
			}
		}

		rows = append(rows, outputRow{fields: fields, classified: classified})
	}

	return rows, outHeader, nil
}
