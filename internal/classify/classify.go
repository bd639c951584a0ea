// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify turns sample metadata text into a tissue classification
// via a generative-text backend, with a lenient parse of the reply.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// maxSummaryWords caps the summary field.
const maxSummaryWords = 5

// Classify renders the prompt for metadataText, invokes the backend, and
// shapes the reply into a Classification. Backend errors propagate; an
// unparseable reply does not — it degrades to empty fields.
func Classify(ctx context.Context, backend TextBackend, metadataText string) (types.Classification, error) {
	prompt, err := BuildPrompt(metadataText)
	if err != nil {
		return types.Classification{}, fmt.Errorf("rendering prompt: %w", err)
	}

	reply, err := backend.Generate(ctx, prompt)
	if err != nil {
		return types.Classification{}, err
	}

	return DecodeReply(reply), nil
}

// rawReply mirrors the JSON contract the prompt asks for. Values are decoded
// as json.RawMessage so non-string values degrade to empty rather than
// failing the whole reply.
type rawReply struct {
	Summary     json.RawMessage `json:"summary_5_words"`
	TissueGuess json.RawMessage `json:"tissue_guess"`
}

// DecodeReply parses untrusted model output into a Classification. Strategies
// are tried in order: the full reply as JSON, then the substring between the
// first "{" and the last "}", then the guaranteed empty-field fallback. This
// function never fails.
func DecodeReply(text string) types.Classification {
	var raw rawReply
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start == -1 || end == -1 || end <= start {
			return types.Classification{}
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
			return types.Classification{}
		}
	}

	return types.Classification{
		SummaryFiveWords: truncateWords(stringField(raw.Summary), maxSummaryWords),
		TissueGuess:      strings.TrimSpace(stringField(raw.TissueGuess)),
	}
}

// stringField decodes a raw JSON value as a string; anything else (absent,
// null, number, object) normalizes to "".
func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// truncateWords trims s and keeps at most max whitespace-separated tokens,
// rejoined with single spaces.
func truncateWords(s string, max int) string {
	s = strings.TrimSpace(s)
	words := strings.Fields(s)
	if len(words) > max {
		return strings.Join(words[:max], " ")
	}
	return s
}
