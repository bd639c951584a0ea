// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// mockBackend returns a canned reply or error.
type mockBackend struct {
	reply      string
	err        error
	lastPrompt string
}

func (m *mockBackend) Generate(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Organism: Homo sapiens\ntissue: liver")
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	for _, want := range []string{
		"Organism: Homo sapiens",
		"tissue: liver",
		"summary_5_words",
		"tissue_guess",
		"strict JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  types.Classification
	}{
		{
			name:  "clean JSON",
			reply: `{"summary_5_words": "Human liver scRNA-seq sample", "tissue_guess": "liver"}`,
			want:  types.Classification{SummaryFiveWords: "Human liver scRNA-seq sample", TissueGuess: "liver"},
		},
		{
			name:  "summary truncated to five tokens",
			reply: `{"summary_5_words": "a b c d e f", "tissue_guess": "liver"}`,
			want:  types.Classification{SummaryFiveWords: "a b c d e", TissueGuess: "liver"},
		},
		{
			name:  "fields trimmed",
			reply: `{"summary_5_words": "  liver sample  ", "tissue_guess": " liver \n"}`,
			want:  types.Classification{SummaryFiveWords: "liver sample", TissueGuess: "liver"},
		},
		{
			name:  "JSON embedded in prose",
			reply: "Sure, here is the result:\n```json\n{\"summary_5_words\": \"Mouse brain neurons\", \"tissue_guess\": \"brain\"}\n```\nLet me know!",
			want:  types.Classification{SummaryFiveWords: "Mouse brain neurons", TissueGuess: "brain"},
		},
		{
			name:  "no braces at all",
			reply: "I could not determine the tissue of origin.",
			want:  types.Classification{},
		},
		{
			name:  "braces but still malformed",
			reply: "result {summary: oops, not json}",
			want:  types.Classification{},
		},
		{
			name:  "reversed braces",
			reply: "} weird {",
			want:  types.Classification{},
		},
		{
			name:  "empty reply",
			reply: "",
			want:  types.Classification{},
		},
		{
			name:  "missing keys normalize to empty",
			reply: `{"something_else": "x"}`,
			want:  types.Classification{},
		},
		{
			name:  "null and non-string values normalize to empty",
			reply: `{"summary_5_words": null, "tissue_guess": 7}`,
			want:  types.Classification{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeReply(tt.reply)
			if got != tt.want {
				t.Errorf("DecodeReply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a b c d e f g", "a b c d e"},
		{"a b c d e", "a b c d e"},
		{"one", "one"},
		{"", ""},
		{"  padded   inner   spacing  ", "padded   inner   spacing"},
	}
	for _, tt := range tests {
		if got := truncateWords(tt.in, 5); got != tt.want {
			t.Errorf("truncateWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	backend := &mockBackend{reply: `{"summary_5_words": "Human liver cells profiled deeply here", "tissue_guess": "liver"}`}
	got, err := Classify(context.Background(), backend, "Organism: Homo sapiens")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.SummaryFiveWords != "Human liver cells profiled deeply" {
		t.Errorf("SummaryFiveWords = %q", got.SummaryFiveWords)
	}
	if got.TissueGuess != "liver" {
		t.Errorf("TissueGuess = %q", got.TissueGuess)
	}
	if !strings.Contains(backend.lastPrompt, "Organism: Homo sapiens") {
		t.Errorf("backend prompt missing metadata text:\n%s", backend.lastPrompt)
	}
}

func TestClassifyPropagatesBackendError(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("model overloaded")}
	if _, err := Classify(context.Background(), backend, "x"); err == nil {
		t.Fatal("Classify: expected backend error to propagate")
	}
}
