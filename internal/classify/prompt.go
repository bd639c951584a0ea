// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	"text/template"
)

// classificationPromptTmpl is the prompt sent to the generative-text backend
// for each sample. It pins the output contract to strict JSON with exactly
// the two expected keys.
var classificationPromptTmpl = template.Must(template.New("classification").Parse(`You are analyzing scRNA-seq sample metadata to determine tissue/cell-type of origin.
From the metadata below, produce:
1) a five-word summary of the sample's tissue or cell type of origin;
2) the best-guess tissue type as a single concise noun phrase.
Return strict JSON with keys: summary_5_words, tissue_guess.

Metadata:
{{.Metadata}}
`))

// BuildPrompt renders the fixed classification prompt around the metadata
// text. The template is constant; only the embedded metadata varies.
func BuildPrompt(metadataText string) (string, error) {
	var buf bytes.Buffer
	err := classificationPromptTmpl.Execute(&buf, struct{ Metadata string }{Metadata: metadataText})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
