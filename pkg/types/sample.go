// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tissue-classifier pipeline.
package types

// SampleMetadata is the flat, normalized view of one SRA experiment package.
// All fields are optional; absent values are empty strings. MetadataText is
// derived from the other fields at extraction time and afterwards only ever
// grows by appended lines (BioSample enrichment).
type SampleMetadata struct {
	// SRX is the experiment accession (e.g. "SRX22288182").
	SRX string `json:"srx" yaml:"srx"`

	// SRS is the sample accession.
	SRS string `json:"srs" yaml:"srs"`

	// BioSample is the BioSample cross-reference accession, if the sample
	// carries one.
	BioSample string `json:"biosample" yaml:"biosample"`

	SampleTitle   string `json:"sample_title" yaml:"sample_title"`
	StudyTitle    string `json:"study_title" yaml:"study_title"`
	StudyAbstract string `json:"study_abstract" yaml:"study_abstract"`
	Organism      string `json:"organism" yaml:"organism"`

	// Tissue, CellType, and CellLine are resolved from the attribute map
	// through small per-field alias lists.
	Tissue   string `json:"tissue" yaml:"tissue"`
	CellType string `json:"cell_type" yaml:"cell_type"`
	CellLine string `json:"cell_line" yaml:"cell_line"`

	// Attributes maps lower-cased sample attribute tags to values. On
	// duplicate tags the last occurrence wins.
	Attributes map[string]string `json:"attributes" yaml:"attributes"`

	// MetadataText is the newline-joined human-readable summary handed to
	// the classifier prompt.
	MetadataText string `json:"metadata_text" yaml:"metadata_text"`
}

// IsEmpty reports whether extraction found no usable experiment package.
func (m *SampleMetadata) IsEmpty() bool {
	return m.SRX == "" && m.SRS == "" && m.SampleTitle == "" &&
		m.StudyTitle == "" && m.Organism == "" && len(m.Attributes) == 0 &&
		m.MetadataText == ""
}

// AppendText adds lines to MetadataText. Lines are joined with newlines;
// calling with no lines is a no-op.
func (m *SampleMetadata) AppendText(lines ...string) {
	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		if m.MetadataText != "" {
			m.MetadataText += "\n"
		}
		m.MetadataText += line
	}
}

// Classification is the shaped classifier reply. Both fields are always
// present; on total parse degradation both are empty strings.
type Classification struct {
	// SummaryFiveWords is at most five space-separated tokens.
	SummaryFiveWords string `json:"summary_5_words" yaml:"summary_5_words"`

	// TissueGuess is a free-form noun phrase, possibly empty.
	TissueGuess string `json:"tissue_guess" yaml:"tissue_guess"`
}

// RecordOutput is the per-record result handed back to callers: the SRA
// browser link for the resolved accession plus the classification fields.
type RecordOutput struct {
	SRXLink          string `json:"srx_link" yaml:"srx_link"`
	SummaryFiveWords string `json:"summary_5_words" yaml:"summary_5_words"`
	TissueGuess      string `json:"tissue_guess" yaml:"tissue_guess"`
}
