// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sra

import (
	"fmt"
	"strings"

	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// bioSampleNamespace labels the external-identifier entry that carries the
// BioSample cross-reference.
const bioSampleNamespace = "BioSample"

// Per-field alias lists for the domain attributes, first present wins.
var (
	tissueAliases   = []string{"tissue", "tissue_type"}
	cellTypeAliases = []string{"cell_type", "celltype"}
	cellLineAliases = []string{"cell_line", "cell-line"}
)

// Extract normalizes an efetch record into SampleMetadata. When the record
// contains several experiment packages only the first is used; when it
// contains none the returned metadata is empty (IsEmpty reports true) and no
// error is raised — the caller decides whether that is fatal.
func Extract(set *ExperimentPackageSet) *types.SampleMetadata {
	meta := &types.SampleMetadata{Attributes: map[string]string{}}
	if set == nil || len(set.Packages) == 0 {
		return meta
	}
	pkg := set.Packages[0]

	meta.SRX = pkg.Experiment.Accession
	meta.SRS = pkg.Sample.Accession

	for _, ex := range pkg.Sample.ExternalIDs {
		if ex.Namespace == bioSampleNamespace {
			meta.BioSample = strings.TrimSpace(ex.Value)
			break
		}
	}

	meta.SampleTitle = pkg.Sample.Title
	meta.StudyTitle = pkg.Study.Descriptor.Title
	meta.StudyAbstract = pkg.Study.Descriptor.Abstract
	meta.Organism = pkg.Sample.SampleName.ScientificName

	// Lower-cased attribute tags; last occurrence of a duplicate tag wins,
	// but rendering order follows first occurrence.
	var tagOrder []string
	for _, attr := range pkg.Sample.Attributes {
		if attr.Tag == "" {
			continue
		}
		tag := strings.ToLower(attr.Tag)
		if _, seen := meta.Attributes[tag]; !seen {
			tagOrder = append(tagOrder, tag)
		}
		meta.Attributes[tag] = attr.Value
	}

	meta.Tissue = firstAttribute(meta.Attributes, tissueAliases)
	meta.CellType = firstAttribute(meta.Attributes, cellTypeAliases)
	meta.CellLine = firstAttribute(meta.Attributes, cellLineAliases)

	// Compose the compact metadata text for the classifier prompt.
	var parts []string
	if meta.StudyTitle != "" {
		parts = append(parts, "Study title: "+meta.StudyTitle)
	}
	if meta.StudyAbstract != "" {
		parts = append(parts, "Study abstract: "+meta.StudyAbstract)
	}
	if meta.SampleTitle != "" {
		parts = append(parts, "Sample title: "+meta.SampleTitle)
	}
	if meta.Organism != "" {
		parts = append(parts, "Organism: "+meta.Organism)
	}
	for _, tag := range tagOrder {
		parts = append(parts, fmt.Sprintf("%s: %s", tag, meta.Attributes[tag]))
	}
	meta.MetadataText = strings.Join(parts, "\n")

	return meta
}

// firstAttribute returns the value of the first alias present in attrs.
func firstAttribute(attrs map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := attrs[alias]; ok && v != "" {
			return v
		}
	}
	return ""
}
