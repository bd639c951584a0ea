// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sra fetches experiment metadata from the NCBI SRA archive and
// normalizes it into a flat SampleMetadata record.
package sra

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/tissue-classifier/pkg/types"
)

// eutilsAPIBase is the NCBI E-utilities endpoint. Declared as a var so tests
// can substitute an httptest server.
var eutilsAPIBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// ErrNoMetadata reports that the archive replied but the record contained no
// usable experiment package. Distinct from transport failures so callers can
// tell "record is empty" from "could not reach the archive".
var ErrNoMetadata = errors.New("no usable SRA metadata")

// Client queries the SRA efetch API.
type Client struct {
	Client *http.Client
	Config types.ArchiveConfig
}

// Fetch retrieves the raw efetch record for an SRX accession.
func (c *Client) Fetch(ctx context.Context, accession string) (*ExperimentPackageSet, error) {
	if accession == "" {
		return nil, fmt.Errorf("empty SRA accession")
	}

	params := url.Values{
		"db":      {"sra"},
		"id":      {accession},
		"retmode": {"xml"},
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}

	reqURL := eutilsAPIBase + "/efetch.fcgi?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SRA efetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SRA efetch returned HTTP %d", resp.StatusCode)
	}

	var set ExperimentPackageSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing SRA response: %w", err)
	}
	return &set, nil
}

// SRA efetch XML structures. Fields that the archive may emit once or many
// times are declared as slices: encoding/xml decodes a single element into a
// one-element slice, which resolves the one-or-many ambiguity in one place.
type ExperimentPackageSet struct {
	XMLName  xml.Name            `xml:"EXPERIMENT_PACKAGE_SET"`
	Packages []ExperimentPackage `xml:"EXPERIMENT_PACKAGE"`
}

type ExperimentPackage struct {
	Experiment Experiment `xml:"EXPERIMENT"`
	Sample     Sample     `xml:"SAMPLE"`
	Study      Study      `xml:"STUDY"`
}

type Experiment struct {
	Accession string `xml:"accession,attr"`
}

type Sample struct {
	Accession   string            `xml:"accession,attr"`
	Title       string            `xml:"TITLE"`
	ExternalIDs []ExternalID      `xml:"IDENTIFIERS>EXTERNAL_ID"`
	SampleName  SampleName        `xml:"SAMPLE_NAME"`
	Attributes  []SampleAttribute `xml:"SAMPLE_ATTRIBUTES>SAMPLE_ATTRIBUTE"`
}

type ExternalID struct {
	Namespace string `xml:"namespace,attr"`
	Value     string `xml:",chardata"`
}

type SampleName struct {
	ScientificName string `xml:"SCIENTIFIC_NAME"`
}

type SampleAttribute struct {
	Tag   string `xml:"TAG"`
	Value string `xml:"VALUE"`
}

type Study struct {
	Descriptor StudyDescriptor `xml:"DESCRIPTOR"`
}

type StudyDescriptor struct {
	Title    string `xml:"STUDY_TITLE"`
	Abstract string `xml:"STUDY_ABSTRACT"`
}
