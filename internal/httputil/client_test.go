// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit timeout", 5 * time.Second, 5 * time.Second},
		{"zero falls back to default", 0, DefaultTimeout},
		{"negative falls back to default", -time.Second, DefaultTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.timeout)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Timeout)
		})
	}
}
