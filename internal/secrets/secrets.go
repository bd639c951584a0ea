// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files and
// resolves the effective credential across flag, environment, and file
// sources. Each file in the directory represents one secret: the filename is
// the key name and the file contents (trimmed) are the value.
//
// Supported key files: gemini-api-key, ncbi-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve picks the effective credential value with defined precedence: the
// explicit value (a flag) wins, then the named environment variables in
// order, then the named key from the loaded secrets map. Returns "" when no
// source has a value.
func Resolve(explicit string, envVars []string, loaded map[string]string, key string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range envVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return loaded[key]
}
