// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text
// files, one secret per file: the filename is the key and the trimmed
// file contents are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where the CLI looks for secret files.
const DefaultDir = ".secrets/"

// PatentsViewAPIKey is the file name holding the PatentsView API key.
const PatentsViewAPIKey = "patentsview-api-key"

// Load reads every regular file in dir into a key-to-value map. A missing
// directory is not an error: commands can take their credentials from flags
// or the config file instead. Dotfiles are skipped, unreadable files produce
// a stderr warning and are skipped, and empty values are dropped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		value, err := readValue(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// readValue returns the trimmed contents of one secret file.
func readValue(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
