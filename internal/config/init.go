package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// ExampleRaw returns the raw form of a typical site: highlighted code blocks,
// MDX pages and React islands deployed to Vercel with analytics enabled.
func ExampleRaw() map[string]any {
	return map[string]any{
		keyIntegrations: []any{
			map[string]any{"name": "expressiveCode", "themes": []any{"one-dark-pro"}},
			map[string]any{"name": "mdx"},
			map[string]any{"name": "react"},
		},
		keyAdapter: map[string]any{
			"name":         "vercel",
			"webAnalytics": map[string]any{"enabled": true},
		},
		keyFormatter: map[string]any{
			"plugins": []any{"prettier-plugin-astro", "prettier-plugin-tailwindcss"},
			"overrides": []any{
				map[string]any{"files": "*.astro", "options": map[string]any{"parser": "astro"}},
			},
			"printWidth": 110,
		},
	}
}

// Init writes an example configuration to configPath, in the format implied
// by its extension. An existing file is only replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists: " + configPath + " (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(configPath), "."))
	if err != nil {
		return fmt.Errorf("cannot choose output format for %s: %w", configPath, err)
	}
	example := ExampleRaw()
	if _, err := Load(example); err != nil {
		return ferrors.InternalError(err, "example configuration is invalid").Build()
	}

	var buf bytes.Buffer
	if err := Encode(&buf, example, format); err != nil {
		return ferrors.InternalError(err, "failed to encode example configuration").Build()
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ferrors.FileSystemError(err, "failed to create config directory "+dir).Build()
		}
	}
	if err := os.WriteFile(configPath, buf.Bytes(), 0o644); err != nil {
		return ferrors.FileSystemError(err, "failed to write "+configPath).Build()
	}
	return nil
}
