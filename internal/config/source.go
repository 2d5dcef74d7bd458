package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// keyDelim never occurs in option names; theme color keys contain dots.
const keyDelim = "::"

var envFiles = []string{".env", ".env.local"}

// ReadSources reads and merges configuration files in order. Later files
// override earlier ones: mappings merge recursively, sequences are replaced.
// ${VAR} references in string values are expanded from the environment after
// .env files next to the first source have been loaded.
func ReadSources(paths ...string) (map[string]any, error) {
	if len(paths) == 0 {
		return nil, ferrors.ConfigError("no configuration file given").Build()
	}
	loadEnvFiles(filepath.Dir(paths[0]))

	k := koanf.New(keyDelim)
	for _, p := range paths {
		parser, err := parserFor(p)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return nil, ferrors.NotFoundError("configuration file not found: " + p).
					WithContext("path", p).
					Build()
			}
			return nil, ferrors.FileSystemError(err, "cannot access configuration file "+p).
				WithContext("path", p).
				Build()
		}
		if err := k.Load(file.Provider(p), parser); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, fmt.Sprintf("failed to parse %s", p)).
				WithContext("path", p).
				Build()
		}
		slog.Debug("Loaded configuration source", logfields.ConfigPath(p))
	}

	raw, _ := expandEnv(k.Raw()).(map[string]any)
	return raw, nil
}

func parserFor(p string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml", ".json":
		return koanfyaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, ferrors.ConfigError(fmt.Sprintf("unsupported configuration file extension %q (expected .yaml, .yml, .json or .toml)", filepath.Ext(p))).
			WithContext("path", p).
			Build()
	}
}

// loadEnvFiles loads KEY=VALUE files from dir. Existing process variables win.
func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(p), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
	}
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references in string values. Unset variables are
// left as written.
func expandEnv(v any) any {
	switch t := v.(type) {
	case string:
		return envRef.ReplaceAllStringFunc(t, func(ref string) string {
			if val, ok := os.LookupEnv(ref[2 : len(ref)-1]); ok {
				return val
			}
			return ref
		})
	case map[string]any:
		for k, val := range t {
			t[k] = expandEnv(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = expandEnv(val)
		}
		return t
	case []map[string]any:
		for _, m := range t {
			expandEnv(m)
		}
		return t
	default:
		return v
	}
}

// LoadFiles reads the given sources and loads the merged result.
func LoadFiles(paths ...string) (*SiteConfiguration, error) {
	raw, err := ReadSources(paths...)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strings.Join(paths, ", "), err)
	}
	slog.Debug("Loaded site configuration",
		logfields.ConfigPath(strings.Join(paths, ",")),
		logfields.Count(len(cfg.Integrations)))
	return cfg, nil
}

// LoadFormatterFile reads and validates a standalone formatter configuration.
func LoadFormatterFile(path string) (*FormatterConfig, error) {
	raw, err := ReadSources(path)
	if err != nil {
		return nil, err
	}
	f, err := LoadFormatter(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
