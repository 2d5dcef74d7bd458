package config

// Top-level keys of a site configuration.
const (
	keyIntegrations = "integrations"
	keyAdapter      = "adapter"
	keyFormatter    = "formatter"
)

// Load validates a raw configuration mapping (as produced by a YAML, TOML or
// JSON decoder) and returns the normalized site configuration with defaults
// applied. It performs no I/O. A nil mapping yields an empty configuration.
//
// Errors are *UnknownOptionError for unrecognized keys and *InvalidValueError
// for recognized keys with unusable values.
func Load(raw map[string]any) (*SiteConfiguration, error) {
	cfg := &SiteConfiguration{}
	for _, key := range sortedKeys(raw) {
		var err error
		switch key {
		case keyIntegrations:
			cfg.Integrations, err = decodeIntegrations(keyIntegrations, raw[key])
		case keyAdapter:
			cfg.Adapter, err = decodeAdapter(keyAdapter, raw[key])
		case keyFormatter:
			cfg.Formatter, err = decodeEmbeddedFormatter(raw[key])
		default:
			err = unknownOption("", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeEmbeddedFormatter(v any) (*FormatterConfig, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, invalidValue(keyFormatter, v, "expected a formatter mapping")
	}
	return decodeFormatter(keyFormatter, m)
}
