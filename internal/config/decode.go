package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// decodeStrict decodes input onto out (which may already hold defaults).
// Keys must match field tags exactly; leftovers become UnknownOptionError and
// type mismatches become InvalidValueError. Wherever a list of strings is
// expected, a single string is wrapped into a one-element list.
func decodeStrict(path string, input map[string]any, out any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		Metadata:   &md,
		TagName:    "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(wrapSingularString, rejectFraction),
		MatchName:  func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return fmt.Errorf("build decoder for %s: %w", path, err)
	}
	if err := dec.Decode(input); err != nil {
		return decodeFailure(path, err)
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		nested, key := splitUnused(md.Unused[0])
		if nested != "" {
			path = joinPath(path, nested)
		}
		return unknownOption(path, key)
	}
	return nil
}

func wrapSingularString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to.Kind() == reflect.Slice && to.Elem().Kind() == reflect.String {
		return []string{reflect.ValueOf(data).String()}, nil
	}
	return data, nil
}

// fractionError reports a float that would lose its fraction when stored in
// an integer option.
type fractionError struct {
	value float64
}

func (e *fractionError) Error() string {
	return fmt.Sprintf("expected a whole number, got %v", e.value)
}

func rejectFraction(from, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.Trunc(f) != f {
		return nil, &fractionError{value: f}
	}
	return data, nil
}

// decodeErrorField matches the field name mapstructure puts at the start of
// each reported error, e.g. "'gfm' expected type 'bool'" or
// "error decoding 'printWidth': ...".
var decodeErrorField = regexp.MustCompile(`^(?:\* )?[a-z ]*'([^']+)'`)

// decodeFailure converts a mapstructure error into an InvalidValueError. When
// exactly one field failed, its name is appended to path.
func decodeFailure(path string, err error) *InvalidValueError {
	invalid := &InvalidValueError{Path: path, Reason: err.Error()}
	var names []string
	for _, line := range strings.Split(err.Error(), "\n") {
		m := decodeErrorField.FindStringSubmatch(strings.TrimSpace(line))
		if m != nil && !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	if len(names) == 1 {
		invalid.Path = joinPath(path, names[0])
	}
	var frac *fractionError
	if errors.As(err, &frac) {
		invalid.Value = frac.value
		invalid.Reason = "expected a whole number"
	}
	return invalid
}

// splitUnused separates mapstructure's dotted unused-key name into the
// enclosing path and the offending key.
func splitUnused(name string) (string, string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// asMap accepts the mapping shapes produced by the YAML, TOML and JSON decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// asSequence accepts generic and typed slices.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// without returns a shallow copy of m minus the given keys.
func without(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if !slices.Contains(keys, k) {
			out[k] = v
		}
	}
	return out
}

// sortedKeys returns the keys of m in lexical order so errors are deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// requireNonEmpty rejects empty or blank entries in a string list.
func requireNonEmpty(path string, values []string) error {
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return invalidValue(indexPath(path, i), v, "must not be empty")
		}
	}
	return nil
}
