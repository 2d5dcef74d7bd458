package config

import (
	"errors"
	"fmt"
	"strconv"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// UnknownOptionError reports a key that is not recognized at its position.
type UnknownOptionError struct {
	// Path locates the mapping holding the key ("" for the top level).
	Path string
	Key  string
}

func (e *UnknownOptionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown option %q", e.Key)
	}
	return fmt.Sprintf("unknown option %q in %s", e.Key, e.Path)
}

// Option returns the fully qualified option path.
func (e *UnknownOptionError) Option() string { return joinPath(e.Path, e.Key) }

// Category classifies the error for the CLI adapter.
func (e *UnknownOptionError) Category() ferrors.ErrorCategory { return ferrors.CategoryValidation }

// InvalidValueError reports a recognized key whose value has the wrong shape,
// type or enumeration value.
type InvalidValueError struct {
	Path   string
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid value for %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid value %s for %s: %s", describeValue(e.Value), e.Path, e.Reason)
}

// Category classifies the error for the CLI adapter.
func (e *InvalidValueError) Category() ferrors.ErrorCategory { return ferrors.CategoryValidation }

// ErrorLabel returns a short, stable label for err suitable for metrics.
func ErrorLabel(err error) string {
	var unknown *UnknownOptionError
	var invalid *InvalidValueError
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &unknown):
		return "unknown_option"
	case errors.As(err, &invalid):
		return "invalid_value"
	case ferrors.HasCategory(err, ferrors.CategoryNotFound):
		return "not_found"
	default:
		return "source"
	}
}

func unknownOption(path, key string) *UnknownOptionError {
	return &UnknownOptionError{Path: path, Key: key}
}

func invalidValue(path string, value any, format string, args ...any) *InvalidValueError {
	return &InvalidValueError{Path: path, Value: value, Reason: fmt.Sprintf(format, args...)}
}

func describeValue(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("of type %T", v)
	}
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
