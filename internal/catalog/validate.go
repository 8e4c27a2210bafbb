package catalog

import (
	"fmt"
	"net/url"
	"strconv"
)

// validateArguments checks an argument bag against the operation's
// schema and serializes the accepted values as CKAN query parameters.
// Unknown names, mistyped values and missing required arguments all
// reject with ErrInvalidArguments before any request is issued.
func validateArguments(op Operation, args map[string]any) (url.Values, error) {
	params := url.Values{}
	for name, value := range args {
		spec, ok := op.argSpec(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown argument %q for %s", ErrInvalidArguments, name, op.Name)
		}
		encoded, err := encodeArgument(spec, value)
		if err != nil {
			return nil, err
		}
		params.Set(spec.Name, encoded)
	}

	for _, spec := range op.Args {
		if spec.Required && !params.Has(spec.Name) {
			return nil, fmt.Errorf("%w: missing required argument %q for %s", ErrInvalidArguments, spec.Name, op.Name)
		}
	}
	return params, nil
}

// encodeArgument converts one argument value to its query-string form.
// Numbers arrive as float64 from JSON decoding; int and int64 are
// accepted for in-process callers. Whole floats encode without a
// decimal point, so rows=10 stays rows=10 rather than rows=10.0.
func encodeArgument(spec ArgSpec, value any) (string, error) {
	switch spec.Type {
	case ArgTypeString:
		s, ok := value.(string)
		if !ok {
			return "", typeError(spec, value)
		}
		return s, nil

	case ArgTypeNumber:
		switch n := value.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(n), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		default:
			return "", typeError(spec, value)
		}

	case ArgTypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return "", typeError(spec, value)
		}
		return strconv.FormatBool(b), nil

	default:
		return "", fmt.Errorf("%w: argument %q has unsupported type %q", ErrInvalidArguments, spec.Name, spec.Type)
	}
}

func typeError(spec ArgSpec, value any) error {
	return fmt.Errorf("%w: argument %q must be a %s, got %T", ErrInvalidArguments, spec.Name, spec.Type, value)
}
