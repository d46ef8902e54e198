package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/mo"
)

// Validate checks raw arguments against the schema. It never panics: the
// result is either the input object or a *ValidationError listing every
// violated field. Fields not declared in the schema are ignored.
//
// A nil input is treated as an empty object so that missing required fields
// are reported individually.
func (s Schema) Validate(raw any) mo.Result[Object] {
	var obj Object
	switch v := raw.(type) {
	case nil:
		obj = Object{}
	case map[string]any:
		obj = v
	default:
		return mo.Err[Object](&ValidationError{Problems: []Problem{{
			Reason: fmt.Sprintf("arguments must be an object, got %s", typeName(raw)),
		}}})
	}

	var problems []Problem
	validateFields(s.Fields, obj, "", &problems)
	if len(problems) > 0 {
		return mo.Err[Object](&ValidationError{Problems: problems})
	}
	return mo.Ok(obj)
}

func validateFields(fields []Field, obj Object, prefix string, problems *[]Problem) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		value, present := obj[f.Name]
		if !present || value == nil {
			if f.Required {
				*problems = append(*problems, Problem{Path: path, Reason: "required field is missing"})
			}
			continue
		}

		validateValue(f, value, path, problems)
	}
}

func validateValue(f Field, value any, path string, problems *[]Problem) {
	switch f.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			*problems = append(*problems, typeProblem(path, f.Type, value))
			return
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			*problems = append(*problems, Problem{
				Path:   path,
				Reason: fmt.Sprintf("must be one of [%s], got %q", strings.Join(f.Enum, ", "), s),
			})
		}

	case TypeInteger:
		n, ok := toFloat(value)
		if !ok {
			*problems = append(*problems, typeProblem(path, f.Type, value))
			return
		}
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			*problems = append(*problems, Problem{Path: path, Reason: fmt.Sprintf("expected integer, got %v", n)})
			return
		}
		// Integers are decoded into int64 fields and sent to APIs that take int32.
		if n < math.MinInt32 || n > math.MaxInt32 {
			*problems = append(*problems, Problem{
				Path:   path,
				Reason: fmt.Sprintf("must be between %d and %d, got %v", math.MinInt32, math.MaxInt32, n),
			})
			return
		}
		if f.Positive && n <= 0 {
			*problems = append(*problems, Problem{Path: path, Reason: fmt.Sprintf("must be a positive integer, got %v", n)})
		}

	case TypeNumber:
		if _, ok := toFloat(value); !ok {
			*problems = append(*problems, typeProblem(path, f.Type, value))
		}

	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			*problems = append(*problems, typeProblem(path, f.Type, value))
		}

	case TypeObject:
		nested, ok := value.(map[string]any)
		if !ok {
			*problems = append(*problems, typeProblem(path, f.Type, value))
			return
		}
		validateFields(f.Fields, nested, path, problems)
	}
}

func typeProblem(path string, want Type, value any) Problem {
	return Problem{Path: path, Reason: fmt.Sprintf("expected %s, got %s", want, typeName(value))}
}

// toFloat accepts the numeric representations produced by encoding/json
// (float64, json.Number) and by Go callers (int kinds).
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
