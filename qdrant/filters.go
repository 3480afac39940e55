package qdrant

import (
	"math"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// TranslateFilter converts a generic nested filter mapping into the
// backend's native filter grammar. The accepted shape mirrors Qdrant's
// JSON filter model:
//
//	{
//	  "must":     [{"key": "city", "match": {"value": "London"}}],
//	  "should":   [{"key": "tag", "match": {"any": ["a", "b"]}}],
//	  "must_not": [{"key": "price", "range": {"gte": 100}}],
//	}
//
// An absent or empty filter means "match all" and translates to nil.
// Structural violations are rejected locally with a validation error
// naming the offending field; malformed filters are never forwarded.
func TranslateFilter(raw map[string]any) (*qdrant.Filter, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	filter := &qdrant.Filter{}
	for clause, value := range raw {
		conditions, err := translateClause(clause, value)
		if err != nil {
			return nil, err
		}
		switch clause {
		case "must":
			filter.Must = conditions
		case "should":
			filter.Should = conditions
		case "must_not":
			filter.MustNot = conditions
		default:
			return nil, Validationf("unrecognized filter clause '%s' (expected 'must', 'should', or 'must_not')", clause)
		}
	}

	if len(filter.Must) == 0 && len(filter.Should) == 0 && len(filter.MustNot) == 0 {
		return nil, nil
	}
	return filter, nil
}

func translateClause(clause string, value any) ([]*qdrant.Condition, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, Validationf("filter clause '%s' must be a list of conditions", clause)
	}

	conditions := make([]*qdrant.Condition, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			return nil, Validationf("every condition in clause '%s' must be a mapping", clause)
		}
		condition, err := translateCondition(raw)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}
	return conditions, nil
}

// translateCondition requires exactly one field key and exactly one
// comparison ('match' or 'range').
func translateCondition(raw map[string]any) (*qdrant.Condition, error) {
	key, ok := raw["key"].(string)
	if !ok || key == "" {
		return nil, Validationf("filter condition is missing a string 'key' naming the payload field")
	}

	match, hasMatch := raw["match"]
	rng, hasRange := raw["range"]
	if hasMatch == hasRange {
		return nil, Validationf("filter condition on field '%s' must have exactly one of 'match' or 'range'", key)
	}

	if hasMatch {
		return translateMatch(key, match)
	}
	return translateRange(key, rng)
}

func translateMatch(key string, raw any) (*qdrant.Condition, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, Validationf("'match' for field '%s' must be a mapping", key)
	}

	if v, ok := m["value"]; ok {
		switch value := v.(type) {
		case string:
			return qdrant.NewMatch(key, value), nil
		case bool:
			return qdrant.NewMatchBool(key, value), nil
		case int:
			return qdrant.NewMatchInt(key, int64(value)), nil
		case int64:
			return qdrant.NewMatchInt(key, value), nil
		case float64:
			// JSON numbers arrive as float64; only integral values
			// are matchable.
			if value != math.Trunc(value) {
				return nil, Validationf("match value for field '%s' must be a string, boolean, or integer", key)
			}
			return qdrant.NewMatchInt(key, int64(value)), nil
		default:
			return nil, Validationf("match value for field '%s' must be a string, boolean, or integer", key)
		}
	}

	if v, ok := m["any"]; ok {
		return translateMatchList(key, "any", v)
	}
	if v, ok := m["except"]; ok {
		return translateMatchList(key, "except", v)
	}

	return nil, Validationf("'match' for field '%s' must contain 'value', 'any', or 'except'", key)
}

func translateMatchList(key, mode string, raw any) (*qdrant.Condition, error) {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, Validationf("'match.%s' for field '%s' must be a non-empty list", mode, key)
	}

	switch items[0].(type) {
	case string:
		values := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, Validationf("'match.%s' for field '%s' mixes value types", mode, key)
			}
			values[i] = s
		}
		if mode == "any" {
			return qdrant.NewMatchKeywords(key, values...), nil
		}
		return qdrant.NewMatchExceptKeywords(key, values...), nil
	case int, int64, float64:
		values := make([]int64, len(items))
		for i, item := range items {
			n, ok := toInt64(item)
			if !ok {
				return nil, Validationf("'match.%s' for field '%s' mixes value types", mode, key)
			}
			values[i] = n
		}
		if mode == "any" {
			return qdrant.NewMatchInts(key, values...), nil
		}
		return qdrant.NewMatchExceptInts(key, values...), nil
	default:
		return nil, Validationf("'match.%s' for field '%s' must contain strings or integers", mode, key)
	}
}

func translateRange(key string, raw any) (*qdrant.Condition, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, Validationf("'range' for field '%s' must be a mapping", key)
	}

	rangeFilter := &qdrant.Range{}
	for bound, v := range m {
		value, ok := toFloat64(v)
		if !ok {
			return nil, Validationf("range bound '%s' for field '%s' must be a number", bound, key)
		}
		switch bound {
		case "gt":
			rangeFilter.Gt = &value
		case "gte":
			rangeFilter.Gte = &value
		case "lt":
			rangeFilter.Lt = &value
		case "lte":
			rangeFilter.Lte = &value
		default:
			return nil, Validationf("unrecognized range bound '%s' for field '%s' (expected gt, gte, lt, or lte)", bound, key)
		}
	}

	if rangeFilter.Gt == nil && rangeFilter.Gte == nil &&
		rangeFilter.Lt == nil && rangeFilter.Lte == nil {
		return nil, Validationf("'range' for field '%s' must set at least one bound", key)
	}
	return qdrant.NewRange(key, rangeFilter), nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
