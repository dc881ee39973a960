package convert

import (
	"errors"
	"math"
	"time"

	"github.com/forgo/gamesdb/internal/database"
)

var (
	// ErrNilDocument is returned by FromDocument when there is nothing to convert.
	ErrNilDocument = errors.New("nil document")

	// ErrMissingKey is returned by FromDocument when the domain key field is
	// absent or not an integer.
	ErrMissingKey = errors.New("document has no domain key")
)

// Int64 converts any integral numeric value to int64. Floats are accepted
// only when they carry no fractional part, which is how JSON numbers arrive.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return int64(n), true
	case float32:
		return Int64(float64(n))
	}
	return 0, false
}

// getString extracts a string value from a document
func getString(m database.Document, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt64 extracts an int64 value from a document
func getInt64(m database.Document, key string) int64 {
	n, _ := Int64(m[key])
	return n
}

// getInt extracts an int value from a document
func getInt(m database.Document, key string) int {
	return int(getInt64(m, key))
}

// getFloat extracts a float value from a document
func getFloat(m database.Document, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	}
	if n, ok := Int64(m[key]); ok {
		return float64(n)
	}
	return 0
}

// getTime extracts an optional time value from a document
func getTime(m database.Document, key string) *time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	}
	return nil
}

// getStringSlice extracts a string slice from a document. An absent field
// stays nil.
func getStringSlice(m database.Document, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// getInt64Slice extracts an integer slice from a document. An absent field
// stays nil.
func getInt64Slice(m database.Document, key string) []int64 {
	switch v := m[key].(type) {
	case []int64:
		return append([]int64(nil), v...)
	case []any:
		result := make([]int64, 0, len(v))
		for _, item := range v {
			if n, ok := Int64(item); ok {
				result = append(result, n)
			}
		}
		return result
	}
	return nil
}

// getStringMap extracts a string-to-string map from a nested document
func getStringMap(m database.Document, key string) map[string]string {
	var src map[string]any
	switch v := m[key].(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	case database.Document:
		src = v
	case map[string]any:
		src = v
	default:
		return nil
	}
	out := make(map[string]string, len(src))
	for k, item := range src {
		if s, ok := item.(string); ok {
			out[k] = s
		}
	}
	return out
}

// requireKey returns the domain key stored under field.
func requireKey(m database.Document, field string) (int64, error) {
	if m == nil {
		return 0, ErrNilDocument
	}
	key, ok := Int64(m[field])
	if !ok {
		return 0, ErrMissingKey
	}
	return key, nil
}

// setTime stores t in UTC when present.
func setTime(m database.Document, key string, t *time.Time) {
	if t != nil {
		m[key] = t.UTC()
	}
}

func setStrings(m database.Document, key string, v []string) {
	if v != nil {
		m[key] = append([]string(nil), v...)
	}
}

func setInt64s(m database.Document, key string, v []int64) {
	if v != nil {
		m[key] = append([]int64(nil), v...)
	}
}
