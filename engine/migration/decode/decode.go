// Package decode bridges untyped legacy records to typed domain values.
// Every function here resolves malformed input to a documented default
// instead of returning an error: decode-level problems are absorbed locally.
package decode

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// Record is a raw field-name-to-value map as retrieved from storage.
type Record = map[string]any

// String returns the value at key coerced to a string, or def when the key
// is absent, null, or not coercible.
func String(rec Record, key, def string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return def
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return def
	}
	return s
}

// Uint32 returns the value at key coerced to a uint32, or def on failure.
func Uint32(rec Record, key string, def uint32) uint32 {
	v, ok := rec[key]
	if !ok || v == nil {
		return def
	}
	n, err := cast.ToUint32E(v)
	if err != nil {
		return def
	}
	return n
}

// Int returns the value at key coerced to an int, or def on failure.
func Int(rec Record, key string, def int) int {
	v, ok := rec[key]
	if !ok || v == nil {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

// Float64 returns the value at key coerced to a float64, or def on failure.
func Float64(rec Record, key string, def float64) float64 {
	v, ok := rec[key]
	if !ok || v == nil {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

// StringSlice returns the value at key as a []string, or an empty slice.
func StringSlice(rec Record, key string) []string {
	v, ok := rec[key]
	if !ok || v == nil {
		return []string{}
	}
	out, err := cast.ToStringSliceE(v)
	if err != nil {
		return []string{}
	}
	return out
}

// List decodes the value at key into a slice of T. Already-typed slices are
// returned as-is; JSON string blobs are unmarshaled; heterogeneous []any
// entries are decoded independently and entries that fail to decode are
// dropped, so the result may be shorter than the input. Any top-level
// failure yields an empty slice.
func List[T any](rec Record, key string) []T {
	v, ok := rec[key]
	if !ok || v == nil {
		return []T{}
	}
	return listValue[T](v)
}

func listValue[T any](v any) []T {
	if typed, ok := v.([]T); ok {
		return typed
	}
	if s, ok := v.(string); ok {
		var blob any
		if err := json.Unmarshal([]byte(s), &blob); err != nil {
			return []T{}
		}
		if _, isString := blob.(string); isString {
			return []T{}
		}
		return listValue[T](blob)
	}
	if items, ok := v.([]any); ok {
		out := make([]T, 0, len(items))
		for _, item := range items {
			if typed, ok := item.(T); ok {
				out = append(out, typed)
				continue
			}
			var decoded T
			if err := decodeValue(item, &decoded); err != nil {
				continue
			}
			out = append(out, decoded)
		}
		return out
	}
	// Last resort: round-trip through JSON.
	raw, err := json.Marshal(v)
	if err != nil {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// Object decodes the value at key into a single T. Returns nil when the key
// is absent, null, or the value cannot be decoded.
func Object[T any](rec Record, key string) *T {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	return objectValue[T](v)
}

func objectValue[T any](v any) *T {
	if typed, ok := v.(T); ok {
		return &typed
	}
	if typed, ok := v.(*T); ok {
		return typed
	}
	if s, ok := v.(string); ok {
		var blob any
		if err := json.Unmarshal([]byte(s), &blob); err != nil {
			return nil
		}
		if _, isString := blob.(string); isString {
			return nil
		}
		return objectValue[T](blob)
	}
	var out T
	if err := decodeValue(v, &out); err != nil {
		return nil
	}
	return &out
}

// decodeValue maps a loosely-typed value onto a struct, matching fields by
// their json tags and coercing scalar mismatches the way the scalar helpers do.
func decodeValue(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(dateDecodeHook, jsonBlobDecodeHook),
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// dateDecodeHook routes any value targeting a time.Time through Date, so
// nested documents share the same tolerant date semantics as top-level fields.
func dateDecodeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return t, nil
	}
	return Date(data), nil
}

// jsonBlobDecodeHook expands JSON string blobs that target a structured field,
// so documents storing nested lists or objects as encoded text still decode.
func jsonBlobDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Slice, reflect.Struct, reflect.Map:
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		var blob any
		if err := json.Unmarshal([]byte(s), &blob); err != nil {
			return data, nil
		}
		return blob, nil
	default:
		return data, nil
	}
}
