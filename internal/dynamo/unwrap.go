// Package dynamo decodes the DynamoDB-JSON shapes the archive gateway relays:
// tagged-union attribute values and the various response envelopes.
package dynamo

import (
	"fmt"
	"strings"
)

// Variant enumerates the attribute encodings understood by Unwrap.
type Variant int

const (
	VariantString Variant = iota
	VariantNumber
	VariantBool
	VariantNull
	VariantStringSet
	VariantNumberSet
	VariantList
	VariantMap
)

// variantKeys lists the wire keys in detection priority order. The first key
// present in a value decides its variant.
var variantKeys = [...]struct {
	key     string
	variant Variant
}{
	{"S", VariantString},
	{"N", VariantNumber},
	{"BOOL", VariantBool},
	{"NULL", VariantNull},
	{"SS", VariantStringSet},
	{"NS", VariantNumberSet},
	{"L", VariantList},
	{"M", VariantMap},
}

const setSeparator = ", "

// Unwrap converts an attribute-encoded value into its plain form. Values that
// are already plain pass through unchanged, so it is safe to call on data that
// may or may not be encoded. String and number sets are joined into a single
// string; the element boundaries are lost, which is what the site contract
// expects. Objects with no variant key are returned unchanged rather than
// rejected: the upstream schema is not strictly contracted.
func Unwrap(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for _, vk := range variantKeys {
		inner, present := obj[vk.key]
		if !present {
			continue
		}
		switch vk.variant {
		case VariantString, VariantNumber, VariantBool:
			return inner
		case VariantNull:
			return nil
		case VariantStringSet, VariantNumberSet:
			return joinSet(inner)
		case VariantList:
			return unwrapList(inner)
		case VariantMap:
			return unwrapMap(inner)
		}
	}
	return obj
}

// UnwrapRecord applies Unwrap to every field of a raw record.
func UnwrapRecord(raw map[string]any) map[string]any {
	plain := make(map[string]any, len(raw))
	for key, value := range raw {
		plain[key] = Unwrap(value)
	}
	return plain
}

func unwrapList(inner any) any {
	items, ok := inner.([]any)
	if !ok {
		return inner
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Unwrap(item)
	}
	return out
}

func unwrapMap(inner any) any {
	fields, ok := inner.(map[string]any)
	if !ok {
		return inner
	}
	return UnwrapRecord(fields)
}

func joinSet(inner any) any {
	switch vals := inner.(type) {
	case []any:
		parts := make([]string, len(vals))
		for i, v := range vals {
			if s, ok := v.(string); ok {
				parts[i] = s
			} else {
				parts[i] = fmt.Sprint(v)
			}
		}
		return strings.Join(parts, setSeparator)
	case []string:
		return strings.Join(vals, setSeparator)
	default:
		return inner
	}
}
