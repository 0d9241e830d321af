package dynamo

import "encoding/json"

// ExtractRecords pulls the raw record list out of an upstream response body.
// The gateway's envelope is not contractually fixed (raw proxy, Lambda proxy
// and direct table access all answer differently), so shapes are tried from
// most to least specific:
//
//  1. bare array of records
//  2. {"Items": [...]} — DynamoDB Scan/Query output
//  3. {"Item": {...}} — DynamoDB GetItem output
//  4. an object that itself looks like one record (carries an identifying field)
//  5. {"body": ...} — Lambda proxy integration, body possibly JSON-encoded twice
//  6. any other object is treated as a single record
//
// idFields name the unwrapped fields that identify a record for shape 4.
// ExtractRecords never fails; a body that is neither array nor object yields
// no records.
func ExtractRecords(body any, idFields ...string) []map[string]any {
	switch v := body.(type) {
	case []any:
		return asRecords(v)
	case map[string]any:
		if items, ok := v["Items"].([]any); ok {
			return asRecords(items)
		}
		if item, ok := v["Item"].(map[string]any); ok {
			return []map[string]any{item}
		}
		if hasIdentifyingField(v, idFields) {
			return []map[string]any{v}
		}
		if inner, present := v["body"]; present {
			if records, ok := extractFromBody(inner, idFields); ok {
				return records
			}
		}
		return []map[string]any{v}
	default:
		return nil
	}
}

func extractFromBody(inner any, idFields []string) ([]map[string]any, bool) {
	if text, ok := inner.(string); ok {
		decoded, err := decodeBodyText(text)
		if err != nil {
			return nil, false
		}
		inner = decoded
	}
	switch v := inner.(type) {
	case []any, map[string]any:
		return ExtractRecords(v, idFields...), true
	default:
		return nil, false
	}
}

// decodeBodyText parses a textual Lambda proxy body, unwrapping one extra
// level of string encoding when the origin double-encoded it.
func decodeBodyText(text string) (any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, err
	}
	if nested, ok := decoded.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(nested), &inner); err == nil {
			return inner, nil
		}
	}
	return decoded, nil
}

func hasIdentifyingField(obj map[string]any, idFields []string) bool {
	if len(idFields) == 0 {
		return false
	}
	plain := UnwrapRecord(obj)
	for _, field := range idFields {
		if _, ok := plain[field]; ok {
			return true
		}
	}
	return false
}

// asRecords keeps the object elements of an envelope array. Non-object
// elements carry no fields and are dropped.
func asRecords(items []any) []map[string]any {
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
