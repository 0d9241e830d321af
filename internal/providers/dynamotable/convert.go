package dynamotable

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const setSeparator = ", "

// itemToPlain converts a DynamoDB item into the plain map the shared record
// mappers consume.
func itemToPlain(item map[string]types.AttributeValue) map[string]any {
	out := make(map[string]any, len(item))
	for key, value := range item {
		out[key] = attributeToPlain(value)
	}
	return out
}

// attributeToPlain converts one AttributeValue. Sets join into a single
// string, matching the joined form the HTTP gateway path produces.
func attributeToPlain(av types.AttributeValue) any {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberSS:
		return strings.Join(v.Value, setSeparator)
	case *types.AttributeValueMemberNS:
		return strings.Join(v.Value, setSeparator)
	case *types.AttributeValueMemberL:
		list := make([]any, len(v.Value))
		for i, item := range v.Value {
			list[i] = attributeToPlain(item)
		}
		return list
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for key, item := range v.Value {
			m[key] = attributeToPlain(item)
		}
		return m
	default:
		// Binary and unknown member types carry nothing the canonical
		// records can render.
		return nil
	}
}
