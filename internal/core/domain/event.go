package domain

import (
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DomainEvent is an append-only audit record. One is written for every
// domain-significant operation, including logical failures. AggregateID is
// the subject entity's id, or the zero ObjectID for events not scoped to a
// single entity (listings, filter queries, validation failures).
//
// Seq is assigned by the caller, not by the store; it stays nil when no
// allocator was available at append time.
type DomainEvent struct {
	AggregateID primitive.ObjectID `bson:"aggregateId"`
	Type        string             `bson:"type"`
	Timestamp   time.Time          `bson:"timestamp"`
	Seq         *int64             `bson:"seq,omitempty"`
	Data        bson.M             `bson:"data"`
}

// NewDomainEvent builds an event stamped with the current UTC time. Payload
// values are converted recursively to document form: primitives pass through,
// maps become nested documents, slices become arrays, and any other struct is
// serialized through the bson codec.
func NewDomainEvent(aggregateID primitive.ObjectID, eventType string, data map[string]any) DomainEvent {
	doc := bson.M{}
	for k, v := range data {
		doc[k] = toDocumentValue(v)
	}
	return DomainEvent{
		AggregateID: aggregateID,
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		Data:        doc,
	}
}

func toDocumentValue(value any) any {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case string, bool, int, int32, int64, float32, float64, time.Time, primitive.ObjectID:
		return v
	case map[string]any:
		nested := bson.M{}
		for k, item := range v {
			nested[k] = toDocumentValue(item)
		}
		return nested
	case []any:
		arr := make(bson.A, 0, len(v))
		for _, item := range v {
			arr = append(arr, toDocumentValue(item))
		}
		return arr
	case []string:
		arr := make(bson.A, 0, len(v))
		for _, item := range v {
			arr = append(arr, item)
		}
		return arr
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// Scalar kinds outside the fast path, including named types. The
		// driver encodes them directly inside the document.
		return value
	case reflect.Slice, reflect.Array:
		arr := make(bson.A, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			arr = append(arr, toDocumentValue(rv.Index(i).Interface()))
		}
		return arr
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return toDocumentValue(rv.Elem().Interface())
	default:
		// Complex payloads (DTOs) go through the driver's codec so nested
		// shapes keep their bson tags.
		raw, err := bson.Marshal(value)
		if err != nil {
			return nil
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil
		}
		return doc
	}
}
