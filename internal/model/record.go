package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Field is a single key/value pair from a record. Values keep their JSON
// shape: string, json.Number, bool, nil, or a nested structure decoded as
// map[string]any / []any and treated opaquely.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered sequence of fields decoded from one JSON object.
// Go maps drop key order, so records are decoded token by token.
type Record struct {
	Fields []Field
}

// Get returns the value for the given key and whether it was present.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// DecodeRecords reads a JSON array of objects from r, preserving field order
// within each record. The top-level value must be an array; anything else is
// an input format error.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("decode records: top-level value must be a JSON array, got %v", tok)
	}

	var records []Record
	for dec.More() {
		rec, err := decodeRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("decode records: item %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

func decodeRecord(dec *json.Decoder) (Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return Record{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Record{}, fmt.Errorf("array item must be an object, got %v", tok)
	}

	var rec Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Record{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Record{}, fmt.Errorf("object key must be a string, got %v", keyTok)
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return Record{}, err
		}
		rec.Fields = append(rec.Fields, Field{Key: key, Value: val})
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Record{}, err
	}
	return rec, nil
}
