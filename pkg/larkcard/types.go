package larkcard

import (
	"io"

	"github.com/willow-ren/larkcard/internal/model"
)

// Field is one key/value pair of a record.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered list of fields. Order determines display order.
type Record []Field

// ParseRecords decodes a JSON array of objects, preserving field order
// within each record. The top-level value must be an array.
func ParseRecords(r io.Reader) ([]Record, error) {
	internal, err := model.DecodeRecords(r)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(internal))
	for i, rec := range internal {
		records[i] = recordFromInternal(rec)
	}
	return records, nil
}

func recordToInternal(r Record) model.Record {
	fields := make([]model.Field, len(r))
	for i, f := range r {
		fields[i] = model.Field{Key: f.Key, Value: f.Value}
	}
	return model.Record{Fields: fields}
}

func recordFromInternal(r model.Record) Record {
	fields := make(Record, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = Field{Key: f.Key, Value: f.Value}
	}
	return fields
}
