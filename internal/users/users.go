// Package users models the demo roster and its age-bracket classification.
//
// Classification is a pure, total function of age; the only failure mode in
// this package is decoding an untyped record that lacks a required field,
// which surfaces as an [apperrors.MissingFieldError] and aborts the whole
// decode with no partial result.
package users

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/agbru/demoscript/internal/errors"
)

// Status is the age bracket assigned to a classified record.
type Status string

// The three age brackets. The ranges do not overlap and cover every integer
// age; negative ages fall into the minor bracket by the same thresholds.
const (
	StatusMinor  Status = "minor"
	StatusAdult  Status = "adult"
	StatusSenior Status = "senior"
)

// Age thresholds for the brackets. Ages at or above seniorAge are seniors,
// ages at or above adultAge (and below seniorAge) are adults.
const (
	adultAge  = 18
	seniorAge = 60
)

// Record is an input user record. Both fields are required when decoding
// from untyped data.
type Record struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Classified is a record with its age bracket attached. It is derived
// one-to-one from a Record and has no lifecycle beyond the pass that
// produced it.
type Classified struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Status Status `json:"status"`
}

// ClassifyAge returns the bracket for the given age.
func ClassifyAge(age int) Status {
	switch {
	case age >= seniorAge:
		return StatusSenior
	case age >= adultAge:
		return StatusAdult
	default:
		return StatusMinor
	}
}

// Classify maps each record to a classified record, preserving order.
// The result has exactly one entry per input record.
//
// Parameters:
//   - records: The records to classify.
//
// Returns:
//   - []Classified: The classified records, in input order. Never nil.
func Classify(records []Record) []Classified {
	classified := make([]Classified, len(records))
	for i, r := range records {
		classified[i] = Classified{Name: r.Name, Age: r.Age, Status: ClassifyAge(r.Age)}
	}
	return classified
}

// DecodeRecord builds a Record from an untyped map, as produced by a JSON
// decode. It fails with a MissingFieldError when "name" or "age" is absent,
// and with a ValidationError when a field is present but has the wrong type.
//
// Parameters:
//   - raw: The untyped record.
//   - index: The record's position in its list, reported in errors.
//
// Returns:
//   - Record: The decoded record.
//   - error: MissingFieldError or ValidationError, nil on success.
func DecodeRecord(raw map[string]any, index int) (Record, error) {
	nameVal, ok := raw["name"]
	if !ok {
		return Record{}, apperrors.MissingFieldError{Field: "name", Index: index}
	}
	name, ok := nameVal.(string)
	if !ok {
		return Record{}, apperrors.ValidationError{Field: "name", Message: fmt.Sprintf("record %d: expected a string, got %T", index, nameVal)}
	}

	ageVal, ok := raw["age"]
	if !ok {
		return Record{}, apperrors.MissingFieldError{Field: "age", Index: index}
	}
	age, ok := ageVal.(float64) // encoding/json decodes every number as float64
	if !ok {
		return Record{}, apperrors.ValidationError{Field: "age", Message: fmt.Sprintf("record %d: expected a number, got %T", index, ageVal)}
	}

	return Record{Name: name, Age: int(age)}, nil
}

// DecodeRecords decodes a list of untyped records. The first invalid record
// aborts the decode; nothing is returned for the records before it.
func DecodeRecords(raws []map[string]any) ([]Record, error) {
	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := DecodeRecord(raw, i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadRoster reads a JSON file containing an array of user records and
// decodes it. The file is decoded through untyped maps so that a record
// missing "name" or "age" is reported as a MissingFieldError instead of
// silently defaulting to a zero value.
//
// Parameters:
//   - path: The path of the JSON roster file.
//
// Returns:
//   - []Record: The decoded roster.
//   - error: A read, parse, or field error.
func LoadRoster(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "reading roster %s", path)
	}
	var raws []map[string]any
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, apperrors.WrapError(err, "parsing roster %s", path)
	}
	return DecodeRecords(raws)
}

// DefaultRoster returns the built-in demo roster.
func DefaultRoster() []Record {
	return []Record{
		{Name: "Alice", Age: 30},
		{Name: "Bob", Age: 17},
		{Name: "Charlie", Age: 65},
	}
}
