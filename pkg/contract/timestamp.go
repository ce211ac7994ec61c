package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

const dateLayout = "2006-01-02"

// Timestamp is a JSON time that also accepts a bare calendar date, which is
// what date inputs in forms submit. Values are normalized to UTC.
type Timestamp struct{ time.Time }

var timestampType = reflect.TypeOf(Timestamp{})

func NewTimestamp(t time.Time) Timestamp { return Timestamp{t.UTC()} }

func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{t.UTC()}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid date %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return Timestamp{t}, nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	// The decoder fills in Field for type errors, so bad dates surface with
	// the JSON path of the offending key.
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: timestampType}
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: timestampType}
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time.UTC().Format(time.RFC3339Nano))
}

// Ptr returns the time or nil for a nil Timestamp.
func (ts *Timestamp) Ptr() *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
