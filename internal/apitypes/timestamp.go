package apitypes

import (
	"time"
)

// timestampLayout always prints three fractional digits in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a point in time serialized with millisecond precision,
// e.g. 2026-03-01T12:00:00.120Z.
type Timestamp time.Time

// NewTimestamp wraps t for a response body.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Time returns the wrapped value.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(timestampLayout)+2)
	b = append(b, '"')
	b = time.Time(ts).UTC().AppendFormat(b, timestampLayout)
	return append(b, '"'), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var t time.Time
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*ts = Timestamp(t)
	return nil
}
