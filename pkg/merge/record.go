package merge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTimestampField is the record key used for ordering when none is configured.
const DefaultTimestampField = "timestamp"

// MaxTimestampExponent bounds the decimal exponent of a numeric timestamp.
// Comparing two decimals rescales them to a common exponent, which costs
// time and memory proportional to the exponent gap.
const MaxTimestampExponent = 1024

// Timestamp is the ordering key of a Record. It holds either a JSON number,
// compared with arbitrary precision, or a JSON string, compared bytewise.
type Timestamp struct {
	num    decimal.Decimal
	text   string
	isText bool
}

// NumberTimestamp parses a JSON number literal such as 42, -1.5 or 1.7e9.
// Literals whose exponent exceeds MaxTimestampExponent in magnitude are rejected.
func NumberTimestamp(lit string) (Timestamp, error) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return Timestamp{}, err
	}
	if exp := d.Exponent(); exp > MaxTimestampExponent || exp < -MaxTimestampExponent {
		return Timestamp{}, fmt.Errorf("exponent %d of %.32q out of range", exp, lit)
	}
	return Timestamp{num: d}, nil
}

// TextTimestamp wraps a string timestamp, e.g. an RFC 3339 date.
func TextTimestamp(s string) Timestamp {
	return Timestamp{text: s, isText: true}
}

// IsText reports whether the timestamp was a JSON string.
func (t Timestamp) IsText() bool { return t.isText }

// Compare returns -1, 0 or +1. Numbers and strings are not meant to be
// mixed; if they are, every number orders before every string.
func (t Timestamp) Compare(o Timestamp) int {
	switch {
	case t.isText && o.isText:
		return strings.Compare(t.text, o.text)
	case t.isText:
		return 1
	case o.isText:
		return -1
	default:
		return t.num.Cmp(o.num)
	}
}

func (t Timestamp) String() string {
	if t.isText {
		return t.text
	}
	return t.num.String()
}

// Record is one decoded input line. Raw is the line as read, without its
// terminator, and is what gets written to the output.
type Record struct {
	Timestamp Timestamp
	Raw       []byte
	Line      int
}

// decodeTimestamp checks that line is a JSON object and extracts field from it.
func decodeTimestamp(line []byte, field string) (Timestamp, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(line, &obj); err != nil {
		return Timestamp{}, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if obj == nil {
		return Timestamp{}, ErrNotObject
	}

	raw, ok := obj[field]
	if !ok {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrMissingTimestamp, field)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Timestamp{}, ErrTimestampType
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Timestamp{}, fmt.Errorf("%w: %v", ErrTimestampType, err)
		}
		return TextTimestamp(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		ts, err := NumberTimestamp(string(raw))
		if err != nil {
			return Timestamp{}, fmt.Errorf("%w: %v", ErrTimestampType, err)
		}
		return ts, nil
	default:
		return Timestamp{}, fmt.Errorf("%w: got %s", ErrTimestampType, raw)
	}
}
