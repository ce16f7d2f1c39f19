package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		field   string
		want    string
		text    bool
		wantErr error
	}{
		{name: "integer", line: `{"timestamp":1700000000}`, want: "1700000000"},
		{name: "negative", line: `{"timestamp":-3}`, want: "-3"},
		{name: "float", line: `{"timestamp":12.25,"x":true}`, want: "12.25"},
		{name: "exponent", line: `{"timestamp":1.5e3}`, want: "1500"},
		{name: "string", line: `{"timestamp":"2024-05-01T10:00:00Z"}`, want: "2024-05-01T10:00:00Z", text: true},
		{name: "escaped string", line: `{"timestamp":"a\u0062c"}`, want: "abc", text: true},
		{name: "custom field", line: `{"ts":7,"timestamp":"ignored"}`, field: "ts", want: "7"},
		{name: "not json", line: `hello`, wantErr: ErrNotObject},
		{name: "array", line: `[1,2]`, wantErr: ErrNotObject},
		{name: "null", line: `null`, wantErr: ErrNotObject},
		{name: "trailing garbage", line: `{"timestamp":1} x`, wantErr: ErrNotObject},
		{name: "missing", line: `{"time":1}`, wantErr: ErrMissingTimestamp},
		{name: "null timestamp", line: `{"timestamp":null}`, wantErr: ErrTimestampType},
		{name: "bool timestamp", line: `{"timestamp":false}`, wantErr: ErrTimestampType},
		{name: "object timestamp", line: `{"timestamp":{"s":1}}`, wantErr: ErrTimestampType},
		{name: "large exponent in range", line: `{"timestamp":2e1024}`, want: "2" + strings.Repeat("0", 1024)},
		{name: "huge exponent", line: `{"timestamp":1e300000000}`, wantErr: ErrTimestampType},
		{name: "huge negative exponent", line: `{"timestamp":1e-300000000}`, wantErr: ErrTimestampType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := tt.field
			if field == "" {
				field = DefaultTimestampField
			}
			ts, err := decodeTimestamp([]byte(tt.line), field)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
			assert.Equal(t, tt.text, ts.IsText())
		})
	}
}

func TestTimestampCompare(t *testing.T) {
	num := func(s string) Timestamp {
		ts, err := NumberTimestamp(s)
		require.NoError(t, err)
		return ts
	}

	assert.Equal(t, 0, num("1.5").Compare(num("1.50")))
	assert.Equal(t, 0, num("150e-2").Compare(num("1.5")))
	assert.Equal(t, -1, num("2").Compare(num("10")))
	assert.Equal(t, 1, num("-1").Compare(num("-2")))

	// Beyond float64 precision.
	assert.Equal(t, -1, num("1700000000123456789").Compare(num("1700000000123456790")))

	assert.Equal(t, -1, TextTimestamp("2024-01-01").Compare(TextTimestamp("2024-01-02")))
	assert.Equal(t, 1, TextTimestamp("b").Compare(TextTimestamp("a")))
	assert.Equal(t, 0, TextTimestamp("x").Compare(TextTimestamp("x")))

	// Mixed kinds: numbers first.
	assert.Equal(t, -1, num("99").Compare(TextTimestamp("1")))
	assert.Equal(t, 1, TextTimestamp("1").Compare(num("99")))
}
