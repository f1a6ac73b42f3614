package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDbTimeMarshalJSON(t *testing.T) {
	out, err := DbTime{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = DbTime{Time: time.Unix(1700000000, 0)}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "1700000000", string(out))
}

func TestDbTimeValue(t *testing.T) {
	v, err := DbTime{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	now := time.Now()
	v, err = DbTime{Time: now}.Value()
	require.NoError(t, err)
	assert.Equal(t, now, v)
}

func TestDbTimeScan(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want time.Time
		err  bool
	}{
		{name: "nil", in: nil},
		{name: "time", in: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), want: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{name: "bytes", in: []byte("2024-03-01 08:00:00"), want: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{name: "rfc3339", in: "2024-03-01T08:00:00Z", want: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{name: "garbage", in: "yesterday", err: true},
		{name: "int", in: 42, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DbTime
			err := got.Scan(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %v", got.Time)
		})
	}
}
