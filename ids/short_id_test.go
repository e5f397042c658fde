package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortIdStringAndScan(t *testing.T) {
	id := ShortId(42)
	assert.Equal(t, "42", id.String())

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	var scanned ShortId
	require.NoError(t, scanned.Scan(int64(42)))
	assert.Equal(t, id, scanned)
}

func TestShortIdScanRejectsOutOfRange(t *testing.T) {
	var id ShortId
	err := id.Scan(int64(1 << 20))
	assert.Error(t, err)
}

func TestPointerWidthSize(t *testing.T) {
	cases := map[PointerWidth]int{
		PointerWidth16: 2,
		PointerWidth32: 4,
		PointerWidth64: 8,
	}
	for width, size := range cases {
		assert.Equal(t, size, width.Size())
		assert.True(t, width.Valid())
	}
	assert.False(t, PointerWidth(8).Valid())
}

func TestLevelJSONRoundTrip(t *testing.T) {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		data, err := l.MarshalJSON()
		require.NoError(t, err)
		var out Level
		require.NoError(t, out.UnmarshalJSON(data))
		assert.Equal(t, l, out)
	}
}
