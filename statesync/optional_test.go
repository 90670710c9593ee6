package statesync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalZeroIsAbsent(t *testing.T) {
	var o Optional[int]
	_, ok := o.Get()
	assert.False(t, ok)
	assert.True(t, o.IsZero())

	v, ok := Some(7).Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestUpdate(t *testing.T) {
	volume := 10

	Update(&volume, None[int]())
	assert.Equal(t, 10, volume)

	Update(&volume, Some(12))
	assert.Equal(t, 12, volume)
}

func TestOptionalJSONRoundTrip(t *testing.T) {
	type diff struct {
		Volume  Optional[int]     `json:"volume,omitzero"`
		Station Optional[*string] `json:"station,omitzero"`
	}

	// Absent fields stay absent.
	var d diff
	require.NoError(t, json.Unmarshal([]byte(`{}`), &d))
	assert.True(t, d.Volume.IsZero())
	assert.True(t, d.Station.IsZero())

	// Present fields decode as replacements; null means "replace with none".
	d = diff{}
	require.NoError(t, json.Unmarshal([]byte(`{"volume":12,"station":null}`), &d))
	v, ok := d.Volume.Get()
	require.True(t, ok)
	assert.Equal(t, 12, v)
	s, ok := d.Station.Get()
	require.True(t, ok)
	assert.Nil(t, s)

	// Absent cells are omitted on encode.
	data, err := json.Marshal(diff{Volume: Some(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"volume":3}`, string(data))
}
