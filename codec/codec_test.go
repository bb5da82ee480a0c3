package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	N     uint64 `json:"n"`
	Count uint64 `json:"count"`
}

func TestCodecRoundTrip(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			in := record{N: 1_000_000, Count: 78498}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out record
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshalDefault(t *testing.T) {
	data := MustMarshal(nil, record{N: 10, Count: 4})

	var out record
	require.NoError(t, Default.Unmarshal(data, &out))
	assert.Equal(t, uint64(4), out.Count)
}
