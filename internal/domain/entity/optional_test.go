package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAbsentByDefault(t *testing.T) {
	var opt Optional[string]

	assert.False(t, opt.IsSet())

	value, ok := opt.Get()
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.Equal(t, "fallback", opt.ValueOr("fallback"))
}

func TestOptionalSome(t *testing.T) {
	opt := Some(42)

	assert.True(t, opt.IsSet())

	value, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, 42, opt.ValueOr(0))
}

func TestOptionalUnmarshalJSON(t *testing.T) {
	type payload struct {
		Name   Optional[string]   `json:"name"`
		Rating Optional[int]      `json:"rating"`
		Tags   Optional[[]string] `json:"tags"`
	}

	t.Run("missing key stays absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Name.IsSet())
		assert.False(t, p.Rating.IsSet())
		assert.False(t, p.Tags.IsSet())
	})

	t.Run("present key is set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":"tofu","rating":7}`), &p))

		assert.True(t, p.Name.IsSet())
		assert.Equal(t, "tofu", p.Name.ValueOr(""))
		assert.True(t, p.Rating.IsSet())
		assert.Equal(t, 7, p.Rating.ValueOr(0))
		assert.False(t, p.Tags.IsSet())
	})

	t.Run("explicit zero value is set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"rating":0,"tags":[]}`), &p))

		assert.True(t, p.Rating.IsSet())
		assert.Equal(t, 0, p.Rating.ValueOr(-1))

		tags, ok := p.Tags.Get()
		assert.True(t, ok)
		require.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("null is set with zero value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":null,"tags":null}`), &p))

		assert.True(t, p.Name.IsSet())
		assert.Equal(t, "", p.Name.ValueOr("fallback"))
		assert.True(t, p.Tags.IsSet())
	})
}

func TestOptionalMarshalJSON(t *testing.T) {
	absent, err := json.Marshal(None[int]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(absent))

	present, err := json.Marshal(Some(3))
	require.NoError(t, err)
	assert.Equal(t, "3", string(present))
}
