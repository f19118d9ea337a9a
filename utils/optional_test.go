package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTriState(t *testing.T) {
	type payload struct {
		Location Optional[string] `json:"location"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Location.Set)

	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"location":null}`), &p))
	assert.True(t, p.Location.Set)
	assert.False(t, p.Location.Valid)

	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"location":"studio"}`), &p))
	assert.True(t, p.Location.Set)
	assert.True(t, p.Location.Valid)
	assert.Equal(t, "studio", p.Location.Value)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "jane@example.com", NormalizeEmail("jane@example.com"))
}
