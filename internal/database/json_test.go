package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

func TestEncodeJSON(t *testing.T) {
	var noBuffs []domain.Buff

	enc, err := EncodeJSON(noBuffs, true)
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = EncodeJSON([]string(nil), false)
	require.NoError(t, err)
	assert.Equal(t, "[]", enc)

	enc, err = EncodeJSON([]domain.Ingredient{{Item: "Egg", Quantity: 2}}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"item":"Egg","quantity":2}]`, enc.(string))
}

func TestDecodeJSON(t *testing.T) {
	var items []string
	require.NoError(t, DecodeJSON("bundles", "items", []byte(`["Parsnip"]`), &items))
	assert.Equal(t, []string{"Parsnip"}, items)

	var untouched []domain.Buff
	require.NoError(t, DecodeJSON("recipes", "buffs", nil, &untouched))
	assert.Nil(t, untouched)

	err := DecodeJSON("mining locations", "sections", []byte(`{"broken"`), &items)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDecode))
	assert.Contains(t, err.Error(), "mining locations.sections")
}
