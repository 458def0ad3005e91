package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTranslator(key string, args map[string]any) string { return key }

func TestLink_FlatTaxIDValidatesAndDecodes(t *testing.T) {
	body := []byte(`{
		"entity_id": 7,
		"subscription_id": 3,
		"starts_at": "2026-01-01",
		"tax_type_id": 1
	}`)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	_, err := Contract().Validate(raw, echoTranslator)
	require.NoError(t, err)

	var rec Record
	require.NoError(t, json.Unmarshal(body, &rec))

	link := FromRecord(&rec)
	assert.Equal(t, int64(1), link.TaxTypeID)
	assert.Nil(t, link.TaxType)
	require.NotNil(t, link.StartsAt)
}

func TestFromRecord_NilYieldsDefault(t *testing.T) {
	assert.Equal(t, Default(), FromRecord(nil))
}
