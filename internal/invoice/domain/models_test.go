package domain

import (
	"encoding/json"
	"testing"

	"github.com/facturable/facturable/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTranslator(key string, args map[string]any) string { return key }

// The rule table accepts the flat-id form, so the record decoder must flatten
// the same form into the foreign keys the pricing engine reads.
func TestLineItem_FlatIDsValidateAndDecodeConsistently(t *testing.T) {
	body := []byte(`{"service_type_id": 1, "price": 100, "tax_type_id": 1}`)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	_, err := LineItemContract().Validate(raw, echoTranslator)
	require.NoError(t, err)

	var rec LineItemRecord
	require.NoError(t, json.Unmarshal(body, &rec))

	item := LineItemFromRecord(&rec)
	assert.Equal(t, int64(1), item.ServiceTypeID)
	assert.Equal(t, int64(1), item.TaxTypeID)
	assert.Nil(t, item.TaxType)

	total := pricing.TotalFromPrice(item.PricingItem(), []pricing.TaxType{{ID: 1, Rate: 21}})
	assert.Equal(t, 121.0, total)
}

func TestLineItem_NestedRefStillFlattens(t *testing.T) {
	body := []byte(`{"price": 100, "tax_type_id": {"id": 2, "name": "IVA 10%"}}`)

	var rec LineItemRecord
	require.NoError(t, json.Unmarshal(body, &rec))

	item := LineItemFromRecord(&rec)
	assert.Equal(t, int64(2), item.TaxTypeID)
	assert.JSONEq(t, `{"id": 2, "name": "IVA 10%"}`, string(item.TaxType))
}

func TestInvoiceFromRecord_NilYieldsDefault(t *testing.T) {
	assert.Equal(t, DefaultInvoice(), InvoiceFromRecord(nil))
	assert.Equal(t, DefaultSerie(), SerieFromRecord(nil))
	assert.True(t, SerieFromRecord(nil).IsActive)
}
