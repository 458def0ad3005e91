package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord_NilYieldsDefault(t *testing.T) {
	assert.Equal(t, Default(), FromRecord(nil))
}

func TestFromRecord_PartialRecordKeepsDefaults(t *testing.T) {
	name := "Acme SL"
	ent := FromRecord(&Record{Name: &name})

	assert.Equal(t, "Acme SL", ent.Name)
	assert.True(t, ent.Active)
	require.NotNil(t, ent.EmailsSendingInvoice)
	assert.Empty(t, ent.EmailsSendingInvoice)
}

func TestFromRecord_ExplicitFalseSurvives(t *testing.T) {
	active := false
	ent := FromRecord(&Record{Active: &active})
	assert.False(t, ent.Active)
}

func TestRecord_NonArrayEmailListDecodesToEmpty(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"emails_sending_invoice": "a@x.com"}`), &rec))

	ent := FromRecord(&rec)
	require.NotNil(t, ent.EmailsSendingInvoice)
	assert.Empty(t, ent.EmailsSendingInvoice)
}

func TestContract_DuplicateInvoiceEmailsRejected(t *testing.T) {
	raw := map[string]any{
		"name":                   "Acme SL",
		"crn":                    "B12345678",
		"emails":                 "billing@acme.com",
		"emails_sending_invoice": "a@x.com, a@x.com",
		"tax_exempt":             false,
		"active":                 true,
	}

	_, err := Contract().Validate(raw, echoTranslator)
	require.Error(t, err)
}

func TestContract_PostalCodeNeverRejects(t *testing.T) {
	for _, pc := range []string{"28001", "SW1A 1AA"} {
		raw := map[string]any{
			"name":                   "Acme SL",
			"crn":                    "B12345678",
			"emails":                 "billing@acme.com",
			"postal_code":            pc,
			"emails_sending_invoice": "a@x.com",
			"tax_exempt":             false,
			"active":                 true,
		}

		_, err := Contract().Validate(raw, echoTranslator)
		assert.NoError(t, err, pc)
	}
}

func echoTranslator(key string, args map[string]any) string { return key }
