package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_Interpolation(t *testing.T) {
	c := NewCatalog("es", map[string]string{
		"greeting": "Hola :name, tienes :count avisos.",
	})

	got := c.Translate("greeting", map[string]any{"name": "Ana", "count": 3})
	assert.Equal(t, "Hola Ana, tienes 3 avisos.", got)
}

func TestTranslate_MissingKeyFallsBackToKey(t *testing.T) {
	c := NewCatalog("es", map[string]string{})
	assert.Equal(t, "no.such.key", c.Translate("no.such.key", nil))
}

func TestTranslate_LongerPlaceholderWins(t *testing.T) {
	c := NewCatalog("es", map[string]string{
		"msg": ":attribute y :attr",
	})

	got := c.Translate("msg", map[string]any{"attribute": "campo", "attr": "corto"})
	assert.Equal(t, "campo y corto", got)
}

func TestTranslate_NumericFormatting(t *testing.T) {
	c := NewCatalog("es", map[string]string{"max": "máximo :max"})

	assert.Equal(t, "máximo 20", c.Translate("max", map[string]any{"max": 20.0}))
	assert.Equal(t, "máximo 2.5", c.Translate("max", map[string]any{"max": 2.5}))
}

func TestMessagesES_CoversValidationKeys(t *testing.T) {
	for _, key := range []string{
		"validation.required",
		"validation.email",
		"validation.distinct",
		"validation.confirmed",
		"validation.after_or_equal",
		"validation.max.string",
		"validation.min.numeric",
	} {
		_, ok := MessagesES[key]
		assert.True(t, ok, key)
	}
}
