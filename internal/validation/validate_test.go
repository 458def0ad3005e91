package validation

import (
	"fmt"
	"testing"

	"github.com/facturable/facturable/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyTranslator echoes the key plus sorted args, so tests assert on which
// message key fired rather than on catalog wording.
func keyTranslator(key string, args map[string]any) string {
	if attr, ok := args["attribute"]; ok {
		return fmt.Sprintf("%s[%v]", key, attr)
	}
	return key
}

func TestValidate_NilTranslatorIsMisuse(t *testing.T) {
	c := Contract{Fields: []Field{{Name: "name", Kind: KindString, Required: true}}}
	_, err := c.Validate(map[string]any{"name": "x"}, nil)
	assert.ErrorIs(t, err, ErrNilTranslator)
}

func TestValidate_RequiredMissing(t *testing.T) {
	c := Contract{Fields: []Field{{Name: "name", Attribute: "attr.name", Kind: KindString, Required: true}}}

	_, err := c.Validate(map[string]any{}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"validation.required[attr.name]"}, verrs.Messages("name"))
}

func TestValidate_RequiredEmptyString(t *testing.T) {
	c := Contract{Fields: []Field{{Name: "name", Attribute: "attr.name", Kind: KindString, Required: true}}}

	_, err := c.Validate(map[string]any{"name": ""}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("name"))
}

func TestValidate_OptionalAbsentIsAccepted(t *testing.T) {
	c := Contract{Fields: []Field{{Name: "note", Kind: KindString, Optional: true}}}

	out, err := c.Validate(map[string]any{}, keyTranslator)
	require.NoError(t, err)
	_, present := out["note"]
	assert.False(t, present)
}

func TestValidate_EmptyNumericStringTreatedAsAbsent(t *testing.T) {
	c := Contract{Fields: []Field{{Name: "price", Kind: KindFloat, Optional: true}}}

	out, err := c.Validate(map[string]any{"price": "  "}, keyTranslator)
	require.NoError(t, err)
	assert.Nil(t, out["price"])
}

func TestValidate_MaxLen(t *testing.T) {
	c := Contract{Fields: []Field{{
		Name: "serie", Attribute: "attr.serie", Kind: KindString, Required: true,
		Constraints: []Constraint{{Op: OpMaxLen, Param: 3}},
	}}}

	_, err := c.Validate(map[string]any{"serie": "ABCD"}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"validation.max.string[attr.serie]"}, verrs.Messages("serie"))
}

func TestValidate_LeadingDigitPatternAlwaysPasses(t *testing.T) {
	// the postal-code rule matches a leading digit run, which every string
	// satisfies, so the check never rejects
	c := Contract{Fields: []Field{{
		Name: "postal_code", Kind: KindString, Optional: true,
		Constraints: []Constraint{{Op: OpPattern, Pattern: `^\d*`, MessageKey: "validation.numeric"}},
	}}}

	for _, v := range []string{"28001", "SW1A 1AA", "abc"} {
		out, err := c.Validate(map[string]any{"postal_code": v}, keyTranslator)
		require.NoError(t, err, v)
		assert.Equal(t, v, out["postal_code"])
	}
}

func TestValidate_Email(t *testing.T) {
	c := Contract{Fields: []Field{{
		Name: "email", Attribute: "attr.email", Kind: KindString, Required: true,
		Constraints: []Constraint{{Op: OpEmail}},
	}}}

	_, err := c.Validate(map[string]any{"email": "not-an-email"}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"validation.email[attr.email]"}, verrs.Messages("email"))

	out, err := c.Validate(map[string]any{"email": "billing@example.com"}, keyTranslator)
	require.NoError(t, err)
	assert.Equal(t, "billing@example.com", out["email"])
}

func TestValidate_EmailListDistinctIsCaseSensitive(t *testing.T) {
	c := Contract{Fields: []Field{{
		Name: "emails", Attribute: "attr.emails", Kind: KindString, Required: true,
		Transform:   TransformEmailList,
		Constraints: []Constraint{{Op: OpEmailList}},
	}}}

	// exact duplicate rejected
	_, err := c.Validate(map[string]any{"emails": "a@x.com, a@x.com"}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"validation.distinct[attr.emails]"}, verrs.Messages("emails"))

	// differing case counts as distinct
	out, err := c.Validate(map[string]any{"emails": "a@x.com, A@x.com"}, keyTranslator)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "A@x.com"}, out["emails"])
}

func TestValidate_ConfirmedNamesTheSibling(t *testing.T) {
	c := Contract{Fields: []Field{
		{Name: "password", Attribute: "attr.password", Kind: KindString, Required: true},
		{
			Name: "password_confirmation", Attribute: "attr.password_confirmation",
			Kind: KindString, Required: true,
			Constraints: []Constraint{{Op: OpConfirmed, Other: "password", OtherAttribute: "attr.password"}},
		},
	}}

	_, err := c.Validate(map[string]any{
		"password":              "secret1",
		"password_confirmation": "secret2",
	}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	// the error attaches to the confirmation field but the message names
	// the confirmed field
	assert.Equal(t, []string{"validation.confirmed[attr.password]"}, verrs.Messages("password_confirmation"))
	assert.False(t, verrs.Has("password"))
}

func TestValidate_AfterOrEqual(t *testing.T) {
	c := Contract{Fields: []Field{
		{Name: "starts_at", Attribute: "attr.starts_at", Kind: KindDate, Required: true, Transform: TransformDate},
		{
			Name: "ends_at", Attribute: "attr.ends_at", Kind: KindDate, Optional: true, Transform: TransformDate,
			Constraints: []Constraint{{Op: OpAfterOrEqual, Other: "starts_at", OtherAttribute: "attr.starts_at"}},
		},
	}}

	_, err := c.Validate(map[string]any{
		"starts_at": "2026-02-01",
		"ends_at":   "2026-01-15",
	}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("ends_at"))

	out, err := c.Validate(map[string]any{
		"starts_at": "2026-02-01",
		"ends_at":   "2026-02-01",
	}, keyTranslator)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", out["ends_at"])
}

func TestValidate_IntCoercionReadsLeadingDigits(t *testing.T) {
	c := Contract{Fields: []Field{{Name: "qty", Kind: KindInt, Required: true}}}

	out, err := c.Validate(map[string]any{"qty": "12abc"}, keyTranslator)
	require.NoError(t, err)
	assert.Equal(t, 12, out["qty"])

	_, err = c.Validate(map[string]any{"qty": "abc"}, keyTranslator)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("qty"))
}

func TestValidate_SpanishCatalogInterpolation(t *testing.T) {
	translate := i18n.NewCatalog("es", i18n.MessagesES).Translate

	c := Contract{Fields: []Field{{
		Name: "price", Attribute: "invoice.attributes.price", Kind: KindFloat, Required: true,
		Constraints: []Constraint{{Op: OpNonNegative}},
	}}}

	_, err := c.Validate(map[string]any{"price": -1}, translate)
	verrs := AsErrors(err)
	require.NotNil(t, verrs)
	msgs := verrs.Messages("price")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "debe ser al menos 0")
}
