package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/facturable/facturable/internal/validation"
)

func echo(key string, args map[string]any) string { return key }

func TestContract_UnknownModeIsMisuse(t *testing.T) {
	_, err := Contract(Mode("weird"))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestContract_CreateRequiresPasswordPair(t *testing.T) {
	c, err := Contract(ModeCreate)
	require.NoError(t, err)

	_, err = c.Validate(map[string]any{
		"name":   "Ana",
		"email":  "ana@example.com",
		"active": true,
	}, echo)
	verrs := validation.AsErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("password"))
	assert.True(t, verrs.Has("password_confirmation"))
}

func TestContract_EditAcceptsAbsentPassword(t *testing.T) {
	c, err := Contract(ModeEdit)
	require.NoError(t, err)

	out, err := c.Validate(map[string]any{
		"name":   "Ana",
		"email":  "ana@example.com",
		"active": true,
	}, echo)
	require.NoError(t, err)
	_, present := out["password"]
	assert.False(t, present)
}

func TestContract_MismatchAttachesToConfirmation(t *testing.T) {
	c, err := Contract(ModeCreate)
	require.NoError(t, err)

	_, err = c.Validate(map[string]any{
		"name":                  "Ana",
		"email":                 "ana@example.com",
		"password":              "secret1",
		"password_confirmation": "secret2",
		"active":                true,
	}, echo)
	verrs := validation.AsErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("password_confirmation"))
	assert.False(t, verrs.Has("password"))
}

func TestContract_MatchingPairAccepted(t *testing.T) {
	c, err := Contract(ModeCreate)
	require.NoError(t, err)

	out, err := c.Validate(map[string]any{
		"name":                  "Ana",
		"email":                 "ana@example.com",
		"password":              "secret1",
		"password_confirmation": "secret1",
		"active":                true,
	}, echo)
	require.NoError(t, err)
	assert.Equal(t, "secret1", out["password"])
}
