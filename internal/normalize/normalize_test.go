package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOr(t *testing.T) {
	v := "set"
	assert.Equal(t, "set", Or(&v, "def"))
	assert.Equal(t, "def", Or[string](nil, "def"))

	n := 0
	assert.Equal(t, 0, Or(&n, 7))
}

func TestSlice_NilBecomesEmpty(t *testing.T) {
	out := Slice[string](nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	assert.Equal(t, []string{"a"}, Slice([]string{"a"}))
}

func TestSplitEmails_TrimsEntries(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, SplitEmails(" a@x.com , b@x.com"))
}

func TestRef_ObjectFlattensID(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "name": "IVA 21%"}`), &r))
	assert.Equal(t, int64(5), r.ID)
	assert.JSONEq(t, `{"id": 5, "name": "IVA 21%"}`, string(r.Object))
}

func TestRef_BareIntegerIsTheID(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`5`), &r))
	assert.Equal(t, int64(5), r.ID)
	assert.Nil(t, r.Object)
}

func TestRef_NonNumericScalarLeavesZero(t *testing.T) {
	for _, raw := range []string{`"IVA"`, `true`, `null`, `[1]`} {
		var r Ref
		require.NoError(t, json.Unmarshal([]byte(raw), &r), raw)
		assert.Equal(t, int64(0), r.ID, raw)
		assert.Nil(t, r.Object, raw)
	}

	// the owning field then falls back to its default
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`true`), &r))
	assert.Equal(t, int64(1), RefID(&r, 1))
	assert.Equal(t, int64(1), RefID(nil, 1))
}

func TestStringList_NonArrayYieldsNil(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"a@x.com"`), &l))
	assert.Nil(t, []string(l))

	require.NoError(t, json.Unmarshal([]byte(`["a@x.com"]`), &l))
	assert.Equal(t, StringList{"a@x.com"}, l)
}

func TestParseTime(t *testing.T) {
	assert.Nil(t, ParseTime(""))
	assert.Nil(t, ParseTime("not a date"))

	d := ParseTime("2026-03-15")
	require.NotNil(t, d)
	assert.Equal(t, "2026-03-15", FormatDate(*d))

	dt := ParseTime("2026-03-15 10:30:00")
	require.NotNil(t, dt)
	assert.Equal(t, "2026-03-15 10:30:00", FormatDateTime(*dt))
}

func TestTime_NilPointer(t *testing.T) {
	assert.Nil(t, Time(nil))

	s := "2026-03-15"
	require.NotNil(t, Time(&s))
}
