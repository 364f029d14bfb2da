package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshalTruthiness(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`null`:    false,
		`1`:       true,
		`0`:       false,
		`-2.5`:    true,
		`0.0`:     false,
		`"yes"`:   true,
		`"false"`: true,
		`""`:      false,
		`[]`:      true,
		`{}`:      true,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			var f Flag
			require.NoError(t, json.Unmarshal([]byte(raw), &f))
			assert.Equal(t, want, f.Bool())
		})
	}
}

func TestFlagUnmarshalAbsentFieldIsFalse(t *testing.T) {
	var c Client
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A"}`), &c))
	assert.False(t, c.Housed.Bool())
}

func TestFlagMarshalsAsBool(t *testing.T) {
	out, err := json.Marshal(struct {
		On  Flag `json:"on"`
		Off Flag `json:"off"`
	}{On: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":true,"off":false}`, string(out))
}

func TestFlagStorageForm(t *testing.T) {
	v, err := Flag(true).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = Flag(false).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestFlagScan(t *testing.T) {
	cases := []struct {
		src  any
		want bool
	}{
		{int64(1), true},
		{int64(0), false},
		{int32(1), true},
		{int16(0), false},
		{true, true},
		{nil, false},
		{[]byte("1"), true},
		{"0", false},
		{"true", true},
		{"", false},
	}

	for _, tc := range cases {
		var f Flag = true
		require.NoError(t, f.Scan(tc.src), "src %#v", tc.src)
		assert.Equal(t, tc.want, f.Bool(), "src %#v", tc.src)
	}

	var f Flag
	assert.Error(t, f.Scan(3.5))
	assert.Error(t, f.Scan("maybe"))
}

func TestPhasesCompleted(t *testing.T) {
	c := &Client{Phase1ID: true, Phase3BirthCert: true, Housed: true}
	assert.Equal(t, 2, c.PhasesCompleted())
}
