package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docindex/pkg/core"
)

func TestYear_JSONRoundTrip(t *testing.T) {
	for _, y := range []core.Year{2009, 1, 0, -1, -44, 9999999999, -9999999999} {
		data, err := json.Marshal(y)
		require.NoError(t, err)

		var got core.Year
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, y, got, "year %d via %s", y, data)
	}
}

func TestYear_UnmarshalRejectsNonIntegers(t *testing.T) {
	for _, input := range []string{`1.5`, `"2009"`, `1e3`, `true`} {
		var y core.Year
		err := json.Unmarshal([]byte(input), &y)
		assert.Error(t, err, input)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		want  core.Year
	}{
		{"2009", 2009},
		{" 1 ", 1},
		{"0", 0},
		{"-1", -1},
		{"1 BC", 0},
		{"2 bc", -1},
		{"44BC", -43},
		{"2009 AD", 2009},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := core.ParseYear(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "0 BC", "-3 BC", "12.5"} {
		_, err := core.ParseYear(bad)
		assert.ErrorIs(t, err, core.ErrInvalidYear, bad)
	}
}

func TestYear_BeforeCommonEra(t *testing.T) {
	assert.False(t, core.Year(1).BeforeCommonEra())
	assert.True(t, core.Year(0).BeforeCommonEra())
	assert.True(t, core.Year(-1).BeforeCommonEra())
}
