package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`"42.9"`, 42},
		{`42.9`, 42},
		{`""`, 0},
		{`"abc"`, 0},
		{`null`, 0},
		{`-5`, -5},
	}
	for _, tc := range cases {
		var f FlexInt
		err := json.Unmarshal([]byte(tc.in), &f)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f.Int(), tc.in)
	}
}

func TestFlexFloat_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`4.5`, 4.5},
		{`"4.5"`, 4.5},
		{`100`, 100},
		{`""`, 0},
		{`"abc"`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var f FlexFloat
		err := json.Unmarshal([]byte(tc.in), &f)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f.Float(), tc.in)
	}
}

func TestFlex_Marshal(t *testing.T) {
	out, err := json.Marshal(FlexInt(7))
	assert.NoError(t, err)
	assert.Equal(t, `7`, string(out))

	out, err = json.Marshal(FlexFloat(7.5))
	assert.NoError(t, err)
	assert.Equal(t, `7.5`, string(out))
}
