package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileArgs(t *testing.T) {
	upd, err := ParseProfileArgs("price=25.5; languages=en, ar; bio=Exam prep = my thing")
	require.NoError(t, err)

	require.NotNil(t, upd.PricePerHour)
	assert.Equal(t, 25.5, *upd.PricePerHour)
	assert.Equal(t, []string{"en", "ar"}, upd.Languages)
	require.NotNil(t, upd.Bio)
	assert.Equal(t, "Exam prep = my thing", *upd.Bio)

	upd, err = ParseProfileArgs("languages=")
	require.NoError(t, err)
	assert.NotNil(t, upd.Languages, "empty list clears languages")
	assert.Empty(t, upd.Languages)
	assert.Nil(t, upd.PricePerHour)

	upd, err = ParseProfileArgs("")
	require.NoError(t, err)
	assert.True(t, upd.IsEmpty())
}

func TestParseProfileArgs_Errors(t *testing.T) {
	for _, args := range []string{"price", "price=abc", "color=red"} {
		_, err := ParseProfileArgs(args)
		assert.ErrorIs(t, err, ErrBadArgs, args)
	}
}

func TestParseSubjectArgs(t *testing.T) {
	name, level, price, err := ParseSubjectArgs("Math; University; 30")
	require.NoError(t, err)
	assert.Equal(t, "Math", name)
	assert.Equal(t, "University", level)
	require.NotNil(t, price)
	assert.Equal(t, 30.0, *price)

	name, level, price, err = ParseSubjectArgs("Physics")
	require.NoError(t, err)
	assert.Equal(t, "Physics", name)
	assert.Empty(t, level)
	assert.Nil(t, price)

	_, _, price, err = ParseSubjectArgs("Chemistry; ; ")
	require.NoError(t, err)
	assert.Nil(t, price)

	for _, args := range []string{"", " ; School", "Math; School; cheap", "a; b; 1; extra"} {
		_, _, _, err := ParseSubjectArgs(args)
		assert.ErrorIs(t, err, ErrBadArgs, args)
	}
}
