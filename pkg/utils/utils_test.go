package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int32
		want   float64
	}{
		{name: "zero", value: 0, places: 2, want: 0},
		{name: "meio para cima", value: 1.005, places: 2, want: 1.01},
		{name: "sem casas", value: 10.6, places: 0, want: 11},
		{name: "negativo", value: -2.345, places: 2, want: -2.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.value, tt.places))
		})
	}

	assert.Equal(t, 3.33, RoundWithTwoDecimalPlace(10.0/3))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestParseYearAndMonth(t *testing.T) {
	year, err := ParseYear("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	_, err = ParseYear("24")
	assert.Error(t, err)

	month, err := ParseMonth("12")
	require.NoError(t, err)
	assert.Equal(t, 12, month)

	_, err = ParseMonth("13")
	assert.Error(t, err)
	_, err = ParseMonth("abc")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}
