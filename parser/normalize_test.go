package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20200315", "15/03/2020"},
		{"15.03.2020", "15/03/2020"},
		{"2020.03.15", "15/03/2020"},
		{"15/03/2020", "15/03/2020"},
		{" 20200315 ", "15/03/2020"},
		{"", ""},
		{"2020-03-15", ""},
		{"20201315", ""},
		{"garbage", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"101530", "10:15:30"},
		{"101530.123456", "10:15:30"},
		{"1015", "10:15:00"},
		{"10", "10:00:00"},
		{"10:15:30", "10:15:30"},
		{"10:15:30.75", "10:15:30"},
		{"10:15", "10:15:00"},
		{"10.15.30", "10:15:30"},
		{"", ""},
		{"10.15.30.1", ""},
		{"1015301", ""},
		{"25:00:00", ""},
		{"10:61:00", ""},
		{"ab:cd:ef", ""},
		{"101530.xyz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.in))
		})
	}
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"ORIGINAL", "PRIMARY", "AXIAL"}, SplitValues(`ORIGINAL \PRIMARY\ AXIAL`))
	assert.Equal(t, []string{""}, SplitValues(""))
}

func TestParseFloats(t *testing.T) {
	values, err := ParseFloats(`-125.5\-130\ 42 `)
	require.NoError(t, err)
	assert.Equal(t, []float64{-125.5, -130, 42}, values)

	_, err = ParseFloats(`1\x\3`)
	assert.Error(t, err)
}

func TestNormalizeAge(t *testing.T) {
	assert.Equal(t, "45", normalizeAge("045Y"))
	assert.Equal(t, "3", normalizeAge("003Y"))
	assert.Equal(t, "006M", normalizeAge("006M"))
}
