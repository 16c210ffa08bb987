package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-117 Havnegade", "2024_117_Havnegade"},
		{"Søndre Allé 7", "Soendre_Alle_7"},
		{"æøå ÆØÅ", "aeoeaa_AeOeAa"},
		{"  spaced   out  ", "spaced_out"},
		{"///", ""},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Sanitize(tc.in), "input %q", tc.in)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "2024_117_2026_02_01", BaseName("2024-117", "2026-02-01"))
	assert.Equal(t, "akkordseddel", BaseName("", ""))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "job.pdf", FileName("job", "PDF"))
	assert.Equal(t, "job.csv", FileName("job", ".csv"))
}

func TestCurrencyAndQuantity(t *testing.T) {
	assert.Equal(t, "1.234,50", Currency(1234.5))
	assert.Equal(t, "0,00", Currency(0))
	assert.Equal(t, "4", Quantity(4))
	assert.Equal(t, "2,50", Quantity(2.5))
}
