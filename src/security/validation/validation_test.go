package validation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/autaxy/src/models"
)

func TestSanitizeForFormulaInjection(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{" +1", "' +1"},
		{"@cmd", "'@cmd"},
		{"-5", "'-5"},
		{"Germany", "Germany"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeForFormulaInjection(tt.input); got != tt.expected {
			t.Errorf("SanitizeForFormulaInjection(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeAmountCell(t *testing.T) {
	assert.Equal(t, "-6,99", SanitizeAmountCell("-6,99"))
	assert.Equal(t, "12.50", SanitizeAmountCell("12.50"))
	assert.Equal(t, "'-x", SanitizeAmountCell("-x"))
	assert.Equal(t, "'-", SanitizeAmountCell("-"))
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "Vendor Name\tAcme\r\nx", StripUnprintable("\ufeffVendor Name\tAcme\r\n\x00x"))
}

func TestValidateClientContentType(t *testing.T) {
	for _, ct := range []string{"text/csv", "application/csv", "text/plain; charset=utf-8", "TEXT/TAB-SEPARATED-VALUES"} {
		assert.NoError(t, ValidateClientContentType(ct), ct)
	}
	for _, ct := range []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-excel",
		"application/octet-stream",
		"image/png",
		"",
	} {
		assert.ErrorIs(t, ValidateClientContentType(ct), ErrValidationFailed, ct)
	}
}

func TestValidateFileContentByMagicBytes(t *testing.T) {
	r := bytes.NewReader([]byte("Vendor Name\tAcme\nStart Date\t06/01/2025\n"))
	detected, err := ValidateFileContentByMagicBytes(r)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", detected)
	pos, _ := r.Seek(0, 1)
	assert.Zero(t, pos, "reader rewound")

	_, err = ValidateFileContentByMagicBytes(bytes.NewReader([]byte("%PDF-1.7\n...")))
	assert.ErrorIs(t, err, ErrValidationFailed)

	detected, err = ValidateFileContentByMagicBytes(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03}))
	assert.ErrorIs(t, err, ErrValidationFailed, "binary content")
	assert.Equal(t, "application/octet-stream", detected)

	_, err = ValidateFileContentByMagicBytes(nil)
	assert.Error(t, err)
}

func TestValidateBusinessSettings(t *testing.T) {
	got, err := ValidateBusinessSettings(models.BusinessSettings{
		CompanyName:  "  Example Apps GmbH\x00 ",
		Street:       "Hauptstr. 1",
		ZipCity:      "10115 Berlin",
		ContactEmail: "billing@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Example Apps GmbH", got.CompanyName)
	assert.Equal(t, "Germany", got.Country)

	_, err = ValidateBusinessSettings(models.BusinessSettings{ContactEmail: "not an email"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = ValidateBusinessSettings(models.BusinessSettings{ContactEmail: "Bob <bob@example.com>"})
	assert.ErrorIs(t, err, ErrValidationFailed, "display names are not accepted")

	_, err = ValidateBusinessSettings(models.BusinessSettings{CompanyName: strings.Repeat("x", 201)})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = ValidateBusinessSettings(models.BusinessSettings{Street: "line one\nline two"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}
