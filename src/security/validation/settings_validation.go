package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/username/autaxy/src/models"
)

var ErrValidationFailed = errors.New("validation failed")

const maxSettingsFieldLength = 200

// ValidateBusinessSettings returns a cleaned copy of s: fields trimmed,
// unprintable characters stripped and defaults applied.
func ValidateBusinessSettings(s models.BusinessSettings) (models.BusinessSettings, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"company_name", &s.CompanyName},
		{"street", &s.Street},
		{"zip_city", &s.ZipCity},
		{"country", &s.Country},
		{"vat_id", &s.VATID},
		{"apple_vendor_id", &s.AppleVendorID},
		{"contact_email", &s.ContactEmail},
	}

	var problems []string
	for _, f := range fields {
		*f.value = strings.TrimSpace(StripUnprintable(*f.value))
		if utf8.RuneCountInString(*f.value) > maxSettingsFieldLength {
			problems = append(problems, fmt.Sprintf("%s exceeds %d characters", f.name, maxSettingsFieldLength))
		}
	}
	if strings.ContainsAny(s.ZipCity+s.Street+s.CompanyName, "\n\r\t") {
		problems = append(problems, "address fields must be single line")
	}
	if s.ContactEmail != "" {
		if addr, err := mail.ParseAddress(s.ContactEmail); err != nil || addr.Address != s.ContactEmail {
			problems = append(problems, "contact_email is not a valid email address")
		}
	}

	if len(problems) > 0 {
		return models.BusinessSettings{}, fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(problems, "; "))
	}
	return s.WithDefaults(), nil
}
