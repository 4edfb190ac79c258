package models

import "time"

const DefaultSettingsCountry = "Germany"

// BusinessSettings identifies the company a statement is issued to.
type BusinessSettings struct {
	CompanyName   string    `json:"company_name"`
	Street        string    `json:"street"`
	ZipCity       string    `json:"zip_city"`
	Country       string    `json:"country"`
	VATID         string    `json:"vat_id"`
	AppleVendorID string    `json:"apple_vendor_id"`
	ContactEmail  string    `json:"contact_email"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{Country: DefaultSettingsCountry}
}

// WithDefaults fills empty fields that have a default value.
func (s BusinessSettings) WithDefaults() BusinessSettings {
	if s.Country == "" {
		s.Country = DefaultSettingsCountry
	}
	return s
}

// HasRequiredFields reports whether the address block is complete enough to print.
func (s BusinessSettings) HasRequiredFields() bool {
	return s.CompanyName != "" && s.Street != "" && s.ZipCity != ""
}
