package model

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/username/autaxy/src/models"
)

// singleton row id of the business_settings table
const settingsRowID = 1

// timestampLayout is fixed width UTC so stored values sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// GetBusinessSettings loads the stored settings. found is false when nothing
// has been saved yet, in which case the defaults are returned.
func GetBusinessSettings(ctx context.Context, db *sql.DB) (settings models.BusinessSettings, found bool, err error) {
	query := `
	SELECT company_name, street, zip_city, country, vat_id, apple_vendor_id, contact_email, updated_at
	FROM business_settings
	WHERE id = ?`

	var updatedAt string
	err = db.QueryRowContext(ctx, query, settingsRowID).Scan(
		&settings.CompanyName, &settings.Street, &settings.ZipCity, &settings.Country,
		&settings.VATID, &settings.AppleVendorID, &settings.ContactEmail, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultBusinessSettings(), false, nil
	}
	if err != nil {
		return models.BusinessSettings{}, false, err
	}
	if updatedAt != "" {
		if t, perr := time.Parse(timestampLayout, updatedAt); perr == nil {
			settings.UpdatedAt = t
		}
	}
	return settings.WithDefaults(), true, nil
}

// SaveBusinessSettings inserts or replaces the settings row.
func SaveBusinessSettings(ctx context.Context, db *sql.DB, settings models.BusinessSettings) error {
	query := `
	INSERT INTO business_settings (id, company_name, street, zip_city, country, vat_id, apple_vendor_id, contact_email, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		company_name = excluded.company_name,
		street = excluded.street,
		zip_city = excluded.zip_city,
		country = excluded.country,
		vat_id = excluded.vat_id,
		apple_vendor_id = excluded.apple_vendor_id,
		contact_email = excluded.contact_email,
		updated_at = excluded.updated_at`

	_, err := db.ExecContext(ctx, query, settingsRowID,
		settings.CompanyName, settings.Street, settings.ZipCity, settings.Country,
		settings.VATID, settings.AppleVendorID, settings.ContactEmail,
		settings.UpdatedAt.UTC().Format(timestampLayout),
	)
	return err
}
