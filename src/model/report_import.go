package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/username/autaxy/src/models"
)

// ErrDuplicateImport is returned when a report with the same content hash is already recorded.
var ErrDuplicateImport = errors.New("report already imported")

// CreateReportImport records one parsed report.
func CreateReportImport(ctx context.Context, db *sql.DB, imp models.ReportImport) error {
	query := `
	INSERT INTO report_imports (id, report_id, dialect, vendor_name, start_date, end_date, row_count, total_partner_share, subtotal, content_hash, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, imp.ID, imp.ReportID, string(imp.Dialect), imp.VendorName,
		imp.StartDate, imp.EndDate, imp.RowCount, imp.TotalPartnerShare.String(), imp.Subtotal.String(),
		imp.ContentHash, imp.CreatedAt.UTC().Format(timestampLayout))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed") {
			return ErrDuplicateImport
		}
		return fmt.Errorf("error inserting report import (reportID: %s): %w", imp.ReportID, err)
	}
	return nil
}

// ListReportImports returns the newest imports first.
func ListReportImports(ctx context.Context, db *sql.DB, limit int) ([]models.ReportImport, error) {
	query := `
	SELECT id, report_id, dialect, vendor_name, start_date, end_date, row_count, total_partner_share, subtotal, content_hash, created_at
	FROM report_imports
	ORDER BY created_at DESC, id
	LIMIT ?`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying report imports: %w", err)
	}
	defer rows.Close()

	imports := []models.ReportImport{}
	for rows.Next() {
		var (
			imp       models.ReportImport
			dialect   string
			createdAt string
		)
		if err := rows.Scan(&imp.ID, &imp.ReportID, &dialect, &imp.VendorName, &imp.StartDate, &imp.EndDate,
			&imp.RowCount, &imp.TotalPartnerShare, &imp.Subtotal, &imp.ContentHash, &createdAt); err != nil {
			return nil, fmt.Errorf("error scanning report import: %w", err)
		}
		imp.Dialect = models.Dialect(dialect)
		if t, perr := time.Parse(timestampLayout, createdAt); perr == nil {
			imp.CreatedAt = t
		}
		imports = append(imports, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report imports: %w", err)
	}
	return imports, nil
}
