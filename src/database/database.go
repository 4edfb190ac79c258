package database

import (
	"database/sql"
	"fmt"
	stdlog "log"

	"github.com/username/autaxy/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS business_settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	company_name TEXT NOT NULL DEFAULT '',
	street TEXT NOT NULL DEFAULT '',
	zip_city TEXT NOT NULL DEFAULT '',
	country TEXT NOT NULL DEFAULT 'Germany',
	vat_id TEXT NOT NULL DEFAULT '',
	apple_vendor_id TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS report_imports (
	id TEXT PRIMARY KEY,
	report_id TEXT NOT NULL,
	dialect TEXT NOT NULL,
	vendor_name TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT '',
	row_count INTEGER NOT NULL DEFAULT 0,
	total_partner_share TEXT NOT NULL DEFAULT '0',
	subtotal TEXT NOT NULL DEFAULT '0',
	content_hash TEXT NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE(content_hash)
);

CREATE INDEX IF NOT EXISTS idx_report_imports_created_at ON report_imports(created_at);
`

// columnMigrations lists columns added after the first schema release, per table.
var columnMigrations = map[string][]struct{ name, ddl string }{
	"business_settings": {
		{"contact_email", "ALTER TABLE business_settings ADD COLUMN contact_email TEXT NOT NULL DEFAULT ''"},
		{"updated_at", "ALTER TABLE business_settings ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''"},
	},
	"report_imports": {
		{"subtotal", "ALTER TABLE report_imports ADD COLUMN subtotal TEXT NOT NULL DEFAULT '0'"},
	},
}

// Open opens the SQLite database at path and ensures the schema exists.
// ":memory:" is supported and pinned to a single connection.
func Open(databasePath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}
	if databasePath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	logger.L.Info("Checking database migrations", "databasePath", databasePath)
	for table, columns := range columnMigrations {
		if err := migrateColumns(db, table, columns); err != nil {
			db.Close()
			return nil, err
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	logger.L.Info("Database tables ensured/created.")
	return db, nil
}

// InitDB opens the global database and exits the process on failure.
func InitDB(databasePath string) {
	db, err := Open(databasePath)
	if err != nil {
		logger.L.Error("Database initialization failed", "error", err)
		stdlog.Fatalf("database initialization failed: %v", err)
	}
	DB = db
}

// migrateColumns adds missing columns to an existing table. A table that does
// not exist yet is left to the schema statement.
func migrateColumns(db *sql.DB, table string, columns []struct{ name, ddl string }) error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&tableName)
	if err == sql.ErrNoRows {
		logger.L.Debug("Table does not exist, no migration needed as table will be created.", "table", table)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking for table %s: %w", table, err)
	}

	existing, err := tableColumns(db, table)
	if err != nil {
		return err
	}
	for _, col := range columns {
		if existing[col.name] {
			continue
		}
		if _, err := db.Exec(col.ddl); err != nil {
			return fmt.Errorf("error adding column %s to %s: %w", col.name, table, err)
		}
		logger.L.Info("Added column", "table", table, "column", col.name)
	}
	return nil
}

func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("error querying table schema for %s: %w", table, err)
	}
	defer rows.Close()

	columnExists := make(map[string]bool)
	for rows.Next() {
		var cid, pk, notnullVal int
		var name, dataType string
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &dataType, &notnullVal, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("error scanning column info for %s: %w", table, err)
		}
		columnExists[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over column info for %s: %w", table, err)
	}
	return columnExists, nil
}
