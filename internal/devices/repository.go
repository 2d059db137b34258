// Package devices holds the instrument reference catalog for the Holyrood
// observatory: which device codes exist, what they measure and when they were
// deployed. The catalog is static reference data kept in the shared sqlite
// database.
package devices

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Device describes one instrument at the observatory.
type Device struct {
	Code       string
	Name       string
	Category   string
	DeployedAt time.Time
}

var (
	db      *sql.DB
	once    sync.Once
	initErr error

	// GetDB is a function variable to allow mocking in tests
	GetDB = func(dbPath string) (*sql.DB, error) {
		once.Do(func() {
			initErr = ProvisionDeviceCatalog(dbPath, nil)
			if initErr != nil {
				return
			}

			db, initErr = sql.Open("sqlite", dbPath)
			if initErr != nil {
				return
			}
			_, _ = db.Exec("PRAGMA journal_mode=WAL")
			_, _ = db.Exec("PRAGMA synchronous=NORMAL")
		})
		return db, initErr
	}
)

// GetDeviceByCode retrieves a single device by its ONC device code.
func GetDeviceByCode(dbPath, code string) (*Device, error) {
	db, err := GetDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	var d Device
	var deployedAt string

	err = db.QueryRow(
		"SELECT code, name, category, deployed_at FROM devices WHERE code = ?",
		code,
	).Scan(&d.Code, &d.Name, &d.Category, &deployedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("device %s not found", code)
	}
	if err != nil {
		return nil, fmt.Errorf("querying device by code: %w", err)
	}

	d.DeployedAt, err = time.Parse(time.RFC3339, deployedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing deployed_at for %s: %w", code, err)
	}

	return &d, nil
}

// ListDevices returns every cataloged device ordered by deployment date.
func ListDevices(dbPath string) ([]Device, error) {
	db, err := GetDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	rows, err := db.Query("SELECT code, name, category, deployed_at FROM devices ORDER BY deployed_at, code")
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	var out []Device
	for rows.Next() {
		var d Device
		var deployedAt string
		if err := rows.Scan(&d.Code, &d.Name, &d.Category, &deployedAt); err != nil {
			continue
		}
		if d.DeployedAt, err = time.Parse(time.RFC3339, deployedAt); err != nil {
			continue
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
