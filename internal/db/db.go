package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"giftstore-backend/internal/config"
	"giftstore-backend/internal/repository/dao"
)

// OpenSQLite opens (and creates, if missing) the embedded database file
// and runs the idempotent schema migration.
func OpenSQLite(conf *config.SQLiteConfig) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(conf.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(conn); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return conn, nil
}

// OpenPostgresWithURL connects to Postgres when DATABASE_URL is set.
func OpenPostgresWithURL(dbURL string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(conn); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return conn, nil
}
