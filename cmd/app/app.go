package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"giftstore-backend/internal/api"
	"giftstore-backend/internal/config"
	"giftstore-backend/internal/db"
	"giftstore-backend/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// DATABASE_URL switches the store to Postgres; the default is the
	// embedded SQLite file from config.
	dbURL := os.Getenv("DATABASE_URL")
	var conn *gorm.DB
	if dbURL != "" {
		conn, err = db.OpenPostgresWithURL(dbURL)
	} else {
		conn, err = db.OpenSQLite(conf.SQLite)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = db.Seed(conn); err != nil {
		return fmt.Errorf("failed to seed database -> %w", err)
	}

	s := api.NewServer(conf, conn)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
