package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/api"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/config"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/db"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/logger"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/migrate"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// DATABASE_URL selects the Postgres variant; the embedded SQLite file
	// is the default backend.
	var store *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		store, err = db.OpenPostgresWithURL(dbURL)
	} else {
		store, err = db.OpenSQLite(conf.SQLite)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	// The store is not usable until every pending schema migration has run.
	if err = migrate.Open(store); err != nil {
		return fmt.Errorf("failed to migrate store -> %w", err)
	}

	bus := events.NewBus()
	s := api.NewServer(conf, store, bus)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
