package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tiketbola/matchrec/internal/api"
	"github.com/tiketbola/matchrec/internal/config"
	"github.com/tiketbola/matchrec/internal/db"
	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/logger"
	"github.com/tiketbola/matchrec/internal/oracle"
	"github.com/tiketbola/matchrec/internal/recommend"
	"github.com/tiketbola/matchrec/internal/repository"
	"github.com/tiketbola/matchrec/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	catalog := loadCatalog(conf, postgresDB)

	var scorer recommend.ScoringOracle
	if conf.Oracle != nil && conf.Oracle.Enabled {
		scorer = oracle.NewClient(conf.Oracle)
		zap.L().Info("scoring oracle configured", zap.String("base_url", conf.Oracle.BaseURL))
	} else {
		zap.L().Info("no scoring oracle configured, serving unscored recommendations")
	}

	s := api.NewServer(conf, postgresDB, catalog, scorer)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// loadCatalog reads the match catalog once. A failure here is permanent:
// the server still starts, but every recommendation request reports the
// catalog unavailable.
func loadCatalog(conf *config.AppConfig, postgresDB *gorm.DB) *recommend.Catalog {
	var (
		matches []domain.Match
		err     error
	)

	switch conf.Catalog.Source {
	case "csv":
		matches, err = repository.NewCSVCatalog(conf.Catalog.CSVPath).LoadAll()
	default:
		matches, err = repository.NewMatchRepository(dao.NewMatchDAO(postgresDB)).LoadAll(context.Background())
	}
	if err != nil {
		zap.L().Error("failed to load match catalog", zap.Error(err))
		return recommend.NewUnavailableCatalog(err)
	}

	catalog := recommend.NewCatalog(matches)
	zap.L().Info("match catalog loaded",
		zap.String("source", conf.Catalog.Source),
		zap.Int("matches", catalog.Len()),
	)

	return catalog
}
