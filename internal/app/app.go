package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	config "github.com/inventory-hub/go-backend/internal/cfg"
	v1Http "github.com/inventory-hub/go-backend/internal/delivery/v1/http"
	"github.com/inventory-hub/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/inventory-hub/go-backend/internal/repository/pgdb/converter"
	"github.com/inventory-hub/go-backend/internal/usecase"
	"github.com/inventory-hub/go-backend/pkg/closer"
	"github.com/inventory-hub/go-backend/pkg/e"
	"github.com/inventory-hub/go-backend/pkg/logger"
	"github.com/inventory-hub/go-backend/pkg/postgres"
	"github.com/jimlawless/whereami"
)

// Run собирает зависимости, запускает HTTP-сервер и останавливает все
// по сигналу или фатальной ошибке. Ресурсы закрываются через closer в
// порядке, обратном открытию.
func Run(cfg *config.Config, logger logger.Logger) error {
	const shutdownTimeout = 10 * time.Second

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	cl := closer.New(0)
	cl.Add("postgres pool", func(context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	productUC := usecase.NewProductUC(productRepo, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(productUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add("http server", httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "shutdown error")
	} else {
		logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
