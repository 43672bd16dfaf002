package main

import (
	"os"

	"github.com/inventory-hub/go-backend/internal/app"
	config "github.com/inventory-hub/go-backend/internal/cfg"
	"github.com/inventory-hub/go-backend/pkg/logger"
)

//	@title			Inventory Management API
//	@version		1.0
//	@description	CRUD и поиск по каталогу товаров с мягким удалением
//	@host			localhost:8080
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
