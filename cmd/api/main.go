package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	_ "rutvans_api/docs"
	"rutvans_api/internal/adapter/http/routes"
	"rutvans_api/internal/config"
	"rutvans_api/internal/infrastructure/logger"
)

// @title           Rutvans Finance API
// @version         1.0
// @description     Financial reports over the Rutvans sales ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := routes.Run(cfg, l); err != nil {
		l.Fatal("[app] failed to start the application", zap.Error(err))
	}
}
