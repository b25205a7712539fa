package main

import (
	"flag"

	"go-hradmin/internal/app"
	"go-hradmin/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	fixturePath := flag.String("fixture", "fixture.json", "path to the JSON fixture to import")
	flag.Parse()

	if err := app.RunImporter(*fixturePath); err != nil {
		logger.Fatal("run importer failed", zap.Error(err))
	}
}
