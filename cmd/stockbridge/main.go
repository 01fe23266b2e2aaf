package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/compazz/stockbridge/config"
	"github.com/compazz/stockbridge/internal/adminapi"
	"github.com/compazz/stockbridge/internal/app"
	"github.com/compazz/stockbridge/internal/webserver"
)

var (
	configFile = flag.String("c", "", "config file path")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	webserver.Init(application)
	adminapi.InitRouter()

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.S().Fatalf("web server stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.S().Info("shutting down")
}
