package main

import (
	"context"
	"log"
	"os"

	"github.com/inteller-studio/zervtek-admin/internal/config"
	"github.com/inteller-studio/zervtek-admin/internal/db"
	"github.com/inteller-studio/zervtek-admin/internal/server"
	"github.com/joho/godotenv"
)

var (
	gitSHA    = os.Getenv("GIT_SHA")
	buildTime = os.Getenv("BUILD_TIME")
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		log.Printf("auto migrate error: %v", err)
	}

	srv := server.New(context.Background(), conn, cfg, gitSHA, buildTime)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
