// Package main - Entry point for the quoting server
package main

import (
	"context"
	"flag"
	"net/http"

	"go.uber.org/zap"

	"mainland-quote/api"
	"mainland-quote/db"
	"mainland-quote/internal/config"
	"mainland-quote/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Component("server").Error("load config", zap.Error(err))
			return
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Component("server").Error("initialize logging", zap.Error(err))
	}
	defer logging.Sync()
	log := logging.Component("server")

	database, err := db.Open(cfg.Storage.DatabasePath)
	if err != nil {
		log.Error("open database", zap.Error(err))
		return
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Error("run migrations", zap.Error(err))
		return
	}
	store := db.NewStore(database)

	// Stored settings take precedence over the config file so admin
	// edits survive restarts.
	settings := cfg.Settings
	if stored, ok, err := store.GetSettings(context.Background()); err != nil {
		log.Warn("load stored settings", zap.Error(err))
	} else if ok {
		settings = stored
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	server := api.NewServerWithStore(version, &settings, store)
	log.Info("server listening", zap.String("addr", listen), zap.String("version", version))
	if err := http.ListenAndServe(listen, server); err != nil {
		log.Error("server exited", zap.Error(err))
	}
}
