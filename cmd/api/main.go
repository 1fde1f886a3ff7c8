package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"spotstay/internal/adapters/auth"
	server "spotstay/internal/adapters/http_server"
	"spotstay/internal/adapters/observability"
	redisad "spotstay/internal/adapters/redis"
	"spotstay/internal/app"
	"spotstay/internal/shared"
	mysqlrepo "spotstay/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	sessions := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tokens, err := auth.NewManager([]byte(cfg.AuthSecret), cfg.SessionTTL, sessions)
	if err != nil {
		log.Fatal().Err(err).Msg("auth manager init failed")
	}

	handlers := &server.Handlers{
		Q: app.NewQueryService(repo),
		C: app.NewCommandService(repo),
		U: app.NewUserService(repo, tokens),
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers, tokens)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
