// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkfee/internal/config"
	httptransport "parkfee/internal/http"
	"parkfee/internal/infra"
	"parkfee/internal/modules/area"
	"parkfee/internal/modules/currency"
	"parkfee/internal/modules/fee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	areaStore := area.NewStore(dbPool)
	areaSvc := area.NewService(areaStore)

	feeSvc := fee.NewService()

	fxClient := currency.NewClient(cfg.Fx.BaseURL, cfg.Fx.AccessKey)
	fxStore := currency.NewStore(redisClient)
	fxSvc := currency.NewService(fxClient, fxStore, cfg.Fx.CacheTTL)

	handler := httptransport.NewRouter(areaSvc, feeSvc, fxSvc)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}
	}()

	log.Printf("starting parkfee-api on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
