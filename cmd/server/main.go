package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tatianab/dragon-repeller/internal/app"
	"github.com/tatianab/dragon-repeller/internal/config"
	"github.com/tatianab/dragon-repeller/internal/httpapi"
)

func main() {
	log.SetPrefix("dragon-server: ")
	gin.SetMode(gin.ReleaseMode)

	addr := flag.String("addr", "", "listen address (overrides DRAGON_HTTP_ADDR)")
	cfg, err := config.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := app.Open(ctx, cfg)
	if err != nil {
		config.Exitf("Error starting game: %v", err)
	}
	defer g.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.New(g.Session).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}
