// tension-server serves the tension analysis API: landmark streams in,
// scored reports, stored analyses, and charts out.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MatthewKim323/HimAI-v2/internal/api"
	"github.com/MatthewKim323/HimAI-v2/internal/db"
	"github.com/MatthewKim323/HimAI-v2/internal/exercise"
)

var (
	listen   = flag.String("listen", ":8080", "Listen address")
	dbPath   = flag.String("db", "tension_data.db", "Path to the sqlite database")
	profiles = flag.String("profiles", "", "Optional JSON file with exercise profile overrides")
)

func main() {
	flag.Parse()

	registry, err := exercise.NewRegistry()
	if err != nil {
		log.Fatalf("failed to build exercise registry: %v", err)
	}
	if *profiles != "" {
		if err := registry.LoadOverrides(*profiles); err != nil {
			log.Fatalf("failed to load profile overrides: %v", err)
		}
		log.Printf("loaded profile overrides from %s", *profiles)
	}

	database, err := db.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    *listen,
		Handler: api.LoggingMiddleware(api.NewServer(database, registry).ServeMux()),
	}

	go func() {
		log.Printf("listening on %s", *listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Printf("graceful shutdown complete")
}
