package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/extracurricular/internal/api"
	"example.com/extracurricular/internal/config"
	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/observability"
	"example.com/extracurricular/internal/roster"
	httptransport "example.com/extracurricular/internal/transport/http"
)

func main() {
	cfg := config.Load()

	catalog := roster.DefaultCatalog()
	if cfg.SeedFile != "" {
		loaded, err := roster.LoadCatalog(cfg.SeedFile)
		if err != nil {
			log.Fatalf("failed to load seed catalog: %v", err)
		}
		catalog = loaded
	}

	repo := roster.NewInMemoryRepository(catalog)
	for _, activity := range catalog {
		observability.SetRosterSize(activity.Name, len(activity.Participants))
	}

	var publisher domain.Publisher
	if cfg.RosterEventsTopic != "" {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, cfg.RosterEventsTopic)
		defer producer.Close()
		publisher = producer
	}

	service := domain.NewService(repo, publisher)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Simple CORS middleware for local dev
	cors := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	// Request logger tagging each request with a short-lived ID
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)
			log.Printf("[%s] %s %s", requestID, r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger(cors(mux)))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		snapshot, _ := repo.Snapshot(context.Background())
		log.Printf("extracurricular-api listening on %s with activities %v", cfg.HTTPAddress, api.SortedNames(snapshot))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
