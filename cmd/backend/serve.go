package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/relaymark/crm-backend/cmd/backend/handlers"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/database"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
	"github.com/relaymark/crm-backend/validation"
	"github.com/spf13/cobra"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := logger.NewLogrusLogger(cfg.Log.Level)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	// Connect to database
	dbCfg := database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	defer sqlDB.Close()

	log.Info(ctx, "database connected", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// Initialize stores and validation
	contactStore := contact.NewMySQLStore(db, log)
	projectStore := project.NewMySQLStore(db, log)
	validate := validation.New()

	// Setup router
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(handlers.NewLoggingMiddleware(log).Handler)

	contactHandler := handlers.NewContactHandler(contactStore, validate, log)
	apiRouter.HandleFunc("/contacts", contactHandler.List).Methods("GET")
	apiRouter.HandleFunc("/contacts", contactHandler.Create).Methods("POST")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.Update).Methods("PUT")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.Delete).Methods("DELETE")

	projectHandler := handlers.NewProjectHandler(projectStore, contactStore, validate, log)
	apiRouter.HandleFunc("/projects", projectHandler.List).Methods("GET")
	apiRouter.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	apiRouter.HandleFunc("/projects/contact/{contactId}", projectHandler.ListByContact).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.Update).Methods("PUT")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.Delete).Methods("DELETE")

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}
