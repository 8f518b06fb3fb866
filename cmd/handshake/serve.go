package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/handshake/internal/adapters/http"
	"github.com/aretw0/handshake/internal/metrics"
	"github.com/aretw0/handshake/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/handshake/pkg/adapters/redis"
	"github.com/aretw0/handshake/pkg/persistence/middleware"
	"github.com/aretw0/handshake/pkg/ports"
	"github.com/aretw0/handshake/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the automaton engine in server mode, exposing a JSON API over HTTP.
Sessions live in memory by default; pass --redis to share them across
instances.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisPrefix, _ := cmd.Flags().GetString("redis-prefix")
		sessionKey, _ := cmd.Flags().GetString("session-key")

		var storeMiddleware middleware.Middleware
		if sessionKey != "" {
			key, err := hex.DecodeString(sessionKey)
			if err != nil || len(key) != 32 {
				fmt.Println("Error: --session-key must be 64 hex characters (32 bytes)")
				os.Exit(1)
			}
			storeMiddleware = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		}

		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		opts := []httpAdapter.Option{
			httpAdapter.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
			httpAdapter.WithLogger(createLogger(cmd)),
		}
		var store ports.SessionStore
		var managerOpts []session.Option
		if redisAddr != "" {
			var storeOpts []redisAdapter.Option
			if redisPrefix != "" {
				storeOpts = append(storeOpts, redisAdapter.WithPrefix(redisPrefix))
			}
			redisStore := redisAdapter.New(redisAddr, "", 0, storeOpts...)
			managerOpts = append(managerOpts, session.WithLocker(
				redisAdapter.NewLocker(redisStore.Client(), redisPrefix),
			))
			store = redisStore
		} else {
			store = memory.NewStore()
		}
		if storeMiddleware != nil {
			store = storeMiddleware(store)
		}
		opts = append(opts, httpAdapter.WithSessionManager(session.NewManager(store, managerOpts...)))

		handler := httpAdapter.NewHandler(engine, opts...)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Handshake Server on %s\n", srv.Addr)
			if redisAddr != "" {
				fmt.Printf("Session store: redis (%s)\n", redisAddr)
			} else {
				fmt.Println("Session store: in-memory")
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Handshake Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for shared session storage (e.g. localhost:6379)")
	serveCmd.Flags().String("redis-prefix", "", "Key prefix for redis session entries")
	serveCmd.Flags().String("session-key", "", "Hex-encoded 32-byte key; when set, session histories are encrypted at rest")
}
